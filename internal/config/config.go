package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/remoteops/remotectl/internal/ssh"
)

const (
	// EnvFile is the key=value file looked up in the working directory
	// when no explicit config file is given.
	EnvFile = ".env"

	// DefaultPort is used when no port is configured.
	DefaultPort = 22
)

// Config holds the connection settings for the target server.
type Config struct {
	Host     string `yaml:"host"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Port     int    `yaml:"port,omitempty"`
	KeyFile  string `yaml:"key_file,omitempty"`
}

// Load resolves the connection settings. Sources, lowest precedence first:
// the YAML file at cfgFile (or a .env key=value file in the working
// directory when cfgFile is empty), then SSH_* environment variables.
// The result is not validated; call Validate before connecting.
func Load(cfgFile string) (*Config, error) {
	cfg := &Config{Port: DefaultPort}

	if cfgFile != "" {
		if err := loadYAMLFile(cfgFile, cfg); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat(EnvFile); err == nil {
		if err := loadEnvFile(EnvFile, cfg); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the settings are complete enough to attempt a
// connection. It runs before any network activity.
func (c *Config) Validate() error {
	var missing []string
	if c.Host == "" {
		missing = append(missing, "host")
	}
	if c.User == "" {
		missing = append(missing, "user")
	}
	if c.Password == "" && c.KeyFile == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return &ssh.Error{
			Kind: ssh.KindConfigMissing,
			Op:   "load config",
			Err:  fmt.Errorf("missing %s (set SSH_HOST, SSH_USER, SSH_PASSWORD)", strings.Join(missing, ", ")),
		}
	}

	if c.Port < 1 || c.Port > 65535 {
		return &ssh.Error{
			Kind: ssh.KindConfigMissing,
			Op:   "load config",
			Err:  fmt.Errorf("invalid port %d", c.Port),
		}
	}

	return nil
}

func loadYAMLFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	return nil
}

// loadEnvFile parses a key=value file. Blank lines and #-comments are
// skipped; values keep everything after the first '='.
func loadEnvFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		if err := cfg.set(strings.TrimSpace(key), strings.TrimSpace(value)); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	for _, key := range []string{"SSH_HOST", "SSH_USER", "SSH_PASSWORD", "SSH_PORT", "SSH_KEY_FILE"} {
		if value, ok := os.LookupEnv(key); ok && value != "" {
			if err := cfg.set(key, value); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Config) set(key, value string) error {
	switch key {
	case "SSH_HOST":
		c.Host = value
	case "SSH_USER":
		c.User = value
	case "SSH_PASSWORD":
		c.Password = value
	case "SSH_KEY_FILE":
		c.KeyFile = value
	case "SSH_PORT":
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid SSH_PORT %q: %w", value, err)
		}
		c.Port = port
	}
	return nil
}
