package cmd

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/remoteops/remotectl/internal/config"
	"github.com/remoteops/remotectl/internal/ssh"
)

// ConnectToServer loads and validates the connection config, then dials the
// server. The caller must defer client.Close(); that deferred close is the
// resource contract every command relies on.
func ConnectToServer() (*ssh.Client, error) {
	cfg, err := config.Load(GetConfigFile())
	if err != nil {
		return nil, err
	}

	if cfg.Password == "" && cfg.KeyFile == "" && IsInteractive() {
		password, err := promptPassword(cfg.User, cfg.Host)
		if err == nil {
			cfg.Password = password
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	PrintVerbose("Connecting to %s:%d as %s...", cfg.Host, cfg.Port, cfg.User)

	var opts []ssh.ClientOption
	if cfg.KeyFile != "" {
		opts = append(opts, ssh.WithKeyFile(cfg.KeyFile))
	}

	client := ssh.NewClient(cfg.Host, cfg.User, cfg.Port, cfg.Password, opts...)
	if err := client.Connect(); err != nil {
		return nil, err
	}

	return client, nil
}

// IsInteractive returns true if stdin is a terminal
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func promptPassword(user, host string) (string, error) {
	fmt.Fprintf(os.Stderr, "%s@%s password: ", user, host)
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(password), nil
}
