package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/remoteops/remotectl/internal/security"
)

var (
	// Version is set at build time
	Version = "dev"

	// Global flags
	verbose bool
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "remotectl",
	Short: "Run commands and push files to a remote server over SSH",
	Long: `Remotectl runs shell commands on a configured server over SSH and
uploads files or directories over SFTP.

Quick start:
  remotectl run uptime                  # Run a remote command
  remotectl copy ./dist /srv/app/dist   # Upload a file or directory
  remotectl images                      # Upload product images

Configuration (environment variables or a .env file):
  SSH_HOST       Server hostname or address
  SSH_USER       Login user
  SSH_PASSWORD   Login password
  SSH_PORT       Port (default 22)
  SSH_KEY_FILE   Optional private key file for key authentication`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed logs")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: .env in the working directory)")

	rootCmd.SetVersionTemplate(`remotectl {{.Version}}
`)
}

// GetRootCmd exposes the root command for documentation generation.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

// IsVerbose returns true if verbose mode is enabled
func IsVerbose() bool {
	return verbose
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// ExitError carries a process exit code through cobra without a message.
// It is how a remote command's own exit status reaches main.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// ExitCode maps an Execute error to the process exit code: 0 for success,
// the remote status for an ExitError, 1 for everything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}

// IsSilent reports whether err should not be printed before exiting;
// an ExitError's message is the remote command's own output, already shown.
func IsSilent(err error) bool {
	var exitErr *ExitError
	return errors.As(err, &exitErr)
}

// PrintError prints a formatted error message
func PrintError(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
}

// PrintSuccess prints a success message
func PrintSuccess(msg string, args ...interface{}) {
	fmt.Printf("Done! "+msg+"\n", args...)
}

// PrintInfo prints an info message
func PrintInfo(msg string, args ...interface{}) {
	fmt.Printf(msg+"\n", args...)
}

// PrintVerbose prints a message only in verbose mode
func PrintVerbose(msg string, args ...interface{}) {
	if verbose {
		fmt.Printf("   "+msg+"\n", args...)
	}
}

// PrintVerboseCommand prints a command in verbose mode with sensitive values masked
func PrintVerboseCommand(command string) {
	if verbose {
		fmt.Printf("   Running: %s\n", security.SanitizeCommandForLog(command))
	}
}
