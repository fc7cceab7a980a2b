package cmd

import (
	"github.com/spf13/cobra"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Open an interactive shell on the remote server",
	Long: `Opens an interactive login shell on the configured server with a
pseudo-terminal sized to the local window.

Example:
  remotectl shell`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	client, err := ConnectToServer()
	if err != nil {
		return err
	}
	defer client.Close()

	return client.Shell()
}
