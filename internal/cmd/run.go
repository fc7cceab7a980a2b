package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/remoteops/remotectl/internal/ssh"
)

var runCmd = &cobra.Command{
	Use:   "run <command...>",
	Short: "Execute a command on the remote server",
	Long: `Executes a shell command on the configured server and prints its
output. The process exits with the remote command's own exit code.

Multiple arguments are joined with spaces and passed to the remote shell
as one command line; no quoting is added.

Example:
  remotectl run uptime
  remotectl run systemctl restart app`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	command := strings.Join(args, " ")

	client, err := ConnectToServer()
	if err != nil {
		return err
	}
	defer client.Close()

	return executeCommand(client, command, os.Stdout, os.Stderr)
}

// executeCommand runs one remote command, writes its sanitized output to
// the given streams, and converts a non-zero remote exit code into an
// ExitError so it becomes the process exit code.
func executeCommand(executor ssh.Executor, command string, stdout, stderr io.Writer) error {
	PrintVerboseCommand(command)

	result, err := executor.Exec(command)
	if err != nil {
		return err
	}

	if len(result.Stdout) > 0 {
		io.WriteString(stdout, SanitizeASCII(result.Stdout))
	}
	if len(result.Stderr) > 0 {
		io.WriteString(stderr, SanitizeASCII(result.Stderr))
	}

	if result.ExitCode != 0 {
		return &ExitError{Code: result.ExitCode}
	}
	return nil
}
