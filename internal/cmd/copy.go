package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/remoteops/remotectl/internal/ssh"
)

var copyCmd = &cobra.Command{
	Use:   "copy <local-path> <remote-path>",
	Short: "Copy a file or directory to the remote server",
	Long: `Uploads a local file, or the files directly inside a local directory,
to the remote server over SFTP.

For a directory, only regular files at its top level are uploaded;
subdirectories are not recursed into. The remote directory is created if
it does not exist.

Example:
  remotectl copy ./app.tar.gz /srv/releases/app.tar.gz
  remotectl copy ./public/uploads /srv/app/uploads`,
	Args: cobra.ExactArgs(2),
	RunE: runCopy,
}

func init() {
	rootCmd.AddCommand(copyCmd)
}

func runCopy(cmd *cobra.Command, args []string) error {
	localPath, remotePath := args[0], args[1]

	info, err := os.Stat(localPath)
	if err != nil {
		return &ssh.Error{Kind: ssh.KindLocalPathNotFound, Op: "copy", Err: err}
	}

	client, err := ConnectToServer()
	if err != nil {
		return err
	}
	defer client.Close()

	channel, err := client.SFTP()
	if err != nil {
		return err
	}

	uploader := ssh.NewUploader(ssh.Channel(channel))
	uploader.Progress = printProgress

	if info.IsDir() {
		return copyDirectory(uploader, localPath, remotePath)
	}
	return copyFile(uploader, localPath, remotePath)
}

func copyFile(uploader *ssh.Uploader, localPath, remotePath string) error {
	name := filepath.Base(localPath)
	PrintInfo("Uploading %s...", name)

	if err := uploader.UploadFile(localPath, remotePath); err != nil {
		return err
	}

	PrintSuccess("Uploaded %s", name)
	return nil
}

func copyDirectory(uploader *ssh.Uploader, localDir, remoteDir string) error {
	result, err := uploader.UploadDirectory(localDir, remoteDir)
	if err != nil {
		return err
	}

	if result.Total == 0 {
		PrintInfo("No files found to upload.")
		return nil
	}

	PrintSuccess("Uploaded %d files", result.Succeeded)
	return nil
}

func printProgress(uploaded, total int) {
	PrintInfo("Uploaded %d/%d", uploaded, total)
}
