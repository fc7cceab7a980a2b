package cmd

import (
	"github.com/spf13/cobra"

	"github.com/remoteops/remotectl/internal/constants"
	"github.com/remoteops/remotectl/internal/ssh"
)

var imagesCmd = &cobra.Command{
	Use:   "images",
	Short: "Upload product images to the remote server",
	Long: `Uploads every .png, .jpg and .webp file from the local product image
directory to its fixed destination on the server.

Example:
  remotectl images
  remotectl images --source ./assets/img --dest /srv/app/img`,
	Args: cobra.NoArgs,
	RunE: runImages,
}

var (
	imagesSource string
	imagesDest   string
)

func init() {
	rootCmd.AddCommand(imagesCmd)
	imagesCmd.Flags().StringVar(&imagesSource, "source", constants.DefaultImagesLocalDir(), "Local image directory")
	imagesCmd.Flags().StringVar(&imagesDest, "dest", constants.DefaultImagesRemoteDir, "Remote image directory")
}

func runImages(cmd *cobra.Command, args []string) error {
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

	result, err := uploader.UploadDirectoryFiltered(imagesSource, imagesDest, constants.ImageExtensions)
	if err != nil {
		return err
	}

	if result.Total == 0 {
		PrintInfo("No image files found to upload.")
		return nil
	}

	PrintSuccess("Uploaded %d images", result.Succeeded)
	return nil
}
