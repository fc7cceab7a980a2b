package constants

import "path/filepath"

// Fixed paths for the bulk image upload
const (
	// DefaultImagesRemoteDir is where product images land on the server.
	DefaultImagesRemoteDir = "/var/www/app/uploads/products"
)

// ImageExtensions are the file types the images command uploads.
var ImageExtensions = []string{".png", ".jpg", ".webp"}

// DefaultImagesLocalDir returns the local source directory for product
// images, relative to the working directory.
func DefaultImagesLocalDir() string {
	return filepath.Join("server", "uploads", "products")
}
