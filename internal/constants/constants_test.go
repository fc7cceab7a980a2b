package constants

import (
	"path/filepath"
	"testing"
)

func TestDefaultImagesLocalDir(t *testing.T) {
	want := filepath.Join("server", "uploads", "products")
	if got := DefaultImagesLocalDir(); got != want {
		t.Errorf("DefaultImagesLocalDir() = %q, want %q", got, want)
	}
}

func TestImageExtensions(t *testing.T) {
	want := map[string]bool{".png": true, ".jpg": true, ".webp": true}
	if len(ImageExtensions) != len(want) {
		t.Fatalf("got %d extensions, want %d", len(ImageExtensions), len(want))
	}
	for _, ext := range ImageExtensions {
		if !want[ext] {
			t.Errorf("unexpected extension %q", ext)
		}
	}
}
