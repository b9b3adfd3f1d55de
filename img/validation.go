package img

import (
	"path/filepath"
	"strings"
)

// IsImageFile checks if the given file extension is one of the supported image formats
func IsImageFile(path string) bool {
	var desiredExtensions = []string{".webp", ".png", ".jpg", ".jpeg"}

	ext := filepath.Ext(path)
	ext = strings.ToLower(ext) // handle cases where extension is upper case

	for _, v := range desiredExtensions {
		if v == ext {
			return true
		}
	}
	return false
}

// OutputName returns the optimized filename for an input image,
// e.g. photo.png -> photo.webp. WebP inputs get an _optimized suffix
// so the original is never overwritten.
func OutputName(inputPath string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(inputPath, ext)
	if strings.EqualFold(ext, ".webp") {
		return base + "_optimized.webp"
	}
	return base + ".webp"
}
