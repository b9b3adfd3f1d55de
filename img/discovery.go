package img

import (
	"os"
	"path/filepath"
	"strings"
)

// FindImageFilesRecursively scans a directory for supported image files,
// skipping files that already carry the optimized WebP suffix.
func FindImageFilesRecursively(directory string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(directory, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		if !IsImageFile(path) {
			return nil
		}

		if strings.HasSuffix(strings.ToLower(path), "_optimized.webp") {
			return nil
		}

		files = append(files, path)
		return nil
	})

	return files, err
}
