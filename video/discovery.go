package video

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// FindVideoFilesRecursively scans a directory for supported video files,
// skipping files that already carry the optimized WebM suffix.
func FindVideoFilesRecursively(directory string) ([]string, error) {
	var files []string
	var err error

	// Use fd if available for better performance, otherwise fall back to filepath.WalkDir
	if isFdAvailable() {
		files, err = findVideoFilesWithFd(directory)
		if err != nil {
			// If fd fails, fall back to the standard method
			files, err = findVideoFilesWithWalkDir(directory)
		}
	} else {
		files, err = findVideoFilesWithWalkDir(directory)
	}

	return files, err
}

// isFdAvailable checks if the 'fd' command is available in PATH
func isFdAvailable() bool {
	_, err := exec.LookPath("fd")
	return err == nil
}

// isOptimizedOutput reports whether a path looks like a file this tool
// already produced
func isOptimizedOutput(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), "_optimized.webm")
}

// findVideoFilesWithWalkDir uses filepath.WalkDir to find video files (fallback method)
func findVideoFilesWithWalkDir(directory string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(directory, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		if !IsVideoFile(path) || isOptimizedOutput(path) {
			return nil
		}

		files = append(files, path)
		return nil
	})

	return files, err
}

// findVideoFilesWithFd uses the 'fd' command to efficiently find video files
func findVideoFilesWithFd(directory string) ([]string, error) {
	videoExts := []string{"webm", "mp4", "mov"}
	extPattern := "\\." + strings.Join(videoExts, "$|\\.") + "$"

	cmd := exec.Command("fd", extPattern, "--type", "f", "--case-sensitive", "false", directory)
	output, err := cmd.Output()
	if err != nil {
		return nil, err
	}

	lines := strings.Split(strings.TrimSpace(string(output)), "\n")
	var files []string
	for _, line := range lines {
		if line != "" && IsVideoFile(line) && !isOptimizedOutput(line) {
			files = append(files, line)
		}
	}

	return files, nil
}
