package video

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// IsVideoFile checks if the given file extension is one of the supported
// video input formats
func IsVideoFile(path string) bool {
	var desiredExtensions = []string{".webm", ".mp4", ".mov"}

	ext := filepath.Ext(path)
	ext = strings.ToLower(ext) // handle cases where extension is upper case

	for _, v := range desiredExtensions {
		if v == ext {
			return true
		}
	}
	return false
}

// OutputName returns the optimized filename for an input video,
// e.g. clip.mp4 -> clip.webm. WebM inputs get an _optimized suffix
// so the original is never overwritten.
func OutputName(inputPath string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(inputPath, ext)
	if strings.EqualFold(ext, ".webm") {
		return base + "_optimized.webm"
	}
	return base + ".webm"
}

// ValidateIntegrity checks if a video file is corrupted or invalid.
// Returns an error if the file is corrupted or cannot be read.
func ValidateIntegrity(filePath string) error {
	if _, err := os.Stat(filePath); err != nil {
		return fmt.Errorf("file not accessible: %w", err)
	}

	// Minimal ffprobe call that only validates the container structure
	cmd := exec.Command("ffprobe", "-v", "error", "-show_entries", "format=duration", "-of", "default=noprint_wrappers=1:nokey=1", "--", filePath)
	output, err := cmd.CombinedOutput()

	if err != nil {
		// Check for common corruption indicators
		outputStr := string(output)
		if strings.Contains(outputStr, "moov atom not found") {
			return fmt.Errorf("video file is corrupted (missing metadata): %s", extractFirstLine(outputStr))
		}
		if strings.Contains(outputStr, "Invalid data found") ||
			strings.Contains(outputStr, "corrupt") ||
			strings.Contains(outputStr, "truncated") ||
			strings.Contains(outputStr, "Invalid argument") {
			return fmt.Errorf("video file is corrupted or invalid: %s", extractFirstLine(outputStr))
		}

		return fmt.Errorf("ffprobe error: %w\nOutput: %s", err, extractFirstLine(outputStr))
	}

	return nil
}

// extractFirstLine extracts just the first line from a multi-line string
func extractFirstLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) > 0 && strings.TrimSpace(lines[0]) != "" {
		return strings.TrimSpace(lines[0])
	}
	return "no additional information available"
}
