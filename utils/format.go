package utils

import (
	"fmt"
	"os"
)

// FileSize returns the size of a file in bytes
func FileSize(filePath string) (int64, error) {
	fi, err := os.Stat(filePath)
	if err != nil {
		return 0, fmt.Errorf("failed to get file size: %w", err)
	}
	return fi.Size(), nil
}

// FormatSize formats a byte count in human readable form (B, KB, MB)
func FormatSize(sizeBytes int64) string {
	switch {
	case sizeBytes < 1024:
		return fmt.Sprintf("%d B", sizeBytes)
	case sizeBytes < 1024*1024:
		return fmt.Sprintf("%.2f KB", float64(sizeBytes)/1024)
	default:
		return fmt.Sprintf("%.2f MB", float64(sizeBytes)/(1024*1024))
	}
}

// FormatReduction formats the size change between an original and an
// optimized file as a percentage. Returns 0 for an empty original.
func FormatReduction(originalSize, newSize int64) float64 {
	if originalSize <= 0 {
		return 0
	}
	return (1 - float64(newSize)/float64(originalSize)) * 100
}
