package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{"zero bytes", 0, "0 B"},
		{"small byte count", 500, "500 B"},
		{"just below KB threshold", 1023, "1023 B"},
		{"exactly 1 KB", 1024, "1.00 KB"},
		{"two KB", 2048, "2.00 KB"},
		{"fractional KB", 1536, "1.50 KB"},
		{"just below MB threshold", 1024*1024 - 1, "1024.00 KB"},
		{"exactly 1 MB", 1024 * 1024, "1.00 MB"},
		{"five MB", 5 * 1024 * 1024, "5.00 MB"},
		{"large MB value", 2560 * 1024 * 1024, "2560.00 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatSize(tt.bytes); got != tt.expected {
				t.Errorf("FormatSize(%d) = %q, expected %q", tt.bytes, got, tt.expected)
			}
		})
	}
}

func TestFormatReduction(t *testing.T) {
	tests := []struct {
		name     string
		original int64
		newSize  int64
		expected float64
	}{
		{"half the size", 1000, 500, 50},
		{"no change", 1000, 1000, 0},
		{"grew larger", 1000, 1500, -50},
		{"empty original", 0, 500, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatReduction(tt.original, tt.newSize); got != tt.expected {
				t.Errorf("FormatReduction(%d, %d) = %f, expected %f", tt.original, tt.newSize, got, tt.expected)
			}
		})
	}
}

func TestFileSize(t *testing.T) {
	testDir := t.TempDir()
	testFile := filepath.Join(testDir, "sample.bin")

	content := make([]byte, 2048)
	if err := os.WriteFile(testFile, content, 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	size, err := FileSize(testFile)
	if err != nil {
		t.Fatalf("FileSize() unexpected error: %v", err)
	}
	if size != 2048 {
		t.Errorf("FileSize() = %d, expected 2048", size)
	}
}

func TestFileSize_NonExistentFile(t *testing.T) {
	_, err := FileSize("/path/to/nonexistent/file.bin")
	if err == nil {
		t.Error("FileSize() expected error for non-existent file, got nil")
	}
}
