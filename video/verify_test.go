package video

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestFramePerceptualHash_MissingFile(t *testing.T) {
	if _, err := FramePerceptualHash("/path/to/nonexistent/video.mp4"); err == nil {
		t.Error("FramePerceptualHash() expected error for missing file, got nil")
	}
}

func TestFramePerceptualHash_CorruptFile(t *testing.T) {
	testDir := t.TempDir()
	testFile := filepath.Join(testDir, "corrupt.mp4")

	if err := os.WriteFile(testFile, []byte("not a video"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if _, err := FramePerceptualHash(testFile); err == nil {
		t.Error("FramePerceptualHash() expected error for corrupt file, got nil")
	}
}

func TestFramePerceptualHash_ConcurrentCalls(t *testing.T) {
	// Each call extracts into its own temp frame, so concurrent hashing of
	// different files must not interfere
	testDir := t.TempDir()
	files := []string{
		filepath.Join(testDir, "a.mp4"),
		filepath.Join(testDir, "b.mp4"),
	}
	for _, f := range files {
		if err := os.WriteFile(f, []byte("not a video"), 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}
	}

	var wg sync.WaitGroup
	for _, f := range files {
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			if _, err := FramePerceptualHash(path); err == nil {
				t.Errorf("FramePerceptualHash(%q) expected error for fake video, got nil", path)
			}
		}(f)
	}
	wg.Wait()
}

func TestVisualSimilarity_MissingFiles(t *testing.T) {
	if _, err := VisualSimilarity("/no/such/original.mp4", "/no/such/optimized.webm"); err == nil {
		t.Error("VisualSimilarity() expected error for missing files, got nil")
	}
}
