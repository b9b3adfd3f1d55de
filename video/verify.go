package video

import (
	"fmt"
	"image"
	_ "image/jpeg"
	"os"
	"os/exec"

	"github.com/corona10/goimagehash"
)

// FramePerceptualHash extracts a frame from a video and calculates its
// perceptual hash. Used to confirm an optimized encode still looks like
// its source.
func FramePerceptualHash(videoFile string) (*goimagehash.ImageHash, error) {
	// Temporary frame scoped to this call; CreateTemp keeps concurrent
	// extractions from clobbering each other
	tmp, err := os.CreateTemp("", "mediaopt_frame_*.jpg")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp frame: %w", err)
	}
	tempFrame := tmp.Name()
	_ = tmp.Close()
	defer func() { _ = os.Remove(tempFrame) }()

	// Extract a frame 30 seconds in; short clips fall back to the first frame
	cmd := exec.Command("ffmpeg", "-i", videoFile, "-ss", "00:00:30", "-vframes", "1", "-f", "image2", "-y", tempFrame)
	if err := cmd.Run(); err != nil {
		cmd = exec.Command("ffmpeg", "-i", videoFile, "-vframes", "1", "-f", "image2", "-y", tempFrame)
		if err = cmd.Run(); err != nil {
			return nil, fmt.Errorf("failed to extract frame: %w", err)
		}
	}

	file, err := os.Open(tempFrame)
	if err != nil {
		return nil, fmt.Errorf("failed to open extracted frame: %w", err)
	}
	defer func() { _ = file.Close() }()

	frame, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode frame: %w", err)
	}

	hash, err := goimagehash.PerceptionHash(frame)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate perceptual hash: %w", err)
	}

	return hash, nil
}

// VisualSimilarity compares matching frames of two videos by perceptual
// hash and returns the Hamming distance (0 = visually identical).
func VisualSimilarity(originalPath, optimizedPath string) (int, error) {
	originalHash, err := FramePerceptualHash(originalPath)
	if err != nil {
		return 0, fmt.Errorf("failed to hash original: %w", err)
	}

	optimizedHash, err := FramePerceptualHash(optimizedPath)
	if err != nil {
		return 0, fmt.Errorf("failed to hash optimized: %w", err)
	}

	distance, err := originalHash.Distance(optimizedHash)
	if err != nil {
		return 0, fmt.Errorf("failed to compare hashes: %w", err)
	}

	return distance, nil
}
