package img

import (
	"fmt"

	"github.com/corona10/goimagehash"
)

// VisualSimilarity compares two images by perceptual hash and returns the
// Hamming distance between them (0 = visually identical, 64 = unrelated).
// Used after lossy encodes to confirm the output still looks like the input.
func VisualSimilarity(originalPath, optimizedPath string) (int, error) {
	original, err := decodeImage(originalPath)
	if err != nil {
		return 0, fmt.Errorf("failed to decode original: %w", err)
	}

	optimized, err := decodeImage(optimizedPath)
	if err != nil {
		return 0, fmt.Errorf("failed to decode optimized: %w", err)
	}

	originalHash, err := goimagehash.PerceptionHash(original)
	if err != nil {
		return 0, fmt.Errorf("failed to hash original: %w", err)
	}

	optimizedHash, err := goimagehash.PerceptionHash(optimized)
	if err != nil {
		return 0, fmt.Errorf("failed to hash optimized: %w", err)
	}

	distance, err := originalHash.Distance(optimizedHash)
	if err != nil {
		return 0, fmt.Errorf("failed to compare hashes: %w", err)
	}

	return distance, nil
}
