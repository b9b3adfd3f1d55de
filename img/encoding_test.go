package img

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/lepinkainen/mediaopt/utils"
)

// writeTestPNG creates a small gradient PNG with partially transparent
// pixels in the right half
func writeTestPNG(t *testing.T, path string, width, height int) {
	t.Helper()

	canvas := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			alpha := uint8(255)
			if x >= width/2 {
				alpha = 128
			}
			canvas.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / width),
				G: uint8(y * 255 / height),
				B: 100,
				A: alpha,
			})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create test PNG: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, canvas); err != nil {
		t.Fatalf("Failed to encode test PNG: %v", err)
	}
}

func TestOptimize_SkipsNonImageFile(t *testing.T) {
	testDir := t.TempDir()
	testFile := filepath.Join(testDir, "notes.txt")
	if err := os.WriteFile(testFile, []byte("not an image"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	result := Optimize(testFile, testFile+".webp", DefaultOptions(), utils.ImageLibrary)

	if !result.WasSkipped {
		t.Error("Expected non-image file to be skipped")
	}
	if result.SkipReason == "" {
		t.Error("Expected a skip reason")
	}
	if result.Error != nil {
		t.Errorf("Skip should not set an error, got: %v", result.Error)
	}
}

func TestOptimize_UnavailableMode(t *testing.T) {
	testDir := t.TempDir()
	testFile := filepath.Join(testDir, "photo.png")
	writeTestPNG(t, testFile, 8, 8)

	result := Optimize(testFile, filepath.Join(testDir, "photo.webp"), DefaultOptions(), utils.ImageUnavailable)

	if result.Error == nil {
		t.Fatal("Expected error when no encode path is available")
	}
	if result.WasOptimized {
		t.Error("Expected WasOptimized to be false")
	}
}

func TestOptimize_MissingInput(t *testing.T) {
	testDir := t.TempDir()

	result := Optimize(filepath.Join(testDir, "missing.png"), filepath.Join(testDir, "out.webp"), DefaultOptions(), utils.ImageLibrary)

	if result.Error == nil {
		t.Fatal("Expected error for missing input file")
	}
	if result.WasOptimized {
		t.Error("Expected WasOptimized to be false")
	}
	// A failed encode must not leave an output file behind
	if _, err := os.Stat(filepath.Join(testDir, "out.webp")); err == nil {
		t.Error("Expected no output file after failure")
	}
}

func TestOptimize_LibraryRoundTrip(t *testing.T) {
	testDir := t.TempDir()
	inputFile := filepath.Join(testDir, "photo.png")
	outputFile := filepath.Join(testDir, "photo.webp")
	writeTestPNG(t, inputFile, 64, 48)

	result := Optimize(inputFile, outputFile, DefaultOptions(), utils.ImageLibrary)
	if result.Error != nil {
		t.Fatalf("Optimize() unexpected error: %v", result.Error)
	}
	if !result.WasOptimized {
		t.Fatal("Expected WasOptimized to be true")
	}
	if result.OutputPath != outputFile {
		t.Errorf("Expected output path %q, got %q", outputFile, result.OutputPath)
	}
	if result.NewSize <= 0 {
		t.Errorf("Expected non-empty output, got size %d", result.NewSize)
	}
	if result.OriginalSize <= 0 {
		t.Errorf("Expected original size to be recorded, got %d", result.OriginalSize)
	}

	// Decoded output must keep the source dimensions
	decoded, err := decodeImage(outputFile)
	if err != nil {
		t.Fatalf("Failed to decode optimized output: %v", err)
	}
	bounds := decoded.Bounds()
	if bounds.Dx() != 64 || bounds.Dy() != 48 {
		t.Errorf("Expected 64x48 output, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestOptimize_PreservesAlpha(t *testing.T) {
	testDir := t.TempDir()
	inputFile := filepath.Join(testDir, "transparent.png")
	outputFile := filepath.Join(testDir, "transparent.webp")
	writeTestPNG(t, inputFile, 32, 32)

	result := Optimize(inputFile, outputFile, DefaultOptions(), utils.ImageLibrary)
	if result.Error != nil {
		t.Fatalf("Optimize() unexpected error: %v", result.Error)
	}

	decoded, err := decodeImage(outputFile)
	if err != nil {
		t.Fatalf("Failed to decode optimized output: %v", err)
	}

	// The right half of the test image is semi-transparent; at least one
	// pixel must stay below full opacity after the lossy round trip
	bounds := decoded.Bounds()
	foundTransparency := false
	for y := bounds.Min.Y; y < bounds.Max.Y && !foundTransparency; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			_, _, _, a := decoded.At(x, y).RGBA()
			if a < 0xffff {
				foundTransparency = true
				break
			}
		}
	}
	if !foundTransparency {
		t.Error("Expected semi-transparent pixels to survive the round trip")
	}
}

func TestOptimize_MaxWidthDownscales(t *testing.T) {
	testDir := t.TempDir()
	inputFile := filepath.Join(testDir, "wide.png")
	outputFile := filepath.Join(testDir, "wide.webp")
	writeTestPNG(t, inputFile, 64, 32)

	options := DefaultOptions()
	options.MaxWidth = 32

	result := Optimize(inputFile, outputFile, options, utils.ImageLibrary)
	if result.Error != nil {
		t.Fatalf("Optimize() unexpected error: %v", result.Error)
	}

	decoded, err := decodeImage(outputFile)
	if err != nil {
		t.Fatalf("Failed to decode optimized output: %v", err)
	}
	if got := decoded.Bounds().Dx(); got != 32 {
		t.Errorf("Expected output width 32, got %d", got)
	}
}

func TestCwebpArgs_ResizeOnlyDownscales(t *testing.T) {
	testDir := t.TempDir()
	inputFile := filepath.Join(testDir, "photo.png")
	writeTestPNG(t, inputFile, 64, 32)

	hasResize := func(args []string) bool {
		for _, a := range args {
			if a == "-resize" {
				return true
			}
		}
		return false
	}

	tests := []struct {
		name         string
		maxWidth     int
		expectResize bool
	}{
		{"no limit", 0, false},
		{"input wider than limit", 32, true},
		{"input narrower than limit", 1920, false},
		{"input exactly at limit", 64, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			options := DefaultOptions()
			options.MaxWidth = tt.maxWidth

			args := cwebpArgs(inputFile, "out.webp", options)
			if got := hasResize(args); got != tt.expectResize {
				t.Errorf("max-width %d: resize flag present = %v, expected %v (args %v)",
					tt.maxWidth, got, tt.expectResize, args)
			}
		})
	}
}

func TestCwebpArgs_ResizeTarget(t *testing.T) {
	testDir := t.TempDir()
	inputFile := filepath.Join(testDir, "wide.png")
	writeTestPNG(t, inputFile, 64, 32)

	options := DefaultOptions()
	options.MaxWidth = 32

	args := cwebpArgs(inputFile, "out.webp", options)
	for i := 0; i < len(args)-2; i++ {
		if args[i] == "-resize" {
			if args[i+1] != "32" || args[i+2] != "0" {
				t.Errorf("resize args = %v %v, expected 32 0 (aspect preserved)", args[i+1], args[i+2])
			}
			return
		}
	}
	t.Errorf("resize flag missing from args %v", args)
}

func TestSourceWidth(t *testing.T) {
	testDir := t.TempDir()
	inputFile := filepath.Join(testDir, "photo.png")
	writeTestPNG(t, inputFile, 48, 24)

	if got := sourceWidth(inputFile); got != 48 {
		t.Errorf("sourceWidth() = %d, expected 48", got)
	}

	// Unreadable headers report 0 so the caller skips resizing
	badFile := filepath.Join(testDir, "bad.png")
	if err := os.WriteFile(badFile, []byte("not a png"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	if got := sourceWidth(badFile); got != 0 {
		t.Errorf("sourceWidth() for garbage = %d, expected 0", got)
	}
	if got := sourceWidth(filepath.Join(testDir, "missing.png")); got != 0 {
		t.Errorf("sourceWidth() for missing file = %d, expected 0", got)
	}
}

func TestNormalizeColorModel(t *testing.T) {
	// RGB(A) images pass through untouched
	nrgba := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	if normalizeColorModel(nrgba) != image.Image(nrgba) {
		t.Error("Expected NRGBA image to pass through unchanged")
	}

	rgba := image.NewRGBA(image.Rect(0, 0, 2, 2))
	if normalizeColorModel(rgba) != image.Image(rgba) {
		t.Error("Expected RGBA image to pass through unchanged")
	}

	// Everything else is redrawn onto an NRGBA canvas
	ycbcr := image.NewYCbCr(image.Rect(0, 0, 2, 2), image.YCbCrSubsampleRatio420)
	if _, ok := normalizeColorModel(ycbcr).(*image.NRGBA); !ok {
		t.Error("Expected YCbCr image to be converted to NRGBA")
	}

	paletted := image.NewPaletted(image.Rect(0, 0, 2, 2), color.Palette{color.Black, color.White})
	if _, ok := normalizeColorModel(paletted).(*image.NRGBA); !ok {
		t.Error("Expected paletted image to be converted to NRGBA")
	}

	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	if _, ok := normalizeColorModel(gray).(*image.NRGBA); !ok {
		t.Error("Expected grayscale image to be converted to NRGBA")
	}
}
