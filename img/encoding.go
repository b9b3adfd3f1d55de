package img

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"
	"github.com/nfnt/resize"
	_ "golang.org/x/image/webp"

	"github.com/lepinkainen/mediaopt/utils"
)

// Optimize re-encodes an image as lossy WebP using the encode path selected
// at startup: the native cwebp binary when available, otherwise an
// in-process libwebp encode. All failures are reported through
// Result.Error; this function never panics past its boundary.
func Optimize(inputPath, outputPath string, options *Options, mode utils.ImageMode) *Result {
	result := &Result{
		OriginalPath: inputPath,
		Similarity:   -1,
	}

	if !IsImageFile(inputPath) {
		result.WasSkipped = true
		result.SkipReason = "not a supported image file"
		return result
	}

	if mode == utils.ImageUnavailable {
		result.Error = fmt.Errorf("WebP support is not available. %s", utils.InstallInstructions())
		return result
	}

	originalSize, err := utils.FileSize(inputPath)
	if err != nil {
		result.Error = fmt.Errorf("failed to get original file size: %w", err)
		return result
	}
	result.OriginalSize = originalSize

	// Encode into a temp file scoped to this request, rename only on
	// success so a failed encode never leaves a partial output behind.
	tempFile := outputPath + ".tmp"
	defer func() {
		_ = os.Remove(tempFile)
	}()

	switch mode {
	case utils.ImageNative:
		err = encodeWithCwebp(inputPath, tempFile, options)
	case utils.ImageLibrary:
		err = encodeWithLibrary(inputPath, tempFile, options)
	}
	if err != nil {
		result.Error = err
		return result
	}

	newSize, err := utils.FileSize(tempFile)
	if err != nil {
		result.Error = fmt.Errorf("failed to get optimized file size: %w", err)
		return result
	}
	if newSize == 0 {
		result.Error = fmt.Errorf("encoder produced an empty file")
		return result
	}

	if err := os.Rename(tempFile, outputPath); err != nil {
		result.Error = fmt.Errorf("failed to move optimized file into place: %w", err)
		return result
	}

	result.OutputPath = outputPath
	result.NewSize = newSize
	result.SizeSavings = originalSize - newSize
	result.SavingsPercent = utils.FormatReduction(originalSize, newSize)
	result.WasOptimized = true

	if options.Verify {
		distance, err := VisualSimilarity(inputPath, outputPath)
		if err == nil {
			result.Similarity = distance
		}
	}

	return result
}

// encodeWithCwebp shells out to the cwebp binary. The effort value passes
// through unclamped since cwebp supports the full graduated 0-6 range.
func encodeWithCwebp(inputPath, outputPath string, options *Options) error {
	cmd := exec.Command("cwebp", cwebpArgs(inputPath, outputPath, options)...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(output))
		if msg == "" {
			msg = err.Error()
		}
		return fmt.Errorf("cwebp failed: %s", msg)
	}
	return nil
}

// cwebpArgs builds the cwebp invocation. MaxWidth only ever downscales:
// cwebp's -resize scales in both directions, so the flag is added only
// when the source is actually wider than the limit.
func cwebpArgs(inputPath, outputPath string, options *Options) []string {
	args := []string{
		"-q", strconv.Itoa(options.Quality),
		"-m", strconv.Itoa(options.Effort),
	}
	if options.MaxWidth > 0 && sourceWidth(inputPath) > options.MaxWidth {
		args = append(args, "-resize", strconv.Itoa(options.MaxWidth), "0")
	}
	return append(args, inputPath, "-o", outputPath)
}

// sourceWidth reads the pixel width from the image header without decoding
// the full image. Returns 0 when the header cannot be read; the encoder
// then runs without resizing and surfaces any real decode error itself.
func sourceWidth(path string) int {
	f, err := os.Open(path)
	if err != nil {
		return 0
	}
	defer func() { _ = f.Close() }()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0
	}
	return cfg.Width
}

// encodeWithLibrary decodes the input and encodes it through libwebp
// in-process. Supports WebP, PNG and JPEG inputs. The preset controls the
// internal effort here; only the native path honors the graduated value.
func encodeWithLibrary(inputPath, outputPath string, options *Options) error {
	src, err := decodeImage(inputPath)
	if err != nil {
		return err
	}

	src = normalizeColorModel(src)

	if options.MaxWidth > 0 && src.Bounds().Dx() > options.MaxWidth {
		src = resize.Resize(uint(options.MaxWidth), 0, src, resize.Lanczos3)
	}

	encOpts, err := encoder.NewLossyEncoderOptions(encoder.PresetDefault, float32(options.Quality))
	if err != nil {
		return fmt.Errorf("failed to build encoder options: %w", err)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = out.Close() }()

	if err := webp.Encode(out, src, encOpts); err != nil {
		return fmt.Errorf("failed to encode WebP: %w", err)
	}
	return nil
}

// decodeImage opens and decodes an image file using the registered
// decoders (WebP, PNG, JPEG)
func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer func() { _ = f.Close() }()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return src, nil
}

// normalizeColorModel keeps RGB(A) images untouched so alpha channels
// survive the round trip, and redraws everything else (paletted, YCbCr,
// CMYK, grayscale) onto an NRGBA canvas the encoder accepts. Grayscale
// conversion is lossless; paletted and CMYK conversion is not.
func normalizeColorModel(src image.Image) image.Image {
	switch src.(type) {
	case *image.NRGBA, *image.RGBA:
		return src
	}

	bounds := src.Bounds()
	dst := image.NewNRGBA(bounds)
	draw.Draw(dst, bounds, src, bounds.Min, draw.Src)
	return dst
}
