package video

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/lepinkainen/mediaopt/utils"
)

// Optimize re-encodes a video to WebM (VP9 video + Opus audio) with size
// comparison. The encode runs synchronously to completion; all failures
// are reported through OptimizeResult.Error and never raised past this
// boundary.
func Optimize(inputPath, outputPath string, options *OptimizeOptions) *OptimizeResult {
	result := &OptimizeResult{
		OriginalPath: inputPath,
	}

	if !IsVideoFile(inputPath) {
		result.WasSkipped = true
		result.SkipReason = "not a supported video file"
		return result
	}

	originalSize, err := utils.FileSize(inputPath)
	if err != nil {
		result.Error = fmt.Errorf("failed to get original file size: %w", err)
		return result
	}
	result.OriginalSize = originalSize

	// Structural check before spending encode time; a corrupt container
	// fails here with a classified message instead of raw encoder stderr.
	if err := ValidateIntegrity(inputPath); err != nil {
		result.Error = err
		return result
	}

	// Codec lookup is best-effort reporting; a probe failure here must
	// not block the optimization flow.
	if codec, err := GetVideoCodec(inputPath); err == nil {
		result.OriginalCodec = codec
		if !options.Force && strings.EqualFold(codec, "vp9") {
			result.WasSkipped = true
			result.SkipReason = "already VP9 encoded"
			return result
		}
	}

	// Encode into a temp file scoped to this request. The .webm suffix
	// matters: ffmpeg picks the muxer from the output extension.
	tempFile := outputPath + ".tmp.webm"
	defer func() {
		_ = os.Remove(tempFile)
	}()

	if err := runTranscode(inputPath, tempFile, options); err != nil {
		result.Error = err
		return result
	}

	newSize, err := utils.FileSize(tempFile)
	if err != nil {
		result.Error = fmt.Errorf("failed to get optimized file size: %w", err)
		return result
	}
	if newSize == 0 {
		result.Error = fmt.Errorf("ffmpeg produced an empty file")
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
	return result
}

// runTranscode executes the ffmpeg command, capturing stderr. A non-zero
// exit surfaces the captured stderr text, or the exec error when stderr
// is empty.
func runTranscode(inputPath, outputPath string, options *OptimizeOptions) error {
	args := transcodeArgs(inputPath, outputPath, options)
	cmd := exec.Command("ffmpeg", args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	var err error
	if options.OnProgress != nil {
		stdout, pipeErr := cmd.StdoutPipe()
		if pipeErr != nil {
			return fmt.Errorf("failed to attach progress pipe: %w", pipeErr)
		}
		if err = cmd.Start(); err == nil {
			// The pipe must be drained to EOF before Wait, which closes it
			watchProgress(stdout, options.OnProgress)
			err = cmd.Wait()
		}
	} else {
		err = cmd.Run()
	}
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return fmt.Errorf("failed to optimize video: %s", msg)
	}
	return nil
}

// transcodeArgs assembles the ffmpeg argument list from labeled option
// groups serialized in a fixed order: global, input, filters, video codec,
// audio codec, output. The fps filter group must precede codec selection
// so the resample happens before encoding.
func transcodeArgs(inputPath, outputPath string, options *OptimizeOptions) []string {
	var global []string
	if options.OnProgress != nil {
		// Machine-readable progress on stdout; stderr stays clean for
		// error capture.
		global = []string{"-progress", "pipe:1", "-nostats"}
	}

	input := []string{"-i", inputPath}

	var filters []string
	if options.FPS > 0 {
		filters = []string{"-vf", fmt.Sprintf("fps=%d", options.FPS)}
	}

	videoCodec := []string{
		"-c:v", "libvpx-vp9",
		"-crf", strconv.Itoa(options.CRF),
		"-b:v", "0", // quality-driven variable bitrate
		"-speed", strconv.Itoa(options.Speed),
		"-row-mt", "1",
		"-tile-columns", "2",
		"-tile-rows", "1",
		"-frame-parallel", "1",
		"-threads", "0",
	}

	audioCodec := []string{"-c:a", "libopus", "-b:a", "96k"}

	output := []string{"-y", outputPath}

	var args []string
	for _, group := range [][]string{global, input, filters, videoCodec, audioCodec, output} {
		args = append(args, group...)
	}
	return args
}
