package video

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// GetVideoInfo probes the first video stream of a file for its dimensions,
// frame rate, duration and bit rate. Probing is best-effort: any invocation
// or parse failure returns nil rather than an error, so callers degrade
// the displayed info instead of blocking the optimization flow.
func GetVideoInfo(videoFile string) *VideoInfo {
	cmd := exec.Command("ffprobe", "-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=width,height,r_frame_rate,duration,bit_rate",
		"-of", "csv=p=0", videoFile)
	output, err := cmd.Output()
	if err != nil {
		return nil
	}

	return parseVideoInfo(string(output))
}

// parseVideoInfo parses ffprobe's comma-separated positional output:
// width,height,r_frame_rate,duration,bit_rate. Fields ffprobe reports as
// "N/A" or that fail to parse stay at their zero value. Fewer than four
// fields means the stream could not be probed at all.
func parseVideoInfo(output string) *VideoInfo {
	line, _, _ := strings.Cut(strings.TrimSpace(output), "\n")
	parts := strings.Split(line, ",")
	if len(parts) < 4 {
		return nil
	}

	info := &VideoInfo{}
	if v, err := strconv.Atoi(parts[0]); err == nil {
		info.Width = v
	}
	if v, err := strconv.Atoi(parts[1]); err == nil {
		info.Height = v
	}
	// Frame rate is typically a ratio like "30000/1001"; keep the raw string
	if fps := strings.TrimSpace(parts[2]); fps != "" && fps != "N/A" {
		info.FrameRate = fps
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64); err == nil {
		info.Duration = v
	}
	if len(parts) > 4 {
		if v, err := strconv.ParseInt(strings.TrimSpace(parts[4]), 10, 64); err == nil {
			info.BitRate = v
		}
	}
	return info
}

// FrameRateValue converts the raw frame rate ratio to frames per second.
// Returns 0 when the frame rate was absent or malformed.
func (info *VideoInfo) FrameRateValue() float64 {
	if info == nil || info.FrameRate == "" {
		return 0
	}

	num, den, found := strings.Cut(info.FrameRate, "/")
	if !found {
		v, _ := strconv.ParseFloat(num, 64)
		return v
	}

	n, err1 := strconv.ParseFloat(num, 64)
	d, err2 := strconv.ParseFloat(den, 64)
	if err1 != nil || err2 != nil || d == 0 {
		return 0
	}
	return n / d
}

// Resolution returns "WxH" for the probed stream, or "?" when unknown
func (info *VideoInfo) Resolution() string {
	if info == nil || info.Width <= 0 || info.Height <= 0 {
		return "?"
	}
	return fmt.Sprintf("%dx%d", info.Width, info.Height)
}

// GetVideoCodec extracts the video codec using ffprobe
func GetVideoCodec(videoFile string) (string, error) {
	cmd := exec.Command("ffprobe", "-v", "error", "-select_streams", "v:0",
		"-show_entries", "stream=codec_name", "-of", "default=noprint_wrappers=1:nokey=1", videoFile)
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("failed to get codec: %w", err)
	}

	codec := strings.TrimSpace(string(output))
	if codec == "" {
		return "", fmt.Errorf("could not detect video codec")
	}

	return codec, nil
}
