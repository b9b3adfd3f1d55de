package utils

import (
	"bytes"
	"fmt"
	"image"
	"os/exec"
	"runtime"

	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"
)

// ImageMode identifies which WebP encode path is usable on this host.
type ImageMode int

const (
	ImageUnavailable ImageMode = iota
	ImageNative               // cwebp binary found on PATH
	ImageLibrary              // in-process libwebp encode
)

func (m ImageMode) String() string {
	switch m {
	case ImageNative:
		return "cwebp (command line)"
	case ImageLibrary:
		return "libwebp (library)"
	default:
		return "unavailable"
	}
}

// Capabilities reports which external encoders and probers are usable.
// Detected once at startup and passed to commands, never re-probed.
type Capabilities struct {
	Image   ImageMode
	FFmpeg  bool
	FFprobe bool
}

// DetectCapabilities probes the host for every external dependency.
// Probing never fails; missing tools are reported as flags so commands
// can disable the matching feature and explain why.
func DetectCapabilities() Capabilities {
	return Capabilities{
		Image:   ProbeImageCapability(),
		FFmpeg:  ProbeVideoCapability(),
		FFprobe: probeTool("ffprobe"),
	}
}

// ProbeImageCapability checks for the native cwebp encoder first and falls
// back to a trial in-process encode of a 1x1 image into a discarded buffer.
func ProbeImageCapability() ImageMode {
	if probeTool("cwebp") {
		return ImageNative
	}

	opts, err := encoder.NewLossyEncoderOptions(encoder.PresetDefault, 85)
	if err != nil {
		return ImageUnavailable
	}
	probe := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	if err := webp.Encode(&bytes.Buffer{}, probe, opts); err != nil {
		return ImageUnavailable
	}
	return ImageLibrary
}

// ProbeVideoCapability checks if ffmpeg is installed. There is no library
// fallback for video, so availability is strictly a boolean.
func ProbeVideoCapability() bool {
	return probeTool("ffmpeg")
}

// probeTool runs the tool's -version command and reports whether it succeeded
func probeTool(name string) bool {
	return exec.Command(name, "-version").Run() == nil
}

// ValidateVideoDependencies checks that ffmpeg and ffprobe are available in PATH
func ValidateVideoDependencies(caps Capabilities) error {
	if !caps.FFprobe {
		return fmt.Errorf("ffprobe not found in PATH. %s", InstallInstructions())
	}
	if !caps.FFmpeg {
		return fmt.Errorf("ffmpeg not found in PATH. %s", InstallInstructions())
	}
	return nil
}

// InstallInstructions returns platform-specific ffmpeg installation instructions
func InstallInstructions() string {
	switch runtime.GOOS {
	case "darwin":
		return "Install with: brew install ffmpeg webp"
	case "linux":
		return "Install with: apt-get install ffmpeg webp (Ubuntu/Debian) or yum install ffmpeg libwebp-tools (CentOS/RHEL)"
	case "windows":
		return "Download from https://ffmpeg.org/download.html and https://developers.google.com/speed/webp/download and add to PATH"
	default:
		return "Download from https://ffmpeg.org/download.html"
	}
}
