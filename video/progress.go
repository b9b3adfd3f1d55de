package video

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/schollz/progressbar/v3"
)

// watchProgress reads an ffmpeg -progress key=value stream and reports the
// encoded position in seconds through fn. The stream repeats blocks of
// keys; out_time_ms carries the position in microseconds despite its name.
func watchProgress(r io.Reader, fn func(seconds float64)) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		value, found := strings.CutPrefix(line, "out_time_ms=")
		if !found {
			continue
		}
		if us, err := strconv.ParseInt(value, 10, 64); err == nil && us >= 0 {
			fn(float64(us) / 1e6)
		}
	}
}

// NewEncodeProgressBar returns an OnProgress callback rendering the encode
// position against the probed source duration. When the duration is
// unknown the bar degrades to a spinner that still shows activity.
func NewEncodeProgressBar(description string, durationSeconds float64) func(seconds float64) {
	if durationSeconds <= 0 {
		spinner := progressbar.NewOptions(-1,
			progressbar.OptionSetDescription(description),
			progressbar.OptionSpinnerType(14),
		)
		return func(float64) {
			_ = spinner.Add(1)
		}
	}

	// Tenth-of-a-second resolution keeps short clips from jumping 0->100
	bar := progressbar.NewOptions(int(durationSeconds*10),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionClearOnFinish(),
	)
	return func(seconds float64) {
		position := int(seconds * 10)
		if position > bar.GetMax() {
			position = bar.GetMax()
		}
		_ = bar.Set(position)
	}
}
