package video

// OptimizeOptions holds configuration for VP9/Opus WebM encoding
type OptimizeOptions struct {
	CRF   int  // Constant Rate Factor (28-40, lower = higher quality)
	Speed int  // Encoder speed/effort (0-5, higher = faster)
	FPS   int  // Resample output to this frame rate (0 = keep source rate)
	Force bool // Re-encode even if the source is already VP9

	// OnProgress, when set, receives the encoded position in seconds as
	// the encode advances. Nil disables progress reporting and keeps the
	// ffmpeg invocation byte-for-byte minimal.
	OnProgress func(seconds float64)
}

// DefaultOptimizeOptions returns sensible defaults for quality-driven
// VP9 encoding
func DefaultOptimizeOptions() *OptimizeOptions {
	return &OptimizeOptions{
		CRF:   35, // Good compression for screen/web content
		Speed: 4,  // Fast encoding with minor efficiency loss
	}
}

// OptimizeResult holds the results of a single video optimization
type OptimizeResult struct {
	OriginalPath   string
	OriginalCodec  string
	OriginalSize   int64
	OutputPath     string
	NewSize        int64
	SizeSavings    int64
	SavingsPercent float64
	WasOptimized   bool
	WasSkipped     bool
	SkipReason     string
	Error          error
}

// VideoInfo holds best-effort metadata for the first video stream.
// Zero-valued fields were absent from the probe output, not guessed.
type VideoInfo struct {
	Width     int
	Height    int
	FrameRate string  // raw ratio string, e.g. "30000/1001"
	Duration  float64 // seconds
	BitRate   int64   // bits per second
}
