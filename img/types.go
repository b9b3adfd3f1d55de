package img

// Options holds configuration for WebP image optimization
type Options struct {
	Quality  int  // WebP quality (50-100, higher = larger file)
	Effort   int  // Compression effort (0-6, higher = slower but smaller)
	MaxWidth int  // Downscale to this width if wider (0 = keep size)
	Verify   bool // Compare perceptual hashes of input and output
}

// DefaultOptions returns sensible defaults for lossy WebP encoding
func DefaultOptions() *Options {
	return &Options{
		Quality: 85, // Good quality/size balance
		Effort:  6,  // Best compression
	}
}

// Result holds the results of a single image optimization
type Result struct {
	OriginalPath   string
	OriginalSize   int64
	OutputPath     string
	NewSize        int64
	SizeSavings    int64
	SavingsPercent float64
	Similarity     int // Perceptual hash distance (0 = identical), -1 when not verified
	WasOptimized   bool
	WasSkipped     bool
	SkipReason     string
	Error          error
}
