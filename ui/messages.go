package ui

// TUI message types for worker communication

type WorkerStartedMsg struct {
	WorkerID int
	Filename string
}

type WorkerProgressMsg struct {
	WorkerID int
	Progress float64 // 0.0 to 1.0
}

type WorkerCompletedMsg struct {
	WorkerID     int
	Filename     string
	OutputName   string
	OriginalSize int64
	NewSize      int64
	Skipped      bool
	SkipReason   string
	Success      bool
	Error        error
}

type OverallProgressMsg struct {
	Completed int
	Total     int
}

// BatchDoneMsg signals that every file in the batch has been handled
type BatchDoneMsg struct{}
