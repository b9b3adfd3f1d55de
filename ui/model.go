package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lepinkainen/mediaopt/utils"
)

// FileLogEntry is one row in the processed files list
type FileLogEntry struct {
	OriginalName string
	OutputName   string
	OriginalSize int64
	NewSize      int64
	SkipReason   string
	Error        string
}

func (f FileLogEntry) FilterValue() string { return f.OriginalName }
func (f FileLogEntry) Title() string       { return f.OriginalName }
func (f FileLogEntry) Description() string {
	if f.Error != "" {
		return fmt.Sprintf("❌ %s", f.Error)
	}
	if f.SkipReason != "" {
		return fmt.Sprintf("⏭️  %s", f.SkipReason)
	}
	if f.OutputName != "" {
		return fmt.Sprintf("✓ %s → %s (%.1f%% smaller)",
			utils.FormatSize(f.OriginalSize),
			utils.FormatSize(f.NewSize),
			utils.FormatReduction(f.OriginalSize, f.NewSize))
	}
	return "🔄 Optimizing..."
}

// WorkerState tracks one optimization worker
type WorkerState struct {
	ID          int
	CurrentFile string
	Progress    float64
	Status      string // "idle", "optimizing", "completed"
}

// BatchModel is the TUI model for multi-file optimization runs
type BatchModel struct {
	// Batch state
	totalFiles     int
	processedFiles int
	workers        []*WorkerState
	fileEntries    []FileLogEntry

	// Aggregate size accounting
	totalOriginalSize int64
	totalNewSize      int64

	// UI components
	overallProgress progress.Model
	workerProgress  []progress.Model
	fileList        list.Model

	// Layout
	width  int
	height int

	quitting bool
	done     bool

	// Version for display
	Version string
}

// NewBatchModel creates a TUI model for a batch of numFiles files
// processed by numWorkers workers
func NewBatchModel(numFiles, numWorkers int, version string) BatchModel {
	overallProg := progress.New(progress.WithDefaultGradient())
	workerProgs := make([]progress.Model, numWorkers)
	for i := range workerProgs {
		workerProgs[i] = progress.New(progress.WithDefaultGradient())
	}

	workers := make([]*WorkerState, numWorkers)
	for i := range workers {
		workers[i] = &WorkerState{
			ID:     i,
			Status: "idle",
		}
	}

	fileList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	fileList.Title = "Optimized Files"

	return BatchModel{
		totalFiles:      numFiles,
		workers:         workers,
		overallProgress: overallProg,
		workerProgress:  workerProgs,
		fileList:        fileList,
		Version:         version,
	}
}

// Init implements tea.Model
func (m BatchModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m BatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.fileList.SetSize(msg.Width-4, msg.Height/2)

	case WorkerStartedMsg:
		if w := m.worker(msg.WorkerID); w != nil {
			w.CurrentFile = msg.Filename
			w.Status = "optimizing"
			w.Progress = 0
		}

	case WorkerProgressMsg:
		if w := m.worker(msg.WorkerID); w != nil {
			w.Progress = msg.Progress
		}

	case WorkerCompletedMsg:
		if w := m.worker(msg.WorkerID); w != nil {
			w.Status = "idle"
			w.CurrentFile = ""
			w.Progress = 0
		}
		m.processedFiles++

		entry := FileLogEntry{
			OriginalName: msg.Filename,
			OutputName:   msg.OutputName,
			OriginalSize: msg.OriginalSize,
			NewSize:      msg.NewSize,
		}
		switch {
		case msg.Skipped:
			entry.SkipReason = msg.SkipReason
		case !msg.Success:
			if msg.Error != nil {
				entry.Error = msg.Error.Error()
			} else {
				entry.Error = "optimization failed"
			}
		default:
			m.totalOriginalSize += msg.OriginalSize
			m.totalNewSize += msg.NewSize
		}

		m.fileEntries = append(m.fileEntries, entry)
		items := make([]list.Item, len(m.fileEntries))
		for i, e := range m.fileEntries {
			items[i] = e
		}
		m.fileList.SetItems(items)

	case OverallProgressMsg:
		m.processedFiles = msg.Completed

	case BatchDoneMsg:
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model
func (m BatchModel) View() string {
	if m.quitting {
		return "Shutting down...\n"
	}

	header := HeaderStyle.Render(fmt.Sprintf("Media Optimizer %s", m.Version))

	overallPercent := 0.0
	if m.totalFiles > 0 {
		overallPercent = float64(m.processedFiles) / float64(m.totalFiles)
	}
	overallView := fmt.Sprintf("Overall Progress: %s (%d/%d)",
		m.overallProgress.ViewAs(overallPercent),
		m.processedFiles,
		m.totalFiles)

	workerViews := []string{"Worker Status:"}
	for i, worker := range m.workers {
		status := fmt.Sprintf("Worker %d: ", i+1)
		if worker.Status == "optimizing" {
			progBar := m.workerProgress[i].ViewAs(worker.Progress)
			status += fmt.Sprintf("%s %s", progBar, worker.CurrentFile)
		} else {
			status += worker.Status
		}
		workerViews = append(workerViews, status)
	}

	savings := ""
	if m.totalOriginalSize > 0 {
		savings = SavingsStyle.Render(fmt.Sprintf("Saved so far: %s (%.1f%%)",
			utils.FormatSize(m.totalOriginalSize-m.totalNewSize),
			utils.FormatReduction(m.totalOriginalSize, m.totalNewSize)))
	}

	sections := []string{
		header,
		overallView,
		strings.Join(workerViews, "\n"),
		m.fileList.View(),
	}
	if savings != "" {
		sections = append(sections, savings)
	}
	sections = append(sections, "Controls: [q] Quit")

	return strings.Join(sections, "\n\n")
}

// TotalSavings reports the aggregate before/after sizes of successful encodes
func (m BatchModel) TotalSavings() (originalSize, newSize int64) {
	return m.totalOriginalSize, m.totalNewSize
}

func (m BatchModel) worker(id int) *WorkerState {
	if id < 0 || id >= len(m.workers) {
		return nil
	}
	return m.workers[id]
}
