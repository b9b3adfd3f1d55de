package cmd

import (
	"path/filepath"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lepinkainen/mediaopt/ui"
)

// batchJob optimizes one file and reports the outcome. The runner fills in
// the worker ID before forwarding the message to the TUI.
type batchJob func(file string) ui.WorkerCompletedMsg

// runBatchTUI fans a file list out to a worker pool behind a bubbletea
// model. Each worker handles whole files with its own temp outputs, so no
// state is shared between concurrent encodes. Returns the aggregate
// before/after sizes of the successful encodes.
func runBatchTUI(files []string, workers int, version string, job batchJob) (originalSize, newSize int64, err error) {
	program := tea.NewProgram(ui.NewBatchModel(len(files), workers, version))

	go func() {
		jobs := make(chan string, len(files))
		var wg sync.WaitGroup

		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(workerID int) {
				defer wg.Done()
				for file := range jobs {
					program.Send(ui.WorkerStartedMsg{
						WorkerID: workerID,
						Filename: filepath.Base(file),
					})
					msg := job(file)
					msg.WorkerID = workerID
					program.Send(msg)
				}
			}(i)
		}

		for _, file := range files {
			jobs <- file
		}
		close(jobs)

		wg.Wait()
		program.Send(ui.BatchDoneMsg{})
	}()

	finalModel, err := program.Run()
	if err != nil {
		return 0, 0, err
	}
	if m, ok := finalModel.(ui.BatchModel); ok {
		originalSize, newSize = m.TotalSavings()
	}
	return originalSize, newSize, nil
}
