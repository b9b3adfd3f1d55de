package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/lepinkainen/mediaopt/types"
	"github.com/lepinkainen/mediaopt/ui"
	"github.com/lepinkainen/mediaopt/utils"
	"github.com/lepinkainen/mediaopt/video"
)

// VideoCmd optimizes videos into WebM (VP9 video + Opus audio) and reports
// the size reduction. Supports WebM, MP4 and MOV inputs.
type VideoCmd struct {
	Files     []string `arg:"" name:"files" help:"Video files or directories to optimize" type:"path"`
	CRF       int      `help:"Constant Rate Factor (28-40, lower = higher quality)" default:"35"`
	Speed     int      `help:"Encoder speed (0-5, higher = faster encoding)" default:"4"`
	FPS       int      `help:"Limit output frame rate (0 = keep source rate)" default:"0"`
	Force     bool     `help:"Re-encode even if the source is already VP9"`
	Verify    bool     `help:"Compare perceptual hashes of input and output frames"`
	OutputDir string   `name:"output-dir" help:"Write optimized files to this directory" type:"existingdir" optional:""`
	Workers   int      `help:"Number of parallel workers (0 = auto)" default:"0"`
}

func (cmd *VideoCmd) Run(appCtx *types.AppContext) error {
	version, caps := contextValues(appCtx)

	if err := utils.ValidateVideoDependencies(caps); err != nil {
		fmt.Println(ui.ErrorStyle.Render("⚠️  Video optimization is not available on this host."))
		return err
	}

	if cmd.CRF < 28 || cmd.CRF > 40 {
		return fmt.Errorf("crf must be between 28 and 40, got %d", cmd.CRF)
	}
	if cmd.Speed < 0 || cmd.Speed > 5 {
		return fmt.Errorf("speed must be between 0 and 5, got %d", cmd.Speed)
	}

	files, err := expandPaths(cmd.Files, video.FindVideoFilesRecursively)
	if err != nil {
		return fmt.Errorf("failed to expand directories: %w", err)
	}
	if len(files) == 0 {
		fmt.Println("🎯 No videos to optimize.")
		return nil
	}

	workers := cmd.Workers
	if workers <= 0 {
		workers = utils.DefaultWorkerCount(files)
	}

	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("Media Optimizer %s", version)))
	fmt.Println(ui.ProcessingStyle.Render(fmt.Sprintf("🎥 Optimizing %d videos to VP9/Opus WebM:", len(files))))
	fpsLabel := "keep"
	if cmd.FPS > 0 {
		fpsLabel = fmt.Sprintf("%d", cmd.FPS)
	}
	fmt.Printf("⚙️  Settings: CRF=%d, Speed=%d, FPS=%s\n", cmd.CRF, cmd.Speed, fpsLabel)

	if len(files) > 1 && workers > 1 {
		return cmd.runBatch(files, workers, version)
	}
	return cmd.runSequential(files)
}

// options builds the per-file encode options; the progress callback is
// attached separately because it depends on the probed duration.
func (cmd *VideoCmd) options() *video.OptimizeOptions {
	return &video.OptimizeOptions{
		CRF:   cmd.CRF,
		Speed: cmd.Speed,
		FPS:   cmd.FPS,
		Force: cmd.Force,
	}
}

// runSequential optimizes files one by one, showing probed metadata and a
// live encode progress bar
func (cmd *VideoCmd) runSequential(files []string) error {
	stats := &optimizeStats{}

	for i, file := range files {
		fmt.Printf("\n[%d/%d] %s\n", i+1, len(files), file)

		var duration float64
		if info := video.GetVideoInfo(file); info != nil {
			duration = info.Duration
			fmt.Printf("   🎞️  %s @ %.3g fps, %.1fs\n", info.Resolution(), info.FrameRateValue(), info.Duration)
		}

		options := cmd.options()
		options.OnProgress = video.NewEncodeProgressBar("Encoding", duration)

		result := video.Optimize(file, resolveOutputPath(file, cmd.OutputDir, video.OutputName), options)
		fmt.Println()
		cmd.handleResult(result, stats)
	}

	printSummary(stats)
	return nil
}

// runBatch optimizes files with a worker pool behind the batch TUI.
// Per-second progress callbacks are skipped here; the TUI tracks whole
// files per worker instead.
func (cmd *VideoCmd) runBatch(files []string, workers int, version string) error {
	job := func(file string) ui.WorkerCompletedMsg {
		result := video.Optimize(file, resolveOutputPath(file, cmd.OutputDir, video.OutputName), cmd.options())
		return ui.WorkerCompletedMsg{
			Filename:     filepath.Base(file),
			OutputName:   filepath.Base(result.OutputPath),
			OriginalSize: result.OriginalSize,
			NewSize:      result.NewSize,
			Skipped:      result.WasSkipped,
			SkipReason:   result.SkipReason,
			Success:      result.WasOptimized,
			Error:        result.Error,
		}
	}

	originalSize, newSize, err := runBatchTUI(files, workers, version, job)
	if err != nil {
		return err
	}
	if originalSize > 0 {
		fmt.Printf("\n%s\n", ui.SavingsStyle.Render(fmt.Sprintf("💾 Saved %s (%.1f%%)",
			utils.FormatSize(originalSize-newSize),
			utils.FormatReduction(originalSize, newSize))))
	}
	return nil
}

// handleResult prints one optimization result and updates statistics
func (cmd *VideoCmd) handleResult(result *video.OptimizeResult, stats *optimizeStats) {
	if result.Error != nil {
		fmt.Printf("%s\n", ui.ErrorStyle.Render(fmt.Sprintf("❌ Optimization failed: %v", result.Error)))
		stats.ErrorCount++
		return
	}

	if result.WasSkipped {
		fmt.Printf("⏭️  Skipped: %s\n", result.SkipReason)
		stats.SkippedCount++
		return
	}

	codec := result.OriginalCodec
	if codec == "" {
		codec = "unknown"
	}
	fmt.Printf("%s\n", ui.SuccessStyle.Render(fmt.Sprintf("✅ %s → VP9 (%s)", codec, filepath.Base(result.OutputPath))))
	fmt.Printf("   📏 %s → %s", utils.FormatSize(result.OriginalSize), utils.FormatSize(result.NewSize))
	if result.NewSize < result.OriginalSize {
		fmt.Printf(" (%.1f%% smaller)\n", result.SavingsPercent)
	} else {
		fmt.Printf("\n%s\n", ui.WarnStyle.Render("   ⚠️  File size increased. Try a higher CRF or an FPS limit."))
	}

	if cmd.Verify {
		if distance, err := video.VisualSimilarity(result.OriginalPath, result.OutputPath); err == nil {
			fmt.Printf("   👁️  Perceptual distance: %d/64\n", distance)
		}
	}

	stats.ProcessedCount++
	stats.TotalOriginalSize += result.OriginalSize
	stats.TotalNewSize += result.NewSize
}
