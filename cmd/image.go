package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/lepinkainen/mediaopt/img"
	"github.com/lepinkainen/mediaopt/types"
	"github.com/lepinkainen/mediaopt/ui"
	"github.com/lepinkainen/mediaopt/utils"
)

// ImageCmd optimizes images into lossy WebP and reports the size reduction.
// Supports WebP, PNG and JPEG inputs.
type ImageCmd struct {
	Files     []string `arg:"" name:"files" help:"Image files or directories to optimize" type:"path"`
	Quality   int      `help:"WebP quality (50-100, higher = larger file)" default:"85"`
	Effort    int      `help:"Compression effort (0-6, higher = slower but smaller)" default:"6"`
	MaxWidth  int      `name:"max-width" help:"Downscale images wider than this many pixels (0 = keep size)" default:"0"`
	Verify    bool     `help:"Compare perceptual hashes of input and output"`
	OutputDir string   `name:"output-dir" help:"Write optimized files to this directory" type:"existingdir" optional:""`
	Workers   int      `help:"Number of parallel workers (0 = auto)" default:"0"`
}

func (cmd *ImageCmd) Run(appCtx *types.AppContext) error {
	version, caps := contextValues(appCtx)

	if caps.Image == utils.ImageUnavailable {
		fmt.Println(ui.ErrorStyle.Render("⚠️  WebP support is not available."))
		fmt.Println(utils.InstallInstructions())
		return fmt.Errorf("image optimization is unavailable on this host")
	}

	if cmd.Quality < 50 || cmd.Quality > 100 {
		return fmt.Errorf("quality must be between 50 and 100, got %d", cmd.Quality)
	}
	if cmd.Effort < 0 || cmd.Effort > 6 {
		return fmt.Errorf("effort must be between 0 and 6, got %d", cmd.Effort)
	}

	files, err := expandPaths(cmd.Files, img.FindImageFilesRecursively)
	if err != nil {
		return fmt.Errorf("failed to expand directories: %w", err)
	}
	if len(files) == 0 {
		fmt.Println("🎯 No images to optimize.")
		return nil
	}

	workers := cmd.Workers
	if workers <= 0 {
		workers = utils.DefaultWorkerCount(files)
	}

	options := &img.Options{
		Quality:  cmd.Quality,
		Effort:   cmd.Effort,
		MaxWidth: cmd.MaxWidth,
		Verify:   cmd.Verify,
	}

	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("Media Optimizer %s", version)))
	fmt.Println(ui.ProcessingStyle.Render(fmt.Sprintf("🖼️  Optimizing %d images (quality=%d, effort=%d, encoder: %s)",
		len(files), cmd.Quality, cmd.Effort, caps.Image)))

	if len(files) > 1 && workers > 1 {
		return cmd.runBatch(files, workers, version, options, caps.Image)
	}
	return cmd.runSequential(files, options, caps.Image)
}

// runSequential optimizes files one by one with styled per-file output
func (cmd *ImageCmd) runSequential(files []string, options *img.Options, mode utils.ImageMode) error {
	stats := &optimizeStats{}

	for i, file := range files {
		fmt.Printf("\n[%d/%d] %s\n", i+1, len(files), file)
		result := img.Optimize(file, resolveOutputPath(file, cmd.OutputDir, img.OutputName), options, mode)
		cmd.handleResult(result, stats)
	}

	printSummary(stats)
	return nil
}

// runBatch optimizes files with a worker pool behind the batch TUI
func (cmd *ImageCmd) runBatch(files []string, workers int, version string, options *img.Options, mode utils.ImageMode) error {
	job := func(file string) ui.WorkerCompletedMsg {
		result := img.Optimize(file, resolveOutputPath(file, cmd.OutputDir, img.OutputName), options, mode)
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
func (cmd *ImageCmd) handleResult(result *img.Result, stats *optimizeStats) {
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

	fmt.Printf("%s\n", ui.SuccessStyle.Render(fmt.Sprintf("✅ %s", filepath.Base(result.OutputPath))))
	fmt.Printf("   📏 %s → %s", utils.FormatSize(result.OriginalSize), utils.FormatSize(result.NewSize))
	if result.NewSize < result.OriginalSize {
		fmt.Printf(" (%.1f%% smaller)\n", result.SavingsPercent)
	} else {
		fmt.Printf("\n%s\n", ui.WarnStyle.Render("   ⚠️  File size increased. Try a lower quality setting."))
	}
	if result.Similarity >= 0 {
		fmt.Printf("   👁️  Perceptual distance: %d/64\n", result.Similarity)
	}

	stats.ProcessedCount++
	stats.TotalOriginalSize += result.OriginalSize
	stats.TotalNewSize += result.NewSize
}
