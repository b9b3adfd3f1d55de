package cmd

import (
	"fmt"

	"github.com/lepinkainen/mediaopt/ui"
	"github.com/lepinkainen/mediaopt/utils"
)

// optimizeStats tracks aggregate results across a run
type optimizeStats struct {
	ProcessedCount    int
	SkippedCount      int
	ErrorCount        int
	TotalOriginalSize int64
	TotalNewSize      int64
}

// printSummary displays final statistics for a sequential run
func printSummary(stats *optimizeStats) {
	fmt.Printf("\n%s\n", ui.HeaderStyle.Render("📊 Optimization Summary"))
	fmt.Printf("   Optimized: %d files\n", stats.ProcessedCount)
	fmt.Printf("   Skipped: %d files\n", stats.SkippedCount)
	fmt.Printf("   Errors: %d files\n", stats.ErrorCount)

	if stats.ProcessedCount > 0 {
		saved := stats.TotalOriginalSize - stats.TotalNewSize
		fmt.Printf("   Size: %s → %s\n",
			utils.FormatSize(stats.TotalOriginalSize),
			utils.FormatSize(stats.TotalNewSize))
		if saved > 0 {
			fmt.Printf("%s\n", ui.SavingsStyle.Render(fmt.Sprintf("   💾 Saved %s (%.1f%%)",
				utils.FormatSize(saved),
				utils.FormatReduction(stats.TotalOriginalSize, stats.TotalNewSize))))
		}
	}
}
