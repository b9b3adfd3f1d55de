package cmd

import (
	"fmt"

	"github.com/lepinkainen/mediaopt/types"
	"github.com/lepinkainen/mediaopt/ui"
	"github.com/lepinkainen/mediaopt/utils"
	"github.com/lepinkainen/mediaopt/video"
)

// InfoCmd shows probed metadata for video files without modifying them
type InfoCmd struct {
	Files []string `arg:"" name:"files" help:"Video files to inspect" type:"existingfile"`
}

func (cmd *InfoCmd) Run(appCtx *types.AppContext) error {
	_, caps := contextValues(appCtx)

	if !caps.FFprobe {
		fmt.Println(ui.ErrorStyle.Render("⚠️  Media inspection requires ffprobe."))
		return fmt.Errorf("ffprobe not found in PATH. %s", utils.InstallInstructions())
	}

	for _, file := range cmd.Files {
		fmt.Printf("📹 %s\n", file)

		size, err := utils.FileSize(file)
		if err == nil {
			fmt.Printf("   Size: %s\n", utils.FormatSize(size))
		}

		info := video.GetVideoInfo(file)
		if info == nil {
			fmt.Printf("%s\n\n", ui.WarnStyle.Render("   ⚠️  No video metadata available"))
			continue
		}

		fmt.Printf("   Resolution: %s\n", info.Resolution())
		if info.FrameRate != "" {
			fmt.Printf("   Frame rate: %s (%.3g fps)\n", info.FrameRate, info.FrameRateValue())
		}
		if info.Duration > 0 {
			fmt.Printf("   Duration: %.1fs\n", info.Duration)
		}
		if info.BitRate > 0 {
			fmt.Printf("   Bit rate: %.0f kbps\n", float64(info.BitRate)/1000)
		}
		fmt.Println()
	}

	return nil
}
