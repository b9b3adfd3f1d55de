package cmd

import (
	"fmt"

	"github.com/lepinkainen/mediaopt/types"
	"github.com/lepinkainen/mediaopt/ui"
	"github.com/lepinkainen/mediaopt/utils"
)

// CheckCmd reports which optimization backends are usable on this host.
// Informational only: missing tools are explained, not treated as errors.
type CheckCmd struct{}

func (cmd *CheckCmd) Run(appCtx *types.AppContext) error {
	version, caps := contextValues(appCtx)

	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("Media Optimizer %s — System Check", version)))

	if caps.Image != utils.ImageUnavailable {
		fmt.Printf("%s\n", ui.SuccessStyle.Render(fmt.Sprintf("✅ Image optimization: %s", caps.Image)))
	} else {
		fmt.Printf("%s\n", ui.ErrorStyle.Render("❌ Image optimization: unavailable"))
	}

	if caps.FFmpeg {
		fmt.Printf("%s\n", ui.SuccessStyle.Render("✅ Video optimization: ffmpeg"))
	} else {
		fmt.Printf("%s\n", ui.ErrorStyle.Render("❌ Video optimization: ffmpeg not found"))
	}

	if caps.FFprobe {
		fmt.Printf("%s\n", ui.SuccessStyle.Render("✅ Media inspection: ffprobe"))
	} else {
		fmt.Printf("%s\n", ui.ErrorStyle.Render("❌ Media inspection: ffprobe not found"))
	}

	if caps.Image == utils.ImageUnavailable || !caps.FFmpeg || !caps.FFprobe {
		fmt.Printf("\n%s\n", ui.InfoStyle.Render(utils.InstallInstructions()))
	}

	return nil
}
