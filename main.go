package main

import (
	"github.com/alecthomas/kong"

	"github.com/lepinkainen/mediaopt/cmd"
	"github.com/lepinkainen/mediaopt/types"
	"github.com/lepinkainen/mediaopt/utils"
)

var Version = "dev"

type CLI struct {
	Image cmd.ImageCmd `cmd:"" help:"Optimize images to lossy WebP"`
	Video cmd.VideoCmd `cmd:"" help:"Optimize videos to VP9/Opus WebM"`
	Info  cmd.InfoCmd  `cmd:"" help:"Show probed metadata for video files"`
	Check cmd.CheckCmd `cmd:"" help:"Report available optimization backends"`
}

func main() {
	var cli CLI

	// Capabilities are probed exactly once per run and handed to the
	// commands; adapters never re-probe the host.
	appCtx := &types.AppContext{
		Version: Version,
		Caps:    utils.DetectCapabilities(),
	}

	ctx := kong.Parse(&cli,
		kong.Name("mediaopt"),
		kong.Description("Optimize images and videos for smaller file sizes without losing quality."),
		kong.Bind(appCtx),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
