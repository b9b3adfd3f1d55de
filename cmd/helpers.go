package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lepinkainen/mediaopt/types"
	"github.com/lepinkainen/mediaopt/utils"
)

// contextValues unpacks the bound AppContext with safe fallbacks
func contextValues(appCtx *types.AppContext) (string, utils.Capabilities) {
	if appCtx == nil {
		return types.DefaultVersion, utils.Capabilities{}
	}
	return appCtx.Version, appCtx.Caps
}

// resolveOutputPath places the optimized file next to its input, or under
// outputDir when one was given
func resolveOutputPath(inputPath, outputDir string, nameFor func(string) string) string {
	out := nameFor(inputPath)
	if outputDir == "" {
		return out
	}
	return filepath.Join(outputDir, filepath.Base(out))
}

// expandPaths expands directory arguments into media files using the
// provided finder; plain files are passed through as-is
func expandPaths(paths []string, find func(string) ([]string, error)) ([]string, error) {
	var expanded []string

	for _, path := range paths {
		fi, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", path, err)
		}

		if fi.IsDir() {
			found, err := find(path)
			if err != nil {
				return nil, fmt.Errorf("failed to scan directory %s: %w", path, err)
			}
			expanded = append(expanded, found...)
		} else {
			expanded = append(expanded, path)
		}
	}

	return expanded, nil
}
