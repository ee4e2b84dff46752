package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"docspell/internal/manifest"
	"docspell/internal/traverse"
)

// defaultManifest is checked when no paths are given.
const defaultManifest = "./" + manifest.FileName

// classifyArgs turns command line paths into check items. Without paths the
// manifest in the working directory is used and forced reports that the
// module tree must be followed. Paths that do not exist are skipped with a
// warning; manifests that cannot be read are fatal. Returned paths are
// absolute.
func classifyArgs(logger *log.Logger, args []string) (items []traverse.CheckItem, forced bool, err error) {
	if len(args) == 0 {
		args = []string{defaultManifest}
		forced = true
	}
	for _, raw := range args {
		info, statErr := os.Stat(raw)
		if statErr != nil {
			logger.Warn("path does not exist", "path", raw)
			continue
		}
		arg, err := traverse.SourcePath(raw)
		if err != nil {
			return nil, forced, err
		}
		switch {
		case info.IsDir():
			if _, err := os.Stat(filepath.Join(arg, manifest.FileName)); err != nil {
				logger.Warn("directory has no manifest, path does not exist", "path", arg)
				continue
			}
			products, err := manifest.ExtractProducts(arg, logger)
			if err != nil {
				return nil, forced, err
			}
			items = append(items, products...)
		case filepath.Base(arg) == manifest.FileName:
			products, err := manifest.ExtractProducts(filepath.Dir(arg), logger)
			if err != nil {
				return nil, forced, err
			}
			items = append(items, products...)
		case strings.EqualFold(filepath.Ext(arg), ".md"):
			items = append(items, traverse.Markdown(arg))
		default:
			items = append(items, traverse.Source(arg))
		}
	}
	return items, forced, nil
}
