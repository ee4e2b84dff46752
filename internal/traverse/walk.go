package traverse

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// maxWalkDepth bounds the shallow walk; entries deeper than this below the
// root are not visited.
const maxWalkDepth = 45

var skippedDirs = map[string]bool{
	"target":       true,
	"node_modules": true,
}

// collectRustFiles lists *.rs files under root in lexical order. Entries that
// cannot be read are skipped.
func collectRustFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if path == root {
				return nil
			}
			name := d.Name()
			if strings.HasPrefix(name, ".") || skippedDirs[name] {
				return filepath.SkipDir
			}
			if walkDepth(root, path) >= maxWalkDepth {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() && filepath.Ext(path) == rustExt {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

func walkDepth(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}
