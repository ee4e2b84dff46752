package manifest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/charmbracelet/log"

	"docspell/internal/traverse"
)

// ExtractProducts returns the check items of the package in dir: one Source
// per check-eligible target (library first, then binaries), the readme as
// Markdown and the description. Targets and readmes whose files are missing
// are dropped with a warning. Workspace members are extracted recursively.
func ExtractProducts(dir string, logger *log.Logger) ([]traverse.CheckItem, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return extract(dir, logger, map[string]bool{})
}

func extract(dir string, logger *log.Logger, seen map[string]bool) ([]traverse.CheckItem, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %q: %w", dir, err)
	}
	if seen[abs] {
		return nil, nil
	}
	seen[abs] = true

	m, err := Load(abs)
	if err != nil {
		return nil, err
	}

	var items []traverse.CheckItem
	if m.Package != nil {
		products := m.Bins
		if m.Lib != nil {
			products = append([]Product{*m.Lib}, m.Bins...)
		}
		for _, p := range products {
			if !p.CheckEligible() {
				continue
			}
			path := filepath.Join(m.Dir, filepath.FromSlash(p.Path))
			if !isFile(path) {
				logger.Warn("target source file does not exist", "manifest", m.Path, "target", p.Name, "path", path)
				continue
			}
			items = append(items, traverse.Source(path))
		}

		if readme, ok := m.ReadmePath(); ok {
			if isFile(readme) {
				items = append(items, traverse.Markdown(readme))
			} else {
				logger.Warn("readme defined in manifest is not a file", "manifest", m.Path, "readme", readme)
			}
		}
		if desc := m.DescriptionText(); desc != "" {
			items = append(items, traverse.ManifestDescription(desc))
		}
	}

	members, err := m.memberDirs()
	if err != nil {
		return nil, err
	}
	if m.IsVirtual() && len(members) == 0 {
		logger.Warn("workspace has no member packages", "manifest", m.Path)
	}
	for _, member := range members {
		sub, err := extract(member, logger, seen)
		if err != nil {
			return nil, err
		}
		items = append(items, sub...)
	}
	return items, nil
}

// memberDirs expands workspace member globs into directories holding a
// Cargo.toml, minus the excluded ones.
func (m *Manifest) memberDirs() ([]string, error) {
	if m.Workspace == nil {
		return nil, nil
	}
	excluded := make([]string, 0, len(m.Workspace.Exclude))
	for _, ex := range m.Workspace.Exclude {
		excluded = append(excluded, filepath.Join(m.Dir, filepath.FromSlash(ex)))
	}

	var dirs []string
	for _, pattern := range m.Workspace.Members {
		matches, err := filepath.Glob(filepath.Join(m.Dir, filepath.FromSlash(pattern)))
		if err != nil {
			return nil, fmt.Errorf("%s: bad workspace member %q: %w", m.Path, pattern, err)
		}
		for _, dir := range matches {
			if slices.Contains(excluded, dir) || slices.Contains(dirs, dir) {
				continue
			}
			if isFile(filepath.Join(dir, FileName)) {
				dirs = append(dirs, dir)
			}
		}
	}
	return dirs, nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
