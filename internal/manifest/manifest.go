// Package manifest reads Cargo.toml files and turns them into check items.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the manifest file looked up in a package directory.
const FileName = "Cargo.toml"

// Manifest is a decoded and completed Cargo.toml.
type Manifest struct {
	Path      string // the Cargo.toml file
	Dir       string // directory containing Path
	Package   *Package
	Lib       *Product
	Bins      []Product
	Workspace *Workspace
}

type rawManifest struct {
	Package   *Package   `toml:"package"`
	Lib       *Product   `toml:"lib"`
	Bin       []Product  `toml:"bin"`
	Workspace *Workspace `toml:"workspace"`
}

type Package struct {
	Name        string `toml:"name"`
	Description any    `toml:"description"` // string or {workspace = true}
	Readme      any    `toml:"readme"`      // string or bool
	Autobins    *bool  `toml:"autobins"`
}

// Product is a [lib] or [[bin]] target.
type Product struct {
	Name    string `toml:"name"`
	Path    string `toml:"path"`
	Doctest *bool  `toml:"doctest"`
}

type Workspace struct {
	Members []string `toml:"members"`
	Exclude []string `toml:"exclude"`
}

// CheckEligible reports whether the product takes part in checking; like
// doctests it is on unless disabled.
func (p Product) CheckEligible() bool {
	return p.Doctest == nil || *p.Doctest
}

// IsVirtual reports whether the manifest only declares a workspace.
func (m *Manifest) IsVirtual() bool {
	return m.Package == nil && m.Workspace != nil
}

// DescriptionText returns the literal package description, or "".
func (m *Manifest) DescriptionText() string {
	if m.Package == nil {
		return ""
	}
	s, _ := m.Package.Description.(string)
	return strings.TrimSpace(s)
}

// ReadmePath returns the readme file named by the package relative to the
// manifest directory; readme = true means README.md.
func (m *Manifest) ReadmePath() (string, bool) {
	if m.Package == nil {
		return "", false
	}
	switch v := m.Package.Readme.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return "", false
		}
		return filepath.Join(m.Dir, filepath.FromSlash(v)), true
	case bool:
		if v {
			return filepath.Join(m.Dir, "README.md"), true
		}
	}
	return "", false
}

// Load decodes dir/Cargo.toml and applies the implicit target defaults.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, FileName)
	var raw rawManifest
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") && !meta.IsDefined("workspace") {
		return nil, fmt.Errorf("%s: missing [package]", path)
	}
	if raw.Package != nil && strings.TrimSpace(raw.Package.Name) == "" {
		return nil, fmt.Errorf("%s: missing [package].name", path)
	}

	m := &Manifest{
		Path:      path,
		Dir:       filepath.Dir(path),
		Package:   raw.Package,
		Lib:       raw.Lib,
		Bins:      raw.Bin,
		Workspace: raw.Workspace,
	}
	if err := m.Complete(); err != nil {
		return nil, fmt.Errorf("%s: failed to complete manifest: %w", path, err)
	}
	return m, nil
}

// Complete fills in target names and paths the way cargo infers them:
// src/lib.rs for the library, src/main.rs for the package-named binary,
// src/bin/<name>.rs for other binaries, plus auto-discovered binaries.
func (m *Manifest) Complete() error {
	if m.Package == nil {
		if m.Lib != nil || len(m.Bins) != 0 {
			return errors.New("targets declared without [package]")
		}
		return nil
	}
	pkg := m.Package.Name

	switch {
	case m.Lib != nil:
		if m.Lib.Name == "" {
			m.Lib.Name = strings.ReplaceAll(pkg, "-", "_")
		}
		if m.Lib.Path == "" {
			m.Lib.Path = "src/lib.rs"
		}
	case m.exists("src/lib.rs"):
		m.Lib = &Product{Name: strings.ReplaceAll(pkg, "-", "_"), Path: "src/lib.rs"}
	}

	declared := make(map[string]bool, len(m.Bins))
	for i := range m.Bins {
		bin := &m.Bins[i]
		if strings.TrimSpace(bin.Name) == "" {
			return fmt.Errorf("binary target #%d: name is required", i+1)
		}
		if bin.Path == "" {
			bin.Path = m.inferBinPath(bin.Name, pkg)
		}
		declared[bin.Name] = true
		declared[filepath.ToSlash(filepath.Clean(bin.Path))] = true
	}

	if m.Package.Autobins != nil && !*m.Package.Autobins {
		return nil
	}
	if m.exists("src/main.rs") && !declared[pkg] && !declared["src/main.rs"] {
		m.Bins = append(m.Bins, Product{Name: pkg, Path: "src/main.rs"})
	}
	for _, bin := range m.discoverBins() {
		if declared[bin.Name] || declared[bin.Path] {
			continue
		}
		m.Bins = append(m.Bins, bin)
	}
	return nil
}

func (m *Manifest) inferBinPath(name, pkg string) string {
	for _, candidate := range []string{"src/bin/" + name + ".rs", "src/bin/" + name + "/main.rs"} {
		if m.exists(candidate) {
			return candidate
		}
	}
	if name == pkg {
		return "src/main.rs"
	}
	return "src/bin/" + name + ".rs"
}

// discoverBins lists src/bin/*.rs and src/bin/*/main.rs sorted by name.
func (m *Manifest) discoverBins() []Product {
	entries, err := os.ReadDir(filepath.Join(m.Dir, "src", "bin"))
	if err != nil {
		return nil
	}
	var bins []Product
	for _, e := range entries {
		name := e.Name()
		switch {
		case e.IsDir() && m.exists("src/bin/"+name+"/main.rs"):
			bins = append(bins, Product{Name: name, Path: "src/bin/" + name + "/main.rs"})
		case e.Type().IsRegular() && filepath.Ext(name) == ".rs":
			bins = append(bins, Product{Name: strings.TrimSuffix(name, ".rs"), Path: "src/bin/" + name})
		}
	}
	sort.SliceStable(bins, func(i, j int) bool { return bins[i].Name < bins[j].Name })
	return bins
}

func (m *Manifest) exists(rel string) bool {
	info, err := os.Stat(filepath.Join(m.Dir, filepath.FromSlash(rel)))
	return err == nil && info.Mode().IsRegular()
}
