package traverse

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"docspell/internal/lexer"
	"docspell/internal/source"
	"docspell/internal/token"
	"docspell/internal/ui"
)

// descriptionFileName names the virtual file holding a manifest description.
const descriptionFileName = "<manifest description>"

// Unit is a loaded check item: the file it maps to and, for Source items,
// its tokens.
type Unit struct {
	Item   CheckItem
	File   *source.File
	Tokens []token.Token
}

// Edge records that From declared the module file To.
type Edge struct {
	From string
	To   string
}

type Result struct {
	Units []Unit // visit order
	Edges []Edge // declaration order, recursive mode only
}

type Options struct {
	// Recursive follows `mod` declarations; otherwise each source item's
	// directory is walked.
	Recursive bool
	Logger    *log.Logger
	Sink      ui.Sink
}

type walker struct {
	fset   *source.FileSet
	opts   Options
	logger *log.Logger
	res    *Result
}

// Run expands items into units. In recursive mode any read, tokenize or
// module resolution error aborts the run and no partial result is returned.
// In shallow mode unreadable files are skipped.
func Run(ctx context.Context, fset *source.FileSet, items []CheckItem, opts Options) (*Result, error) {
	w := &walker{
		fset:   fset,
		opts:   opts,
		logger: orDiscard(opts.Logger),
		res:    &Result{},
	}
	normalized := make([]CheckItem, 0, len(items))
	for _, item := range items {
		if item.Path != "" {
			abs, err := SourcePath(item.Path)
			if err != nil {
				return nil, err
			}
			item.Path = abs
		}
		normalized = append(normalized, item)
	}

	var err error
	if opts.Recursive {
		err = w.recursive(ctx, normalized)
	} else {
		err = w.shallow(ctx, normalized)
	}
	if err != nil {
		return nil, err
	}
	return w.res, nil
}

// SourcePath returns the absolute cleaned form of p, the identity of a file
// within a run.
func SourcePath(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", p, err)
	}
	return abs, nil
}

func (w *walker) recursive(ctx context.Context, items []CheckItem) error {
	visited := NewVisitedSet(len(items))
	queue := append(make([]CheckItem, 0, len(items)), items...)
	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		item := queue[0]
		queue = queue[1:]

		if !visited.Insert(item) {
			w.logger.Debug("already visited", "item", item)
			continue
		}
		if item.Kind != ItemSource {
			unit, err := w.loadOther(item)
			if err != nil {
				return err
			}
			w.res.Units = append(w.res.Units, unit)
			continue
		}

		unit, err := w.loadSource(item.Path)
		if err != nil {
			return err
		}
		children, err := w.expandModules(unit)
		if err != nil {
			return err
		}
		w.res.Units = append(w.res.Units, unit)
		for _, child := range children {
			w.res.Edges = append(w.res.Edges, Edge{From: item.Path, To: child})
			ui.Emit(w.opts.Sink, ui.Event{File: child, Stage: ui.StageDiscover, Status: ui.StatusQueued})
			queue = append(queue, Source(child))
		}
	}
	return nil
}

func (w *walker) shallow(ctx context.Context, items []CheckItem) error {
	visited := NewVisitedSet(len(items))
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return err
		}
		if item.Kind != ItemSource {
			if !visited.Insert(item) {
				continue
			}
			unit, err := w.loadOther(item)
			if err != nil {
				w.logger.Warn("skipping unreadable input", "item", item, "err", err)
				continue
			}
			w.res.Units = append(w.res.Units, unit)
			continue
		}

		paths, err := collectRustFiles(filepath.Dir(item.Path))
		if err != nil {
			w.logger.Debug("walk failed", "dir", filepath.Dir(item.Path), "err", err)
			continue
		}
		for _, path := range paths {
			if err := ctx.Err(); err != nil {
				return err
			}
			if !visited.Insert(Source(path)) {
				continue
			}
			unit, err := w.loadSource(path)
			if err != nil {
				w.logger.Debug("skipping file", "file", path, "err", err)
				continue
			}
			w.res.Units = append(w.res.Units, unit)
		}
	}
	return nil
}

// expandModules resolves the module files declared by a source unit.
func (w *walker) expandModules(u Unit) ([]string, error) {
	if u.Item.Kind != ItemSource {
		return nil, fmt.Errorf("%v: %w", u.Item, ErrNotExpandable)
	}
	started := time.Now()
	ui.Emit(w.opts.Sink, ui.Event{File: u.Item.Path, Stage: ui.StageDiscover, Status: ui.StatusWorking})
	children, err := ExtractModules(w.logger, u.Item.Path, u.Tokens)
	if err != nil {
		ui.Emit(w.opts.Sink, ui.Event{File: u.Item.Path, Stage: ui.StageDiscover, Status: ui.StatusError, Err: err})
		return nil, err
	}
	ui.Emit(w.opts.Sink, ui.Event{File: u.Item.Path, Stage: ui.StageDiscover, Status: ui.StatusDone, Elapsed: time.Since(started)})
	return children, nil
}

func (w *walker) loadSource(path string) (Unit, error) {
	started := time.Now()
	ui.Emit(w.opts.Sink, ui.Event{File: path, Stage: ui.StageTokenize, Status: ui.StatusWorking})
	file, toks, err := lexer.TokenizeFile(w.fset, path)
	if err != nil {
		ui.Emit(w.opts.Sink, ui.Event{File: path, Stage: ui.StageTokenize, Status: ui.StatusError, Err: err})
		return Unit{}, err
	}
	ui.Emit(w.opts.Sink, ui.Event{File: path, Stage: ui.StageTokenize, Status: ui.StatusDone, Elapsed: time.Since(started)})
	return Unit{Item: Source(path), File: file, Tokens: toks}, nil
}

func (w *walker) loadOther(item CheckItem) (Unit, error) {
	switch item.Kind {
	case ItemMarkdown:
		id, err := w.fset.Load(item.Path)
		if err != nil {
			return Unit{}, fmt.Errorf("read %s: %w", item.Path, err)
		}
		return Unit{Item: item, File: w.fset.Get(id)}, nil
	case ItemManifestDescription:
		id := w.fset.AddVirtual(descriptionFileName, []byte(item.Text))
		return Unit{Item: item, File: w.fset.Get(id)}, nil
	}
	return Unit{}, fmt.Errorf("%v: unsupported item kind", item)
}
