package check

import (
	"fmt"
	"sort"

	"docspell/internal/docs"
	"docspell/internal/source"
)

// Config selects and tunes the checkers.
type Config struct {
	// BaseDir makes rendered paths relative; empty keeps them as loaded.
	BaseDir    string
	Dictionary DictionaryConfig
	Repeat     bool
}

type DictionaryConfig struct {
	Enabled        bool
	Paths          []string // hunspell .dic files
	ExtraWords     []string
	MinWordLength  int
	MaxSuggestions int
}

// NewCheckers builds the enabled checkers. The dictionary checker needs at
// least one word list and is left out otherwise.
func NewCheckers(cfg Config) ([]Checker, error) {
	var checkers []Checker
	if cfg.Dictionary.Enabled && len(cfg.Dictionary.Paths) > 0 {
		dict, err := LoadDictionary(cfg.Dictionary.Paths, cfg.Dictionary.ExtraWords)
		if err != nil {
			return nil, err
		}
		checkers = append(checkers, &DictionaryChecker{
			Dict:           dict,
			MinWordLength:  cfg.Dictionary.MinWordLength,
			MaxSuggestions: cfg.Dictionary.MaxSuggestions,
		})
	}
	if cfg.Repeat {
		checkers = append(checkers, RepeatChecker{})
	}
	return checkers, nil
}

// Check runs the checkers enabled by cfg over doc.
func Check(fs *source.FileSet, doc *docs.Documentation, cfg Config) ([]FileSuggestions, error) {
	checkers, err := NewCheckers(cfg)
	if err != nil {
		return nil, fmt.Errorf("set up checkers: %w", err)
	}
	return Run(fs, doc, cfg.BaseDir, checkers), nil
}

// Run applies checkers to every chunk. Files without findings are omitted;
// the rest keep the documentation order.
func Run(fs *source.FileSet, doc *docs.Documentation, baseDir string, checkers []Checker) []FileSuggestions {
	var out []FileSuggestions
	for _, entry := range doc.Entries() {
		file := fs.Get(entry.File)
		fsugg := FileSuggestions{File: entry.File, Path: file.DisplayPath(baseDir)}
		for _, chunk := range entry.Chunks {
			words := segment(chunk.Text)
			for _, ch := range checkers {
				for _, f := range ch.CheckChunk(chunk, words) {
					fsugg.Suggestions = append(fsugg.Suggestions, newSuggestion(file, fsugg.Path, chunk, ch, f))
				}
			}
		}
		if len(fsugg.Suggestions) == 0 {
			continue
		}
		sort.SliceStable(fsugg.Suggestions, func(i, j int) bool {
			a, b := fsugg.Suggestions[i].Span, fsugg.Suggestions[j].Span
			if a.Start != b.Start {
				return a.Start < b.Start
			}
			return a.End < b.End
		})
		out = append(out, fsugg)
	}
	return out
}

// Count returns the total number of suggestions.
func Count(files []FileSuggestions) int {
	n := 0
	for _, f := range files {
		n += len(f.Suggestions)
	}
	return n
}

func newSuggestion(file *source.File, path string, chunk docs.Chunk, ch Checker, f Finding) Suggestion {
	sp := chunk.FileSpan(f.Start, f.End)
	pos := file.Position(sp.Start)
	return Suggestion{
		Detector:     ch.Detector(),
		Message:      ch.Message(),
		Path:         path,
		Span:         sp,
		Pos:          pos,
		Line:         file.GetLine(pos.Line),
		Word:         f.Word,
		Replacements: f.Replacements,
	}
}
