package docs

import (
	"strings"

	"docspell/internal/source"
)

// Entry holds the chunks extracted from one file.
type Entry struct {
	File   source.FileID
	Chunks []Chunk
}

// Documentation is an ordered collection of entries, one per file, in the
// order the files were first added.
type Documentation struct {
	entries []Entry
	index   map[source.FileID]int
}

func New() *Documentation {
	return &Documentation{index: make(map[source.FileID]int)}
}

// Add appends chunks to the entry for file, creating it on first use.
func (d *Documentation) Add(file source.FileID, chunks ...Chunk) {
	i, ok := d.index[file]
	if !ok {
		i = len(d.entries)
		d.index[file] = i
		d.entries = append(d.entries, Entry{File: file})
	}
	d.entries[i].Chunks = append(d.entries[i].Chunks, chunks...)
}

// Entries returns the entries in insertion order. Do not modify the result.
func (d *Documentation) Entries() []Entry {
	return d.entries
}

func (d *Documentation) Len() int { return len(d.entries) }

// ChunkCount returns the number of chunks over all entries.
func (d *Documentation) ChunkCount() int {
	n := 0
	for _, e := range d.entries {
		n += len(e.Chunks)
	}
	return n
}

// IsEmpty reports whether no chunk holds non-blank text.
func (d *Documentation) IsEmpty() bool {
	for _, e := range d.entries {
		for _, c := range e.Chunks {
			if strings.TrimSpace(c.Text) != "" {
				return false
			}
		}
	}
	return true
}

// Combine merges docs in order; entries for the same file are joined and keep
// the position of their first appearance. Nil inputs are ignored.
func Combine(docs ...*Documentation) *Documentation {
	out := New()
	for _, d := range docs {
		if d == nil {
			continue
		}
		for _, e := range d.entries {
			out.Add(e.File, e.Chunks...)
		}
	}
	return out
}
