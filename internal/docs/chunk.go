package docs

import (
	"sort"

	"docspell/internal/source"
)

// ChunkKind tells where a chunk came from.
type ChunkKind uint8

const (
	ChunkDocComment ChunkKind = iota
	ChunkMarkdown
	ChunkDescription
)

func (k ChunkKind) String() string {
	switch k {
	case ChunkDocComment:
		return "doc-comment"
	case ChunkMarkdown:
		return "markdown"
	case ChunkDescription:
		return "description"
	}
	return "unknown"
}

// Fragment maps Len bytes starting at ChunkOffset to the same bytes at
// FileOffset.
type Fragment struct {
	ChunkOffset uint32
	FileOffset  uint32
	Len         uint32
}

// Chunk is one piece of contiguous documentation text.
type Chunk struct {
	Kind      ChunkKind
	File      source.FileID
	Text      string
	Fragments []Fragment // sorted by ChunkOffset
}

// FileOffset maps an offset in Text to a file offset. Offsets between
// fragments map to the end of the preceding fragment.
func (c Chunk) FileOffset(off uint32) uint32 {
	if len(c.Fragments) == 0 {
		return off
	}
	i := sort.Search(len(c.Fragments), func(i int) bool {
		return c.Fragments[i].ChunkOffset > off
	}) - 1
	if i < 0 {
		return c.Fragments[0].FileOffset
	}
	fr := c.Fragments[i]
	return fr.FileOffset + min(off-fr.ChunkOffset, fr.Len)
}

// FileSpan maps the chunk range [start, end) to a file span.
func (c Chunk) FileSpan(start, end uint32) source.Span {
	return source.Span{File: c.File, Start: c.FileOffset(start), End: c.FileOffset(end)}
}
