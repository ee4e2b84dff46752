package docs

import (
	"fmt"
	"strings"
	"time"

	"fortio.org/safecast"

	"docspell/internal/source"
	"docspell/internal/token"
	"docspell/internal/traverse"
	"docspell/internal/ui"
)

const docPrefixLen = 3 // "///", "//!", "/**", "/*!"

// FromSource collects doc comments from the leading trivia of toks.
// Consecutive line doc comments of the same style form one chunk, joined
// with '\n'; each block doc comment is a chunk of its own. The comment
// markers are not part of the chunk text.
func FromSource(file *source.File, toks []token.Token) *Documentation {
	doc := New()
	for _, tok := range toks {
		var run *Chunk
		runKind := token.TriviaKind(0)
		flush := func() {
			if run != nil {
				doc.Add(file.ID, *run)
				run = nil
			}
		}
		for _, tr := range tok.Leading {
			switch {
			case tr.Kind.IsLineDoc():
				if run == nil || runKind != tr.Kind {
					flush()
					run = &Chunk{Kind: ChunkDocComment, File: file.ID}
					runKind = tr.Kind
				} else {
					run.Text += "\n"
				}
				appendFragment(run, tr.Text[docPrefixLen:], tr.Span.Start+docPrefixLen)
			case tr.Kind.IsDoc():
				flush()
				body := strings.TrimSuffix(tr.Text[docPrefixLen:], "*/")
				c := Chunk{Kind: ChunkDocComment, File: file.ID}
				appendFragment(&c, body, tr.Span.Start+docPrefixLen)
				doc.Add(file.ID, c)
			case tr.Kind == token.TriviaSpace:
			case tr.Kind == token.TriviaNewline && tr.Text == "\n":
			default:
				flush()
			}
		}
		flush()
	}
	return doc
}

// FromMarkdown returns the whole file as a single markdown chunk.
func FromMarkdown(file *source.File) *Documentation {
	return wholeFile(file, ChunkMarkdown)
}

// FromDescription returns a manifest description, held in a virtual file,
// as a single chunk.
func FromDescription(file *source.File) *Documentation {
	return wholeFile(file, ChunkDescription)
}

// FromUnit extracts the documentation of a traversal unit.
func FromUnit(u traverse.Unit) (*Documentation, error) {
	if u.File == nil {
		return nil, fmt.Errorf("%v: unit has no file", u.Item)
	}
	switch u.Item.Kind {
	case traverse.ItemSource:
		return FromSource(u.File, u.Tokens), nil
	case traverse.ItemMarkdown:
		return FromMarkdown(u.File), nil
	case traverse.ItemManifestDescription:
		return FromDescription(u.File), nil
	}
	return nil, fmt.Errorf("%v: unsupported item kind", u.Item)
}

// FromUnits extracts and combines the documentation of all units, dropping
// files without any documentation. Extract events for files are sent to
// sink, which may be nil.
func FromUnits(units []traverse.Unit, sink ui.Sink) (*Documentation, error) {
	parts := make([]*Documentation, 0, len(units))
	for _, u := range units {
		started := time.Now()
		emitExtract(sink, u, ui.StatusWorking, nil, 0)
		d, err := FromUnit(u)
		if err != nil {
			emitExtract(sink, u, ui.StatusError, err, time.Since(started))
			return nil, err
		}
		emitExtract(sink, u, ui.StatusDone, nil, time.Since(started))
		if d.IsEmpty() {
			continue
		}
		parts = append(parts, d)
	}
	return Combine(parts...), nil
}

// descriptions have no path and are not reported
func emitExtract(sink ui.Sink, u traverse.Unit, status ui.Status, err error, elapsed time.Duration) {
	if u.Item.Path == "" {
		return
	}
	ui.Emit(sink, ui.Event{File: u.Item.Path, Stage: ui.StageExtract, Status: status, Err: err, Elapsed: elapsed})
}

func wholeFile(file *source.File, kind ChunkKind) *Documentation {
	doc := New()
	c := Chunk{Kind: kind, File: file.ID}
	appendFragment(&c, string(file.Content), 0)
	doc.Add(file.ID, c)
	return doc
}

func appendFragment(c *Chunk, text string, fileOff uint32) {
	chunkOff, err := safecast.Conv[uint32](len(c.Text))
	if err != nil {
		panic(fmt.Errorf("chunk length overflow: %w", err))
	}
	n, err := safecast.Conv[uint32](len(text))
	if err != nil {
		panic(fmt.Errorf("fragment length overflow: %w", err))
	}
	c.Fragments = append(c.Fragments, Fragment{ChunkOffset: chunkOff, FileOffset: fileOff, Len: n})
	c.Text += text
}
