// Package testkit holds invariant checks shared by tests and fuzz harnesses.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"docspell/internal/docs"
	"docspell/internal/source"
	"docspell/internal/token"
)

// CheckTokenInvariants runs a minimal set of span invariants on a token stream:
// 1) the stream is non-empty and ends with EOF
// 2) every token and trivia span lies in the file and points at it
// 3) spans never go backwards
func CheckTokenInvariants(toks []token.Token, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	if len(toks) == 0 || toks[len(toks)-1].Kind != token.EOF {
		return fmt.Errorf("token stream does not end with EOF")
	}
	size, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var prev uint32
	check := func(what string, sp source.Span) error {
		if sp.File != sf.ID {
			return fmt.Errorf("%s span file mismatch: got=%d want=%d", what, sp.File, sf.ID)
		}
		if sp.Start > sp.End || sp.End > size {
			return fmt.Errorf("%s span %v out of range (size %d)", what, sp, size)
		}
		if sp.Start < prev {
			return fmt.Errorf("%s span %v starts before %d", what, sp, prev)
		}
		prev = sp.End
		return nil
	}
	for _, tok := range toks {
		for _, tr := range tok.Leading {
			if err := check("trivia", tr.Span); err != nil {
				return err
			}
		}
		if err := check(tok.Kind.String(), tok.Span); err != nil {
			return err
		}
	}
	return nil
}

// CheckChunkInvariants verifies that every fragment of every chunk maps chunk
// text back to identical bytes of its file and that fragments are ordered.
func CheckChunkInvariants(doc *docs.Documentation, fs *source.FileSet) error {
	for _, e := range doc.Entries() {
		file := fs.Get(e.File)
		if file == nil {
			return fmt.Errorf("entry for unknown file %d", e.File)
		}
		size, err := safecast.Conv[uint32](len(file.Content))
		if err != nil {
			return fmt.Errorf("len content overflow: %w", err)
		}
		for ci, c := range e.Chunks {
			textLen, err := safecast.Conv[uint32](len(c.Text))
			if err != nil {
				return fmt.Errorf("chunk text overflow: %w", err)
			}
			var chunkEnd uint32
			for _, fr := range c.Fragments {
				if fr.ChunkOffset < chunkEnd {
					return fmt.Errorf("%s chunk %d: fragment %+v overlaps the previous one", file.Path, ci, fr)
				}
				if fr.FileOffset+fr.Len > size || fr.ChunkOffset+fr.Len > textLen {
					return fmt.Errorf("%s chunk %d: fragment %+v out of range", file.Path, ci, fr)
				}
				got := string(file.Content[fr.FileOffset : fr.FileOffset+fr.Len])
				want := c.Text[fr.ChunkOffset : fr.ChunkOffset+fr.Len]
				if got != want {
					return fmt.Errorf("%s chunk %d: fragment %+v maps %q to %q", file.Path, ci, fr, want, got)
				}
				chunkEnd = fr.ChunkOffset + fr.Len
			}
		}
	}
	return nil
}
