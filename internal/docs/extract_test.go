package docs

import (
	"strings"
	"testing"

	"docspell/internal/lexer"
	"docspell/internal/source"
	"docspell/internal/traverse"
	"docspell/internal/ui"
)

func sourceDoc(t *testing.T, src string) (*source.File, *Documentation) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("lib.rs", []byte(src)))
	toks, err := lexer.Tokenize(file)
	if err != nil {
		t.Fatal(err)
	}
	return file, FromSource(file, toks)
}

func chunkTexts(d *Documentation) []string {
	var out []string
	for _, e := range d.Entries() {
		for _, c := range e.Chunks {
			out = append(out, c.Text)
		}
	}
	return out
}

func TestFromSourceGroupsLineDocs(t *testing.T) {
	src := "//! Crate level.\n" +
		"//! Second line.\n" +
		"\n" +
		"/// Outer one.\n" +
		"///   Indented.\n" +
		"//// Not a doc.\n" +
		"/// After break.\n" +
		"fn a() {}\n" +
		"    /** Block\n     doc */\n" +
		"struct S;\n" +
		"/*! inner block */\n" +
		"// plain\n" +
		"/* plain block */\n" +
		"/**/\n"
	_, d := sourceDoc(t, src)
	want := []string{
		" Crate level.\n Second line.",
		" Outer one.\n   Indented.",
		" After break.",
		" Block\n     doc ",
		" inner block ",
	}
	got := chunkTexts(d)
	if len(got) != len(want) {
		t.Fatalf("chunks = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("chunk %d = %q, want %q", i, got[i], want[i])
		}
	}
	if d.Len() != 1 || d.ChunkCount() != 5 {
		t.Fatalf("entries = %d, chunks = %d", d.Len(), d.ChunkCount())
	}
}

func TestFromSourceSplitsOuterAndInner(t *testing.T) {
	_, d := sourceDoc(t, "//! inner\n/// outer\nfn f() {}\n")
	got := chunkTexts(d)
	if len(got) != 2 || got[0] != " inner" || got[1] != " outer" {
		t.Fatalf("chunks = %q", got)
	}
}

func TestChunkOffsetsMapBackToFile(t *testing.T) {
	src := "/// Thsi is\n/// wrong\nfn f() {}\n"
	file, d := sourceDoc(t, src)
	c := d.Entries()[0].Chunks[0]

	for _, word := range []string{"Thsi", "is", "wrong"} {
		start := uint32(strings.Index(c.Text, word))
		sp := c.FileSpan(start, start+uint32(len(word)))
		if got := string(file.Content[sp.Start:sp.End]); got != word {
			t.Fatalf("word %q maps to %q", word, got)
		}
	}
	// the joining newline maps to the end of the first line's text
	nl := uint32(strings.Index(c.Text, "\n"))
	if off := c.FileOffset(nl); off != uint32(strings.Index(src, "\n")) {
		t.Fatalf("newline maps to %d", off)
	}
}

func TestWholeFileChunks(t *testing.T) {
	fs := source.NewFileSet()
	md := fs.Get(fs.AddVirtual("README.md", []byte("# Title\n")))
	desc := fs.Get(fs.AddVirtual("<manifest description>", []byte("A tool")))

	d, err := FromUnits([]traverse.Unit{
		{Item: traverse.Markdown("README.md"), File: md},
		{Item: traverse.ManifestDescription("A tool"), File: desc},
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	entries := d.Entries()
	if len(entries) != 2 {
		t.Fatalf("entries = %d", len(entries))
	}
	if c := entries[0].Chunks[0]; c.Kind != ChunkMarkdown || c.Text != "# Title\n" || c.FileOffset(2) != 2 {
		t.Fatalf("markdown chunk = %+v", c)
	}
	if c := entries[1].Chunks[0]; c.Kind != ChunkDescription || c.Text != "A tool" {
		t.Fatalf("description chunk = %+v", c)
	}
}

func TestFromUnitsDropsEmptyAndCombines(t *testing.T) {
	fs := source.NewFileSet()
	load := func(name, src string) traverse.Unit {
		f := fs.Get(fs.AddVirtual(name, []byte(src)))
		toks, err := lexer.Tokenize(f)
		if err != nil {
			t.Fatal(err)
		}
		return traverse.Unit{Item: traverse.Source(name), File: f, Tokens: toks}
	}
	units := []traverse.Unit{
		load("a.rs", "/// a\nfn a() {}\n"),
		load("b.rs", "fn b() {}\n"),
		load("c.rs", "//!   \n"),
	}
	sink := &recordingSink{}
	d, err := FromUnits(units, sink)
	if err != nil {
		t.Fatal(err)
	}
	if d.Len() != 1 || d.Entries()[0].File != units[0].File.ID {
		t.Fatalf("entries = %+v", d.Entries())
	}
	if len(sink.events) != 2*len(units) {
		t.Fatalf("events = %d, want working and done per unit", len(sink.events))
	}
	for _, evt := range sink.events {
		if evt.Stage != ui.StageExtract {
			t.Fatalf("unexpected stage %s", evt.Stage)
		}
	}
	if _, err := FromUnit(traverse.Unit{Item: traverse.Source("x.rs")}); err == nil {
		t.Fatal("expected error for unit without file")
	}
	if _, err := FromUnits([]traverse.Unit{{Item: traverse.Source("x.rs")}}, sink); err == nil {
		t.Fatal("expected error for unit without file")
	}
	if last := sink.events[len(sink.events)-1]; last.Status != ui.StatusError || last.File != "x.rs" {
		t.Fatalf("last event = %+v, want error for x.rs", last)
	}
}

type recordingSink struct {
	events []ui.Event
}

func (s *recordingSink) OnEvent(evt ui.Event) { s.events = append(s.events, evt) }

func TestCombineKeepsFirstSeenOrder(t *testing.T) {
	a, b := New(), New()
	a.Add(1, Chunk{Text: "one"})
	a.Add(2, Chunk{Text: "two"})
	b.Add(3, Chunk{Text: "three"})
	b.Add(1, Chunk{Text: "one-more"})

	c := Combine(a, nil, b)
	var files []source.FileID
	for _, e := range c.Entries() {
		files = append(files, e.File)
	}
	if len(files) != 3 || files[0] != 1 || files[1] != 2 || files[2] != 3 {
		t.Fatalf("order = %v", files)
	}
	if got := chunkTexts(c); len(got) != 4 || got[1] != "one-more" {
		t.Fatalf("chunks = %q", got)
	}
	if !New().IsEmpty() || c.IsEmpty() {
		t.Fatal("IsEmpty mismatch")
	}
}
