package lexer

import (
	"testing"

	"docspell/internal/source"
)

func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.rs", []byte(content))
	return fs.Get(id)
}

func TestCursorSequentialReading(t *testing.T) {
	c := NewCursor(createFile("a\nb"))
	for _, want := range []byte{'a', '\n', 'b'} {
		if c.EOF() {
			t.Fatalf("unexpected EOF before %q", want)
		}
		if got := c.Bump(); got != want {
			t.Fatalf("Bump() = %q, want %q", got, want)
		}
	}
	if !c.EOF() {
		t.Fatal("expected EOF")
	}
	if c.Peek() != 0 || c.Bump() != 0 {
		t.Fatal("Peek/Bump past EOF must return 0")
	}
}

func TestCursorPeekVariants(t *testing.T) {
	c := NewCursor(createFile("abc"))
	if b0, b1, ok := c.Peek2(); !ok || b0 != 'a' || b1 != 'b' {
		t.Fatalf("Peek2() = %q %q %v", b0, b1, ok)
	}
	if c.PeekAt(2) != 'c' || c.PeekAt(3) != 0 {
		t.Fatal("PeekAt mismatch")
	}
	if !c.HasPrefix("ab") || c.HasPrefix("abcd") {
		t.Fatal("HasPrefix mismatch")
	}
	c.BumpN(2)
	if _, _, ok := c.Peek2(); ok {
		t.Fatal("Peek2 must fail with a single byte left")
	}
	c.BumpN(10)
	if !c.EOF() {
		t.Fatal("BumpN must stop at EOF")
	}
}

func TestCursorMarkResetSpan(t *testing.T) {
	f := createFile("mod foo;")
	c := NewCursor(f)
	c.BumpN(4)
	m := c.Mark()
	c.BumpN(3)
	sp := c.SpanFrom(m)
	if sp.Start != 4 || sp.End != 7 || sp.File != f.ID {
		t.Fatalf("SpanFrom() = %+v", sp)
	}
	c.Reset(m)
	if !c.Eat('f') || c.Eat('f') {
		t.Fatal("Eat after Reset mismatch")
	}
}
