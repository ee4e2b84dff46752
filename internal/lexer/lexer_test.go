package lexer_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"docspell/internal/lexer"
	"docspell/internal/source"
	"docspell/internal/token"
)

func tokenize(t *testing.T, src string) ([]token.Token, error) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.rs", []byte(src))
	return lexer.Tokenize(fs.Get(id))
}

func mustTokenize(t *testing.T, src string) []token.Token {
	t.Helper()
	toks, err := tokenize(t, src)
	if err != nil {
		t.Fatalf("Tokenize(%q): %v", src, err)
	}
	return toks
}

type kt struct {
	kind token.Kind
	text string
}

func kinds(toks []token.Token) []kt {
	out := make([]kt, 0, len(toks))
	for _, tk := range toks {
		out = append(out, kt{tk.Kind, tk.Text})
	}
	return out
}

func TestTokenKinds(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []kt
	}{
		{"mod decl", "mod foo;", []kt{{token.Ident, "mod"}, {token.Ident, "foo"}, {token.Punct, ";"}, {token.EOF, ""}}},
		{"raw ident", "mod r#type;", []kt{{token.Ident, "mod"}, {token.Ident, "r#type"}, {token.Punct, ";"}, {token.EOF, ""}}},
		{"unicode ident", "let größe", []kt{{token.Ident, "let"}, {token.Ident, "größe"}, {token.EOF, ""}}},
		{"lifetime", "&'a str", []kt{{token.Punct, "&"}, {token.Lifetime, "'a"}, {token.Ident, "str"}, {token.EOF, ""}}},
		{"char", "'a' '\\n' 'ü'", []kt{{token.CharLit, "'a'"}, {token.CharLit, "'\\n'"}, {token.CharLit, "'ü'"}, {token.EOF, ""}}},
		{"byte", "b'x'", []kt{{token.ByteLit, "b'x'"}, {token.EOF, ""}}},
		{"strings", `"a\"b" b"c" c"d"`, []kt{{token.StrLit, `"a\"b"`}, {token.ByteStrLit, `b"c"`}, {token.CStrLit, `c"d"`}, {token.EOF, ""}}},
		{"raw strings", `r"x" r#"a "q" b"# br##"z"##`, []kt{{token.RawStrLit, `r"x"`}, {token.RawStrLit, `r#"a "q" b"#`}, {token.ByteStrLit, `br##"z"##`}, {token.EOF, ""}}},
		{"numbers", "0xFF_u8 0b10 42usize 1.5 2e10 6.02E+23f64", []kt{
			{token.IntLit, "0xFF_u8"}, {token.IntLit, "0b10"}, {token.IntLit, "42usize"},
			{token.FloatLit, "1.5"}, {token.FloatLit, "2e10"}, {token.FloatLit, "6.02E+23f64"}, {token.EOF, ""},
		}},
		{"range", "1..2", []kt{{token.IntLit, "1"}, {token.Punct, "."}, {token.Punct, "."}, {token.IntLit, "2"}, {token.EOF, ""}}},
		{"method on int", "1.max(2)", []kt{
			{token.IntLit, "1"}, {token.Punct, "."}, {token.Ident, "max"},
			{token.LParen, "("}, {token.IntLit, "2"}, {token.RParen, ")"}, {token.EOF, ""},
		}},
		{"delims", "{[()]}", []kt{
			{token.LBrace, "{"}, {token.LBracket, "["}, {token.LParen, "("},
			{token.RParen, ")"}, {token.RBracket, "]"}, {token.RBrace, "}"}, {token.EOF, ""},
		}},
		{"prefix letters as idents", "bar cat r", []kt{{token.Ident, "bar"}, {token.Ident, "cat"}, {token.Ident, "r"}, {token.EOF, ""}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := kinds(mustTokenize(t, tt.src))
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("token %d: got %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPunctSpacing(t *testing.T) {
	toks := mustTokenize(t, "a::b; c;; d; // x\ne ;/* y */")
	var got []string
	for _, tk := range toks {
		if tk.Kind == token.Punct {
			got = append(got, tk.Text+":"+tk.Spacing.String())
		}
	}
	want := []string{"::Joint", "::Alone", ";:Alone", ";:Joint", ";:Alone", ";:Alone", ";:Alone"}
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Fatalf("spacing = %v, want %v", got, want)
	}
}

func TestTriviaClassification(t *testing.T) {
	src := "#!/usr/bin/env run\n" +
		"//! inner\n" +
		"/// outer\n" +
		"//// not doc\n" +
		"/** block */\n" +
		"/*! inner block */\n" +
		"/*** not doc */\n" +
		"/**/\n" +
		"/* a /* nested */ b */\n" +
		"fn"
	toks := mustTokenize(t, src)
	var got []token.TriviaKind
	for _, tr := range toks[0].Leading {
		if tr.Kind != token.TriviaNewline && tr.Kind != token.TriviaSpace {
			got = append(got, tr.Kind)
		}
	}
	want := []token.TriviaKind{
		token.TriviaShebang,
		token.TriviaDocInnerLine,
		token.TriviaDocOuterLine,
		token.TriviaLineComment,
		token.TriviaDocOuterBlock,
		token.TriviaDocInnerBlock,
		token.TriviaBlockComment,
		token.TriviaBlockComment,
		token.TriviaBlockComment,
	}
	if len(got) != len(want) {
		t.Fatalf("trivia = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("trivia %d = %v, want %v", i, got[i], want[i])
		}
	}
	if toks[0].Text != "fn" {
		t.Fatalf("first token = %q", toks[0].Text)
	}
}

func TestInnerAttributeIsNotShebang(t *testing.T) {
	toks := mustTokenize(t, "#![doc = \"x\"]")
	if !toks[0].IsPunct('#') || len(toks[0].Leading) != 0 {
		t.Fatalf("expected '#' token without trivia, got %+v", toks[0])
	}
}

func TestEOFKeepsTrailingDocs(t *testing.T) {
	toks := mustTokenize(t, "//! only docs\n")
	if len(toks) != 1 || toks[0].Kind != token.EOF {
		t.Fatalf("expected lone EOF, got %v", kinds(toks))
	}
	if len(toks[0].Leading) == 0 || toks[0].Leading[0].Kind != token.TriviaDocInnerLine {
		t.Fatalf("EOF leading = %+v", toks[0].Leading)
	}
}

func TestSpansMatchText(t *testing.T) {
	src := "pub mod a {\n    mod b;\n}\n"
	fs := source.NewFileSet()
	id := fs.AddVirtual("x.rs", []byte(src))
	toks, err := lexer.Tokenize(fs.Get(id))
	if err != nil {
		t.Fatal(err)
	}
	for _, tk := range toks {
		if got := src[tk.Span.Start:tk.Span.End]; got != tk.Text {
			t.Fatalf("span text %q != token text %q", got, tk.Text)
		}
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		msg  string
	}{
		{"unterminated string", "let s = \"abc", "unterminated string literal"},
		{"unterminated raw", "r#\"abc\"", "unterminated raw string literal"},
		{"unterminated comment", "/* open", "unterminated block comment"},
		{"unclosed brace", "mod a {", "unclosed delimiter"},
		{"mismatched", "( ]", "unexpected closing delimiter"},
		{"unknown char", "a ` b", "unknown character"},
		{"bad base", "0x;", "missing digits"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tokenize(t, tt.src)
			var te *lexer.TokenizeError
			if !errors.As(err, &te) {
				t.Fatalf("expected *TokenizeError, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Fatalf("error %q does not mention %q", err, tt.msg)
			}
			if !strings.HasPrefix(err.Error(), "cannot tokenize test.rs: 1:") {
				t.Fatalf("error %q lacks path and position", err)
			}
		})
	}
}

func TestTokenizeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lib.rs")
	if err := os.WriteFile(path, []byte("mod a;\r\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	fs := source.NewFileSet()
	f, toks, err := lexer.TokenizeFile(fs, path)
	if err != nil {
		t.Fatal(err)
	}
	if f.Flags&source.FileNormalizedCRLF == 0 {
		t.Fatal("expected CRLF normalisation")
	}
	if len(toks) != 4 {
		t.Fatalf("got %d tokens, want 4", len(toks))
	}

	if _, _, err := lexer.TokenizeFile(fs, filepath.Join(dir, "missing.rs")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("p.rs", []byte("a b"))
	lx := lexer.New(fs.Get(id), lexer.Options{})
	if p := lx.Peek(); p.Text != "a" {
		t.Fatalf("Peek() = %q", p.Text)
	}
	if n := lx.Next(); n.Text != "a" {
		t.Fatalf("Next() = %q", n.Text)
	}
	if n := lx.Next(); n.Text != "b" {
		t.Fatalf("Next() = %q", n.Text)
	}
	if n := lx.Next(); n.Kind != token.EOF {
		t.Fatalf("expected EOF, got %v", n.Kind)
	}
	if n := lx.Next(); n.Kind != token.EOF {
		t.Fatalf("expected EOF again, got %v", n.Kind)
	}
}
