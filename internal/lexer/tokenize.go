package lexer

import (
	"fmt"
	"strings"

	"docspell/internal/diag"
	"docspell/internal/source"
	"docspell/internal/token"
)

const maxTokenizeDiags = 32

// TokenizeError reports why a file could not be turned into tokens.
type TokenizeError struct {
	File  *source.File
	Diags []diag.Diagnostic
}

func (e *TokenizeError) Error() string {
	const shown = 3
	var sb strings.Builder
	fmt.Fprintf(&sb, "cannot tokenize %s: ", e.File.Path)
	for i, d := range e.Diags {
		if i == shown {
			fmt.Fprintf(&sb, " (and %d more)", len(e.Diags)-shown)
			break
		}
		if i > 0 {
			sb.WriteString("; ")
		}
		pos := e.File.Position(d.Primary.Start)
		fmt.Fprintf(&sb, "%d:%d: %s", pos.Line, pos.Col, d.Message)
	}
	return sb.String()
}

// Tokenize lexes the whole file into a flat stream ending with EOF and checks
// that delimiters are balanced. On error the tokens are still returned.
func Tokenize(file *source.File) ([]token.Token, error) {
	bag := diag.NewBag(maxTokenizeDiags)
	rep := diag.BagReporter{Bag: bag}
	lx := New(file, Options{Reporter: rep})

	var (
		toks []token.Token
		open []token.Token
	)
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		switch {
		case tok.IsOpenDelim():
			open = append(open, tok)
		case tok.IsCloseDelim():
			if len(open) == 0 || closerOf(open[len(open)-1].Kind) != tok.Kind {
				diag.ReportError(rep, diag.LexUnbalancedDelimiter, tok.Span, fmt.Sprintf("unexpected closing delimiter %q", tok.Text))
				continue
			}
			open = open[:len(open)-1]
		}
		if tok.Kind == token.EOF {
			break
		}
	}
	for _, o := range open {
		diag.ReportError(rep, diag.LexUnbalancedDelimiter, o.Span, fmt.Sprintf("unclosed delimiter %q", o.Text))
	}

	if bag.Len() > 0 {
		bag.Sort()
		bag.Dedup()
		return toks, &TokenizeError{File: file, Diags: bag.Items()}
	}
	return toks, nil
}

// TokenizeFile loads path into fs and tokenizes it.
func TokenizeFile(fs *source.FileSet, path string) (*source.File, []token.Token, error) {
	id, err := fs.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}
	file := fs.Get(id)
	toks, err := Tokenize(file)
	if err != nil {
		return file, nil, err
	}
	return file, toks, nil
}

func closerOf(k token.Kind) token.Kind {
	switch k {
	case token.LParen:
		return token.RParen
	case token.LBracket:
		return token.RBracket
	case token.LBrace:
		return token.RBrace
	}
	return token.Invalid
}
