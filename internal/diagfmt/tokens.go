// Package diagfmt выводит поток токенов для команды tokenize.
package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"docspell/internal/source"
	"docspell/internal/token"
)

type TokenOutput struct {
	Kind    string         `json:"kind"`
	Text    string         `json:"text,omitempty"`
	Spacing string         `json:"spacing,omitempty"`
	Start   source.LineCol `json:"start"`
	End     source.LineCol `json:"end"`
	Leading []TriviaOutput `json:"leading,omitempty"`
}

type TriviaOutput struct {
	Kind string `json:"kind"`
	Text string `json:"text,omitempty"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)

		var b strings.Builder
		fmt.Fprintf(&b, "%3d: %-10s", i+1, tok.Kind.String())
		if tok.Text != "" {
			fmt.Fprintf(&b, " %q", tok.Text)
		}
		if tok.Kind == token.Punct {
			fmt.Fprintf(&b, " %s", tok.Spacing)
		}
		fmt.Fprintf(&b, " at %d:%d-%d:%d", startPos.Line, startPos.Col, endPos.Line, endPos.Col)

		if docs := docTrivia(tok.Leading); len(docs) > 0 {
			fmt.Fprintf(&b, " (doc: %s)", strings.Join(docs, ", "))
		}
		b.WriteByte('\n')
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		start, end := fs.Resolve(tok.Span)
		out := TokenOutput{
			Kind:  tok.Kind.String(),
			Text:  tok.Text,
			Start: start,
			End:   end,
		}
		if tok.Kind == token.Punct {
			out.Spacing = tok.Spacing.String()
		}
		for _, tr := range tok.Leading {
			if tr.Kind == token.TriviaSpace || tr.Kind == token.TriviaNewline {
				continue
			}
			out.Leading = append(out.Leading, TriviaOutput{Kind: tr.Kind.String(), Text: tr.Text})
		}
		output = append(output, out)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func docTrivia(leading []token.Trivia) []string {
	var out []string
	for _, tr := range leading {
		if tr.Kind.IsDoc() {
			out = append(out, tr.Kind.String())
		}
	}
	return out
}
