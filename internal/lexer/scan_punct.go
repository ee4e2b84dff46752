package lexer

import (
	"fmt"
	"strings"

	"docspell/internal/diag"
	"docspell/internal/token"
)

const punctChars = "~!@#$%^&*-=+|;:,<.>/?'"

func isPunctByte(b byte) bool {
	return b != 0 && strings.IndexByte(punctChars, b) >= 0
}

var delimKinds = map[byte]token.Kind{
	'(': token.LParen,
	')': token.RParen,
	'[': token.LBracket,
	']': token.RBracket,
	'{': token.LBrace,
	'}': token.RBrace,
}

// scanPunct scans a delimiter or a single punctuation character. Multi-char
// operators are not merged: "::" is two Joint-chained ':' tokens.
func (lx *Lexer) scanPunct() token.Token {
	start := lx.cursor.Mark()
	b := lx.cursor.Bump()
	if kind, ok := delimKinds[b]; ok {
		return lx.emit(kind, start)
	}
	if !isPunctByte(b) {
		return lx.invalid(start, diag.LexUnknownChar, fmt.Sprintf("unknown character %q", b))
	}
	tok := lx.emit(token.Punct, start)
	if lx.punctFollows() {
		tok.Spacing = token.Joint
	}
	return tok
}

// punctFollows reports whether the very next byte is punctuation. The start
// of a comment does not count.
func (lx *Lexer) punctFollows() bool {
	if lx.cursor.HasPrefix("//") || lx.cursor.HasPrefix("/*") {
		return false
	}
	return isPunctByte(lx.cursor.Peek())
}
