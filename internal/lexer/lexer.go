package lexer

import (
	"docspell/internal/source"
	"docspell/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token   // one-token lookahead
	hold   []token.Trivia // leading trivia for the next token
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next significant token with its Leading trivia.
// Once EOF is reached it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.collectLeadingTrivia()

	var tok token.Token
	if lx.cursor.EOF() {
		// trailing comments stay reachable: inner docs of an empty file live here
		tok = token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	} else {
		switch ch := lx.cursor.Peek(); {
		case ch == 'r' || ch == 'b' || ch == 'c':
			tok = lx.scanPrefixed()
		case isIdentStartByte(ch) || ch >= 0x80:
			tok = lx.scanIdent()
		case isDec(ch):
			tok = lx.scanNumber()
		case ch == '"':
			tok = lx.scanQuoted(lx.cursor.Mark(), token.StrLit)
		case ch == '\'':
			tok = lx.scanQuote()
		default:
			tok = lx.scanPunct()
		}
	}

	tok.Leading = lx.hold
	lx.hold = nil
	return tok
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
