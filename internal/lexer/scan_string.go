package lexer

import (
	"strings"

	"docspell/internal/diag"
	"docspell/internal/token"
)

// scanQuoted scans a "..." body with escapes; the cursor is on the opening quote.
func (lx *Lexer) scanQuoted(start Mark, kind token.Kind) token.Token {
	lx.cursor.Bump()
	for !lx.cursor.EOF() {
		switch lx.cursor.Bump() {
		case '\\':
			lx.cursor.Bump()
		case '"':
			lx.eatSuffix()
			return lx.emit(kind, start)
		}
	}
	return lx.invalid(start, diag.LexUnterminatedString, "unterminated string literal")
}

// scanRawString scans #*"..."#* after the r/br/cr prefix.
func (lx *Lexer) scanRawString(start Mark, kind token.Kind) token.Token {
	hashes := 0
	for lx.cursor.Eat('#') {
		hashes++
	}
	if !lx.cursor.Eat('"') {
		return lx.invalid(start, diag.LexUnterminatedRawString, "expected '\"' in raw string prefix")
	}
	closing := `"` + strings.Repeat("#", hashes)
	for !lx.cursor.EOF() {
		if lx.cursor.HasPrefix(closing) {
			lx.cursor.BumpN(len(closing))
			lx.eatSuffix()
			return lx.emit(kind, start)
		}
		lx.cursor.Bump()
	}
	return lx.invalid(start, diag.LexUnterminatedRawString, "unterminated raw string literal")
}

// scanQuote disambiguates a lifetime ('a, 'static) from a char literal ('a', '\n').
func (lx *Lexer) scanQuote() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	if lx.cursor.Peek() != '\\' && lx.identStartsAt(0) {
		_, sz := lx.peekRune()
		if lx.cursor.PeekAt(uint32(sz)) != '\'' {
			lx.bumpRune()
			lx.eatIdentContinue()
			return lx.emit(token.Lifetime, start)
		}
	}
	return lx.scanCharBody(start, token.CharLit)
}

// scanCharBody scans up to the closing quote; the cursor is past the opening one.
func (lx *Lexer) scanCharBody(start Mark, kind token.Kind) token.Token {
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		switch lx.cursor.Bump() {
		case '\\':
			lx.cursor.Bump()
		case '\'':
			lx.eatSuffix()
			return lx.emit(kind, start)
		}
	}
	return lx.invalid(start, diag.LexUnterminatedChar, "unterminated character literal")
}
