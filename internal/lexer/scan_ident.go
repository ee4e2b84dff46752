package lexer

import (
	"fmt"

	"docspell/internal/diag"
	"docspell/internal/token"
)

// scanIdent scans an identifier or keyword. A rune that cannot start an
// identifier becomes an Invalid token.
func (lx *Lexer) scanIdent() token.Token {
	start := lx.cursor.Mark()
	r, _ := lx.peekRune()
	if !isIdentStartRune(r) {
		lx.bumpRune()
		return lx.invalid(start, diag.LexUnknownChar, fmt.Sprintf("unknown character %q", r))
	}
	lx.bumpRune()
	lx.eatIdentContinue()
	return lx.emit(token.Ident, start)
}

// scanPrefixed handles tokens that begin with r, b or c: raw identifiers,
// raw/byte/C strings and byte literals. Anything else is an identifier.
func (lx *Lexer) scanPrefixed() token.Token {
	start := lx.cursor.Mark()
	c := &lx.cursor
	switch {
	case c.HasPrefix("r#") && lx.identStartsAt(2):
		c.BumpN(2)
		lx.bumpRune()
		lx.eatIdentContinue()
		return lx.emit(token.Ident, start)
	case c.HasPrefix(`r"`) || c.HasPrefix("r#"):
		c.Bump()
		return lx.scanRawString(start, token.RawStrLit)
	case c.HasPrefix(`br"`) || c.HasPrefix("br#"):
		c.BumpN(2)
		return lx.scanRawString(start, token.ByteStrLit)
	case c.HasPrefix(`cr"`) || c.HasPrefix("cr#"):
		c.BumpN(2)
		return lx.scanRawString(start, token.CStrLit)
	case c.HasPrefix(`b"`):
		c.Bump()
		return lx.scanQuoted(start, token.ByteStrLit)
	case c.HasPrefix(`c"`):
		c.Bump()
		return lx.scanQuoted(start, token.CStrLit)
	case c.HasPrefix("b'"):
		c.BumpN(2)
		return lx.scanCharBody(start, token.ByteLit)
	}
	return lx.scanIdent()
}
