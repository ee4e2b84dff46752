package lexer

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"docspell/internal/diag"
	"docspell/internal/token"

	"fortio.org/safecast"
)

// peekRune decodes the rune at the cursor.
func (lx *Lexer) peekRune() (r rune, size int) {
	return lx.peekRuneAt(0)
}

func (lx *Lexer) peekRuneAt(n uint32) (r rune, size int) {
	off := lx.cursor.Off + n
	if int(off) >= len(lx.file.Content) {
		return utf8.RuneError, 0
	}
	b := lx.file.Content[off]
	if b < utf8.RuneSelf {
		return rune(b), 1
	}
	return utf8.DecodeRune(lx.file.Content[off:])
}

// bumpRune advances the cursor by the size of the current rune.
func (lx *Lexer) bumpRune() {
	_, sz := lx.peekRune()
	if sz == 0 {
		return
	}
	usz, err := safecast.Conv[uint32](sz)
	if err != nil {
		panic(fmt.Errorf("bumpRune overflow: %w", err))
	}
	lx.cursor.Off += usz
}

func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDec(b)
}

func isIdentStartRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentContinueRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) ||
		unicode.In(r, unicode.Mn, unicode.Mc, unicode.Pc)
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isHex(b byte) bool {
	return isDec(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// identStartsAt reports whether an identifier can start n bytes ahead.
func (lx *Lexer) identStartsAt(n uint32) bool {
	r, sz := lx.peekRuneAt(n)
	return sz > 0 && isIdentStartRune(r)
}

// eatIdentContinue consumes identifier continuation characters.
func (lx *Lexer) eatIdentContinue() {
	for !lx.cursor.EOF() {
		if b := lx.cursor.Peek(); b < utf8.RuneSelf {
			if !isIdentContinueByte(b) {
				return
			}
			lx.cursor.Bump()
			continue
		}
		r, _ := lx.peekRune()
		if !isIdentContinueRune(r) {
			return
		}
		lx.bumpRune()
	}
}

// eatSuffix consumes a literal suffix such as u8 or f64.
func (lx *Lexer) eatSuffix() {
	if lx.identStartsAt(0) {
		lx.bumpRune()
		lx.eatIdentContinue()
	}
}

func (lx *Lexer) emit(kind token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

func (lx *Lexer) invalid(start Mark, code diag.Code, msg string) token.Token {
	tok := lx.emit(token.Invalid, start)
	lx.errLex(code, tok.Span, msg)
	return tok
}
