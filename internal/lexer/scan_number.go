package lexer

import (
	"docspell/internal/diag"
	"docspell/internal/token"
)

// scanNumber scans integer and float literals:
// 0b1010, 0o17, 0xFF_u8, 42, 1_000i64, 1.5, 1., 2e10, 6.02E+23f64.
// "1..2", "1.foo()" and "t.0.1" leave the dot alone.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	c := &lx.cursor

	if c.Peek() == '0' {
		var digit func(byte) bool
		switch c.PeekAt(1) {
		case 'b':
			digit = func(b byte) bool { return b == '0' || b == '1' }
		case 'o':
			digit = func(b byte) bool { return b >= '0' && b <= '7' }
		case 'x':
			digit = isHex
		}
		if digit != nil {
			c.BumpN(2)
			if n := lx.eatDigits(digit); n == 0 {
				return lx.invalid(start, diag.LexBadNumber, "missing digits after integer base prefix")
			}
			lx.eatSuffix()
			return lx.emit(token.IntLit, start)
		}
	}

	kind := token.IntLit
	lx.eatDigits(isDec)

	if c.Peek() == '.' {
		next := c.PeekAt(1)
		if next != '.' && !lx.identStartsAt(1) {
			c.Bump()
			kind = token.FloatLit
			lx.eatDigits(isDec)
		}
	}

	if b := c.Peek(); b == 'e' || b == 'E' {
		off := uint32(1)
		if s := c.PeekAt(1); s == '+' || s == '-' {
			off = 2
		}
		if isDec(c.PeekAt(off)) {
			c.BumpN(int(off))
			lx.eatDigits(isDec)
			kind = token.FloatLit
		}
	}

	lx.eatSuffix()
	return lx.emit(kind, start)
}

// eatDigits consumes digits accepted by digit plus '_' separators and
// returns how many real digits were seen.
func (lx *Lexer) eatDigits(digit func(byte) bool) int {
	n := 0
	for {
		b := lx.cursor.Peek()
		switch {
		case b == '_':
		case digit(b):
			n++
		default:
			return n
		}
		lx.cursor.Bump()
	}
}
