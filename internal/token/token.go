package token

import (
	"docspell/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Spacing Spacing // meaningful for Punct only
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric, string, byte or char literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StrLit, RawStrLit, ByteStrLit, CStrLit, CharLit, ByteLit:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsPunct reports whether the token is the single punctuation character ch.
func (t Token) IsPunct(ch byte) bool {
	return t.Kind == Punct && len(t.Text) == 1 && t.Text[0] == ch
}

// IsOpenDelim reports whether the token opens a (), [] or {} group.
func (t Token) IsOpenDelim() bool {
	return t.Kind == LParen || t.Kind == LBracket || t.Kind == LBrace
}

// IsCloseDelim reports whether the token closes a (), [] or {} group.
func (t Token) IsCloseDelim() bool {
	return t.Kind == RParen || t.Kind == RBracket || t.Kind == RBrace
}
