package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident is an identifier or keyword, raw identifiers included (r#type).
	Ident
	// Lifetime is a lifetime or label such as 'a or 'static.
	Lifetime

	// IntLit is an integer literal, suffix included.
	IntLit
	// FloatLit is a float literal, suffix included.
	FloatLit
	// StrLit is a "..." string literal.
	StrLit
	// RawStrLit is a r"..." or r#"..."# string literal.
	RawStrLit
	// ByteStrLit is a b"..." or br"..." literal.
	ByteStrLit
	// CStrLit is a c"..." or cr"..." literal.
	CStrLit
	// CharLit is a 'x' literal.
	CharLit
	// ByteLit is a b'x' literal.
	ByteLit

	// Punct is a single punctuation character.
	Punct

	LParen   // (
	RParen   // )
	LBracket // [
	RBracket // ]
	LBrace   // {
	RBrace   // }
)

var kindNames = [...]string{
	Invalid:    "Invalid",
	EOF:        "EOF",
	Ident:      "Ident",
	Lifetime:   "Lifetime",
	IntLit:     "IntLit",
	FloatLit:   "FloatLit",
	StrLit:     "StrLit",
	RawStrLit:  "RawStrLit",
	ByteStrLit: "ByteStrLit",
	CStrLit:    "CStrLit",
	CharLit:    "CharLit",
	ByteLit:    "ByteLit",
	Punct:      "Punct",
	LParen:     "LParen",
	RParen:     "RParen",
	LBracket:   "LBracket",
	RBracket:   "RBracket",
	LBrace:     "LBrace",
	RBrace:     "RBrace",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Spacing tells whether a Punct is immediately followed by another Punct.
type Spacing uint8

const (
	// Alone means the next character is not punctuation.
	Alone Spacing = iota
	// Joint means the punct is glued to the following punct, as in "::" or "->".
	Joint
)

func (s Spacing) String() string {
	if s == Joint {
		return "Joint"
	}
	return "Alone"
}
