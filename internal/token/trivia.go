package token

import "docspell/internal/source"

// TriviaKind classifies whitespace and comments preceding a token.
type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
	TriviaDocOuterLine  // ///
	TriviaDocInnerLine  // //!
	TriviaDocOuterBlock // /** */
	TriviaDocInnerBlock // /*! */
	TriviaShebang
)

var triviaNames = [...]string{
	TriviaSpace:         "Space",
	TriviaNewline:       "Newline",
	TriviaLineComment:   "LineComment",
	TriviaBlockComment:  "BlockComment",
	TriviaDocOuterLine:  "DocOuterLine",
	TriviaDocInnerLine:  "DocInnerLine",
	TriviaDocOuterBlock: "DocOuterBlock",
	TriviaDocInnerBlock: "DocInnerBlock",
	TriviaShebang:       "Shebang",
}

func (k TriviaKind) String() string {
	if int(k) < len(triviaNames) {
		return triviaNames[k]
	}
	return "TriviaKind(?)"
}

// IsDoc reports whether the trivia is a doc comment.
func (k TriviaKind) IsDoc() bool {
	switch k {
	case TriviaDocOuterLine, TriviaDocInnerLine, TriviaDocOuterBlock, TriviaDocInnerBlock:
		return true
	default:
		return false
	}
}

// IsLineDoc reports whether the trivia is a /// or //! comment.
func (k TriviaKind) IsLineDoc() bool {
	return k == TriviaDocOuterLine || k == TriviaDocInnerLine
}

// Trivia is a whitespace or comment run with its exact source text.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
