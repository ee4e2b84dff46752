package lexer

import (
	"docspell/internal/diag"
	"docspell/internal/token"
)

// collectLeadingTrivia gathers the trivia preceding the next significant token.
//   - runs of ' ', '\t', '\r', '\f', '\v' coalesce into one TriviaSpace
//   - runs of '\n' coalesce into one TriviaNewline
//   - "//" to end of line is a line comment; "///" and "//!" are doc comments
//     unless the "///" is followed by another '/'
//   - "/* */" nests; "/**" and "/*!" are doc comments except "/**/" and "/***"
//   - a "#!" first line that does not open an attribute is a shebang
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = nil
	if lx.cursor.Off == 0 && lx.cursor.HasPrefix("#!") && lx.cursor.PeekAt(2) != '[' {
		start := lx.cursor.Mark()
		lx.skipLine()
		lx.pushTrivia(token.TriviaShebang, start)
	}
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		switch b := lx.cursor.Peek(); {
		case isSpace(b):
			for isSpace(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaSpace, start)
		case b == '\n':
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaNewline, start)
		case lx.cursor.HasPrefix("//"):
			kind := token.TriviaLineComment
			switch {
			case lx.cursor.HasPrefix("///") && lx.cursor.PeekAt(3) != '/':
				kind = token.TriviaDocOuterLine
			case lx.cursor.HasPrefix("//!"):
				kind = token.TriviaDocInnerLine
			}
			lx.skipLine()
			lx.pushTrivia(kind, start)
		case lx.cursor.HasPrefix("/*"):
			kind := token.TriviaBlockComment
			switch {
			case lx.cursor.HasPrefix("/**") && lx.cursor.PeekAt(3) != '*' && lx.cursor.PeekAt(3) != '/':
				kind = token.TriviaDocOuterBlock
			case lx.cursor.HasPrefix("/*!"):
				kind = token.TriviaDocInnerBlock
			}
			lx.skipBlockComment(start)
			lx.pushTrivia(kind, start)
		default:
			return
		}
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\f' || b == '\v'
}

func (lx *Lexer) skipLine() {
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
}

// skipBlockComment consumes a possibly nested "/* */"; the cursor is on the opening '/'.
func (lx *Lexer) skipBlockComment(start Mark) {
	lx.cursor.BumpN(2)
	depth := 1
	for !lx.cursor.EOF() && depth > 0 {
		switch {
		case lx.cursor.HasPrefix("/*"):
			lx.cursor.BumpN(2)
			depth++
		case lx.cursor.HasPrefix("*/"):
			lx.cursor.BumpN(2)
			depth--
		default:
			lx.cursor.Bump()
		}
	}
	if depth > 0 {
		lx.errLex(diag.LexUnterminatedBlockComment, lx.cursor.SpanFrom(start), "unterminated block comment")
	}
}

func (lx *Lexer) pushTrivia(kind token.TriviaKind, start Mark) {
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	})
}
