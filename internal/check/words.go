package check

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/words"
)

// Word is a word-like segment of a chunk, with chunk byte offsets.
type Word struct {
	Text  string
	Start uint32
	End   uint32
}

// segment splits text into words following UAX #29, skipping anything
// inside code or link-target ranges. Segments without a letter or digit
// (spaces, punctuation) are dropped.
func segment(text string) []Word {
	skip := codeRanges(text)
	var (
		out []Word
		off uint32
		sk  int
	)
	seg := words.FromString(text)
	for seg.Next() {
		v := seg.Value()
		start := off
		off += uint32(len(v))
		for sk < len(skip) && skip[sk].end <= start {
			sk++
		}
		if sk < len(skip) && skip[sk].start < off {
			continue
		}
		if !hasLetterOrDigit(v) {
			continue
		}
		out = append(out, Word{Text: v, Start: start, End: off})
	}
	return out
}

func hasLetterOrDigit(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}) >= 0
}

// isCheckable reports whether a word should be spell checked: it has a
// letter, no digits, is not ALLCAPS and does not look like an identifier,
// path or URL.
func isCheckable(w string, minLen int) bool {
	if utf8.RuneCountInString(w) < minLen {
		return false
	}
	if strings.ContainsAny(w, "_./:@\\#") {
		return false
	}
	letters, upper := 0, 0
	innerUpper := false
	for i, r := range w {
		switch {
		case unicode.IsDigit(r):
			return false
		case unicode.IsUpper(r):
			upper++
			letters++
			innerUpper = innerUpper || i > 0
		case unicode.IsLetter(r):
			letters++
		}
	}
	switch {
	case letters == 0:
		return false
	case upper > 1 && upper == letters:
		return false
	}
	return !innerUpper
}

type span struct{ start, end uint32 }

// codeRanges finds fenced code blocks, inline code spans and markdown link
// destinations. The result is sorted and non-overlapping.
func codeRanges(text string) []span {
	var out []span
	inFence := false
	fence := ""
	var fenceStart uint32
	lineStart := 0
	for lineStart <= len(text) {
		lineEnd := strings.IndexByte(text[lineStart:], '\n')
		if lineEnd < 0 {
			lineEnd = len(text)
		} else {
			lineEnd += lineStart
		}
		line := text[lineStart:lineEnd]
		trimmed := strings.TrimLeft(line, " \t*")
		switch {
		case inFence:
			if strings.HasPrefix(trimmed, fence) {
				inFence = false
				out = append(out, span{fenceStart, uint32(lineEnd)})
			}
		case strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~"):
			inFence = true
			fence = trimmed[:3]
			fenceStart = uint32(lineStart)
		default:
			out = append(out, inlineRanges(line, uint32(lineStart))...)
		}
		if lineEnd == len(text) {
			break
		}
		lineStart = lineEnd + 1
	}
	if inFence {
		out = append(out, span{fenceStart, uint32(len(text))})
	}
	return out
}

// inlineRanges finds `code` spans and ](destinations) within one line.
func inlineRanges(line string, base uint32) []span {
	var out []span
	for i := 0; i < len(line); {
		switch {
		case line[i] == '`':
			n := 1
			for i+n < len(line) && line[i+n] == '`' {
				n++
			}
			ticks := line[i : i+n]
			end := strings.Index(line[i+n:], ticks)
			if end < 0 {
				i += n
				continue
			}
			stop := i + n + end + n
			out = append(out, span{base + uint32(i), base + uint32(stop)})
			i = stop
		case strings.HasPrefix(line[i:], "]("):
			end := strings.IndexByte(line[i:], ')')
			if end < 0 {
				i += 2
				continue
			}
			out = append(out, span{base + uint32(i), base + uint32(i+end+1)})
			i += end + 1
		case line[i] == '<' && (strings.HasPrefix(line[i+1:], "http") || strings.HasPrefix(line[i+1:], "mailto:")):
			end := strings.IndexByte(line[i:], '>')
			if end < 0 {
				i++
				continue
			}
			out = append(out, span{base + uint32(i), base + uint32(i+end+1)})
			i += end + 1
		default:
			i++
		}
	}
	return out
}
