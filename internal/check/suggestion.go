package check

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"docspell/internal/source"
)

// Detector names the checker that produced a suggestion.
type Detector string

const (
	DetectorDictionary Detector = "dictionary"
	DetectorRepeat     Detector = "repeat"
)

// Suggestion proposes replacing the text at Span.
type Suggestion struct {
	Detector     Detector
	Message      string
	Path         string // display path of the file
	Span         source.Span
	Pos          source.LineCol // start of Span
	Line         string         // the source line holding Pos
	Word         string         // flagged text
	Replacements []string
}

// Key identifies a suggestion for equality and hashing.
type Key struct {
	Detector     Detector
	Path         string
	Start, End   uint32
	Replacements string
}

func (s Suggestion) Key() Key {
	return Key{
		Detector:     s.Detector,
		Path:         s.Path,
		Start:        s.Span.Start,
		End:          s.Span.End,
		Replacements: strings.Join(s.Replacements, "\x00"),
	}
}

var (
	errorStyle  = color.New(color.FgRed, color.Bold)
	titleStyle  = color.New(color.Bold)
	gutterStyle = color.New(color.FgBlue, color.Bold)
	markStyle   = color.New(color.FgRed, color.Bold)
	hintStyle   = color.New(color.FgGreen)
)

const tabWidth = 4

// String renders the suggestion the way rustc renders a diagnostic.
func (s Suggestion) String() string {
	lineNo := strconv.FormatUint(uint64(s.Pos.Line), 10)
	pad := strings.Repeat(" ", len(lineNo))
	bar := gutterStyle.Sprint("|")

	line := strings.ReplaceAll(s.Line, "\t", strings.Repeat(" ", tabWidth))
	col := int(s.Pos.Col) - 1
	col = max(0, min(col, len(s.Line)))
	prefix := strings.ReplaceAll(s.Line[:col], "\t", strings.Repeat(" ", tabWidth))
	marked := s.Word
	if i := strings.IndexByte(marked, '\n'); i >= 0 {
		marked = marked[:i]
	}
	indent := strings.Repeat(" ", runewidth.StringWidth(prefix))
	carets := strings.Repeat("^", max(1, runewidth.StringWidth(marked)))

	hint := "no suggestions"
	if len(s.Replacements) > 0 {
		hint = strings.Join(s.Replacements, ", ")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s%s\n", errorStyle.Sprint("error"), titleStyle.Sprintf(": %s (%s)", s.Message, s.Detector))
	fmt.Fprintf(&b, "%s%s %s:%d:%d\n", pad, gutterStyle.Sprint("-->"), s.Path, s.Pos.Line, s.Pos.Col)
	fmt.Fprintf(&b, "%s %s\n", pad, bar)
	fmt.Fprintf(&b, "%s %s %s\n", gutterStyle.Sprint(lineNo), bar, line)
	fmt.Fprintf(&b, "%s %s %s%s\n", pad, bar, indent, markStyle.Sprint(carets))
	fmt.Fprintf(&b, "%s %s %s%s\n", pad, bar, indent, hintStyle.Sprint("- "+hint))
	fmt.Fprintf(&b, "%s %s", pad, bar)
	return b.String()
}

// FileSuggestions holds the suggestions for one file sorted by position.
type FileSuggestions struct {
	File        source.FileID
	Path        string
	Suggestions []Suggestion
}
