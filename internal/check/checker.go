package check

import (
	"strings"

	"docspell/internal/docs"
)

// Finding is a checker result in chunk offsets.
type Finding struct {
	Start, End   uint32
	Word         string
	Replacements []string
}

// Checker inspects one chunk at a time.
type Checker interface {
	Detector() Detector
	Message() string
	CheckChunk(c docs.Chunk, words []Word) []Finding
}

// DictionaryChecker flags words missing from a Dictionary.
type DictionaryChecker struct {
	Dict           *Dictionary
	MinWordLength  int
	MaxSuggestions int
}

func (*DictionaryChecker) Detector() Detector { return DetectorDictionary }
func (*DictionaryChecker) Message() string    { return "spelling" }

func (dc *DictionaryChecker) CheckChunk(_ docs.Chunk, words []Word) []Finding {
	var out []Finding
	for _, w := range words {
		if !isCheckable(w.Text, dc.MinWordLength) || dc.Dict.Contains(w.Text) {
			continue
		}
		out = append(out, Finding{
			Start:        w.Start,
			End:          w.End,
			Word:         w.Text,
			Replacements: dc.Dict.Suggest(w.Text, dc.MaxSuggestions),
		})
	}
	return out
}

// RepeatChecker flags a word immediately repeated on the same line.
type RepeatChecker struct{}

func (RepeatChecker) Detector() Detector { return DetectorRepeat }
func (RepeatChecker) Message() string    { return "repeated word" }

func (RepeatChecker) CheckChunk(c docs.Chunk, words []Word) []Finding {
	var out []Finding
	for i := 1; i < len(words); i++ {
		prev, cur := words[i-1], words[i]
		gap := c.Text[prev.End:cur.Start]
		if gap == "" || strings.Trim(gap, " \t") != "" {
			continue
		}
		if !strings.EqualFold(prev.Text, cur.Text) || !hasLetter(cur.Text) {
			continue
		}
		out = append(out, Finding{
			Start:        prev.Start,
			End:          cur.End,
			Word:         c.Text[prev.Start:cur.End],
			Replacements: []string{prev.Text},
		})
	}
	return out
}

func hasLetter(s string) bool {
	for _, r := range s {
		if ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || r > 0x7f {
			return true
		}
	}
	return false
}
