package check

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// maxEditDistance bounds how far a replacement may be from the word.
const maxEditDistance = 2

// Dictionary is a set of known words. Lookups are case-folded and NFC
// normalised; the original spelling is kept for suggestions.
type Dictionary struct {
	known map[string]struct{}
	words []string // original spellings, one per folded form
	fold  cases.Caser
}

func NewDictionary(words ...string) *Dictionary {
	d := &Dictionary{
		known: make(map[string]struct{}, len(words)),
		fold:  cases.Fold(),
	}
	for _, w := range words {
		d.Add(w)
	}
	return d
}

func (d *Dictionary) key(w string) string {
	return d.fold.String(norm.NFC.String(w))
}

// Add inserts a word; empty strings are ignored.
func (d *Dictionary) Add(w string) {
	w = strings.TrimSpace(w)
	if w == "" {
		return
	}
	k := d.key(w)
	if _, ok := d.known[k]; ok {
		return
	}
	d.known[k] = struct{}{}
	d.words = append(d.words, norm.NFC.String(w))
}

func (d *Dictionary) Len() int { return len(d.words) }

// Contains reports whether w is known. Curly apostrophes are treated as
// straight ones and a possessive 's is accepted on known words.
func (d *Dictionary) Contains(w string) bool {
	w = strings.ReplaceAll(w, "’", "'")
	if _, ok := d.known[d.key(w)]; ok {
		return true
	}
	if base, ok := strings.CutSuffix(w, "'s"); ok && base != "" {
		_, ok := d.known[d.key(base)]
		return ok
	}
	return false
}

type candidate struct {
	word string
	dist int
}

// Suggest returns up to limit known words within maxEditDistance of w,
// closest first and alphabetical on ties. A capitalised w gets capitalised
// suggestions.
func (d *Dictionary) Suggest(w string, limit int) []string {
	if limit <= 0 {
		return nil
	}
	target := []rune(d.key(w))
	var found []candidate
	for _, cand := range d.words {
		folded := []rune(d.key(cand))
		if abs(len(folded)-len(target)) > maxEditDistance {
			continue
		}
		if dist := editDistance(target, folded, maxEditDistance); dist <= maxEditDistance {
			found = append(found, candidate{word: cand, dist: dist})
		}
	}
	sort.Slice(found, func(i, j int) bool {
		if found[i].dist != found[j].dist {
			return found[i].dist < found[j].dist
		}
		return found[i].word < found[j].word
	})

	capital := startsUpper(w)
	out := make([]string, 0, min(limit, len(found)))
	for _, c := range found[:min(limit, len(found))] {
		if capital {
			c.word = upperFirst(c.word)
		}
		out = append(out, c.word)
	}
	return out
}

// LoadDictionary reads hunspell .dic files and adds the extra words.
func LoadDictionary(paths []string, extra []string) (*Dictionary, error) {
	d := NewDictionary(extra...)
	for _, path := range paths {
		f, err := os.Open(path) // #nosec G304 -- path comes from configuration
		if err != nil {
			return nil, fmt.Errorf("open dictionary: %w", err)
		}
		err = d.ReadDic(f)
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("read dictionary %s: %w", path, err)
		}
	}
	return d, nil
}

// ReadDic adds the words of a hunspell .dic stream. The optional leading word
// count, affix flags after '/' and morphological fields are ignored.
func (d *Dictionary) ReadDic(r io.Reader) error {
	sc := bufio.NewScanner(r)
	first := true
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if first {
			first = false
			if line != "" && strings.IndexFunc(line, func(r rune) bool { return !unicode.IsDigit(r) }) < 0 {
				continue
			}
		}
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if i := strings.IndexAny(line, " \t"); i >= 0 {
			line = line[:i]
		}
		if i := strings.IndexByte(line, '/'); i >= 0 {
			line = line[:i]
		}
		d.Add(line)
	}
	return sc.Err()
}

func startsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}

func upperFirst(s string) string {
	r, sz := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[sz:]
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
