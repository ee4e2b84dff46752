package traverse

import "fmt"

// ItemKind tags the variant of a CheckItem.
type ItemKind uint8

const (
	ItemSource ItemKind = iota
	ItemMarkdown
	ItemManifestDescription
)

func (k ItemKind) String() string {
	switch k {
	case ItemSource:
		return "source"
	case ItemMarkdown:
		return "markdown"
	case ItemManifestDescription:
		return "description"
	}
	return "unknown"
}

// CheckItem is one unit of checking input. Path is set for Source and
// Markdown items, Text for ManifestDescription. CheckItem is comparable and
// two items are equal iff kind and payload match.
type CheckItem struct {
	Kind ItemKind
	Path string
	Text string
}

func Source(path string) CheckItem {
	return CheckItem{Kind: ItemSource, Path: path}
}

func Markdown(path string) CheckItem {
	return CheckItem{Kind: ItemMarkdown, Path: path}
}

func ManifestDescription(text string) CheckItem {
	return CheckItem{Kind: ItemManifestDescription, Text: text}
}

func (c CheckItem) String() string {
	if c.Kind == ItemManifestDescription {
		return fmt.Sprintf("%s(%q)", c.Kind, truncate(c.Text, 32))
	}
	return fmt.Sprintf("%s(%s)", c.Kind, c.Path)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}
