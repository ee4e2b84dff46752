// Package check runs spelling checkers over extracted documentation and
// produces suggestions grouped per file.
//
// Two checkers exist: "dictionary" looks words up in hunspell style word
// lists and proposes close matches, "repeat" flags doubled words such as
// "the the". Code spans, fenced code blocks, link targets and identifier
// like words are never checked.
package check
