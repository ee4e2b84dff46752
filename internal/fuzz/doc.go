// Package fuzztests houses Go fuzz harnesses for the front half of docspell:
// source -> lexer -> module recognizer -> doc extraction. They guard against
// panics and out-of-range spans on arbitrary input.
//
// Inputs are loaded into a FileSet as virtual files; the harnesses never read
// the file system and never run the spelling checkers.
package fuzztests
