// Package token defines the lexical tokens produced for Rust sources.
// Invariants:
//   - Token.Text is the exact source slice covered by Token.Span.
//   - Keywords are lexed as Ident; callers compare Text.
//   - Punct tokens are always a single character; multi-character operators
//     are expressed through Spacing (Joint means glued to the next punct).
//   - Comments and doc comments never appear in the token stream; they are
//     attached as Leading trivia to the next token (EOF included).
package token
