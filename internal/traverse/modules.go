package traverse

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"docspell/internal/lexer"
	"docspell/internal/source"
	"docspell/internal/token"
)

const (
	modKeyword   = "mod"
	modEntryFile = "mod.rs"
	rustExt      = ".rs"
)

type seekState uint8

const (
	seekKeyword seekState = iota
	seekName
	seekTerminator
)

// ExtractModules returns the files referenced by `mod name;` declarations in
// toks, in declaration order. path is the file the tokens came from; module
// files are looked up next to it as name/mod.rs and name.rs.
//
// Only tokens outside any (), [] or {} group take part, so `mod a { mod b; }`
// yields nothing for b, and the terminating ';' must not be glued to further
// punctuation. A declaration without an existing candidate is skipped.
func ExtractModules(logger *log.Logger, path string, toks []token.Token) ([]string, error) {
	logger = orDiscard(logger)
	base := filepath.Dir(path)
	if path == "" || base == path {
		return nil, fmt.Errorf("%s: must have a valid parent directory", path)
	}

	var (
		acc   []string
		state = seekKeyword
		name  string
		depth int
	)
	for _, tok := range toks {
		switch {
		case tok.IsOpenDelim():
			depth++
			state = seekKeyword
			continue
		case tok.IsCloseDelim():
			depth = max(depth-1, 0)
			state = seekKeyword
			continue
		case depth > 0:
			continue
		}

		switch {
		case state == seekName && tok.Kind == token.Ident:
			name = strings.TrimPrefix(tok.Text, "r#")
			state = seekTerminator
		case state == seekTerminator && tok.Kind == token.Punct:
			if tok.IsPunct(';') && tok.Spacing == token.Alone {
				resolved, err := resolveModule(logger, path, base, name)
				if err != nil {
					return nil, err
				}
				if resolved != "" {
					acc = append(acc, resolved)
				}
			} else {
				logger.Debug("not an isolated semicolon", "file", path, "module", name, "punct", tok.Text)
			}
			state = seekKeyword
		case tok.Kind == token.Ident && tok.Text == modKeyword:
			state = seekName
		default:
			state = seekKeyword
		}
	}
	return acc, nil
}

func resolveModule(logger *log.Logger, declarer, base, name string) (string, error) {
	dirEntry := filepath.Join(base, name, modEntryFile)
	sibling := filepath.Join(base, name+rustExt)
	dirOK, sibOK := isFile(dirEntry), isFile(sibling)
	switch {
	case dirOK && sibOK:
		return "", &AmbiguousModuleError{Declarer: declarer, Module: name, DirEntry: dirEntry, Sibling: sibling}
	case dirOK:
		return dirEntry, nil
	case sibOK:
		return sibling, nil
	}
	logger.Debug("no file for module", "file", declarer, "module", name, "dir_entry", dirEntry, "sibling", sibling)
	return "", nil
}

// ExtractModulesFromFile loads and tokenizes path, then calls ExtractModules.
// Read and tokenize failures are returned as errors.
func ExtractModulesFromFile(fs *source.FileSet, logger *log.Logger, path string) ([]string, error) {
	_, toks, err := lexer.TokenizeFile(fs, path)
	if err != nil {
		return nil, err
	}
	return ExtractModules(logger, path, toks)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func orDiscard(logger *log.Logger) *log.Logger {
	if logger != nil {
		return logger
	}
	return log.New(io.Discard)
}
