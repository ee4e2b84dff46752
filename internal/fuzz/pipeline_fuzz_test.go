package fuzztests

import (
	"path/filepath"
	"testing"

	"docspell/internal/docs"
	"docspell/internal/lexer"
	"docspell/internal/source"
	"docspell/internal/testkit"
	"docspell/internal/traverse"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func load(input []byte) (*source.FileSet, *source.File) {
	input = clampSeed(input)
	fs := source.NewFileSet()
	return fs, fs.Get(fs.AddVirtual("fuzz.rs", input))
}

func FuzzTokenize(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = input[:maxFuzzInput]
		}
		fs, file := load(input)
		toks, err := lexer.Tokenize(file)
		if err != nil {
			return
		}
		if err := testkit.CheckTokenInvariants(toks, fs.Get(file.ID)); err != nil {
			t.Fatal(err)
		}
	})
}

func FuzzExtractModules(f *testing.F) {
	addCorpusSeeds(f)
	dir := f.TempDir()
	f.Fuzz(func(t *testing.T, input []byte) {
		_, file := load(input)
		toks, err := lexer.Tokenize(file)
		if err != nil {
			return
		}
		// no candidate files exist, so every module must resolve to nothing
		mods, err := traverse.ExtractModules(nil, filepath.Join(dir, "lib.rs"), toks)
		if err != nil {
			t.Fatalf("ExtractModules: %v", err)
		}
		if len(mods) != 0 {
			t.Fatalf("resolved %v without files", mods)
		}
	})
}

func FuzzDocsFromSource(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		fs, file := load(input)
		toks, err := lexer.Tokenize(file)
		if err != nil {
			return
		}
		if err := testkit.CheckChunkInvariants(docs.FromSource(file, toks), fs); err != nil {
			t.Fatal(err)
		}
	})
}
