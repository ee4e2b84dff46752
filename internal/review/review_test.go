package review

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/vmihailenco/msgpack/v5"

	"docspell/internal/check"
	"docspell/internal/source"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

type scriptTerminal struct {
	keys  []rune
	err   error // returned once keys run out; ErrNonKeyEvent when nil
	lines []string
}

func (t *scriptTerminal) ReadKey() (rune, error) {
	if len(t.keys) == 0 {
		if t.err != nil {
			return 0, t.err
		}
		return 0, ErrNonKeyEvent
	}
	r := t.keys[0]
	t.keys = t.keys[1:]
	return r, nil
}

func (t *scriptTerminal) Println(s string) {
	t.lines = append(t.lines, s)
}

func (t *scriptTerminal) prompts() []string {
	var out []string
	for _, l := range t.lines {
		if strings.HasSuffix(l, "Apply this suggestion [y,n,q,a,d,j,e,?]?") {
			out = append(out, l[:strings.IndexByte(l, ')')+1])
		}
	}
	return out
}

func sugg(path, word string, start uint32) check.Suggestion {
	return check.Suggestion{
		Detector:     check.DetectorDictionary,
		Message:      "spelling",
		Path:         path,
		Span:         source.Span{Start: start, End: start + uint32(len(word))},
		Pos:          source.LineCol{Line: 1, Col: start + 1},
		Line:         strings.Repeat("x", int(start)) + word,
		Word:         word,
		Replacements: []string{"fix"},
	}
}

func file(path string, words ...string) check.FileSuggestions {
	fs := check.FileSuggestions{Path: path}
	var off uint32
	for _, w := range words {
		fs.Suggestions = append(fs.Suggestions, sugg(path, w, off))
		off += uint32(len(w)) + 1
	}
	return fs
}

func stagedWords(set *StagingSet) []string {
	var out []string
	for _, s := range set.Items() {
		out = append(out, s.Path+":"+s.Word)
	}
	return out
}

func run(t *testing.T, keys string, files ...check.FileSuggestions) (Outcome, *scriptTerminal) {
	t.Helper()
	term := &scriptTerminal{keys: []rune(keys)}
	out, err := (&Session{Term: term}).Run(context.Background(), files)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out, term
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestReviewScenarios(t *testing.T) {
	three := file("a.rs", "one", "two", "three")
	tests := []struct {
		name     string
		keys     string
		files    []check.FileSuggestions
		staged   []string
		prompts  []string
		wantQuit bool
	}{
		{
			name:    "accept then skip file",
			keys:    "yd",
			files:   []check.FileSuggestions{three},
			staged:  []string{"a.rs:one"},
			prompts: []string{"(1/3)", "(2/3)"},
		},
		{
			name:    "stage all at first",
			keys:    "a",
			files:   []check.FileSuggestions{three},
			staged:  []string{"a.rs:one", "a.rs:two", "a.rs:three"},
			prompts: []string{"(1/3)"},
		},
		{
			name:    "backward at start wraps",
			keys:    "jnyn",
			files:   []check.FileSuggestions{three},
			staged:  []string{"a.rs:two"},
			prompts: []string{"(1/3)", "(1/3)", "(2/3)", "(3/3)"},
		},
		{
			name:    "backward revisits previous",
			keys:    "nnjyy",
			files:   []check.FileSuggestions{three},
			staged:  []string{"a.rs:two", "a.rs:three"},
			prompts: []string{"(1/3)", "(2/3)", "(3/3)", "(2/3)", "(3/3)"},
		},
		{
			name:     "quit ends every file",
			keys:     "yq",
			files:    []check.FileSuggestions{three, file("b.rs", "four")},
			staged:   []string{"a.rs:one"},
			prompts:  []string{"(1/3)", "(2/3)"},
			wantQuit: true,
		},
		{
			name:     "ctrl-c quits",
			keys:     "\x03",
			files:    []check.FileSuggestions{three},
			prompts:  []string{"(1/3)"},
			wantQuit: true,
		},
		{
			name:    "forward exhaustion moves to next file",
			keys:    "nnny",
			files:   []check.FileSuggestions{three, file("b.rs", "four")},
			staged:  []string{"b.rs:four"},
			prompts: []string{"(1/3)", "(2/3)", "(3/3)", "(1/1)"},
		},
		{
			name:    "stage all skips rejected",
			keys:    "nja",
			files:   []check.FileSuggestions{three},
			staged:  []string{"a.rs:one", "a.rs:three"},
			prompts: []string{"(1/3)", "(2/3)", "(1/3)"},
		},
		{
			name:    "accept then stage all has no duplicates",
			keys:    "yja",
			files:   []check.FileSuggestions{three},
			staged:  []string{"a.rs:one", "a.rs:three"},
			prompts: []string{"(1/3)", "(2/3)", "(1/3)"},
		},
		{
			name:    "help and unknown keys re-show",
			keys:    "?zy",
			files:   []check.FileSuggestions{file("b.rs", "four")},
			staged:  []string{"b.rs:four"},
			prompts: []string{"(1/1)", "(1/1)", "(1/1)"},
		},
		{
			name:    "input end leaves the file",
			keys:    "y",
			files:   []check.FileSuggestions{three, file("b.rs", "four")},
			staged:  []string{"a.rs:one"},
			prompts: []string{"(1/3)", "(2/3)", "(1/1)"},
		},
		{
			name:    "files without suggestions are skipped",
			keys:    "y",
			files:   []check.FileSuggestions{{Path: "empty.rs"}, file("b.rs", "four")},
			staged:  []string{"b.rs:four"},
			prompts: []string{"(1/1)"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, term := run(t, tt.keys, tt.files...)
			if got := stagedWords(out.Staged); !equal(got, tt.staged) {
				t.Errorf("staged = %v, want %v", got, tt.staged)
			}
			if got := term.prompts(); !equal(got, tt.prompts) {
				t.Errorf("prompts = %v, want %v", got, tt.prompts)
			}
			if out.Quit != tt.wantQuit {
				t.Errorf("Quit = %v, want %v", out.Quit, tt.wantQuit)
			}
		})
	}
}

func TestReviewHeader(t *testing.T) {
	_, term := run(t, "d", file("src/lib.rs", "one", "two"))
	if len(term.lines) == 0 || term.lines[0] != "src/lib.rs has 2 suggestion(s)" {
		t.Fatalf("first line = %q", term.lines)
	}
	if !strings.Contains(term.lines[1], "--> src/lib.rs:1:1") {
		t.Fatalf("suggestion not rendered: %q", term.lines[1])
	}
}

func TestReviewHelpLegend(t *testing.T) {
	_, term := run(t, "?d", file("a.rs", "one"))
	var found bool
	for _, l := range term.lines {
		if strings.Contains(l, "print help") {
			found = true
		}
	}
	if !found {
		t.Fatalf("legend not printed: %q", term.lines)
	}
}

func TestReviewManualEdit(t *testing.T) {
	term := &scriptTerminal{keys: []rune("ye")}
	out, err := (&Session{Term: term}).Run(context.Background(), []check.FileSuggestions{file("a.rs", "one", "two")})
	if !errors.Is(err, ErrManualEditUnsupported) {
		t.Fatalf("err = %v, want ErrManualEditUnsupported", err)
	}
	if out.Staged.Len() != 1 {
		t.Fatalf("staged before the error = %d, want 1", out.Staged.Len())
	}
}

func TestReviewReadFailure(t *testing.T) {
	boom := errors.New("tty gone")
	term := &scriptTerminal{err: boom}
	_, err := (&Session{Term: term}).Run(context.Background(), []check.FileSuggestions{file("a.rs", "one")})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped read failure", err)
	}
}

func TestReviewCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	term := &scriptTerminal{keys: []rune("y")}
	_, err := (&Session{Term: term}).Run(ctx, []check.FileSuggestions{file("a.rs", "one")})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestCursorDirection(t *testing.T) {
	c := NewCursor(2)
	c.Show()
	c.Step(CmdBackward)
	if c.Dir != Backward || c.Pos != 0 {
		t.Fatalf("after backward: pos=%d dir=%s", c.Pos, c.Dir)
	}
	tr := c.Step(CmdReject)
	if c.Dir != Forward || c.Pos != 1 || tr.Done {
		t.Fatalf("after reject: pos=%d dir=%s done=%v", c.Pos, c.Dir, tr.Done)
	}
	tr = c.Step(CmdAccept)
	if !tr.Done || len(tr.Stage) != 1 || tr.Stage[0] != 1 {
		t.Fatalf("accept at end = %+v", tr)
	}
}

func TestCommandForKey(t *testing.T) {
	cases := map[rune]Command{
		'y': CmdAccept, 'n': CmdReject, 'q': CmdQuit, 0x03: CmdQuit,
		'a': CmdStageAll, 'd': CmdSkipFile, 'j': CmdBackward,
		'e': CmdManualEdit, '?': CmdHelp, 'Y': CmdUnknown, 'x': CmdUnknown,
	}
	for key, want := range cases {
		if got := CommandForKey(key); got != want {
			t.Errorf("CommandForKey(%q) = %s, want %s", key, got, want)
		}
	}
}

func TestStagingSet(t *testing.T) {
	set := NewStagingSet()
	a, b := sugg("a.rs", "one", 0), sugg("a.rs", "two", 4)
	if !set.Add(a) || !set.Add(b) {
		t.Fatal("first adds must be new")
	}
	if set.Add(a) {
		t.Fatal("duplicate add reported as new")
	}
	if set.Len() != 2 || !set.Contains(b) {
		t.Fatalf("set = %v", stagedWords(set))
	}
	if got := stagedWords(set); !equal(got, []string{"a.rs:one", "a.rs:two"}) {
		t.Fatalf("order = %v", got)
	}
}

func TestStagingFileRoundTrip(t *testing.T) {
	set := NewStagingSet()
	set.Add(sugg("a.rs", "one", 0))
	set.Add(sugg("b.rs", "two", 7))
	path := filepath.Join(t.TempDir(), "nested", "staged.msgpack")
	if err := WriteStagingFile(path, set); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := ReadStagingFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !equal(stagedWords(got), stagedWords(set)) {
		t.Fatalf("read back %v, want %v", stagedWords(got), stagedWords(set))
	}
	s := got.Items()[1]
	if s.Span.Start != 7 || s.Pos.Col != 8 || s.Replacements[0] != "fix" {
		t.Fatalf("fields lost: %+v", s)
	}
	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Fatalf("temp files left behind: %v", entries)
	}
}

func TestStagingFileSchema(t *testing.T) {
	data, err := msgpack.Marshal(&StagedFile{Schema: stageFileSchemaVersion + 1})
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "staged.msgpack")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadStagingFile(path); !errors.Is(err, ErrStageSchema) {
		t.Fatalf("err = %v, want ErrStageSchema", err)
	}
}

func TestUpdateStagingFileMerges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "staged.msgpack")

	first := NewStagingSet()
	first.Add(sugg("a.rs", "one", 0))
	if _, err := UpdateStagingFile(path, first); err != nil {
		t.Fatalf("first update: %v", err)
	}

	second := NewStagingSet()
	second.Add(sugg("a.rs", "one", 0))
	second.Add(sugg("b.rs", "two", 3))
	merged, err := UpdateStagingFile(path, second)
	if err != nil {
		t.Fatalf("second update: %v", err)
	}
	want := []string{"a.rs:one", "b.rs:two"}
	if got := stagedWords(merged); !equal(got, want) {
		t.Fatalf("merged = %v, want %v", got, want)
	}
	onDisk, err := ReadStagingFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := stagedWords(onDisk); !equal(got, want) {
		t.Fatalf("on disk = %v, want %v", got, want)
	}
}
