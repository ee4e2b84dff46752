package review

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"docspell/internal/check"
)

var (
	// ErrManualEditUnsupported is returned when the user asks to edit a
	// suggestion by hand.
	ErrManualEditUnsupported = errors.New("manual editing of suggestions is not supported")
	// ErrNonKeyEvent is returned by a Terminal when the input produced
	// something other than a key press, such as end of input.
	ErrNonKeyEvent = errors.New("non-key terminal event")
)

// Terminal is the review's only view of the user.
type Terminal interface {
	// ReadKey blocks until the next key press.
	ReadKey() (rune, error)
	Println(s string)
}

// Outcome summarises a finished review.
type Outcome struct {
	Staged *StagingSet
	// Quit is set when the user ended the review early.
	Quit bool
}

// Session runs an interactive review over a terminal.
type Session struct {
	Term   Terminal
	Logger *log.Logger
}

// Run reviews the suggestions file by file and returns what was staged.
// Quitting is a successful outcome; manual-edit and terminal failures are
// errors and come with whatever was staged before them.
func (s *Session) Run(ctx context.Context, files []check.FileSuggestions) (Outcome, error) {
	logger := s.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	out := Outcome{Staged: NewStagingSet()}
	for _, f := range files {
		if len(f.Suggestions) == 0 {
			continue
		}
		quit, err := s.reviewFile(ctx, logger, f, out.Staged)
		if err != nil {
			return out, err
		}
		if quit {
			out.Quit = true
			break
		}
	}
	return out, nil
}

func (s *Session) reviewFile(ctx context.Context, logger *log.Logger, f check.FileSuggestions, staged *StagingSet) (bool, error) {
	n := len(f.Suggestions)
	s.Term.Println(fmt.Sprintf("%s has %d suggestion(s)", f.Path, n))

	cur := NewCursor(n)
	for !cur.Exhausted() {
		if err := ctx.Err(); err != nil {
			return false, fmt.Errorf("review interrupted: %w", err)
		}
		cur.Show()
		s.Term.Println(f.Suggestions[cur.Pos].String())
		s.Term.Println(fmt.Sprintf("(%d/%d) Apply this suggestion %s?", cur.Pos+1, n, promptKeys))

		key, err := s.Term.ReadKey()
		if errors.Is(err, ErrNonKeyEvent) {
			logger.Debug("input ended, leaving file", "file", f.Path)
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("read key: %w", err)
		}

		cmd := CommandForKey(key)
		switch cmd {
		case CmdManualEdit:
			return false, ErrManualEditUnsupported
		case CmdHelp:
			for _, line := range Help() {
				s.Term.Println(line)
			}
			continue
		case CmdUnknown:
			logger.Debug("unrecognized key", "key", fmt.Sprintf("%q", key))
			continue
		}

		t := cur.Step(cmd)
		for _, i := range t.Stage {
			staged.Add(f.Suggestions[i])
		}
		if t.Quit {
			return true, nil
		}
		if t.Done {
			break
		}
	}
	return false, nil
}
