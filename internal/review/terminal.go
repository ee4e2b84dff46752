package review

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/term"
)

// StdTerminal reads single keys from in and prints to out. When in is a
// terminal it is switched to raw mode for the duration of each read so
// keys arrive without Enter; otherwise line breaks between keys are skipped.
type StdTerminal struct {
	in  *os.File
	out io.Writer
}

func NewStdTerminal(in *os.File, out io.Writer) *StdTerminal {
	return &StdTerminal{in: in, out: out}
}

func (t *StdTerminal) isTerminal() bool {
	return term.IsTerminal(int(t.in.Fd()))
}

func (t *StdTerminal) ReadKey() (rune, error) {
	if !t.isTerminal() {
		return t.readPiped()
	}
	fd := int(t.in.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return 0, fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, state)
	}()

	var buf [utf8.UTFMax]byte
	n, err := t.in.Read(buf[:])
	if n == 0 {
		if err == nil || errors.Is(err, io.EOF) {
			return 0, ErrNonKeyEvent
		}
		return 0, err
	}
	r, _ := utf8.DecodeRune(buf[:n])
	return r, nil
}

func (t *StdTerminal) readPiped() (rune, error) {
	var buf [1]byte
	for {
		n, err := t.in.Read(buf[:])
		if n == 1 {
			switch buf[0] {
			case '\n', '\r', ' ', '\t':
				continue
			}
			return rune(buf[0]), nil
		}
		if err == nil {
			continue
		}
		if errors.Is(err, io.EOF) {
			return 0, ErrNonKeyEvent
		}
		return 0, err
	}
}

func (t *StdTerminal) Println(s string) {
	fmt.Fprintln(t.out, s)
}
