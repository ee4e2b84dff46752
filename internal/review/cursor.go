package review

// Direction is the travel direction of the cursor.
type Direction uint8

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Cursor walks the suggestions of one file. Moving forward past the last
// suggestion ends the file; moving backward before the first wraps to it.
type Cursor struct {
	Pos int
	Dir Direction
	n   int
	// seen marks suggestions that were displayed at least once.
	seen []bool
}

// Transition is the result of one Step.
type Transition struct {
	// Stage lists suggestion indices to stage, in order.
	Stage []int
	// Done ends the review of this file.
	Done bool
	// Quit ends the whole review.
	Quit bool
}

func NewCursor(n int) *Cursor {
	return &Cursor{n: n, seen: make([]bool, n)}
}

// Exhausted reports whether no suggestion is left to display.
func (c *Cursor) Exhausted() bool {
	return c.Pos >= c.n
}

// Show marks the current suggestion as displayed.
func (c *Cursor) Show() {
	if !c.Exhausted() {
		c.seen[c.Pos] = true
	}
}

// Step applies cmd to the cursor. Help, unknown keys and manual-edit leave
// the state untouched; the caller handles them.
func (c *Cursor) Step(cmd Command) Transition {
	switch cmd {
	case CmdAccept:
		t := Transition{Stage: []int{c.Pos}}
		c.forward()
		t.Done = c.Exhausted()
		return t
	case CmdReject:
		c.forward()
		return Transition{Done: c.Exhausted()}
	case CmdQuit:
		c.Dir = Forward
		return Transition{Quit: true}
	case CmdStageAll:
		stage := []int{c.Pos}
		for i := range c.n {
			if i != c.Pos && !c.seen[i] {
				stage = append(stage, i)
			}
		}
		c.Dir = Forward
		c.Pos = c.n
		return Transition{Stage: stage, Done: true}
	case CmdSkipFile:
		c.Dir = Forward
		c.Pos = c.n
		return Transition{Done: true}
	case CmdBackward:
		c.Dir = Backward
		if c.Pos > 0 {
			c.Pos--
		}
		return Transition{}
	default:
		return Transition{}
	}
}

func (c *Cursor) forward() {
	c.Dir = Forward
	c.Pos++
}
