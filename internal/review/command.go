package review

import "github.com/charmbracelet/lipgloss"

// Command is one decision taken on the displayed suggestion.
type Command uint8

const (
	CmdUnknown Command = iota
	CmdAccept
	CmdReject
	CmdQuit
	CmdStageAll
	CmdSkipFile
	CmdBackward
	CmdManualEdit
	CmdHelp
)

const keyCtrlC = 0x03

// CommandForKey maps a key press to its command.
func CommandForKey(r rune) Command {
	switch r {
	case 'y':
		return CmdAccept
	case 'n':
		return CmdReject
	case 'q', keyCtrlC:
		return CmdQuit
	case 'a':
		return CmdStageAll
	case 'd':
		return CmdSkipFile
	case 'j':
		return CmdBackward
	case 'e':
		return CmdManualEdit
	case '?':
		return CmdHelp
	default:
		return CmdUnknown
	}
}

func (c Command) String() string {
	switch c {
	case CmdAccept:
		return "accept"
	case CmdReject:
		return "reject"
	case CmdQuit:
		return "quit"
	case CmdStageAll:
		return "stage-all-remaining"
	case CmdSkipFile:
		return "skip-file"
	case CmdBackward:
		return "go-backward"
	case CmdManualEdit:
		return "manual-edit"
	case CmdHelp:
		return "help"
	default:
		return "unknown"
	}
}

const promptKeys = "[y,n,q,a,d,j,e,?]"

var legend = []struct {
	key, text string
}{
	{"y", "apply this suggestion"},
	{"n", "do not apply the suggestion"},
	{"q", "quit; do not stage this suggestion or any of the remaining ones"},
	{"a", "stage this suggestion and all later suggestions in the file"},
	{"d", "do not apply this suggestion and skip the rest of the file"},
	{"j", "leave this suggestion undecided, see previous suggestion"},
	{"e", "manually edit the current suggestion"},
	{"?", "print help"},
}

var (
	legendKeyStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	legendTextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
)

// Help returns the key legend, one line per key.
func Help() []string {
	lines := make([]string, 0, len(legend))
	for _, l := range legend {
		lines = append(lines, legendKeyStyle.Render(l.key)+" - "+legendTextStyle.Render(l.text))
	}
	return lines
}
