package ui

import "time"

// Stage describes a high-level pipeline phase.
type Stage string

const (
	// StageDiscover resolves modules and walks directories.
	StageDiscover Stage = "discover"
	// StageTokenize loads and tokenizes a file.
	StageTokenize Stage = "tokenize"
	// StageExtract pulls documentation out of tokens.
	StageExtract Stage = "extract"
	// StageCheck runs the checkers.
	StageCheck Stage = "check"
)

// Status captures progress state within a stage.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	StatusDone    Status = "done"
	StatusSkipped Status = "skipped"
	StatusError   Status = "error"
)

// Event reports progress for a file (or for the overall pipeline when File is empty).
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// Sink consumes progress events.
type Sink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

// Emit sends evt to sink when sink is not nil.
func Emit(sink Sink, evt Event) {
	if sink != nil {
		sink.OnEvent(evt)
	}
}
