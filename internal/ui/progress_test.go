package ui

import (
	"errors"
	"strings"
	"testing"
)

func TestProgressTracksDiscoveredFiles(t *testing.T) {
	m := NewProgressModel("docspell", []string{"Cargo.toml"}, nil).(*progressModel)

	m.applyEvent(Event{File: "src/lib.rs", Stage: StageDiscover, Status: StatusQueued})
	m.applyEvent(Event{File: "src/lib.rs", Stage: StageTokenize, Status: StatusDone})
	if len(m.items) != 2 {
		t.Fatalf("items = %d, want 2", len(m.items))
	}
	if got := m.items[1].status; got != "tokenizing" {
		t.Fatalf("status after tokenize = %q", got)
	}
	if m.items[1].final {
		t.Fatal("file finished before it was checked")
	}

	m.applyEvent(Event{File: "src/lib.rs", Stage: StageCheck, Status: StatusDone})
	m.applyEvent(Event{File: "Cargo.toml", Stage: StageDiscover, Status: StatusError, Err: errors.New("bad")})
	if got := m.percent(); got != 1.0 {
		t.Fatalf("percent = %v, want 1", got)
	}
	if m.failed != 1 {
		t.Fatalf("failed = %d, want 1", m.failed)
	}

	view := m.View()
	for _, want := range []string{"2 file(s)", "1 failed", "src/lib.rs"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestProgressPipelineLabel(t *testing.T) {
	m := NewProgressModel("docspell", nil, nil).(*progressModel)
	m.applyEvent(Event{Stage: StageCheck, Status: StatusWorking})
	if m.stageLabel != "checking" {
		t.Fatalf("stageLabel = %q", m.stageLabel)
	}
	if len(m.items) != 0 {
		t.Fatal("pipeline events must not add rows")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("src/very/long/path.rs", 10); got != "src/ver..." {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("truncate = %q", got)
	}
}

func TestChannelSink(t *testing.T) {
	ch := make(chan Event, 1)
	Emit(ChannelSink{Ch: ch}, Event{File: "a.rs", Stage: StageExtract, Status: StatusWorking})
	Emit(nil, Event{File: "ignored"})
	if ev := <-ch; ev.File != "a.rs" || ev.Stage != StageExtract {
		t.Fatalf("event = %+v", ev)
	}
}
