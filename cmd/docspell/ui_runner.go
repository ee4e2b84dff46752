package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"docspell/internal/traverse"
	"docspell/internal/ui"
)

type pipelineOutcome struct {
	result pipelineResult
	err    error
}

// runPipelineWithUI runs the pipeline in a goroutine while the progress view
// renders its events.
func runPipelineWithUI(ctx context.Context, title string, req pipelineRequest) (pipelineResult, error) {
	events := make(chan ui.Event, 256)
	outcomeCh := make(chan pipelineOutcome, 1)

	go func() {
		reqCopy := req
		reqCopy.Progress = ui.ChannelSink{Ch: events}
		res, err := runPipeline(ctx, reqCopy)
		outcomeCh <- pipelineOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, itemPaths(req.Items), events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	// the view may quit early; keep the pipeline from blocking on a full channel
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}

func itemPaths(items []traverse.CheckItem) []string {
	paths := make([]string, 0, len(items))
	for _, item := range items {
		if item.Path != "" {
			paths = append(paths, item.Path)
		}
	}
	return paths
}
