package main

import (
	"context"
	"fmt"
	"os"

	"docspell/internal/check"
	"docspell/internal/docs"
	"docspell/internal/source"
	"docspell/internal/traverse"
	"docspell/internal/ui"
)

// pipelineRequest describes one check run.
type pipelineRequest struct {
	Items     []traverse.CheckItem
	Recursive bool
	Progress  ui.Sink
}

type pipelineResult struct {
	FileSet     *source.FileSet
	Units       []traverse.Unit
	Doc         *docs.Documentation
	Suggestions []check.FileSuggestions
}

// runPipeline discovers the files, extracts their documentation and runs the
// checkers. It is strictly sequential.
func runPipeline(ctx context.Context, req pipelineRequest) (pipelineResult, error) {
	res := pipelineResult{FileSet: source.NewFileSet()}
	baseDir, err := os.Getwd()
	if err != nil {
		baseDir = ""
	}

	var traversed *traverse.Result
	err = app.timer.Track("discover", func() (string, error) {
		var err error
		traversed, err = traverse.Run(ctx, res.FileSet, req.Items, traverse.Options{
			Recursive: req.Recursive,
			Logger:    app.logger,
			Sink:      req.Progress,
		})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d file(s)", len(traversed.Units)), nil
	})
	if err != nil {
		return res, err
	}
	res.Units = traversed.Units

	err = app.timer.Track("extract", func() (string, error) {
		doc, err := docs.FromUnits(res.Units, req.Progress)
		if err != nil {
			return "", err
		}
		res.Doc = doc
		return fmt.Sprintf("%d chunk(s)", res.Doc.ChunkCount()), nil
	})
	if err != nil {
		return res, err
	}

	err = app.timer.Track("check", func() (string, error) {
		ui.Emit(req.Progress, ui.Event{Stage: ui.StageCheck, Status: ui.StatusWorking})
		suggestions, err := check.Check(res.FileSet, res.Doc, app.cfg.CheckConfig(baseDir))
		if err != nil {
			return "", err
		}
		res.Suggestions = suggestions
		for _, u := range res.Units {
			emitChecked(req.Progress, u)
		}
		return fmt.Sprintf("%d suggestion(s)", check.Count(suggestions)), nil
	})
	return res, err
}

func emitChecked(sink ui.Sink, u traverse.Unit) {
	if u.Item.Path == "" {
		return
	}
	ui.Emit(sink, ui.Event{File: u.Item.Path, Stage: ui.StageCheck, Status: ui.StatusDone})
}
