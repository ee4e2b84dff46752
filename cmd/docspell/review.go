package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"docspell/internal/review"
)

var reviewCmd = &cobra.Command{
	Use:   "review [flags] [paths...]",
	Short: "Walk through suggestions and stage the ones to apply",
	Long: `Review shows suggestions one at a time and reads a single key for each:
y accept, n reject, q quit, a stage the rest of the file, d skip the file,
j go back, e edit by hand (unsupported), ? help.`,
	RunE: runReview,
}

func init() {
	reviewCmd.Flags().BoolP("recursive", "r", false, "follow `mod` declarations instead of walking directories")
	reviewCmd.Flags().String("stage-file", "", "add staged suggestions to this file (msgpack); entries already in it are kept")
	reviewCmd.Flags().StringSlice("dict", nil, "hunspell .dic word lists (overrides dictionary.paths)")
}

func runReview(cmd *cobra.Command, args []string) error {
	recursive, err := cmd.Flags().GetBool("recursive")
	if err != nil {
		return fmt.Errorf("failed to get recursive flag: %w", err)
	}
	defer printTimings()

	items, forced, err := classifyArgs(app.logger, args)
	if err != nil {
		return err
	}
	res, err := runPipeline(cmd.Context(), pipelineRequest{Items: items, Recursive: recursive || forced})
	if err != nil {
		return err
	}

	session := &review.Session{
		Term:   review.NewStdTerminal(os.Stdin, cmd.OutOrStdout()),
		Logger: app.logger,
	}
	var outcome review.Outcome
	err = app.timer.Track("review", func() (string, error) {
		var err error
		outcome, err = session.Run(cmd.Context(), res.Suggestions)
		return fmt.Sprintf("%d staged", outcome.Staged.Len()), err
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "staged %d suggestion(s)\n", outcome.Staged.Len())
	if path := app.cfg.Review.StageFile; path != "" {
		merged, err := review.UpdateStagingFile(path, outcome.Staged)
		if err != nil {
			return err
		}
		app.logger.Info("updated staging file", "path", path, "suggestions", merged.Len())
	}
	return nil
}
