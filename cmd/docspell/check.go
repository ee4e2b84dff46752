package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"docspell/internal/check"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [paths...]",
	Short: "Check documentation and report suggestions",
	Long: `Check collects the documentation reachable from the given paths and
prints every suggestion. Paths may be Cargo.toml files, crate directories,
Rust source files or Markdown files; without paths ./Cargo.toml is checked
recursively.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolP("recursive", "r", false, "follow `mod` declarations instead of walking directories")
	checkCmd.Flags().Int("code", 0, "exit with this code when any suggestion was found")
	checkCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	checkCmd.Flags().StringSlice("dict", nil, "hunspell .dic word lists (overrides dictionary.paths)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	recursive, err := cmd.Flags().GetBool("recursive")
	if err != nil {
		return fmt.Errorf("failed to get recursive flag: %w", err)
	}
	code, err := cmd.Flags().GetInt("code")
	if err != nil {
		return fmt.Errorf("failed to get code flag: %w", err)
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	showUI, err := parseToggle("ui", uiValue)
	if err != nil {
		return err
	}
	defer printTimings()

	items, forced, err := classifyArgs(app.logger, args)
	if err != nil {
		return err
	}
	req := pipelineRequest{Items: items, Recursive: recursive || forced}

	var res pipelineResult
	if showUI.enabled(os.Stdout) {
		res, err = runPipelineWithUI(cmd.Context(), "docspell check", req)
	} else {
		res, err = runPipeline(cmd.Context(), req)
	}
	if err != nil {
		return err
	}

	n := printSuggestions(os.Stderr, res.Suggestions)
	app.logger.Info("check finished", "files", len(res.Units), "suggestions", n)
	if n > 0 && code != 0 {
		return &ExitError{Code: code}
	}
	return nil
}

// printSuggestions writes every suggestion grouped by file and returns how
// many were printed.
func printSuggestions(w io.Writer, files []check.FileSuggestions) int {
	n := 0
	for _, f := range files {
		for _, s := range f.Suggestions {
			fmt.Fprintln(w, s.String())
			fmt.Fprintln(w)
			n++
		}
	}
	return n
}
