package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"docspell/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "docspell",
	Short: "Spell check the documentation of Rust crates",
	Long: `docspell collects doc comments, README files and manifest descriptions
of a Rust crate by following its module tree, and checks them for spelling
mistakes and repeated words`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupApp,
}

// main registers subcommands and persistent flags and executes the root
// command. Errors are printed as `docspell: <msg>`; an *ExitError picks the
// exit status, anything else exits with 1.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(modulesCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	// global flags
	rootCmd.PersistentFlags().String("config", "", "config file (default $XDG_CONFIG_HOME/docspell/config.toml, then ./docspell.toml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write a CPU profile to this file")
	rootCmd.PersistentFlags().String("mem-profile", "", "write a heap profile to this file")
	_ = rootCmd.PersistentFlags().MarkHidden("cpu-profile")
	_ = rootCmd.PersistentFlags().MarkHidden("mem-profile")

	os.Exit(run(rootCmd, os.Args[1:]))
}

func run(cmd *cobra.Command, args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	if app != nil {
		if stopErr := app.profile.Stop(); stopErr != nil {
			fmt.Fprintf(os.Stderr, "docspell: %v\n", stopErr)
		}
	}
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			fmt.Fprintf(os.Stderr, "docspell: %v\n", exitErr.Err)
		}
		return exitErr.Code
	}
	fmt.Fprintf(os.Stderr, "docspell: %v\n", err)
	return 1
}

// newLogger builds the process logger writing to stderr.
func newLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "docspell",
		Level:  lvl,
	}), nil
}

// toggle is the value of the auto|on|off flags --color and --ui.
type toggle uint8

const (
	toggleAuto toggle = iota
	toggleOn
	toggleOff
)

func parseToggle(flag, value string) (toggle, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "auto":
		return toggleAuto, nil
	case "on":
		return toggleOn, nil
	case "off":
		return toggleOff, nil
	}
	return toggleAuto, fmt.Errorf("invalid --%s value %q (expected auto|on|off)", flag, value)
}

// enabled settles auto by whether f is a terminal.
func (t toggle) enabled(f *os.File) bool {
	switch t {
	case toggleOn:
		return true
	case toggleOff:
		return false
	}
	return isTerminal(f)
}

// applyColor sets color output for suggestion renderings, which go to stderr.
func applyColor(mode string) error {
	t, err := parseToggle("color", mode)
	if err != nil {
		return err
	}
	color.NoColor = !t.enabled(os.Stderr)
	return nil
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
