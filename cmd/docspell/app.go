package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"docspell/internal/config"
	"docspell/internal/observ"
	"docspell/internal/prof"
)

// appState is what every command needs after the root flags are parsed.
type appState struct {
	logger     *log.Logger
	cfg        *config.Config
	configPath string
	timer      *observ.Timer
	profile    *prof.Session
}

var app *appState

// flagBindings maps command flags onto config keys so flags win over the
// config file and the environment.
var flagBindings = map[string]string{
	"stage-file": "review.stage_file",
}

func setupApp(cmd *cobra.Command, _ []string) error {
	flags := cmd.Root().PersistentFlags()
	level, _ := flags.GetString("log-level")
	logger, err := newLogger(level)
	if err != nil {
		return err
	}
	colorMode, _ := flags.GetString("color")
	if err := applyColor(colorMode); err != nil {
		return err
	}

	v := config.NewViper()
	for name, key := range flagBindings {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind --%s: %w", name, err)
			}
		}
	}
	if f := cmd.Flags().Lookup("dict"); f != nil && f.Changed {
		paths, err := cmd.Flags().GetStringSlice("dict")
		if err != nil {
			return err
		}
		for i, p := range paths {
			if abs, err := filepath.Abs(p); err == nil {
				paths[i] = abs
			}
		}
		v.Set("dictionary.paths", paths)
	}
	cfgFile, _ := flags.GetString("config")
	cfg, path, err := config.Load(v, config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		return err
	}
	if path != "" {
		logger.Debug("loaded config", "path", path)
	}

	state := &appState{logger: logger, cfg: cfg, configPath: path}
	if timings, _ := flags.GetBool("timings"); timings {
		state.timer = observ.NewTimer()
	}
	cpuProfile, _ := flags.GetString("cpu-profile")
	memProfile, _ := flags.GetString("mem-profile")
	state.profile, err = prof.Start(prof.Options{CPU: cpuProfile, Mem: memProfile})
	if err != nil {
		return err
	}
	app = state
	return nil
}

// printTimings writes the timing table when --timings is set.
func printTimings() {
	if app == nil || app.timer == nil {
		return
	}
	fmt.Fprint(os.Stderr, app.timer.Summary())
}
