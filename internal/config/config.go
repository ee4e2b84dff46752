// Package config loads docspell settings from defaults, an optional TOML
// file and DOCSPELL_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"

	"docspell/internal/check"
)

const (
	// AppName names the config directory and the environment prefix.
	AppName = "docspell"
	// ConfigFileName is the file looked up in the config dir.
	ConfigFileName = "config.toml"
	// LocalFileName is the file looked up in the working directory.
	LocalFileName = "docspell.toml"
	// EnvPrefix prefixes environment overrides, e.g. DOCSPELL_DICTIONARY_PATHS.
	EnvPrefix = "DOCSPELL"
)

// ErrConfigNotFound is returned when an explicit config path does not exist.
var ErrConfigNotFound = errors.New("config file not found")

// Config is the effective configuration.
type Config struct {
	Dictionary DictionaryConfig `mapstructure:"dictionary" toml:"dictionary"`
	Checkers   CheckersConfig   `mapstructure:"checkers" toml:"checkers"`
	Review     ReviewConfig     `mapstructure:"review" toml:"review"`
}

type DictionaryConfig struct {
	// Paths lists hunspell .dic files. When empty the system hunspell
	// directories are searched for en_US.dic.
	Paths          []string `mapstructure:"paths" toml:"paths"`
	ExtraWords     []string `mapstructure:"extra_words" toml:"extra_words"`
	MinWordLength  int      `mapstructure:"min_word_length" toml:"min_word_length"`
	MaxSuggestions int      `mapstructure:"max_suggestions" toml:"max_suggestions"`
}

type CheckersConfig struct {
	Dictionary bool `mapstructure:"dictionary" toml:"dictionary"`
	Repeat     bool `mapstructure:"repeat" toml:"repeat"`
}

type ReviewConfig struct {
	// StageFile receives the staged suggestions after a review; empty disables it.
	StageFile string `mapstructure:"stage_file" toml:"stage_file"`
}

// LoadOptions controls where Load looks.
type LoadOptions struct {
	// ConfigFilePath is an explicit file; it must exist.
	ConfigFilePath string
	// ConfigDirPath overrides ConfigDir.
	ConfigDirPath string
	// WorkDir is searched for LocalFileName; empty means the process cwd.
	WorkDir string
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Dictionary: DictionaryConfig{
			Paths:          []string{},
			ExtraWords:     []string{},
			MinWordLength:  2,
			MaxSuggestions: 3,
		},
		Checkers: CheckersConfig{
			Dictionary: true,
			Repeat:     true,
		},
	}
}

// ConfigDir returns $XDG_CONFIG_HOME/docspell, falling back to
// ~/.config/docspell.
func ConfigDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, AppName), nil
}

// NewViper returns a viper instance carrying the defaults and the
// environment binding. Callers may bind flags into it before Load.
func NewViper() *viper.Viper {
	v := viper.New()
	defaults := DefaultConfig()
	v.SetDefault("dictionary.paths", defaults.Dictionary.Paths)
	v.SetDefault("dictionary.extra_words", defaults.Dictionary.ExtraWords)
	v.SetDefault("dictionary.min_word_length", defaults.Dictionary.MinWordLength)
	v.SetDefault("dictionary.max_suggestions", defaults.Dictionary.MaxSuggestions)
	v.SetDefault("checkers.dictionary", defaults.Checkers.Dictionary)
	v.SetDefault("checkers.repeat", defaults.Checkers.Repeat)
	v.SetDefault("review.stage_file", defaults.Review.StageFile)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load resolves the configuration into v (a fresh one when nil) and returns
// it with the path of the file that was read, or "" when only defaults and
// the environment apply.
//
// Lookup order: opts.ConfigFilePath, then <ConfigDir>/config.toml, then
// ./docspell.toml.
func Load(v *viper.Viper, opts LoadOptions) (*Config, string, error) {
	if v == nil {
		v = NewViper()
	}

	resolved, err := findConfigFile(opts)
	if err != nil {
		return nil, "", err
	}
	if resolved != "" {
		v.SetConfigFile(resolved)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, "", fmt.Errorf("failed to read config %s: %w", resolved, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}
	// word lists named in the file are relative to it
	if resolved != "" && v.InConfig("dictionary.paths") {
		cfg.Dictionary.Paths = resolveRelative(filepath.Dir(resolved), cfg.Dictionary.Paths)
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return &cfg, resolved, nil
}

func findConfigFile(opts LoadOptions) (string, error) {
	if opts.ConfigFilePath != "" {
		if !fileExists(opts.ConfigFilePath) {
			return "", fmt.Errorf("%w: %s", ErrConfigNotFound, opts.ConfigFilePath)
		}
		return opts.ConfigFilePath, nil
	}

	dir := opts.ConfigDirPath
	if dir == "" {
		var err error
		dir, err = ConfigDir()
		if err != nil {
			return "", err
		}
	}
	if p := filepath.Join(dir, ConfigFileName); fileExists(p) {
		return p, nil
	}
	if p := filepath.Join(opts.WorkDir, LocalFileName); fileExists(p) {
		return p, nil
	}
	return "", nil
}

// Validate rejects values the checkers cannot work with.
func (c *Config) Validate() error {
	if c.Dictionary.MinWordLength < 1 {
		return fmt.Errorf("dictionary.min_word_length must be at least 1, got %d", c.Dictionary.MinWordLength)
	}
	if c.Dictionary.MaxSuggestions < 0 {
		return fmt.Errorf("dictionary.max_suggestions must not be negative, got %d", c.Dictionary.MaxSuggestions)
	}
	return nil
}

// CheckConfig converts c into the checker settings. Without configured word
// lists the system dictionary is used when one can be found.
func (c *Config) CheckConfig(baseDir string) check.Config {
	paths := c.Dictionary.Paths
	if len(paths) == 0 {
		if p := FindSystemDictionary("en_US"); p != "" {
			paths = []string{p}
		}
	}
	return check.Config{
		BaseDir: baseDir,
		Dictionary: check.DictionaryConfig{
			Enabled:        c.Checkers.Dictionary,
			Paths:          paths,
			ExtraWords:     c.Dictionary.ExtraWords,
			MinWordLength:  c.Dictionary.MinWordLength,
			MaxSuggestions: c.Dictionary.MaxSuggestions,
		},
		Repeat: c.Checkers.Repeat,
	}
}

// WriteTOML encodes c the way it would appear in a config file.
func (c *Config) WriteTOML(w io.Writer) error {
	enc := toml.NewEncoder(w)
	enc.Indent = ""
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// systemDictionaryDirs are the usual hunspell install locations.
var systemDictionaryDirs = []string{
	"/usr/share/hunspell",
	"/usr/share/myspell",
	"/usr/share/myspell/dicts",
	"/usr/local/share/hunspell",
	"/Library/Spelling",
}

// FindSystemDictionary returns the first <lang>.dic found in the hunspell
// search path, or "". DICPATH, when set, is searched first.
func FindSystemDictionary(lang string) string {
	var dirs []string
	if env := os.Getenv("DICPATH"); env != "" {
		dirs = append(dirs, filepath.SplitList(env)...)
	}
	dirs = append(dirs, systemDictionaryDirs...)
	for _, dir := range dirs {
		p := filepath.Join(dir, lang+".dic")
		if fileExists(p) {
			return p
		}
	}
	return ""
}

func resolveRelative(base string, paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if !filepath.IsAbs(p) {
			p = filepath.Join(base, p)
		}
		out = append(out, p)
	}
	return out
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
