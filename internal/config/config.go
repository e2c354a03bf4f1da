package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"

	"github.com/dshills/pine/internal/config/loader"
)

// Default values.
const (
	DefaultTabWidth = 4
	DefaultLogLevel = "info"

	MinTabWidth = 1
	MaxTabWidth = 16
)

// ConfigEnv names the variable that overrides the settings file location.
const ConfigEnv = "PINE_CONFIG"

// EnvMapping maps environment variables to setting paths.
var EnvMapping = map[string]loader.EnvVar{
	"PINE_TAB_WIDTH": {Path: "editor.tabWidth", Kind: loader.KindInt},
	"PINE_LOG_LEVEL": {Path: "log.level", Kind: loader.KindString},
	"PINE_LOG_FILE":  {Path: "log.file", Kind: loader.KindString},
}

// Config is the complete set of settings.
type Config struct {
	Editor EditorConfig `toml:"editor"`
	Log    LogConfig    `toml:"log"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Editor: EditorConfig{TabWidth: DefaultTabWidth},
		Log:    LogConfig{Level: DefaultLogLevel},
	}
}

// options configures Load.
type options struct {
	path   string
	fs     loader.FileSystem
	lookup func(string) (string, bool)
}

// Option configures Load.
type Option func(*options)

// WithPath reads settings from path instead of the default location.
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

// WithFS sets the file system the settings file is read from.
func WithFS(fs loader.FileSystem) Option {
	return func(o *options) {
		o.fs = fs
	}
}

// WithLookupEnv sets the function used to read environment variables.
func WithLookupEnv(lookup func(string) (string, bool)) Option {
	return func(o *options) {
		o.lookup = lookup
	}
}

// DefaultPath returns the settings file location: $PINE_CONFIG if set,
// otherwise pine/config.toml under the user configuration directory. It
// returns "" if neither can be determined.
func DefaultPath(lookup func(string) (string, bool)) string {
	if p, ok := lookup(ConfigEnv); ok && p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "pine", "config.toml")
}

// Load reads the settings file and environment overrides on top of the
// defaults. On any error it returns Default() along with the error, so the
// caller can report it and continue.
func Load(opts ...Option) (Config, error) {
	o := options{
		fs:     loader.DefaultFS(),
		lookup: os.LookupEnv,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.path == "" {
		o.path = DefaultPath(o.lookup)
	}

	var fileMap map[string]any
	if o.path != "" {
		var err error
		fileMap, err = loader.NewTOMLLoaderWithFS(o.fs, o.path).Load()
		if err != nil {
			return Default(), err
		}
	}

	envMap, err := loader.NewEnvLoader(EnvMapping, o.lookup).Load()
	if err != nil {
		return Default(), err
	}

	cfg, err := decode(loader.DeepMerge(fileMap, envMap))
	if err != nil {
		return Default(), err
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}

	return cfg, nil
}

// decode applies the merged settings map to the defaults.
func decode(merged map[string]any) (Config, error) {
	cfg := Default()

	data, err := toml.Marshal(merged)
	if err != nil {
		return cfg, fmt.Errorf("encoding settings: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("decoding settings: %w", err)
	}

	return cfg, nil
}

// Validate checks every setting and returns all failures joined.
func (c Config) Validate() error {
	var errs []error

	if c.Editor.TabWidth < MinTabWidth || c.Editor.TabWidth > MaxTabWidth {
		errs = append(errs, &ValidationError{
			Path:    "editor.tabWidth",
			Message: fmt.Sprintf("must be between %d and %d", MinTabWidth, MaxTabWidth),
			Value:   c.Editor.TabWidth,
		})
	}

	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, &ValidationError{
			Path:    "log.level",
			Message: "unknown log level",
			Value:   c.Log.Level,
		})
	}

	return errors.Join(errs...)
}
