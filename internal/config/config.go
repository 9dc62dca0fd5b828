// Package config loads the graphkit CLI configuration file.
//
// The file is TOML:
//
//	log_level = "debug"   # debug, info, warn, error
//	narrate   = true      # print algorithm steps
//	method    = "prim"    # prim, kruskal, both
//	workers   = 4         # Floyd–Warshall goroutines
//
// Command-line flags override file values.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

const (
	appName  = "graphkit"
	fileName = "config.toml"
)

// MST methods accepted by the method key.
const (
	MethodPrim    = "prim"
	MethodKruskal = "kruskal"
	MethodBoth    = "both"
)

// ErrInvalidConfig indicates a config value outside its domain or an unknown key.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the CLI settings.
type Config struct {
	LogLevel string `toml:"log_level"`
	Narrate  bool   `toml:"narrate"`
	Method   string `toml:"method"`
	Workers  int    `toml:"workers"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		LogLevel: "info",
		Method:   MethodKruskal,
		Workers:  1,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/graphkit/config.toml, falling back to
// ~/.config/graphkit/config.toml. It returns "" when neither base is known.
func DefaultPath() string {
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, appName, fileName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".config", appName, fileName)
}

// Load reads the config at path over Default(). An empty path means
// DefaultPath(), where a missing file is not an error; a missing explicit
// path is.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return cfg, nil
		}
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}

		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	if und := md.Undecoded(); len(und) > 0 {
		return Config{}, fmt.Errorf("%w: %s: unknown keys %v", ErrInvalidConfig, path, und)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every field against its domain.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.Method {
	case MethodPrim, MethodKruskal, MethodBoth:
	default:
		return fmt.Errorf("%w: method %q (want prim, kruskal or both)", ErrInvalidConfig, c.Method)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers=%d must be ≥ 1", ErrInvalidConfig, c.Workers)
	}

	return nil
}

// Level parses LogLevel.
func (c Config) Level() (log.Level, error) {
	lvl, err := log.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}

	return lvl, nil
}
