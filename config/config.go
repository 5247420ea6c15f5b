// Package config loads harmony-draw settings from a TOML file, the environment and defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/go-homedir"

	"github.com/lixenwraith/harmony-draw/audio"
	"github.com/lixenwraith/harmony-draw/constants"
	"github.com/lixenwraith/harmony-draw/pattern"
)

// DefaultPath is where Load looks when no -config flag is given
const DefaultPath = "~/.config/harmony-draw/config.toml"

// maxCanvasSide bounds rows and cols so the grid stays drawable
const maxCanvasSide = 256

// Canvas holds grid settings; dimensions are fixed for the session
type Canvas struct {
	Rows    int    `toml:"rows"`
	Cols    int    `toml:"cols"`
	Pattern string `toml:"pattern"` // Starting pattern name, empty = first
}

// Config is the full application configuration
type Config struct {
	Canvas Canvas       `toml:"canvas"`
	Audio  audio.Config `toml:"audio"`

	// Patterns are appended to the built-in set, or replace it when ReplaceBuiltin is set
	Patterns       []pattern.Pattern `toml:"pattern"`
	ReplaceBuiltin bool              `toml:"replace_builtin"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Canvas: Canvas{Rows: constants.CanvasRows, Cols: constants.CanvasCols},
		Audio:  *audio.DefaultConfig(),
	}
}

// Load reads path over the defaults, then applies environment overrides
// A missing file is only an error when required is set (path given explicitly)
func Load(path string, required bool) (*Config, error) {
	cfg := Default()

	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("config path %q: %w", path, err)
	}

	md, err := toml.DecodeFile(expanded, cfg)
	switch {
	case err == nil:
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("config %s: unknown keys: %s", expanded, strings.Join(keys, ", "))
		}
		log.Printf("config: loaded %s", expanded)
	case errors.Is(err, fs.ErrNotExist) && !required:
		log.Printf("config: %s not found, using defaults", expanded)
	default:
		return nil, fmt.Errorf("config %s: %w", expanded, err)
	}

	cfg.Audio.ApplyEnv()
	cfg.Audio.Normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks canvas bounds and that the pattern set builds
func (c *Config) Validate() error {
	if c.Canvas.Rows < 1 || c.Canvas.Rows > maxCanvasSide {
		return fmt.Errorf("config: canvas rows must be 1-%d, got %d", maxCanvasSide, c.Canvas.Rows)
	}
	if c.Canvas.Cols < 1 || c.Canvas.Cols > maxCanvasSide {
		return fmt.Errorf("config: canvas cols must be 1-%d, got %d", maxCanvasSide, c.Canvas.Cols)
	}

	reg, err := c.Registry()
	if err != nil {
		return err
	}
	if c.Canvas.Pattern != "" && reg.Index(c.Canvas.Pattern) < 0 {
		return fmt.Errorf("config: unknown starting pattern %q (have %v)", c.Canvas.Pattern, reg.Names())
	}
	return nil
}

// Registry builds the pattern registry from built-ins and configured patterns
func (c *Config) Registry() (*pattern.Registry, error) {
	var list []pattern.Pattern
	if !c.ReplaceBuiltin {
		list = pattern.Builtin()
	}
	list = append(list, c.Patterns...)

	reg, err := pattern.NewRegistry(list...)
	if err != nil {
		return nil, fmt.Errorf("config: patterns: %w", err)
	}
	return reg, nil
}
