// Package config loads the optional engine configuration file.
//
// A project may carry pure.yaml, pure.yml, or pure.toml next to its go.mod.
// Every field is optional; Defaults fills in what the file leaves out.
package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/pure/pkg/errors"
	"github.com/go-drift/pure/pkg/geometry"
	"github.com/go-drift/pure/pkg/graphics"
	"github.com/go-drift/pure/pkg/runtime"
	"github.com/go-drift/pure/pkg/text"
)

// EngineVersion is the version of this engine, compared against the
// minimum a configuration file requires.
const EngineVersion = "v0.3.0"

// FileNames lists the configuration files LoadOptional looks for, in order.
var FileNames = []string{"pure.yaml", "pure.yml", "pure.toml"}

// Config is the engine configuration.
type Config struct {
	// Version is the minimum engine version the project needs.
	Version string       `yaml:"version,omitempty" toml:"version"`
	Window  WindowConfig `yaml:"window" toml:"window"`
	Debug   DebugConfig  `yaml:"debug" toml:"debug"`
	Tasks   TasksConfig  `yaml:"tasks" toml:"tasks"`
	Text    TextConfig   `yaml:"text" toml:"text"`
}

// WindowConfig sets the logical surface size.
type WindowConfig struct {
	Width  float64 `yaml:"width,omitempty" toml:"width"`
	Height float64 `yaml:"height,omitempty" toml:"height"`
}

// DebugConfig controls diagnostics.
type DebugConfig struct {
	// Explain outlines every layout node when drawing.
	Explain      bool   `yaml:"explain,omitempty" toml:"explain"`
	ExplainColor string `yaml:"explain_color,omitempty" toml:"explain_color"`
	LogLevel     string `yaml:"log_level,omitempty" toml:"log_level"`
	Verbose      bool   `yaml:"verbose,omitempty" toml:"verbose"`
}

// TasksConfig bounds background work.
type TasksConfig struct {
	MaxConcurrent int `yaml:"max_concurrent,omitempty" toml:"max_concurrent"`
}

// TextConfig selects text measurement.
type TextConfig struct {
	// Measurer is "face", "cells", or "monospace".
	Measurer string  `yaml:"measurer,omitempty" toml:"measurer"`
	FontSize float64 `yaml:"font_size,omitempty" toml:"font_size"`
}

// Defaults returns the configuration used when no file is present.
func Defaults() Config {
	return Config{
		Window: WindowConfig{Width: 800, Height: 600},
		Debug:  DebugConfig{ExplainColor: "#ff0000", LogLevel: "info"},
		Tasks:  TasksConfig{MaxConcurrent: runtime.DefaultMaxConcurrent},
		Text:   TextConfig{Measurer: "face", FontSize: 16},
	}
}

// Load reads the configuration at path. The format follows the extension.
func Load(path string) (Config, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, configError("config.Load", fmt.Errorf("failed to read %s: %w", filepath.Base(path), err))
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		_, err = toml.Decode(string(data), &cfg)
	default:
		err = fmt.Errorf("unsupported extension %q", ext)
	}
	if err != nil {
		return cfg, configError("config.Load", fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err))
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadOptional reads the first configuration file found in dir. Without one
// it returns the defaults.
func LoadOptional(dir string) (Config, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			if stderrors.Is(err, os.ErrNotExist) {
				continue
			}
			return Defaults(), configError("config.LoadOptional", err)
		}
		return Load(path)
	}
	return Defaults(), nil
}

// FindProjectRoot walks up from dir to the nearest directory with a go.mod.
func FindProjectRoot(dir string) (string, error) {
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

// Validate checks field ranges and the engine version requirement.
func (c Config) Validate() error {
	if v := strings.TrimSpace(c.Version); v != "" {
		if !strings.HasPrefix(v, "v") {
			v = "v" + v
		}
		if !semver.IsValid(v) {
			return configError("config.Validate", fmt.Errorf("version %q is not a semantic version", c.Version))
		}
		if semver.Compare(v, EngineVersion) > 0 {
			return configError("config.Validate",
				fmt.Errorf("project requires engine %s, this is %s", semver.Canonical(v), EngineVersion))
		}
	}
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return configError("config.Validate", fmt.Errorf("window size %vx%v is negative", c.Window.Width, c.Window.Height))
	}
	if c.Tasks.MaxConcurrent < 0 {
		return configError("config.Validate", fmt.Errorf("tasks.max_concurrent must not be negative"))
	}
	if _, err := c.measurer(); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if _, err := c.ExplainColor(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses the configured log level. Verbose forces debug.
func (c Config) LogLevel() (zerolog.Level, error) {
	if c.Debug.Verbose {
		return zerolog.DebugLevel, nil
	}
	if c.Debug.LogLevel == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(c.Debug.LogLevel)
	if err != nil {
		return zerolog.InfoLevel, configError("config.LogLevel", err)
	}
	return level, nil
}

// ExplainColor parses the outline color used by Explain.
func (c Config) ExplainColor() (graphics.Color, error) {
	if c.Debug.ExplainColor == "" {
		return graphics.ColorRed, nil
	}
	color, err := graphics.ParseColor(c.Debug.ExplainColor)
	if err != nil {
		return 0, configError("config.ExplainColor", err)
	}
	return color, nil
}

func (c Config) measurer() (text.Measurer, error) {
	switch c.Text.Measurer {
	case "", "face":
		return text.NewFaceMeasurer(), nil
	case "cells":
		return text.CellMeasurer{}, nil
	case "monospace":
		return text.Monospace{}, nil
	default:
		return nil, configError("config.Measurer", fmt.Errorf("unknown text measurer %q", c.Text.Measurer))
	}
}

// Measurer returns the configured text measurer, memoized. The caller owns
// the cache and must close it.
func (c Config) Measurer() (*text.Cache, error) {
	m, err := c.measurer()
	if err != nil {
		return nil, err
	}
	return text.NewCache(m, 0), nil
}

// Size returns the configured window size.
func (c Config) Size() geometry.Size {
	return geometry.Size{Width: c.Window.Width, Height: c.Window.Height}
}

func configError(op string, err error) error {
	return &errors.EngineError{Op: op, Kind: errors.KindConfig, Err: err}
}
