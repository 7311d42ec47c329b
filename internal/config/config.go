package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	PickerTerminal = "terminal"
	PickerNative   = "native"

	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Config is the on-disk settings file:
//
//	default_path: ~/notes/todo.md
//	picker: {kind: terminal, title: Choose File}
//	theme: dark
//	log: {file: /tmp/textpad.log, level: debug}
type Config struct {
	DefaultPath string       `yaml:"default_path,omitempty"` // loaded at startup; empty disables
	Picker      PickerConfig `yaml:"picker"`
	Theme       string       `yaml:"theme"`              // "dark" (default) | "light"
	NoColor     bool         `yaml:"no_color,omitempty"` // NO_COLOR in the env also disables color
	Log         LogConfig    `yaml:"log"`
}

type PickerConfig struct {
	Kind       string `yaml:"kind"` // "terminal" (default) | "native"
	Title      string `yaml:"title"`
	StartDir   string `yaml:"start_dir,omitempty"`
	ShowHidden bool   `yaml:"show_hidden,omitempty"`
}

type LogConfig struct {
	File  string `yaml:"file,omitempty"` // empty discards logs; the TUI owns stdout
	Level string `yaml:"level"`
}

func Default() *Config {
	return &Config{
		Picker: PickerConfig{Kind: PickerTerminal, Title: "Choose File"},
		Theme:  ThemeDark,
		Log:    LogConfig{Level: "info"},
	}
}

// DefaultPath is where Load looks when no --config is given.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "textpad", "config.yaml")
}

// Load reads path over the defaults. When optional is set, a missing file
// yields the defaults instead of an error.
func Load(path string, optional bool) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(ExpandPath(path))
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse config YAML: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate fills blank fields with defaults and rejects unknown choices.
func (c *Config) Validate() error {
	d := Default()
	if c.Picker.Kind == "" {
		c.Picker.Kind = d.Picker.Kind
	}
	if c.Picker.Title == "" {
		c.Picker.Title = d.Picker.Title
	}
	if c.Theme == "" {
		c.Theme = d.Theme
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	switch c.Picker.Kind {
	case PickerTerminal, PickerNative:
	default:
		return fmt.Errorf("config: unknown picker kind %q (want terminal|native)", c.Picker.Kind)
	}
	switch c.Theme {
	case ThemeDark, ThemeLight:
	default:
		return fmt.Errorf("config: unknown theme %q (want dark|light)", c.Theme)
	}
	if c.DefaultPath != "" {
		c.DefaultPath = ExpandPath(c.DefaultPath)
	}
	if c.Picker.StartDir != "" {
		c.Picker.StartDir = ExpandPath(c.Picker.StartDir)
	}
	return nil
}

func Save(path string, c *Config) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ExpandPath expands a leading ~/ and environment variables and makes the
// result absolute.
func ExpandPath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return p
	}
	if strings.HasPrefix(p, "~/") {
		if h, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(h, p[2:])
		}
	}
	p = os.ExpandEnv(p)
	if !filepath.IsAbs(p) {
		if abs, err := filepath.Abs(p); err == nil {
			p = abs
		}
	}
	return p
}
