package core

import (
	"context"

	"github.com/charmbracelet/log"

	"textpad/internal/picker"
)

// Loader reads a file into memory. *loader.Loader implements it.
type Loader interface {
	Load(ctx context.Context, path string) (string, error)
}

type Option func(*Editor)

func WithLoader(l Loader) Option {
	return func(e *Editor) { e.loader = l }
}

func WithPicker(p picker.Picker) Option {
	return func(e *Editor) { e.picker = p }
}

// WithDefaultPath sets the file loaded at startup. Empty means none.
func WithDefaultPath(path string) Option {
	return func(e *Editor) { e.defaultPath = path }
}

// WithContext bounds all picks and loads spawned by the editor.
func WithContext(ctx context.Context) Option {
	return func(e *Editor) { e.ctx = ctx }
}

func WithLogger(l *log.Logger) Option {
	return func(e *Editor) { e.log = l }
}
