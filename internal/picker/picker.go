// Package picker provides the "choose a file" collaborator used by the editor.
// A Picker suspends until the user chooses a path or gives up.
package picker

import (
	"context"
	"errors"
)

// DefaultTitle is the dialog title used when none is configured.
const DefaultTitle = "Choose File"

// ErrNoSelection is returned when the user closes the picker without
// choosing a file.
var ErrNoSelection = errors.New("no file selected")

// Picker asks the user for a file path.
type Picker interface {
	Pick(ctx context.Context) (string, error)
}

// Func adapts a function to the Picker interface.
type Func func(ctx context.Context) (string, error)

func (f Func) Pick(ctx context.Context) (string, error) { return f(ctx) }

// Static always returns the same result.
type Static struct {
	Path string
	Err  error
}

func (s Static) Pick(context.Context) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	if s.Path == "" {
		return "", ErrNoSelection
	}
	return s.Path, nil
}
