// Package loader reads whole files into memory as text and classifies read
// failures into a small, platform-independent set of kinds.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"unicode/utf8"

	"github.com/spf13/afero"
)

// Kind classifies why a load failed.
type Kind int

const (
	Other Kind = iota
	NotFound
	PermissionDenied
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case PermissionDenied:
		return "permission denied"
	default:
		return "other"
	}
}

// Error is returned by Load for every failure.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("load %s: %s", e.Path, e.Kind)
	}
	return fmt.Sprintf("load %s: %s: %v", e.Path, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// ErrInvalidText is wrapped when a file is not valid UTF-8.
var ErrInvalidText = errors.New("file is not valid UTF-8 text")

// Classify maps an arbitrary read error to a Kind.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return Other
	case errors.Is(err, fs.ErrNotExist):
		return NotFound
	case errors.Is(err, fs.ErrPermission):
		return PermissionDenied
	default:
		return Other
	}
}

// Loader reads files from a filesystem. It keeps no state between calls and
// never retries; callers decide what to do with a failure.
type Loader struct {
	fs afero.Fs
}

// New returns a Loader reading from fsys. A nil fsys means the OS filesystem.
func New(fsys afero.Fs) *Loader {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &Loader{fs: fsys}
}

// Load reads the whole file at path. It blocks until the read completes, so
// callers run it off the UI loop (inside a tea.Cmd).
func (l *Loader) Load(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &Error{Kind: Other, Path: path, Err: err}
	}
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return "", &Error{Kind: Classify(err), Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &Error{Kind: Other, Path: path, Err: ErrInvalidText}
	}
	return string(data), nil
}
