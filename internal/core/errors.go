package core

import (
	"errors"
	"fmt"

	"textpad/internal/loader"
	"textpad/internal/picker"
)

// ErrorKind tags an Error.
type ErrorKind int

const (
	// DialogClosed means the picker returned no file.
	DialogClosed ErrorKind = iota
	// IO means reading the chosen file failed.
	IO
)

// ErrDialogClosed matches any DialogClosed Error with errors.Is.
var ErrDialogClosed = errors.New("dialog closed")

// Error is the editor's remembered failure.
type Error struct {
	Kind ErrorKind
	// IO is the classified read failure when Kind is IO.
	IO   loader.Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Kind == DialogClosed {
		if e.Err != nil && !errors.Is(e.Err, picker.ErrNoSelection) {
			return fmt.Sprintf("dialog closed: %v", e.Err)
		}
		return "dialog closed"
	}
	return fmt.Sprintf("%s: %s", e.Path, e.IO)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	return target == ErrDialogClosed && e.Kind == DialogClosed
}

func dialogError(err error) *Error {
	return &Error{Kind: DialogClosed, Err: err}
}

func ioError(path string, err error) *Error {
	e := &Error{Kind: IO, Path: path, Err: err}
	var lerr *loader.Error
	if errors.As(err, &lerr) {
		e.IO = lerr.Kind
	} else {
		e.IO = loader.Classify(err)
	}
	return e
}
