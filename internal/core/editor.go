// Package core is the editor's state machine. It owns the document and the
// last error, consumes messages one at a time, and hands slow work (picking
// and reading files) back to the runtime as tea.Cmds whose results re-enter
// as messages.
package core

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"textpad/internal/document"
	"textpad/internal/loader"
	"textpad/internal/picker"
)

// Editor is the editor state. It is not safe for concurrent use: only the
// message loop calls Update. Spawned commands never touch it.
type Editor struct {
	content *document.Content
	lastErr *Error

	// path and origin describe the last successful load.
	path   string
	origin string

	defaultPath string
	loader      Loader
	picker      picker.Picker
	ctx         context.Context
	log         *log.Logger
}

// New returns an editor with an empty document.
func New(opts ...Option) *Editor {
	e := &Editor{content: document.New()}
	for _, o := range opts {
		o(e)
	}
	if e.loader == nil {
		e.loader = loader.New(nil)
	}
	if e.picker == nil {
		e.picker = picker.Native{}
	}
	if e.ctx == nil {
		e.ctx = context.Background()
	}
	if e.log == nil {
		e.log = log.New(io.Discard)
	}
	return e
}

// Init returns the startup load of the default path, or nil when there is
// no default path.
func (e *Editor) Init() tea.Cmd {
	if e.defaultPath == "" {
		return nil
	}
	e.log.Debug("loading default path", "path", e.defaultPath)
	return e.load(e.defaultPath)
}

// Update applies msg and returns any follow-up work. Unknown messages are
// ignored.
func (e *Editor) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case EditMsg:
		if msg.Action == nil {
			return nil
		}
		e.content.Apply(msg.Action)
		return nil

	case OpenMsg:
		e.log.Debug("open requested")
		return e.open()

	case FileOpenedMsg:
		if msg.Err != nil {
			e.lastErr = msg.Err
			e.log.Warn("open failed", "err", msg.Err, "path", msg.Err.Path)
			return nil
		}
		e.content = document.WithText(msg.Text)
		e.path = msg.Path
		// Line endings are normalised on load; compare against what the document holds.
		e.origin = e.content.Text()
		e.log.Info("file opened", "path", msg.Path, "bytes", len(msg.Text))
		return nil
	}
	return nil
}

func (e *Editor) open() tea.Cmd {
	ctx, p, l := e.ctx, e.picker, e.loader
	return func() tea.Msg {
		path, err := p.Pick(ctx)
		if err != nil {
			return FileOpenedMsg{Err: dialogError(err)}
		}
		return readFile(ctx, l, path)
	}
}

func (e *Editor) load(path string) tea.Cmd {
	ctx, l := e.ctx, e.loader
	return func() tea.Msg {
		return readFile(ctx, l, path)
	}
}

func readFile(ctx context.Context, l Loader, path string) FileOpenedMsg {
	text, err := l.Load(ctx, path)
	if err != nil {
		return FileOpenedMsg{Path: path, Err: ioError(path, err)}
	}
	return FileOpenedMsg{Path: path, Text: text}
}

// Content returns the live document. Callers outside the message loop must
// not mutate it.
func (e *Editor) Content() *document.Content { return e.content }

// LastError returns the most recent failure. It is never cleared.
func (e *Editor) LastError() *Error { return e.lastErr }

// Path returns the path of the last successfully loaded file.
func (e *Editor) Path() string { return e.path }

// Origin returns the text as it was last loaded.
func (e *Editor) Origin() string { return e.origin }

// Modified reports whether the document differs from what was last loaded.
func (e *Editor) Modified() bool { return e.content.Text() != e.origin }
