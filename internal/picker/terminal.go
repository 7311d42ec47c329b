package picker

import (
	"context"
	"sync"
)

// Terminal is a Picker answered by the terminal UI. Pick publishes a Request
// and waits; the UI receives it from Requests, shows its own file browser, and
// settles it with Resolve or Cancel.
type Terminal struct {
	Title    string
	StartDir string

	requests chan *Request
}

// NewTerminal returns a Terminal picker with the given dialog title.
func NewTerminal(title, startDir string) *Terminal {
	if title == "" {
		title = DefaultTitle
	}
	return &Terminal{Title: title, StartDir: startDir, requests: make(chan *Request)}
}

// Requests delivers pending picks to the UI, one at a time.
func (t *Terminal) Requests() <-chan *Request { return t.requests }

func (t *Terminal) Pick(ctx context.Context) (string, error) {
	req := &Request{Title: t.Title, StartDir: t.StartDir, reply: make(chan result, 1)}
	select {
	case t.requests <- req:
	case <-ctx.Done():
		return "", ctx.Err()
	}
	select {
	case r := <-req.reply:
		return r.path, r.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

type result struct {
	path string
	err  error
}

// Request is one pending Pick. Only the first Resolve or Cancel counts.
type Request struct {
	Title    string
	StartDir string

	once  sync.Once
	reply chan result
}

// Resolve answers the request with the chosen path.
func (r *Request) Resolve(path string) {
	r.once.Do(func() { r.reply <- result{path: path} })
}

// Cancel answers the request with ErrNoSelection.
func (r *Request) Cancel() {
	r.once.Do(func() { r.reply <- result{err: ErrNoSelection} })
}
