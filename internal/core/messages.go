package core

import "textpad/internal/document"

// EditMsg applies one edit action to the document.
type EditMsg struct {
	Action document.Action
}

// OpenMsg asks for a file to be picked and loaded.
type OpenMsg struct{}

// FileOpenedMsg carries the outcome of a load. When Err is nil, Text is the
// file's full content.
type FileOpenedMsg struct {
	Path string
	Text string
	Err  *Error
}
