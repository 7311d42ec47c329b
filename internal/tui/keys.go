package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"textpad/internal/document"
	"textpad/internal/tui/widgets/helpoverlay"
)

// KeyMap holds every binding the editor reacts to. Terminals disagree on
// word-motion chords, so those accept both alt and ctrl variants.
type KeyMap struct {
	Left, Right, Up, Down                         key.Binding
	SelectLeft, SelectRight, SelectUp, SelectDown key.Binding
	WordLeft, WordRight                           key.Binding
	SelectWordLeft, SelectWordRight               key.Binding
	Home, End, SelectHome, SelectEnd              key.Binding
	DocStart, DocEnd                              key.Binding

	Backspace, Delete, Enter key.Binding

	SelectAll, SelectWord, SelectLine key.Binding

	Copy, Cut, Paste key.Binding

	Open, Help, Changes, Close, Quit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		SelectLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		SelectRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),
		SelectUp:    key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "select up")),
		SelectDown:  key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "select down")),

		WordLeft:        key.NewBinding(key.WithKeys("alt+left", "ctrl+left"), key.WithHelp("alt/ctrl+←", "word left")),
		WordRight:       key.NewBinding(key.WithKeys("alt+right", "ctrl+right"), key.WithHelp("alt/ctrl+→", "word right")),
		SelectWordLeft:  key.NewBinding(key.WithKeys("ctrl+shift+left"), key.WithHelp("ctrl+shift+←", "select word left")),
		SelectWordRight: key.NewBinding(key.WithKeys("ctrl+shift+right"), key.WithHelp("ctrl+shift+→", "select word right")),

		Home:       key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "line start")),
		End:        key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "line end")),
		SelectHome: key.NewBinding(key.WithKeys("shift+home"), key.WithHelp("shift+home", "select to line start")),
		SelectEnd:  key.NewBinding(key.WithKeys("shift+end"), key.WithHelp("shift+end", "select to line end")),
		DocStart:   key.NewBinding(key.WithKeys("ctrl+home"), key.WithHelp("ctrl+home", "document start")),
		DocEnd:     key.NewBinding(key.WithKeys("ctrl+end"), key.WithHelp("ctrl+end", "document end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),

		SelectAll:  key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "select all")),
		SelectWord: key.NewBinding(key.WithKeys("ctrl+w"), key.WithHelp("ctrl+w", "select word")),
		SelectLine: key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "select line")),

		Copy:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Cut:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Paste: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),

		Open:    key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "open")),
		Help:    key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		Changes: key.NewBinding(key.WithKeys("f2"), key.WithHelp("f2", "changes")),
		Close:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
	}
}

// ShortHelp is the one-line footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Help, k.Changes, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	var out [][]key.Binding
	for _, s := range k.Sections() {
		out = append(out, s.Bindings)
	}
	return out
}

// Sections groups the bindings for the help overlay.
func (k KeyMap) Sections() []helpoverlay.Section {
	return []helpoverlay.Section{
		{Title: "Move", Bindings: []key.Binding{k.Left, k.Right, k.Up, k.Down, k.WordLeft, k.WordRight, k.Home, k.End, k.DocStart, k.DocEnd}},
		{Title: "Select", Bindings: []key.Binding{k.SelectLeft, k.SelectRight, k.SelectUp, k.SelectDown, k.SelectWordLeft, k.SelectWordRight, k.SelectHome, k.SelectEnd, k.SelectWord, k.SelectLine, k.SelectAll}},
		{Title: "Edit", Bindings: []key.Binding{k.Enter, k.Backspace, k.Delete, k.Copy, k.Cut, k.Paste}},
		{Title: "File", Bindings: []key.Binding{k.Open, k.Changes, k.Help, k.Close, k.Quit}},
	}
}

// Action maps an editing key to a document action. It reports false for
// keys that are not edits, including the file and overlay bindings.
func (k KeyMap) Action(msg tea.KeyMsg) (document.Action, bool) {
	// Pasted text is literal and never triggers bindings.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		return document.Paste{Text: string(msg.Runes)}, true
	}

	switch {
	case key.Matches(msg, k.Left):
		return document.Move{Motion: document.Left}, true
	case key.Matches(msg, k.Right):
		return document.Move{Motion: document.Right}, true
	case key.Matches(msg, k.Up):
		return document.Move{Motion: document.Up}, true
	case key.Matches(msg, k.Down):
		return document.Move{Motion: document.Down}, true

	case key.Matches(msg, k.SelectLeft):
		return document.Select{Motion: document.Left}, true
	case key.Matches(msg, k.SelectRight):
		return document.Select{Motion: document.Right}, true
	case key.Matches(msg, k.SelectUp):
		return document.Select{Motion: document.Up}, true
	case key.Matches(msg, k.SelectDown):
		return document.Select{Motion: document.Down}, true

	case key.Matches(msg, k.WordLeft):
		return document.Move{Motion: document.WordLeft}, true
	case key.Matches(msg, k.WordRight):
		return document.Move{Motion: document.WordRight}, true
	case key.Matches(msg, k.SelectWordLeft):
		return document.Select{Motion: document.WordLeft}, true
	case key.Matches(msg, k.SelectWordRight):
		return document.Select{Motion: document.WordRight}, true

	case key.Matches(msg, k.Home):
		return document.Move{Motion: document.Home}, true
	case key.Matches(msg, k.End):
		return document.Move{Motion: document.End}, true
	case key.Matches(msg, k.SelectHome):
		return document.Select{Motion: document.Home}, true
	case key.Matches(msg, k.SelectEnd):
		return document.Select{Motion: document.End}, true
	case key.Matches(msg, k.DocStart):
		return document.Move{Motion: document.DocumentStart}, true
	case key.Matches(msg, k.DocEnd):
		return document.Move{Motion: document.DocumentEnd}, true

	case key.Matches(msg, k.Backspace):
		return document.Backspace{}, true
	case key.Matches(msg, k.Delete):
		return document.Delete{}, true
	case key.Matches(msg, k.Enter):
		return document.InsertNewline{}, true

	case key.Matches(msg, k.SelectAll):
		return document.SelectAll{}, true
	case key.Matches(msg, k.SelectWord):
		return document.SelectWord{}, true
	case key.Matches(msg, k.SelectLine):
		return document.SelectLine{}, true
	}

	switch msg.Type {
	case tea.KeyTab:
		return document.InsertChar{Char: '\t'}, true
	case tea.KeySpace:
		return document.InsertChar{Char: ' '}, true
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return nil, false
		}
		if len(msg.Runes) == 1 {
			return document.InsertChar{Char: msg.Runes[0]}, true
		}
		return document.Paste{Text: string(msg.Runes)}, true
	}
	return nil, false
}
