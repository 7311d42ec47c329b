package tui

import (
	"unicode/utf8"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"textpad/internal/core"
	"textpad/internal/document"
)

// clipboardMsg reports the outcome of a clipboard write.
type clipboardMsg struct {
	verb  string
	runes int
	err   error
}

// Clipboard access may shell out to xclip or pbcopy. It only runs inside Cmds.

func copyCmd(verb, text string) tea.Cmd {
	return func() tea.Msg {
		err := clipboard.WriteAll(text)
		return clipboardMsg{verb: verb, runes: utf8.RuneCountInString(text), err: err}
	}
}

func pasteCmd() tea.Cmd {
	return func() tea.Msg {
		text, err := clipboard.ReadAll()
		if err != nil {
			return clipboardMsg{verb: "paste", err: err}
		}
		return core.EditMsg{Action: document.Paste{Text: text}}
	}
}
