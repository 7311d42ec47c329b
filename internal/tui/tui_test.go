package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textpad/internal/core"
	"textpad/internal/loader"
	"textpad/internal/picker"
	"textpad/internal/tui/state"
	"textpad/internal/tui/util"
)

func memLoader(t *testing.T, files map[string]string) *loader.Loader {
	t.Helper()
	mem := afero.NewMemMapFs()
	for p, body := range files {
		require.NoError(t, afero.WriteFile(mem, p, []byte(body), 0o644))
	}
	return loader.New(mem)
}

func plainPalette() util.Palette {
	p := util.DefaultPalette()
	p.NoColor = true
	return p
}

// testModel returns a sized model around ed.
func testModel(t *testing.T, ed *core.Editor, term *picker.Terminal) model {
	t.Helper()
	m := newModel(Options{Editor: ed, Picker: term, Palette: plainPalette()})
	return step(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
}

func step(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(model)
}

func stepCmd(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(model), cmd
}

func typeKeys(t *testing.T, m model, s string) model {
	t.Helper()
	for _, r := range s {
		if r == '\n' {
			m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
			continue
		}
		m = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestTypingUpdatesDocumentAndStatus(t *testing.T) {
	m := testModel(t, core.New(), nil)
	m = typeKeys(t, m, "hi\nx")

	assert.Equal(t, "hi\nx", m.ed.Content().Text())
	view := m.View()
	assert.Contains(t, view, openButton)
	assert.Contains(t, view, "2:2")
	assert.Contains(t, view, "[untitled] *")
}

func TestHeaderClickOpens(t *testing.T) {
	ed := core.New(
		core.WithLoader(memLoader(t, map[string]string{"/a.txt": "alpha"})),
		core.WithPicker(picker.Static{Path: "/a.txt"}),
	)
	m := testModel(t, ed, nil)

	m, cmd := stepCmd(t, m, tea.MouseMsg{X: 2, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.NotNil(t, cmd)
	msg := cmd()
	opened, ok := msg.(core.FileOpenedMsg)
	require.True(t, ok)
	assert.Equal(t, "/a.txt", opened.Path)

	m = step(t, m, msg)
	assert.Equal(t, "alpha", m.ed.Content().Text())
	assert.Equal(t, "opened /a.txt", m.ui.Notice)
}

func TestClickAndDragSelect(t *testing.T) {
	m := testModel(t, core.New(), nil)
	m = step(t, m, core.FileOpenedMsg{Path: "/x", Text: "ab\ncd"})

	// Gutter is "1 " (two cells); row 1 is the first text line.
	m = step(t, m, tea.MouseMsg{X: 3, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	line, col := m.ed.Content().CursorPosition()
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, col)

	m = step(t, m, tea.MouseMsg{X: 2, Y: 1, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	assert.Equal(t, "ab\nc", m.ed.Content().SelectedText())
}

func TestWheelScrolls(t *testing.T) {
	m := testModel(t, core.New(), nil)
	m = step(t, m, core.FileOpenedMsg{Path: "/x", Text: "1\n2\n3\n4\n5\n6"})
	m = step(t, m, tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress, Y: 3})
	assert.Equal(t, 3, m.ui.ScrollV)
	m = step(t, m, tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress, Y: 3})
	assert.Equal(t, 0, m.ui.ScrollV)
}

func TestTerminalPickRoundTrip(t *testing.T) {
	term := picker.NewTerminal("Pick a note", "/")
	ed := core.New(
		core.WithLoader(memLoader(t, map[string]string{"/notes.txt": "hello"})),
		core.WithPicker(term),
	)
	m := testModel(t, ed, term)

	m, cmd := stepCmd(t, m, tea.KeyMsg{Type: tea.KeyCtrlO})
	require.NotNil(t, cmd)
	results := make(chan tea.Msg, 1)
	go func() { results <- cmd() }()

	m = step(t, m, waitPick(term)())
	assert.Equal(t, state.PickerOverlay, m.ui.Overlay)
	assert.Contains(t, m.View(), "Pick a note")

	next, rearm := m.settlePick("/notes.txt")
	m = next.(model)
	assert.NotNil(t, rearm, "the next pick is awaited again")
	assert.Equal(t, state.NoOverlay, m.ui.Overlay)

	m = step(t, m, <-results)
	assert.Equal(t, "hello", m.ed.Content().Text())
	assert.Equal(t, "/notes.txt", m.ed.Path())
	assert.Nil(t, m.ed.LastError())
}

func TestTerminalPickEscCancels(t *testing.T) {
	term := picker.NewTerminal("", "/")
	m := testModel(t, core.New(core.WithPicker(term)), term)
	m = typeKeys(t, m, "draft")

	m, cmd := stepCmd(t, m, tea.KeyMsg{Type: tea.KeyCtrlO})
	require.NotNil(t, cmd)
	results := make(chan tea.Msg, 1)
	go func() { results <- cmd() }()

	m = step(t, m, waitPick(term)())
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, state.NoOverlay, m.ui.Overlay)

	m = step(t, m, <-results)
	assert.Equal(t, "draft", m.ed.Content().Text())
	require.NotNil(t, m.ed.LastError())
	assert.Equal(t, core.DialogClosed, m.ed.LastError().Kind)
	assert.Contains(t, m.View(), "! dialog closed")
}

func TestOverlaysToggle(t *testing.T) {
	m := testModel(t, core.New(), nil)
	m = step(t, m, core.FileOpenedMsg{Path: "/x", Text: "a"})
	m = typeKeys(t, m, "b")

	m = step(t, m, tea.KeyMsg{Type: tea.KeyF2})
	assert.Equal(t, state.ChangesOverlay, m.ui.Overlay)
	view := m.View()
	assert.Contains(t, view, "- a")
	assert.Contains(t, view, "+ ba")

	m = step(t, m, tea.KeyMsg{Type: tea.KeyF1})
	assert.Equal(t, state.ChangesOverlay, m.ui.Overlay, "f1 is inert while changes are shown")

	m = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, state.NoOverlay, m.ui.Overlay)

	m = step(t, m, tea.KeyMsg{Type: tea.KeyF1})
	assert.Equal(t, state.HelpOverlay, m.ui.Overlay)
	assert.Contains(t, m.View(), "select all")

	m = typeKeys(t, m, "z")
	assert.Equal(t, "ba", m.ed.Content().Text(), "typing is ignored under the help overlay")
}

func TestQuit(t *testing.T) {
	m := testModel(t, core.New(), nil)
	_, cmd := stepCmd(t, m, tea.KeyMsg{Type: tea.KeyCtrlQ})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestHeaderClickIgnoredUnderOverlay(t *testing.T) {
	ed := core.New(core.WithPicker(picker.Static{Path: "/a.txt"}))
	m := testModel(t, ed, nil)
	m = step(t, m, tea.KeyMsg{Type: tea.KeyF1})
	require.Equal(t, state.HelpOverlay, m.ui.Overlay)

	m, cmd := stepCmd(t, m, tea.MouseMsg{X: 2, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Nil(t, cmd)
	assert.Equal(t, state.HelpOverlay, m.ui.Overlay)
}

func TestTagsFollowDocumentChanges(t *testing.T) {
	m := testModel(t, core.New(), nil)
	m = step(t, m, core.FileOpenedMsg{Path: "/x", Text: "ab\r\ncd"})
	assert.Equal(t, []state.Tag{
		{Kind: state.LINES, Value: 2},
		{Kind: state.CHARS, Value: 5},
	}, m.tags, "a freshly loaded CRLF file is unmodified")

	before := m.tags
	m = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m = step(t, m, tea.MouseMsg{X: 3, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, before, m.tags, "resizes and cursor moves keep the chips")

	m = typeKeys(t, m, "!")
	assert.Equal(t, []state.Tag{
		{Kind: state.MODIFIED},
		{Kind: state.ADDED, Value: 1},
		{Kind: state.LINES, Value: 2},
		{Kind: state.CHARS, Value: 6},
	}, m.tags)
	assert.Contains(t, m.View(), "[Modified]")
}
