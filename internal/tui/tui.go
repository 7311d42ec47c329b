package tui

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"textpad/internal/core"
	"textpad/internal/document"
	"textpad/internal/picker"
	"textpad/internal/tui/state"
	"textpad/internal/tui/util"
	"textpad/internal/tui/widgets/diff"
	"textpad/internal/tui/widgets/editor"
	"textpad/internal/tui/widgets/helpoverlay"
	"textpad/internal/tui/widgets/statusbar"
	"textpad/internal/tui/widgets/tagchips"
)

// openButton is the clickable control at the left of the header row.
const openButton = "[ Open ]"

type Options struct {
	Editor *core.Editor
	// Picker is set when picks are answered in the terminal. Nil when the
	// editor uses a native dialog.
	Picker     *picker.Terminal
	Palette    util.Palette
	ShowHidden bool
	Logger     *log.Logger
}

// Run shows the editor until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	m := newModel(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// ===== Model =====

type model struct {
	ed   *core.Editor
	ui   state.UIState
	keys KeyMap
	help help.Model

	// overlays
	changes viewport.Model
	term    *picker.Terminal
	fp      filepicker.Model
	req     *picker.Request

	// tags are the status chips, recomputed only when the document changes.
	tags []state.Tag

	palette    util.Palette
	showHidden bool
	text       editor.Editor
	status     statusbar.StatusBar
	diffView   diff.DiffView
	helpView   helpoverlay.HelpOverlay
	log        *log.Logger
}

// pickRequestMsg carries a pending terminal pick to the UI.
type pickRequestMsg struct{ req *picker.Request }

func waitPick(t *picker.Terminal) tea.Cmd {
	if t == nil {
		return nil
	}
	return func() tea.Msg {
		req, ok := <-t.Requests()
		if !ok {
			return nil
		}
		return pickRequestMsg{req: req}
	}
}

func newModel(opts Options) model {
	ed := opts.Editor
	if ed == nil {
		ed = core.New()
	}
	lg := opts.Logger
	if lg == nil {
		lg = log.New(io.Discard)
	}
	p := opts.Palette
	h := help.New()
	if p.NoColor {
		h.Styles = help.Styles{}
	}
	m := model{
		ed:         ed,
		keys:       DefaultKeyMap(),
		help:       h,
		changes:    viewport.New(80, state.TextHeight(state.UIState{})),
		term:       opts.Picker,
		palette:    p,
		showHidden: opts.ShowHidden,
		text:       editor.NewEditor(p),
		status:     statusbar.NewStatusBar(p),
		diffView:   diff.NewDiffView(p),
		helpView:   helpoverlay.NewHelpOverlay(p),
		log:        lg,
	}
	return m.retag()
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.ed.Init(), waitPick(m.term), tea.SetWindowTitle("textpad"))
}

// Update routes input to the picker, the overlays or the editor, and feeds
// editor messages through core.Editor.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui = state.Resize(m.ui, msg.Width, msg.Height)
		m.help.Width = msg.Width
		m.changes.Width = msg.Width
		m.changes.Height = state.TextHeight(m.ui)
		m.fp.Height = state.TextHeight(m.ui) - 1
		m = m.follow()
		return m, nil

	case pickRequestMsg:
		return m.startPick(msg.req)

	case clipboardMsg:
		if msg.err != nil {
			m.log.Warn("clipboard", "op", msg.verb, "err", msg.err)
			m.ui = state.SetNotice(m.ui, fmt.Sprintf("%s failed: %v", msg.verb, msg.err))
		} else {
			m.ui = state.SetNotice(m.ui, fmt.Sprintf("%s %d chars", msg.verb, msg.runes))
		}
		return m, nil

	case core.FileOpenedMsg:
		cmd := m.ed.Update(msg)
		if msg.Err != nil {
			m.ui = state.ClearNotice(m.ui)
			return m, cmd
		}
		m = m.retag()
		m.ui = state.ResetScroll(m.ui)
		m.ui = state.SetNotice(m.ui, "opened "+msg.Path)
		if m.ui.Overlay == state.ChangesOverlay {
			m = m.refreshChanges()
		}
		return m, tea.Batch(cmd, tea.SetWindowTitle("textpad - "+filepath.Base(msg.Path)))

	case core.EditMsg:
		cmd := m.ed.Update(msg)
		m = m.retag().follow()
		return m, cmd

	case core.OpenMsg:
		return m, m.ed.Update(msg)

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		return m.updateMouse(msg)
	}

	// Directory listings and other internal messages of the picker.
	if m.ui.Overlay == state.PickerOverlay {
		var cmd tea.Cmd
		m.fp, cmd = m.fp.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		if m.req != nil {
			m.req.Cancel()
		}
		return m, tea.Quit
	}

	switch m.ui.Overlay {
	case state.PickerOverlay:
		return m.updatePicker(msg)

	case state.HelpOverlay:
		if key.Matches(msg, m.keys.Close, m.keys.Help) {
			m.ui = state.CloseOverlay(m.ui)
		}
		return m, nil

	case state.ChangesOverlay:
		if key.Matches(msg, m.keys.Close, m.keys.Changes) {
			m.ui = state.CloseOverlay(m.ui)
			return m, nil
		}
		var cmd tea.Cmd
		m.changes, cmd = m.changes.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Open):
		return m.Update(core.OpenMsg{})
	case key.Matches(msg, m.keys.Help):
		m.ui = state.ToggleHelp(m.ui)
		return m, nil
	case key.Matches(msg, m.keys.Changes):
		m.ui = state.ToggleChanges(m.ui)
		return m.refreshChanges(), nil
	case key.Matches(msg, m.keys.Close):
		m.ui = state.ClearNotice(m.ui)
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		if sel := m.ed.Content().SelectedText(); sel != "" {
			return m, copyCmd("copied", sel)
		}
		return m, nil
	case key.Matches(msg, m.keys.Cut):
		sel := m.ed.Content().SelectedText()
		if sel == "" {
			return m, nil
		}
		next, cmd := m.Update(core.EditMsg{Action: document.Delete{}})
		return next, tea.Batch(cmd, copyCmd("cut", sel))
	case key.Matches(msg, m.keys.Paste):
		return m, pasteCmd()
	}

	if a, ok := m.keys.Action(msg); ok {
		return m.Update(core.EditMsg{Action: a})
	}
	return m, nil
}

func (m model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Close) {
		return m.settlePick("")
	}
	var cmd tea.Cmd
	m.fp, cmd = m.fp.Update(msg)
	if ok, path := m.fp.DidSelectFile(msg); ok {
		return m.settlePick(path)
	}
	return m, cmd
}

func (m model) startPick(req *picker.Request) (tea.Model, tea.Cmd) {
	dir := req.StartDir
	if dir == "" {
		dir = "."
	}
	fp := filepicker.New()
	fp.CurrentDirectory = dir
	fp.ShowHidden = m.showHidden
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.AutoHeight = false
	fp.Height = state.TextHeight(m.ui) - 1
	// Esc cancels the whole pick instead of going up a directory.
	fp.KeyMap.Back = key.NewBinding(key.WithKeys("h", "backspace", "left"), key.WithHelp("h", "back"))

	m.fp = fp
	m.req = req
	m.ui = state.OpenPicker(m.ui)
	m.log.Debug("terminal pick started", "dir", dir)
	return m, m.fp.Init()
}

// settlePick answers the pending request; an empty path cancels it. The
// next request is awaited only after this one is settled.
func (m model) settlePick(path string) (tea.Model, tea.Cmd) {
	if m.req != nil {
		if path == "" {
			m.req.Cancel()
		} else {
			m.req.Resolve(path)
		}
	}
	m.req = nil
	m.ui = state.ClosePicker(m.ui)
	return m, waitPick(m.term)
}

func (m model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch m.ui.Overlay {
	case state.PickerOverlay:
		var cmd tea.Cmd
		m.fp, cmd = m.fp.Update(msg)
		return m, cmd
	case state.ChangesOverlay:
		var cmd tea.Cmd
		m.changes, cmd = m.changes.Update(msg)
		return m, cmd
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.ui = state.ScrollBy(m.ui, -3, m.ed.Content().LineCount())
		return m, nil
	case msg.Button == tea.MouseButtonWheelDown:
		m.ui = state.ScrollBy(m.ui, 3, m.ed.Content().LineCount())
		return m, nil
	case msg.Button != tea.MouseButtonLeft:
		return m, nil
	}

	if m.ui.Overlay != state.NoOverlay {
		return m, nil
	}
	if msg.Y == 0 {
		if msg.Action == tea.MouseActionPress && msg.X < lipgloss.Width(openButton) {
			return m.Update(core.OpenMsg{})
		}
		return m, nil
	}
	pos, ok := m.hitTest(msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Shift {
			return m.Update(core.EditMsg{Action: document.SelectTo{Pos: pos}})
		}
		return m.Update(core.EditMsg{Action: document.MoveTo{Pos: pos}})
	case tea.MouseActionMotion:
		return m.Update(core.EditMsg{Action: document.SelectTo{Pos: pos}})
	}
	return m, nil
}

// hitTest converts a screen cell in the text area to a document position.
// Out-of-range positions are left for the document to clamp.
func (m model) hitTest(x, y int) (document.Pos, bool) {
	row := y - 1
	if row < 0 || row >= state.TextHeight(m.ui) {
		return document.Pos{}, false
	}
	col := x - editor.GutterWidth(m.ed.Content().LineCount())
	if col < 0 {
		col = 0
	}
	return document.Pos{Line: m.ui.ScrollV + row, Column: m.ui.ScrollH + col}, true
}

// follow keeps the cursor inside the text area.
func (m model) follow() model {
	c := m.ed.Content()
	line, col := c.CursorPosition()
	width := state.TextWidth(m.ui, editor.GutterWidth(c.LineCount()))
	m.ui = state.Follow(m.ui, line, col, width, state.TextHeight(m.ui))
	return m
}

// retag recomputes the status chips from a full diff against the loaded text.
func (m model) retag() model {
	m.tags = util.ComputeTags(m.ed.Origin(), m.ed.Content().Text())
	return m
}

func (m model) refreshChanges() model {
	m.changes.Width = m.ui.Width
	m.changes.Height = state.TextHeight(m.ui)
	m.changes.SetContent(m.diffView.View(m.ed.Origin(), m.ed.Content().Text()))
	m.changes.GotoTop()
	return m
}

// ===== Views =====

func (m model) View() string {
	height := state.TextHeight(m.ui)
	body := lipgloss.NewStyle().Height(height).MaxHeight(height).Render(m.viewBody(height))
	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewHeader(),
		body,
		m.viewStatus(),
		m.help.ShortHelpView(m.keys.ShortHelp()),
	)
}

func (m model) viewHeader() string {
	btn := m.palette.Style(lipgloss.NewStyle().Foreground(m.palette.Primary).Bold(true)).Render(openButton)
	name := m.ed.Path()
	if name == "" {
		name = "[untitled]"
	}
	if m.ed.Modified() {
		name += " *"
	}
	return btn + "  " + name
}

func (m model) viewBody(height int) string {
	switch m.ui.Overlay {
	case state.HelpOverlay:
		return m.helpView.View(m.ui.Width, m.keys.Sections())
	case state.ChangesOverlay:
		return m.changes.View()
	case state.PickerOverlay:
		title := picker.DefaultTitle
		if m.req != nil && m.req.Title != "" {
			title = m.req.Title
		}
		head := lipgloss.NewStyle().Bold(true).Render(title) + "  " + m.fp.CurrentDirectory
		return head + "\n" + m.fp.View()
	}
	return m.text.View(m.ui, m.ed.Content(), height)
}

func (m model) viewStatus() string {
	c := m.ed.Content()
	line, col := c.CursorPosition()
	in := statusbar.Info{
		Line:   line,
		Column: col,
		Chips:  tagchips.View(m.tags, m.palette),
	}
	if err := m.ed.LastError(); err != nil {
		in.Err = err.Error()
	}
	return m.status.View(m.ui, in)
}
