package statusbar

import (
    "fmt"
    "strings"

    "github.com/charmbracelet/lipgloss"
    "github.com/muesli/reflow/truncate"

    "textpad/internal/tui/state"
    "textpad/internal/tui/util"
)

type StatusBar struct {
    err    lipgloss.Style
    notice lipgloss.Style
    pos    lipgloss.Style
}

func NewStatusBar(p util.Palette) StatusBar {
    return StatusBar{
        err:    p.Style(lipgloss.NewStyle().Foreground(p.Danger)),
        notice: p.Style(lipgloss.NewStyle().Foreground(p.Muted)),
        pos:    lipgloss.NewStyle().Bold(true),
    }
}

// Info is what the status bar reports besides UIState.
type Info struct {
    // Line and Column are 0-based; the bar shows them 1-based.
    Line, Column int
    Err          string
    Chips        string
}

// View composes one status line: error and notice on the left, chips and
// line:column on the right. The left side is truncated to fit.
func (sb StatusBar) View(s state.UIState, in Info) string {
    width := s.Width
    if width == 0 {
        width = 80
    }
    right := sb.pos.Render(fmt.Sprintf("%d:%d", in.Line+1, in.Column+1))
    if in.Chips != "" {
        right = in.Chips + "  " + right
    }

    var parts []string
    if in.Err != "" {
        parts = append(parts, sb.err.Render("! "+in.Err))
    }
    if s.Notice != "" {
        parts = append(parts, sb.notice.Render(s.Notice))
    }
    left := strings.Join(parts, "  ")

    room := width - lipgloss.Width(right) - 1
    if room < 0 {
        room = 0
    }
    left = truncate.StringWithTail(left, uint(room), "…")
    gap := width - lipgloss.Width(left) - lipgloss.Width(right)
    if gap < 1 {
        gap = 1
    }
    return left + strings.Repeat(" ", gap) + right
}
