package helpoverlay

import (
    "strings"

    "github.com/charmbracelet/bubbles/help"
    "github.com/charmbracelet/bubbles/key"
    "github.com/charmbracelet/lipgloss"

    "textpad/internal/tui/util"
)

// Section is one titled group of bindings.
type Section struct {
    Title    string
    Bindings []key.Binding
}

type HelpOverlay struct {
    help  help.Model
    title lipgloss.Style
    head  lipgloss.Style
}

func NewHelpOverlay(p util.Palette) HelpOverlay {
    h := help.New()
    if p.NoColor {
        h.Styles = help.Styles{}
    }
    return HelpOverlay{
        help:  h,
        title: lipgloss.NewStyle().Bold(true),
        head:  p.Style(lipgloss.NewStyle().Foreground(p.Primary).Bold(true)),
    }
}

// View returns the grouped key help. Disabled bindings are left out and
// sections with nothing enabled are skipped.
func (o HelpOverlay) View(width int, sections []Section) string {
    o.help.Width = width
    var b strings.Builder
    b.WriteString(o.title.Render("Keys") + "\n")
    for _, sec := range sections {
        if !anyEnabled(sec.Bindings) {
            continue
        }
        b.WriteString("\n" + o.head.Render(sec.Title) + "\n")
        b.WriteString(o.help.FullHelpView([][]key.Binding{sec.Bindings}) + "\n")
    }
    b.WriteString("\nF1 or Esc closes this help.\n")
    return b.String()
}

func anyEnabled(bs []key.Binding) bool {
    for _, b := range bs {
        if b.Enabled() {
            return true
        }
    }
    return false
}
