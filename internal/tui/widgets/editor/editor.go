package editor

import (
    "fmt"
    "strings"

    "github.com/charmbracelet/lipgloss"

    "textpad/internal/document"
    "textpad/internal/tui/state"
    "textpad/internal/tui/util"
)

type Editor struct {
    gutter    lipgloss.Style
    cursor    lipgloss.Style
    selection lipgloss.Style
    filler    lipgloss.Style
}

func NewEditor(p util.Palette) Editor {
    return Editor{
        gutter:    p.Style(lipgloss.NewStyle().Foreground(p.Muted)),
        cursor:    lipgloss.NewStyle().Reverse(true),
        selection: p.Style(lipgloss.NewStyle().Background(p.Selection)).Reverse(p.NoColor),
        filler:    p.Style(lipgloss.NewStyle().Foreground(p.MutedDark)),
    }
}

// GutterWidth is the width of the line-number column for a document with
// lineCount lines, including its trailing space.
func GutterWidth(lineCount int) int {
    return len(fmt.Sprint(lineCount)) + 1
}

// View renders the visible window of c: height rows starting at s.ScrollV,
// each clipped horizontally from s.ScrollH. Rows past the end show "~".
func (e Editor) View(s state.UIState, c *document.Content, height int) string {
    gw := GutterWidth(c.LineCount())
    width := state.TextWidth(s, gw)
    cur := c.Cursor()
    sel, hasSel := c.Selection()

    var b strings.Builder
    for row := 0; row < height; row++ {
        if row > 0 {
            b.WriteByte('\n')
        }
        line := s.ScrollV + row
        if line >= c.LineCount() {
            b.WriteString(e.filler.Render("~"))
            continue
        }
        b.WriteString(e.gutter.Render(fmt.Sprintf("%*d ", gw-1, line+1)))

        runes := []rune(c.Line(line))
        end := s.ScrollH + width
        for col := s.ScrollH; col < end; col++ {
            pos := document.Pos{Line: line, Column: col}
            if col > len(runes) || (col == len(runes) && pos != cur) {
                break
            }
            ch := " "
            if col < len(runes) {
                ch = displayRune(runes[col])
            }
            switch {
            case pos == cur:
                b.WriteString(e.cursor.Render(ch))
            case hasSel && inRange(sel, pos):
                b.WriteString(e.selection.Render(ch))
            default:
                b.WriteString(ch)
            }
        }
    }
    return b.String()
}

func inRange(r document.Range, p document.Pos) bool {
    return document.ComparePos(r.Start, p) <= 0 && document.ComparePos(p, r.End) < 0
}

// displayRune keeps every rune one cell wide so columns stay aligned.
func displayRune(r rune) string {
    if r == '\t' || r < 0x20 || r == 0x7f {
        return " "
    }
    return string(r)
}
