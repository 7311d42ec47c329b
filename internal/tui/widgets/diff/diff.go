package diff

import (
    "strings"

    "github.com/charmbracelet/lipgloss"
    dmp "github.com/sergi/go-diff/diffmatchpatch"

    "textpad/internal/tui/util"
)

type DiffView struct {
    delLine lipgloss.Style
    addLine lipgloss.Style
    delChar lipgloss.Style
    addChar lipgloss.Style
    faint   lipgloss.Style
}

func NewDiffView(p util.Palette) DiffView {
    return DiffView{
        delLine: p.Style(lipgloss.NewStyle().Foreground(p.Danger)),
        addLine: p.Style(lipgloss.NewStyle().Foreground(p.Success)),
        delChar: p.Style(lipgloss.NewStyle().Foreground(p.Danger).Underline(true)),
        addChar: p.Style(lipgloss.NewStyle().Foreground(p.Success).Underline(true)),
        faint:   p.Style(lipgloss.NewStyle().Faint(true)),
    }
}

// View renders a unified diff from before (the loaded text) to after (the
// current text). Changed line pairs get char-level highlights; unchanged
// lines are shown faint.
func (v DiffView) View(before, after string) string {
    if before == after {
        return "No changes since load\n"
    }
    d := dmp.New()
    a, b, lines := d.DiffLinesToChars(before, after)
    diffs := d.DiffCharsToLines(d.DiffMain(a, b, false), lines)

    var sb strings.Builder
    for i := 0; i < len(diffs); i++ {
        df := diffs[i]
        switch df.Type {
        case dmp.DiffEqual:
            for _, l := range splitLines(df.Text) {
                sb.WriteString("  " + v.faint.Render(l) + "\n")
            }
        case dmp.DiffDelete:
            del := splitLines(df.Text)
            if i+1 < len(diffs) && diffs[i+1].Type == dmp.DiffInsert {
                ins := splitLines(diffs[i+1].Text)
                if len(ins) == len(del) {
                    for j := range del {
                        v.writePair(&sb, del[j], ins[j])
                    }
                    i++
                    continue
                }
            }
            for _, l := range del {
                sb.WriteString(v.delLine.Render("- "+l) + "\n")
            }
        case dmp.DiffInsert:
            for _, l := range splitLines(df.Text) {
                sb.WriteString(v.addLine.Render("+ "+l) + "\n")
            }
        }
    }
    return sb.String()
}

// writePair renders one removed and one added line with char-level spans.
func (v DiffView) writePair(sb *strings.Builder, bl, al string) {
    d := dmp.New()
    diffs := d.DiffCleanupSemantic(d.DiffMain(bl, al, false))

    sb.WriteString(v.delLine.Render("- "))
    for _, df := range diffs {
        switch df.Type {
        case dmp.DiffDelete:
            sb.WriteString(v.delChar.Render(df.Text))
        case dmp.DiffEqual:
            sb.WriteString(v.delLine.Render(df.Text))
        }
    }
    sb.WriteString("\n")

    sb.WriteString(v.addLine.Render("+ "))
    for _, df := range diffs {
        switch df.Type {
        case dmp.DiffInsert:
            sb.WriteString(v.addChar.Render(df.Text))
        case dmp.DiffEqual:
            sb.WriteString(v.addLine.Render(df.Text))
        }
    }
    sb.WriteString("\n")
}

// splitLines splits a diff chunk into lines, dropping the empty piece after
// a trailing newline.
func splitLines(s string) []string {
    s = strings.TrimSuffix(s, "\n")
    return strings.Split(s, "\n")
}
