package tagchips

import (
    "fmt"
    "strings"

    "github.com/charmbracelet/lipgloss"

    "textpad/internal/tui/state"
    "textpad/internal/tui/util"
)

// View renders document tags in a stable order using colored chips when
// possible and ASCII fallbacks when color is disabled.
func View(tags []state.Tag, p util.Palette) string {
    if len(tags) == 0 {
        return ""
    }
    parts := make([]string, 0, len(tags))
    for _, t := range tags {
        parts = append(parts, renderChip(t, p))
    }
    return strings.Join(parts, " ")
}

func renderChip(t state.Tag, p util.Palette) string {
    label := chipLabel(t)
    if p.NoColor {
        return fmt.Sprintf("[%s]", label)
    }
    return chipStyle(t, p).Render(label)
}

func chipLabel(t state.Tag) string {
    switch t.Kind {
    case state.MODIFIED:
        return "Modified"
    case state.ADDED:
        return fmt.Sprintf("+%d", t.Value)
    case state.REMOVED:
        return fmt.Sprintf("-%d", t.Value)
    case state.LINES:
        return fmt.Sprintf("%d lines", t.Value)
    case state.CHARS:
        return fmt.Sprintf("%d chars", t.Value)
    default:
        return "Tag"
    }
}

func chipStyle(t state.Tag, p util.Palette) lipgloss.Style {
    base := lipgloss.NewStyle().Padding(0, 1)
    switch t.Kind {
    case state.MODIFIED:
        return base.Bold(true).Background(p.Primary).Foreground(lipgloss.Color("#FFFFFF"))
    case state.ADDED:
        return base.Background(p.Success).Foreground(lipgloss.Color("#FFFFFF"))
    case state.REMOVED:
        return base.Background(p.Danger).Foreground(lipgloss.Color("#FFFFFF"))
    case state.LINES, state.CHARS:
        return base.Background(p.MutedDark).Foreground(lipgloss.Color("#FFFFFF"))
    default:
        return base
    }
}
