package util

import (
    "os"

    "github.com/charmbracelet/lipgloss"
)

// NoColor returns true if color output should be disabled.
func NoColor(explicit bool) bool {
    if explicit {
        return true
    }
    return os.Getenv("NO_COLOR") != ""
}

// Palette defines a small set of colors used across widgets.
type Palette struct {
    Primary   lipgloss.Color
    Success   lipgloss.Color
    Danger    lipgloss.Color
    Warning   lipgloss.Color
    Muted     lipgloss.Color
    MutedDark lipgloss.Color
    Text      lipgloss.Color
    Selection lipgloss.Color
    NoColor   bool
}

// DefaultPalette returns the default (dark) palette.
func DefaultPalette() Palette {
    return Palette{
        Primary:   lipgloss.Color("#3D6DFF"),
        Success:   lipgloss.Color("#2AA876"),
        Danger:    lipgloss.Color("#D9534F"),
        Warning:   lipgloss.Color("#F0AD4E"),
        Muted:     lipgloss.Color("#6C757D"),
        MutedDark: lipgloss.Color("#5A5A5A"),
        Text:      lipgloss.Color("#E6E6E6"),
        Selection: lipgloss.Color("#264F78"),
    }
}

// LightPalette is tuned for light terminal backgrounds.
func LightPalette() Palette {
    p := DefaultPalette()
    p.Muted = lipgloss.Color("#8A8F94")
    p.MutedDark = lipgloss.Color("#B0B0B0")
    p.Text = lipgloss.Color("#1E1E1E")
    p.Selection = lipgloss.Color("#ADD6FF")
    return p
}

// PaletteFor picks the palette for a theme name ("dark" or "light").
func PaletteFor(theme string, noColor bool) Palette {
    p := DefaultPalette()
    if theme == "light" {
        p = LightPalette()
    }
    p.NoColor = NoColor(noColor)
    return p
}

// Style returns base, or a plain style when color is disabled.
func (p Palette) Style(base lipgloss.Style) lipgloss.Style {
    if p.NoColor {
        return lipgloss.NewStyle()
    }
    return base
}
