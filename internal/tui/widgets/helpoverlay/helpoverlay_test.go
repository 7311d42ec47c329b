package helpoverlay

import (
    "strings"
    "testing"

    "github.com/charmbracelet/bubbles/key"

    "textpad/internal/tui/util"
)

func TestViewListsSections(t *testing.T) {
    p := util.DefaultPalette()
    p.NoColor = true
    open := key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "open file"))
    quit := key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit"))
    hidden := key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "hidden"), key.WithDisabled())

    out := NewHelpOverlay(p).View(80, []Section{
        {Title: "File", Bindings: []key.Binding{open, quit}},
        {Title: "Nothing", Bindings: []key.Binding{hidden}},
    })

    for _, want := range []string{"Keys", "File", "ctrl+o", "open file", "ctrl+q", "quit"} {
        if !strings.Contains(out, want) {
            t.Fatalf("expected %q in help:\n%s", want, out)
        }
    }
    if strings.Contains(out, "Nothing") || strings.Contains(out, "hidden") {
        t.Fatalf("disabled-only section should be skipped:\n%s", out)
    }
}
