package editor

import (
    "strings"
    "testing"

    "textpad/internal/document"
    "textpad/internal/tui/state"
    "textpad/internal/tui/util"
)

func plain() Editor {
    p := util.DefaultPalette()
    p.NoColor = true
    return NewEditor(p)
}

func TestViewGutterAndFiller(t *testing.T) {
    c := document.WithText("alpha\nbeta")
    out := plain().View(state.UIState{Width: 40, Height: 10}, c, 4)
    rows := strings.Split(out, "\n")
    if len(rows) != 4 {
        t.Fatalf("expected 4 rows, got %d", len(rows))
    }
    if !strings.Contains(rows[0], "1 ") || !strings.Contains(rows[0], "lpha") {
        t.Fatalf("unexpected first row %q", rows[0])
    }
    if !strings.Contains(rows[1], "2 beta") {
        t.Fatalf("unexpected second row %q", rows[1])
    }
    if !strings.HasPrefix(rows[2], "~") || !strings.HasPrefix(rows[3], "~") {
        t.Fatalf("expected filler rows, got %q", rows[2:])
    }
}

func TestViewClipsHorizontally(t *testing.T) {
    c := document.WithText("0123456789abcdef")
    s := state.UIState{Width: 8, ScrollH: 4}
    out := plain().View(s, c, 1)
    // gutter "1 " leaves 6 columns: runes 4..9
    if !strings.Contains(out, "456789") || strings.Contains(out, "a") || strings.Contains(out, "3") {
        t.Fatalf("unexpected clip %q", out)
    }
}

func TestViewScrollsVertically(t *testing.T) {
    c := document.WithText("a\nb\nc\nd")
    out := plain().View(state.UIState{Width: 20, ScrollV: 2}, c, 2)
    if !strings.Contains(out, "3 c") || !strings.Contains(out, "4 d") || strings.Contains(out, "1 a") {
        t.Fatalf("unexpected window %q", out)
    }
}

func TestGutterWidth(t *testing.T) {
    if GutterWidth(9) != 2 || GutterWidth(10) != 3 || GutterWidth(1000) != 5 {
        t.Fatalf("unexpected gutter widths")
    }
}

func TestDisplayRuneFlattensControls(t *testing.T) {
    if displayRune('\t') != " " || displayRune('x') != "x" || displayRune('é') != "é" {
        t.Fatalf("unexpected display runes")
    }
}
