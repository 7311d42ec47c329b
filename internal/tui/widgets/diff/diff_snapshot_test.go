package diff

import (
    "strings"
    "testing"

    "textpad/internal/tui/util"
)

func view() DiffView {
    p := util.DefaultPalette()
    p.NoColor = true
    return NewDiffView(p)
}

func TestNoChanges(t *testing.T) {
    if out := view().View("a\nb", "a\nb"); out != "No changes since load\n" {
        t.Fatalf("unexpected output %q", out)
    }
}

func TestChangedLinePair(t *testing.T) {
    out := view().View("a\nb\nc", "a\nB\nc")
    if !strings.Contains(out, "  a\n") || !strings.Contains(out, "  c\n") {
        t.Fatalf("expected unchanged context lines: %q", out)
    }
    if !strings.Contains(out, "- b\n") || !strings.Contains(out, "+ B\n") {
        t.Fatalf("expected -/+ pair: %q", out)
    }
}

func TestInsertedAndDeletedLines(t *testing.T) {
    out := view().View("keep\ndrop", "keep\nnew one\nnew two\n")
    if !strings.Contains(out, "+ new one") || !strings.Contains(out, "+ new two") {
        t.Fatalf("expected added lines: %q", out)
    }
    if !strings.Contains(out, "- drop") {
        t.Fatalf("expected removed line: %q", out)
    }
}
