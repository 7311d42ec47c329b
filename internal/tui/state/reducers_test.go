package state

import "testing"

func TestToggleHelp(t *testing.T) {
    s := UIState{}
    s = ToggleHelp(s)
    if s.Overlay != HelpOverlay { t.Fatalf("expected help overlay") }
    s = ToggleHelp(s)
    if s.Overlay != NoOverlay { t.Fatalf("expected no overlay") }
}

func TestToggleChangesReplacesHelp(t *testing.T) {
    s := UIState{Overlay: HelpOverlay}
    s = ToggleChanges(s)
    if s.Overlay != ChangesOverlay { t.Fatalf("expected changes overlay") }
}

func TestPickerBlocksToggles(t *testing.T) {
    s := UIState{Overlay: ChangesOverlay}
    s = OpenPicker(s)
    if s.Overlay != PickerOverlay || s.Behind != ChangesOverlay { t.Fatalf("expected picker over changes") }
    s = ToggleHelp(s)
    s = CloseOverlay(s)
    if s.Overlay != PickerOverlay { t.Fatalf("picker must only close via ClosePicker") }
    s = ClosePicker(s)
    if s.Overlay != ChangesOverlay || s.Behind != NoOverlay { t.Fatalf("expected changes overlay restored") }
}

func TestResizeIgnoresZero(t *testing.T) {
    s := Resize(UIState{}, 100, 40)
    s = Resize(s, 0, 0)
    if s.Width != 100 || s.Height != 40 { t.Fatalf("unexpected size %dx%d", s.Width, s.Height) }
    if TextHeight(s) != 40-ChromeRows { t.Fatalf("unexpected text height %d", TextHeight(s)) }
    if TextWidth(s, 4) != 96 { t.Fatalf("unexpected text width %d", TextWidth(s, 4)) }
}

func TestTextSizeDefaultsAndFloor(t *testing.T) {
    if TextHeight(UIState{}) != 24-ChromeRows { t.Fatalf("expected default height") }
    if TextHeight(UIState{Height: 2}) != 1 { t.Fatalf("expected floor of 1") }
    if TextWidth(UIState{Width: 3}, 5) != 1 { t.Fatalf("expected floor of 1") }
}

func TestFollowKeepsCursorVisible(t *testing.T) {
    s := UIState{}
    s = Follow(s, 30, 0, 80, 10) // below the window
    if s.ScrollV != 21 { t.Fatalf("expected ScrollV 21, got %d", s.ScrollV) }
    s = Follow(s, 25, 0, 80, 10) // inside: unchanged
    if s.ScrollV != 21 { t.Fatalf("expected ScrollV unchanged, got %d", s.ScrollV) }
    s = Follow(s, 3, 0, 80, 10) // above
    if s.ScrollV != 3 { t.Fatalf("expected ScrollV 3, got %d", s.ScrollV) }
    s = Follow(s, 3, 100, 40, 10) // right of the window
    if s.ScrollH != 61 { t.Fatalf("expected ScrollH 61, got %d", s.ScrollH) }
    s = Follow(s, 3, 0, 40, 10)
    if s.ScrollH != 0 { t.Fatalf("expected ScrollH 0, got %d", s.ScrollH) }
}

func TestScrollByClamps(t *testing.T) {
    s := ScrollBy(UIState{}, -5, 10)
    if s.ScrollV != 0 { t.Fatalf("expected 0") }
    s = ScrollBy(s, 50, 10)
    if s.ScrollV != 9 { t.Fatalf("expected 9, got %d", s.ScrollV) }
    s = ResetScroll(s)
    if s.ScrollV != 0 || s.ScrollH != 0 { t.Fatalf("expected reset") }
}

func TestNotice(t *testing.T) {
    s := SetNotice(UIState{}, "Opened")
    if s.Notice != "Opened" { t.Fatalf("expected notice") }
    if ClearNotice(s).Notice != "" { t.Fatalf("expected cleared notice") }
}
