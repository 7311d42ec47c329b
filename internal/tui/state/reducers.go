package state

// Resize records the terminal size. Non-positive sizes are ignored.
func Resize(s UIState, width, height int) UIState {
    if width > 0 {
        s.Width = width
    }
    if height > 0 {
        s.Height = height
    }
    return s
}

// TextHeight is the number of rows available to the text area (at least 1).
func TextHeight(s UIState) int {
    h := s.Height
    if h == 0 {
        h = 24
    }
    if h-ChromeRows < 1 {
        return 1
    }
    return h - ChromeRows
}

// TextWidth is the width left for text after a gutter of the given width.
func TextWidth(s UIState, gutter int) int {
    w := s.Width
    if w == 0 {
        w = 80
    }
    if w-gutter < 1 {
        return 1
    }
    return w - gutter
}

// ToggleHelp shows or hides the help overlay.
func ToggleHelp(s UIState) UIState {
    return toggle(s, HelpOverlay)
}

// ToggleChanges shows or hides the changes-since-load overlay.
func ToggleChanges(s UIState) UIState {
    return toggle(s, ChangesOverlay)
}

func toggle(s UIState, o Overlay) UIState {
    if s.Overlay == PickerOverlay {
        return s
    }
    if s.Overlay == o {
        s.Overlay = NoOverlay
    } else {
        s.Overlay = o
    }
    return s
}

// CloseOverlay drops any help/changes overlay; the picker closes only via ClosePicker.
func CloseOverlay(s UIState) UIState {
    if s.Overlay != PickerOverlay {
        s.Overlay = NoOverlay
    }
    return s
}

// OpenPicker puts the file picker on top, remembering what was underneath.
func OpenPicker(s UIState) UIState {
    if s.Overlay != PickerOverlay {
        s.Behind = s.Overlay
    }
    s.Overlay = PickerOverlay
    return s
}

// ClosePicker restores the overlay that was showing before the picker.
func ClosePicker(s UIState) UIState {
    if s.Overlay == PickerOverlay {
        s.Overlay = s.Behind
        s.Behind = NoOverlay
    }
    return s
}

func SetNotice(s UIState, notice string) UIState {
    s.Notice = notice
    return s
}

func ClearNotice(s UIState) UIState {
    s.Notice = ""
    return s
}

// Follow scrolls just enough to keep the cursor inside a width x height window.
func Follow(s UIState, line, col, width, height int) UIState {
    if line < s.ScrollV {
        s.ScrollV = line
    } else if line >= s.ScrollV+height {
        s.ScrollV = line - height + 1
    }
    if col < s.ScrollH {
        s.ScrollH = col
    } else if col >= s.ScrollH+width {
        s.ScrollH = col - width + 1
    }
    if s.ScrollV < 0 {
        s.ScrollV = 0
    }
    if s.ScrollH < 0 {
        s.ScrollH = 0
    }
    return s
}

// ScrollBy moves the view vertically, keeping at least one line visible.
func ScrollBy(s UIState, delta, lineCount int) UIState {
    s.ScrollV += delta
    if s.ScrollV > lineCount-1 {
        s.ScrollV = lineCount - 1
    }
    if s.ScrollV < 0 {
        s.ScrollV = 0
    }
    return s
}

// ResetScroll returns to the top-left corner, used when a new file replaces the document.
func ResetScroll(s UIState) UIState {
    s.ScrollV = 0
    s.ScrollH = 0
    return s
}
