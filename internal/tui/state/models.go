package state

// Overlay is what currently covers the text area.
type Overlay int

const (
    NoOverlay Overlay = iota
    HelpOverlay
    ChangesOverlay
    PickerOverlay
)

// Rows taken by chrome around the text area: header, status bar, help line.
const ChromeRows = 3

// UIState holds presentation-only state shared by the header, text area,
// status bar, and overlays. The document itself lives in core.Editor.
type UIState struct {
    // Layout
    Width  int
    Height int

    // Scroll offsets of the text area, in lines and runes.
    ScrollV int
    ScrollH int

    Overlay Overlay
    // Overlay to restore when the picker closes.
    Behind Overlay

    // Notices and ephemeral messages
    Notice string
}
