package state

// TagKind enumerates the chips shown in the status bar.
type TagKind int

const (
    // Stable ordering for display: Modified, Added, Removed, Lines, Chars
    MODIFIED TagKind = iota
    ADDED
    REMOVED
    LINES
    CHARS
)

// Tag represents a single status chip. Value is used for numeric counters
// (e.g., added runes or line count). Non-numeric tags use Value = 0.
type Tag struct {
    Kind  TagKind
    Value int
}
