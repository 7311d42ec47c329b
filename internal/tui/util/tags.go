package util

import (
    "strings"
    "time"
    "unicode/utf8"

    dmp "github.com/sergi/go-diff/diffmatchpatch"

    "textpad/internal/tui/state"
)

// ComputeTags calculates the status chips for a document given the text as
// it was loaded (origin) and the current text.
//
// The returned slice preserves a stable order:
//   Modified, Added, Removed, Lines, Chars
//
// Rules:
// - Modified, Added and Removed appear only when current differs from origin.
// - Added and Removed count runes from a character-level diff and are omitted when zero.
// - Lines and Chars are always included (counters).
func ComputeTags(origin, current string) []state.Tag {
    tags := make([]state.Tag, 0, 5)

    if origin != current {
        added, removed := diffCounts(origin, current)
        tags = append(tags, state.Tag{Kind: state.MODIFIED})
        if added > 0 {
            tags = append(tags, state.Tag{Kind: state.ADDED, Value: added})
        }
        if removed > 0 {
            tags = append(tags, state.Tag{Kind: state.REMOVED, Value: removed})
        }
    }

    tags = append(tags, state.Tag{Kind: state.LINES, Value: strings.Count(current, "\n") + 1})
    tags = append(tags, state.Tag{Kind: state.CHARS, Value: utf8.RuneCountInString(current)})
    return tags
}

// diffCounts returns the number of inserted and deleted runes between a and b.
func diffCounts(a, b string) (added, removed int) {
    d := dmp.New()
    // Keep typing responsive on large files; a coarser diff is fine for counters.
    d.DiffTimeout = 50 * time.Millisecond
    diffs := d.DiffMain(a, b, false)
    for _, df := range diffs {
        switch df.Type {
        case dmp.DiffInsert:
            added += utf8.RuneCountInString(df.Text)
        case dmp.DiffDelete:
            removed += utf8.RuneCountInString(df.Text)
        }
    }
    return added, removed
}
