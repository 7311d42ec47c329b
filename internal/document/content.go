package document

import "strings"

// Content is the document state: text, cursor, and selection.
//
// The zero value is an empty document with the cursor at (0,0).
// Content is not safe for concurrent use.
type Content struct {
	lines [][]rune

	cursor Pos

	// anchor is the fixed end of the selection while selecting is set.
	anchor    Pos
	selecting bool
}

// New returns an empty document, cursor at (0,0).
func New() *Content {
	return &Content{lines: [][]rune{nil}}
}

// WithText returns a document holding text split on '\n', cursor at (0,0).
// A trailing '\r' on each line is dropped so CRLF files load as plain lines.
func WithText(text string) *Content {
	return &Content{lines: splitLines(text)}
}

// CursorPosition returns the 0-based (line, column) of the cursor.
func (c *Content) CursorPosition() (line, column int) {
	return c.cursor.Line, c.cursor.Column
}

func (c *Content) Cursor() Pos { return c.cursor }

func (c *Content) LineCount() int {
	if len(c.lines) == 0 {
		return 1
	}
	return len(c.lines)
}

// Line returns line i, or "" when i is out of range.
func (c *Content) Line(i int) string {
	if i < 0 || i >= len(c.lines) {
		return ""
	}
	return string(c.lines[i])
}

func (c *Content) Lines() []string {
	if len(c.lines) == 0 {
		return []string{""}
	}
	out := make([]string, len(c.lines))
	for i, l := range c.lines {
		out[i] = string(l)
	}
	return out
}

// Text joins the lines with '\n'.
func (c *Content) Text() string {
	var sb strings.Builder
	for i, l := range c.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(l))
	}
	return sb.String()
}

// Selection returns the normalized selection, if a non-empty one is active.
func (c *Content) Selection() (Range, bool) {
	if !c.selecting {
		return Range{}, false
	}
	r := NormalizeRange(Range{Start: c.anchor, End: c.cursor})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// SelectedText returns the selected text or "".
func (c *Content) SelectedText() string {
	r, ok := c.Selection()
	if !ok {
		return ""
	}
	return textInRange(c.lines, r)
}

func (c *Content) lineLen(line int) int {
	if line < 0 || line >= len(c.lines) {
		return 0
	}
	return len(c.lines[line])
}

func (c *Content) clamp(p Pos) Pos {
	line := clampInt(p.Line, 0, c.LineCount()-1)
	return Pos{Line: line, Column: clampInt(p.Column, 0, c.lineLen(line))}
}

func (c *Content) end() Pos {
	last := c.LineCount() - 1
	return Pos{Line: last, Column: c.lineLen(last)}
}

func splitLines(text string) [][]rune {
	parts := strings.Split(text, "\n")
	lines := make([][]rune, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, []rune(strings.TrimSuffix(s, "\r")))
	}
	return lines
}

func textInRange(lines [][]rune, r Range) string {
	if r.Start.Line == r.End.Line {
		return string(lines[r.Start.Line][r.Start.Column:r.End.Column])
	}
	var sb strings.Builder
	for line := r.Start.Line; line <= r.End.Line; line++ {
		if line > r.Start.Line {
			sb.WriteByte('\n')
		}
		from, to := 0, len(lines[line])
		if line == r.Start.Line {
			from = r.Start.Column
		}
		if line == r.End.Line {
			to = r.End.Column
		}
		sb.WriteString(string(lines[line][from:to]))
	}
	return sb.String()
}
