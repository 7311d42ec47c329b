package document

import (
	"strings"
	"unicode"
)

// Apply mutates the document with a single action. Actions never fail:
// targets outside the document are clamped and impossible edits (backspace
// at the very start, delete at the very end) are no-ops.
func (c *Content) Apply(a Action) {
	if len(c.lines) == 0 {
		c.lines = [][]rune{nil}
	}

	switch a := a.(type) {
	case InsertChar:
		c.insert(string(a.Char))
	case InsertNewline:
		c.insert("\n")
	case Paste:
		c.insert(normalizeNewlines(a.Text))
	case Backspace:
		c.backspace()
	case Delete:
		c.deleteForward()
	case Move:
		c.moveTo(c.motion(c.cursor, a.Motion), false)
	case MoveTo:
		c.moveTo(a.Pos, false)
	case Select:
		c.moveTo(c.motion(c.cursor, a.Motion), true)
	case SelectTo:
		c.moveTo(a.Pos, true)
	case SelectWord:
		c.selectWord()
	case SelectLine:
		line := c.cursor.Line
		c.anchor = Pos{Line: line}
		c.cursor = Pos{Line: line, Column: c.lineLen(line)}
		c.selecting = true
	case SelectAll:
		c.anchor = Pos{}
		c.cursor = c.end()
		c.selecting = true
	}
}

// normalizeNewlines turns \r\n and lone \r into \n. Terminals send a lone
// \r for line breaks in bracketed paste.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

func (c *Content) moveTo(p Pos, extend bool) {
	next := c.clamp(p)
	if extend {
		if !c.selecting {
			c.anchor = c.cursor
			c.selecting = true
		}
	} else {
		c.selecting = false
	}
	c.cursor = next
}

// insert replaces the selection (or the empty range at the cursor) with s.
func (c *Content) insert(s string) {
	r, ok := c.Selection()
	if !ok {
		if s == "" {
			return
		}
		r = Range{Start: c.cursor, End: c.cursor}
	}
	c.cursor = c.replaceRange(r, s)
	c.selecting = false
}

func (c *Content) backspace() {
	if r, ok := c.Selection(); ok {
		c.cursor = c.replaceRange(r, "")
		c.selecting = false
		return
	}
	c.selecting = false

	line, col := c.cursor.Line, c.cursor.Column
	switch {
	case line == 0 && col == 0:
		return
	case col > 0:
		c.cursor = c.replaceRange(Range{Start: Pos{line, col - 1}, End: c.cursor}, "")
	default:
		// join with the previous line
		prev := Pos{Line: line - 1, Column: c.lineLen(line - 1)}
		c.cursor = c.replaceRange(Range{Start: prev, End: c.cursor}, "")
	}
}

func (c *Content) deleteForward() {
	if r, ok := c.Selection(); ok {
		c.cursor = c.replaceRange(r, "")
		c.selecting = false
		return
	}
	c.selecting = false

	line, col := c.cursor.Line, c.cursor.Column
	switch {
	case c.cursor == c.end():
		return
	case col < c.lineLen(line):
		c.replaceRange(Range{Start: c.cursor, End: Pos{line, col + 1}}, "")
	default:
		c.replaceRange(Range{Start: c.cursor, End: Pos{Line: line + 1}}, "")
	}
}

// replaceRange swaps the text in r for text and returns the position just
// after the inserted text.
func (c *Content) replaceRange(r Range, text string) Pos {
	r = NormalizeRange(Range{Start: c.clamp(r.Start), End: c.clamp(r.End)})

	prefix := c.lines[r.Start.Line][:r.Start.Column]
	suffix := c.lines[r.End.Line][r.End.Column:]

	parts := strings.Split(text, "\n")
	repl := make([][]rune, len(parts))
	for i, p := range parts {
		repl[i] = []rune(p)
	}
	lastPart := len(repl[len(repl)-1])

	first := make([]rune, 0, len(prefix)+len(repl[0]))
	first = append(first, prefix...)
	first = append(first, repl[0]...)
	repl[0] = first

	last := repl[len(repl)-1]
	joined := make([]rune, 0, len(last)+len(suffix))
	joined = append(joined, last...)
	joined = append(joined, suffix...)
	repl[len(repl)-1] = joined

	next := Pos{Line: r.Start.Line + len(repl) - 1, Column: lastPart}
	if len(repl) == 1 {
		next.Column = len(prefix) + lastPart
	}

	out := make([][]rune, 0, len(c.lines)-(r.End.Line-r.Start.Line)+len(repl)-1)
	out = append(out, c.lines[:r.Start.Line]...)
	out = append(out, repl...)
	out = append(out, c.lines[r.End.Line+1:]...)
	c.lines = out
	return next
}

func (c *Content) motion(p Pos, m Motion) Pos {
	line, col := p.Line, p.Column
	last := c.LineCount() - 1

	switch m {
	case Left:
		if col > 0 {
			return Pos{line, col - 1}
		}
		if line > 0 {
			return Pos{line - 1, c.lineLen(line - 1)}
		}
	case Right:
		if col < c.lineLen(line) {
			return Pos{line, col + 1}
		}
		if line < last {
			return Pos{Line: line + 1}
		}
	case Up:
		if line > 0 {
			return Pos{line - 1, min(col, c.lineLen(line-1))}
		}
	case Down:
		if line < last {
			return Pos{line + 1, min(col, c.lineLen(line+1))}
		}
	case WordLeft:
		if col == 0 && line > 0 {
			return Pos{line - 1, c.lineLen(line - 1)}
		}
		return Pos{line, prevWordBoundary(c.lines[line], col)}
	case WordRight:
		if col == c.lineLen(line) && line < last {
			return Pos{Line: line + 1}
		}
		return Pos{line, nextWordBoundary(c.lines[line], col)}
	case Home:
		return Pos{Line: line}
	case End:
		return Pos{line, c.lineLen(line)}
	case DocumentStart:
		return Pos{}
	case DocumentEnd:
		return c.end()
	}
	return p
}

func (c *Content) selectWord() {
	line := c.lines[c.cursor.Line]
	if len(line) == 0 {
		return
	}
	at := c.cursor.Column
	if at == len(line) {
		at--
	}
	class := runeClass(line[at])
	start, end := at, at+1
	for start > 0 && runeClass(line[start-1]) == class {
		start--
	}
	for end < len(line) && runeClass(line[end]) == class {
		end++
	}
	c.anchor = Pos{c.cursor.Line, start}
	c.cursor = Pos{c.cursor.Line, end}
	c.selecting = true
}

// Word boundaries: skip whitespace, then skip non-whitespace, within a line.
func prevWordBoundary(line []rune, col int) int {
	i := clampInt(col, 0, len(line))
	for i > 0 && unicode.IsSpace(line[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(line[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(line []rune, col int) int {
	i := clampInt(col, 0, len(line))
	for i < len(line) && unicode.IsSpace(line[i]) {
		i++
	}
	for i < len(line) && !unicode.IsSpace(line[i]) {
		i++
	}
	return i
}

func runeClass(r rune) int {
	switch {
	case unicode.IsSpace(r):
		return 0
	case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
		return 1
	default:
		return 2
	}
}
