package document

// Action is one atomic edit applied by (*Content).Apply. The set is closed:
// only the types in this file implement it.
type Action interface {
	isAction()
}

// Motion names a cursor movement relative to the current position.
type Motion int

const (
	Left Motion = iota
	Right
	Up
	Down
	WordLeft
	WordRight
	Home          // start of line
	End           // end of line
	DocumentStart // (0,0)
	DocumentEnd   // end of last line
)

func (m Motion) String() string {
	switch m {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	case WordLeft:
		return "word-left"
	case WordRight:
		return "word-right"
	case Home:
		return "home"
	case End:
		return "end"
	case DocumentStart:
		return "document-start"
	case DocumentEnd:
		return "document-end"
	default:
		return "unknown"
	}
}

type (
	// InsertChar inserts a single character at the cursor, replacing the
	// selection if there is one. '\n' behaves like InsertNewline.
	InsertChar struct{ Char rune }
	// InsertNewline splits the current line at the cursor.
	InsertNewline struct{}
	// Paste inserts text that may span lines. CRLF is normalized to LF.
	Paste struct{ Text string }
	// Backspace deletes the selection or the character before the cursor.
	Backspace struct{}
	// Delete deletes the selection or the character after the cursor.
	Delete struct{}

	// Move moves the cursor and clears the selection.
	Move struct{ Motion Motion }
	// MoveTo places the cursor at Pos (clamped) and clears the selection.
	MoveTo struct{ Pos Pos }
	// Select moves the cursor and extends the selection from its anchor.
	Select struct{ Motion Motion }
	// SelectTo extends the selection to Pos (clamped).
	SelectTo struct{ Pos Pos }
	// SelectWord selects the run of similar characters under the cursor.
	SelectWord struct{}
	// SelectLine selects the whole current line.
	SelectLine struct{}
	// SelectAll selects the whole document.
	SelectAll struct{}
)

func (InsertChar) isAction()    {}
func (InsertNewline) isAction() {}
func (Paste) isAction()         {}
func (Backspace) isAction()     {}
func (Delete) isAction()        {}
func (Move) isAction()          {}
func (MoveTo) isAction()        {}
func (Select) isAction()        {}
func (SelectTo) isAction()      {}
func (SelectWord) isAction()    {}
func (SelectLine) isAction()    {}
func (SelectAll) isAction()     {}
