// Package document implements the editor's in-memory text model: an ordered
// list of lines, a cursor, and an optional selection, mutated only through a
// closed set of edit actions.
//
// Coordinates are 0-based (Line, Column) in runes. The cursor is always kept
// inside the document: 0 <= Line < LineCount() and 0 <= Column <= len(line).
package document
