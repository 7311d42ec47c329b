package document

// Pos points into the document by (line, column) in runes.
type Pos struct {
	Line   int
	Column int
}

// Range is a half-open span of the document: [Start, End).
type Range struct {
	Start Pos
	End   Pos
}

// ComparePos orders two positions in document order.
func ComparePos(a, b Pos) int {
	switch {
	case a.Line < b.Line:
		return -1
	case a.Line > b.Line:
		return 1
	case a.Column < b.Column:
		return -1
	case a.Column > b.Column:
		return 1
	}
	return 0
}

// NormalizeRange returns r with Start <= End.
func NormalizeRange(r Range) Range {
	if ComparePos(r.Start, r.End) <= 0 {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
