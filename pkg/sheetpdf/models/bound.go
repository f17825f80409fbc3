package models

// Bound is a rectangular, inclusive window onto a sheet's grid, addressed by
// zero-based row and column indexes.
type Bound struct {
	FirstRow int
	LastRow  int
	FirstCol int
	LastCol  int
}

// Contains reports whether (row, col) lies inside the bound.
func (b Bound) Contains(row, col int) bool {
	return row >= b.FirstRow && row <= b.LastRow && col >= b.FirstCol && col <= b.LastCol
}

// Rows is the number of rows the bound covers.
func (b Bound) Rows() int {
	return b.LastRow - b.FirstRow + 1
}

// Cols is the number of columns the bound covers.
func (b Bound) Cols() int {
	return b.LastCol - b.FirstCol + 1
}

// Clip returns the intersection of b and o. ok is false when the two bounds
// are disjoint.
func (b Bound) Clip(o Bound) (Bound, bool) {
	r := Bound{
		FirstRow: max(b.FirstRow, o.FirstRow),
		LastRow:  min(b.LastRow, o.LastRow),
		FirstCol: max(b.FirstCol, o.FirstCol),
		LastCol:  min(b.LastCol, o.LastCol),
	}
	if r.FirstRow > r.LastRow || r.FirstCol > r.LastCol {
		return Bound{}, false
	}
	return r, true
}
