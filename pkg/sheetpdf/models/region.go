package models

// MergedRegion is a rectangular merged cell range. Regions never overlap.
// The cell at (FirstRow, FirstCol) is the anchor: the only position inside
// the region that emits renderable content.
type MergedRegion struct {
	FirstRow int
	LastRow  int
	FirstCol int
	LastCol  int
}

// Contains reports whether (row, col) lies inside the region.
func (m MergedRegion) Contains(row, col int) bool {
	return row >= m.FirstRow && row <= m.LastRow && col >= m.FirstCol && col <= m.LastCol
}

// IsAnchor reports whether (row, col) is the region's anchor cell.
func (m MergedRegion) IsAnchor(row, col int) bool {
	return row == m.FirstRow && col == m.FirstCol
}

// RowSpan is the number of rows the region covers.
func (m MergedRegion) RowSpan() int {
	return m.LastRow - m.FirstRow + 1
}

// ColSpan is the number of columns the region covers.
func (m MergedRegion) ColSpan() int {
	return m.LastCol - m.FirstCol + 1
}

// Rect returns the region's extent as a Bound.
func (m MergedRegion) Rect() Bound {
	return Bound{FirstRow: m.FirstRow, LastRow: m.LastRow, FirstCol: m.FirstCol, LastCol: m.LastCol}
}
