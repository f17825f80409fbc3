package layout

import "github.com/ukaji3/sheetpdf-go/pkg/sheetpdf/models"

// RegionIndex answers merged-region membership queries for one sheet in
// O(1) per lookup. It is built once per sheet from the sheet's region list;
// regions never overlap, so each coordinate has at most one owner.
type RegionIndex struct {
	regions []models.MergedRegion
	byCoord map[models.Coord]int
}

// NewRegionIndex builds the index. The cost is proportional to the total
// area of the merged regions, paid once per sheet.
func NewRegionIndex(regions []models.MergedRegion) *RegionIndex {
	x := &RegionIndex{
		regions: regions,
		byCoord: make(map[models.Coord]int),
	}
	for i, m := range regions {
		for r := m.FirstRow; r <= m.LastRow; r++ {
			for c := m.FirstCol; c <= m.LastCol; c++ {
				x.byCoord[models.Coord{Row: r, Col: c}] = i
			}
		}
	}
	return x
}

// Contains returns the region containing (row, col), if any.
func (x *RegionIndex) Contains(row, col int) (models.MergedRegion, bool) {
	i, ok := x.byCoord[models.Coord{Row: row, Col: col}]
	if !ok {
		return models.MergedRegion{}, false
	}
	return x.regions[i], true
}

// IsAnchor reports whether (row, col) is the anchor of a merged region.
func (x *RegionIndex) IsAnchor(row, col int) bool {
	m, ok := x.Contains(row, col)
	return ok && m.IsAnchor(row, col)
}

// Span returns the row and column span the cell at (row, col) occupies on a
// page bounded by b. Unmerged cells span 1x1; merged anchors span their
// region clipped to the visible bound.
func (x *RegionIndex) Span(row, col int, b models.Bound) (rows, cols int) {
	m, ok := x.Contains(row, col)
	if !ok {
		return 1, 1
	}
	clipped, ok := m.Rect().Clip(b)
	if !ok {
		return 1, 1
	}
	return clipped.Rows(), clipped.Cols()
}
