package models

// Coord addresses a cell by zero-based row and column.
type Coord struct {
	Row int
	Col int
}

// Cell is one grid position: a value, a style, and an optional embedded
// image. Styles are shared by reference and must be treated as read-only.
type Cell struct {
	Value CellValue
	Style *Style // nil means default formatting
	Image *Image // anchored at this cell's top-left; nil if none
}

// Sheet is a read-only projection of one worksheet's visual grid for the
// duration of a conversion pass.
type Sheet struct {
	Name   string
	Hidden bool

	// Rows and Cols give the grid extent: the smallest rectangle from (0,0)
	// covering every populated cell, merged region and picture anchor.
	Rows int
	Cols int

	// Cells holds the populated positions; absent coordinates are blank,
	// default-formatted cells.
	Cells map[Coord]*Cell

	Merges []MergedRegion

	// ColWidths holds per-column widths in source units of 1/256th of a
	// reference character width. Missing columns use DefaultColWidth.
	ColWidths map[int]float64
	// RowHeights holds per-row heights in points. Missing or non-positive
	// entries fall back to DefaultRowHeight.
	RowHeights map[int]float64

	DefaultColWidth  float64 // 1/256-char units; 0 means the engine default
	DefaultRowHeight float64 // points; 0 means the engine default
}

// CellAt returns the cell at (row, col), or nil when the position is empty.
func (s *Sheet) CellAt(row, col int) *Cell {
	return s.Cells[Coord{Row: row, Col: col}]
}

// StyleAt returns the style at (row, col), or nil when the position is empty
// or unstyled.
func (s *Sheet) StyleAt(row, col int) *Style {
	if c := s.CellAt(row, col); c != nil {
		return c.Style
	}
	return nil
}

// Extent returns the sheet's full grid as a Bound. ok is false for an empty
// sheet.
func (s *Sheet) Extent() (Bound, bool) {
	if s.Rows < 1 || s.Cols < 1 {
		return Bound{}, false
	}
	return Bound{FirstRow: 0, LastRow: s.Rows - 1, FirstCol: 0, LastCol: s.Cols - 1}, true
}

// Workbook is the ordered, read-only set of sheets for one conversion pass.
type Workbook struct {
	Name   string
	Sheets []*Sheet
}

// SheetNames returns the sheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	names := make([]string, len(w.Sheets))
	for i, s := range w.Sheets {
		names[i] = s.Name
	}
	return names
}
