package layout

import "github.com/ukaji3/sheetpdf-go/pkg/sheetpdf/models"

// Dimension conversion constants. Column widths are stored in source units
// of 1/256th of a reference character width; 6pt approximates the default
// font's average character width. Row heights are stored in points directly.
const (
	widthUnitsPerChar   = 256.0
	charWidthPt         = 6.0
	defaultColWidthChar = 8.43
	defaultRowHeightPt  = 15.0
)

// Mapper converts a sheet's source dimensions into page-proportional sizes
// for one print bound.
type Mapper struct {
	Sheet *models.Sheet
	Bound models.Bound
	// PrintableWidth is the page width available to the grid, in points.
	PrintableWidth float64
}

// ColumnPoints converts one column's raw width units into points.
func (m *Mapper) ColumnPoints(col int) float64 {
	raw, ok := m.Sheet.ColWidths[col]
	if !ok || raw <= 0 {
		raw = m.Sheet.DefaultColWidth
	}
	if raw <= 0 {
		raw = defaultColWidthChar * widthUnitsPerChar
	}
	return raw / widthUnitsPerChar * charWidthPt
}

// RowPoints returns one row's height in points, falling back to the sheet
// default and then the engine default of 15pt.
func (m *Mapper) RowPoints(row int) float64 {
	h, ok := m.Sheet.RowHeights[row]
	if !ok || h <= 0 {
		h = m.Sheet.DefaultRowHeight
	}
	if h <= 0 {
		h = defaultRowHeightPt
	}
	return h
}

// boundPoints is the total source width of the bound's columns in points.
func (m *Mapper) boundPoints() float64 {
	var total float64
	for c := m.Bound.FirstCol; c <= m.Bound.LastCol; c++ {
		total += m.ColumnPoints(c)
	}
	return total
}

// scale is the source-points to page-points factor for widths.
func (m *Mapper) scale() float64 {
	total := m.boundPoints()
	if total <= 0 {
		return 0
	}
	return m.PrintableWidth / total
}

// ColumnWidths returns the page-relative width in points of every column in
// the bound, left to right. The widths sum to PrintableWidth.
func (m *Mapper) ColumnWidths() []float64 {
	scale := m.scale()
	widths := make([]float64, 0, m.Bound.Cols())
	for c := m.Bound.FirstCol; c <= m.Bound.LastCol; c++ {
		widths = append(widths, m.ColumnPoints(c)*scale)
	}
	return widths
}

// RowHeights returns the height in points of every row in the bound, top to
// bottom.
func (m *Mapper) RowHeights() []float64 {
	heights := make([]float64, 0, m.Bound.Rows())
	for r := m.Bound.FirstRow; r <= m.Bound.LastRow; r++ {
		heights = append(heights, m.RowPoints(r))
	}
	return heights
}

// RectWidth returns the page-relative width of a cell or region rectangle.
// Only the columns visible inside the bound contribute.
func (m *Mapper) RectWidth(rect models.Bound) float64 {
	clipped, ok := rect.Clip(m.Bound)
	if !ok {
		return 0
	}
	var total float64
	for c := clipped.FirstCol; c <= clipped.LastCol; c++ {
		total += m.ColumnPoints(c)
	}
	return total * m.scale()
}

// RectHeight returns the height of a cell or region rectangle in points.
// Unlike widths, the full row span contributes even when the bound clips
// the region: a merged cell renders at its full height.
func (m *Mapper) RectHeight(rect models.Bound) float64 {
	var total float64
	for r := rect.FirstRow; r <= rect.LastRow; r++ {
		total += m.RowPoints(r)
	}
	return total
}
