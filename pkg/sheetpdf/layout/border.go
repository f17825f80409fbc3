package layout

import "github.com/ukaji3/sheetpdf-go/pkg/sheetpdf/models"

// Border widths in points per declared style. Any other non-none style
// renders at the thin width.
const (
	borderThinPt   = 1.0
	borderMediumPt = 1.5
	borderThickPt  = 2.5
)

// BorderWidthPt maps a declared border style to its rendered width in points.
func BorderWidthPt(s models.BorderStyle) float64 {
	switch s {
	case models.BorderNone:
		return 0
	case models.BorderThin:
		return borderThinPt
	case models.BorderMedium:
		return borderMediumPt
	case models.BorderThick:
		return borderThickPt
	default:
		return borderThinPt
	}
}

// BorderResolver computes the rendered width of a cell or region's edges by
// reconciling its own border specs with the touching neighbors'. It holds no
// cache: adjacency changes per position, so every edge is recomputed per
// request.
type BorderResolver struct {
	Sheet *models.Sheet
}

// EdgeWidth returns the rendered width in points of one edge of the
// rectangle rect (a single cell or a merged region's extent). For each grid
// position along the edge the declared width is paired with the touching
// neighbor's opposing edge; the pair maximum is taken, and the edge's final
// width is the maximum across the span. A neighbor outside the grid
// contributes 0.
func (r BorderResolver) EdgeWidth(rect models.Bound, edge models.Edge) float64 {
	var width float64
	switch edge {
	case models.EdgeTop:
		for c := rect.FirstCol; c <= rect.LastCol; c++ {
			own := r.declaredWidth(rect.FirstRow, c, models.EdgeTop)
			opp := r.declaredWidth(rect.FirstRow-1, c, models.EdgeBottom)
			width = max(width, own, opp)
		}
	case models.EdgeBottom:
		for c := rect.FirstCol; c <= rect.LastCol; c++ {
			own := r.declaredWidth(rect.LastRow, c, models.EdgeBottom)
			opp := r.declaredWidth(rect.LastRow+1, c, models.EdgeTop)
			width = max(width, own, opp)
		}
	case models.EdgeLeft:
		for row := rect.FirstRow; row <= rect.LastRow; row++ {
			own := r.declaredWidth(row, rect.FirstCol, models.EdgeLeft)
			opp := r.declaredWidth(row, rect.FirstCol-1, models.EdgeRight)
			width = max(width, own, opp)
		}
	case models.EdgeRight:
		for row := rect.FirstRow; row <= rect.LastRow; row++ {
			own := r.declaredWidth(row, rect.LastCol, models.EdgeRight)
			opp := r.declaredWidth(row, rect.LastCol+1, models.EdgeLeft)
			width = max(width, own, opp)
		}
	}
	return width
}

// Widths resolves all four edges of rect.
func (r BorderResolver) Widths(rect models.Bound) models.EdgeWidths {
	return models.EdgeWidths{
		Top:    r.EdgeWidth(rect, models.EdgeTop),
		Bottom: r.EdgeWidth(rect, models.EdgeBottom),
		Left:   r.EdgeWidth(rect, models.EdgeLeft),
		Right:  r.EdgeWidth(rect, models.EdgeRight),
	}
}

func (r BorderResolver) declaredWidth(row, col int, edge models.Edge) float64 {
	if row < 0 || col < 0 {
		return 0
	}
	st := r.Sheet.StyleAt(row, col)
	if st == nil {
		return 0
	}
	return BorderWidthPt(st.Border(edge).Style)
}
