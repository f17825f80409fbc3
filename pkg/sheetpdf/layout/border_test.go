package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/sheetpdf-go/pkg/sheetpdf/models"
)

func TestBorderWidthPt(t *testing.T) {
	assert.Equal(t, 0.0, BorderWidthPt(models.BorderNone))
	assert.Equal(t, 1.0, BorderWidthPt(models.BorderThin))
	assert.Equal(t, 1.5, BorderWidthPt(models.BorderMedium))
	assert.Equal(t, 2.5, BorderWidthPt(models.BorderThick))
	assert.Equal(t, 1.0, BorderWidthPt(models.BorderOther))
}

func borderedCell(edges map[models.Edge]models.BorderStyle) *models.Cell {
	st := &models.Style{}
	for e, s := range edges {
		st.Borders[e] = models.BorderSpec{Style: s}
	}
	return &models.Cell{Value: models.TextValue("x"), Style: st}
}

func cellRect(row, col int) models.Bound {
	return models.Bound{FirstRow: row, LastRow: row, FirstCol: col, LastCol: col}
}

func TestEdgeWidthNeighborReconciliation(t *testing.T) {
	// B2 declares a thin bottom border; B3 declares a medium top border.
	// The shared edge renders at the medium width from both sides.
	sheet := &models.Sheet{
		Name: "s", Rows: 3, Cols: 2,
		Cells: map[models.Coord]*models.Cell{
			{Row: 1, Col: 1}: borderedCell(map[models.Edge]models.BorderStyle{models.EdgeBottom: models.BorderThin}),
			{Row: 2, Col: 1}: borderedCell(map[models.Edge]models.BorderStyle{models.EdgeTop: models.BorderMedium}),
		},
	}
	r := BorderResolver{Sheet: sheet}

	bottom := r.EdgeWidth(cellRect(1, 1), models.EdgeBottom)
	top := r.EdgeWidth(cellRect(2, 1), models.EdgeTop)
	require.Equal(t, 1.5, bottom)
	// Symmetry: both sides of a shared edge resolve to the same width.
	assert.Equal(t, bottom, top)
}

func TestEdgeWidthOutsideGrid(t *testing.T) {
	sheet := &models.Sheet{
		Name: "s", Rows: 1, Cols: 1,
		Cells: map[models.Coord]*models.Cell{
			{Row: 0, Col: 0}: borderedCell(map[models.Edge]models.BorderStyle{models.EdgeLeft: models.BorderThin}),
		},
	}
	r := BorderResolver{Sheet: sheet}

	// The off-grid neighbor contributes zero; the declared width survives.
	assert.Equal(t, 1.0, r.EdgeWidth(cellRect(0, 0), models.EdgeLeft))
	assert.Equal(t, 0.0, r.EdgeWidth(cellRect(0, 0), models.EdgeRight))
}

func TestEdgeWidthAcrossRegionSpan(t *testing.T) {
	// A 1x2 merged region whose top edge is thin above the first column and
	// thick above the second: the edge renders at the span maximum.
	sheet := &models.Sheet{
		Name: "s", Rows: 2, Cols: 2,
		Cells: map[models.Coord]*models.Cell{
			{Row: 0, Col: 0}: borderedCell(map[models.Edge]models.BorderStyle{models.EdgeBottom: models.BorderThin}),
			{Row: 0, Col: 1}: borderedCell(map[models.Edge]models.BorderStyle{models.EdgeBottom: models.BorderThick}),
		},
		Merges: []models.MergedRegion{{FirstRow: 1, LastRow: 1, FirstCol: 0, LastCol: 1}},
	}
	r := BorderResolver{Sheet: sheet}

	rect := models.Bound{FirstRow: 1, LastRow: 1, FirstCol: 0, LastCol: 1}
	assert.Equal(t, 2.5, r.EdgeWidth(rect, models.EdgeTop))
}

func TestWidthsAllEdges(t *testing.T) {
	sheet := &models.Sheet{
		Name: "s", Rows: 1, Cols: 1,
		Cells: map[models.Coord]*models.Cell{
			{Row: 0, Col: 0}: borderedCell(map[models.Edge]models.BorderStyle{
				models.EdgeTop:    models.BorderThick,
				models.EdgeBottom: models.BorderMedium,
				models.EdgeLeft:   models.BorderThin,
			}),
		},
	}
	r := BorderResolver{Sheet: sheet}

	w := r.Widths(cellRect(0, 0))
	assert.Equal(t, models.EdgeWidths{Top: 2.5, Bottom: 1.5, Left: 1.0, Right: 0}, w)
	assert.True(t, w.Any())
}
