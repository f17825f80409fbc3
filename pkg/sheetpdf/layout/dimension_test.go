package layout

import (
	"math"
	"testing"

	"github.com/ukaji3/sheetpdf-go/pkg/sheetpdf/models"
)

const dimEps = 1e-9

func dimTestSheet() *models.Sheet {
	return &models.Sheet{
		Name: "s", Rows: 4, Cols: 3,
		ColWidths: map[int]float64{
			0: 10 * 256, // 60pt
			1: 20 * 256, // 120pt
			// column 2 falls back to the sheet default
		},
		RowHeights: map[int]float64{
			0: 20,
			1: 30,
			// rows 2 and 3 fall back
		},
		DefaultColWidth:  10 * 256,
		DefaultRowHeight: 0,
	}
}

func TestColumnPoints(t *testing.T) {
	m := &Mapper{Sheet: dimTestSheet()}

	if got := m.ColumnPoints(0); math.Abs(got-60) > dimEps {
		t.Errorf("ColumnPoints(0) = %v, want 60", got)
	}
	if got := m.ColumnPoints(1); math.Abs(got-120) > dimEps {
		t.Errorf("ColumnPoints(1) = %v, want 120", got)
	}
	// Missing column uses the sheet default.
	if got := m.ColumnPoints(2); math.Abs(got-60) > dimEps {
		t.Errorf("ColumnPoints(2) = %v, want 60", got)
	}
}

func TestColumnPointsEngineDefault(t *testing.T) {
	m := &Mapper{Sheet: &models.Sheet{Name: "s"}}

	want := 8.43 * 6.0
	if got := m.ColumnPoints(0); math.Abs(got-want) > dimEps {
		t.Errorf("ColumnPoints(0) = %v, want %v", got, want)
	}
}

func TestRowPointsFallback(t *testing.T) {
	m := &Mapper{Sheet: dimTestSheet()}

	if got := m.RowPoints(1); got != 30 {
		t.Errorf("RowPoints(1) = %v, want 30", got)
	}
	// No per-row height and a zero sheet default: 15pt engine default.
	if got := m.RowPoints(2); got != 15 {
		t.Errorf("RowPoints(2) = %v, want 15", got)
	}
}

func TestColumnWidthsSumToPrintableWidth(t *testing.T) {
	m := &Mapper{
		Sheet:          dimTestSheet(),
		Bound:          models.Bound{FirstRow: 0, LastRow: 3, FirstCol: 0, LastCol: 2},
		PrintableWidth: 480,
	}

	widths := m.ColumnWidths()
	if len(widths) != 3 {
		t.Fatalf("got %d widths, want 3", len(widths))
	}
	var sum float64
	for _, w := range widths {
		sum += w
	}
	if math.Abs(sum-480) > dimEps {
		t.Errorf("widths sum to %v, want 480", sum)
	}
	// Proportions are preserved: source points are 60, 120, 60.
	if math.Abs(widths[1]-2*widths[0]) > dimEps {
		t.Errorf("widths = %v, want column 1 twice column 0", widths)
	}
}

func TestRowHeightsUnscaled(t *testing.T) {
	m := &Mapper{
		Sheet:          dimTestSheet(),
		Bound:          models.Bound{FirstRow: 0, LastRow: 3, FirstCol: 0, LastCol: 2},
		PrintableWidth: 480,
	}

	heights := m.RowHeights()
	want := []float64{20, 30, 15, 15}
	if len(heights) != len(want) {
		t.Fatalf("got %d heights, want %d", len(heights), len(want))
	}
	for i := range want {
		if heights[i] != want[i] {
			t.Errorf("heights[%d] = %v, want %v", i, heights[i], want[i])
		}
	}
}

func TestRectWidthClippedToBound(t *testing.T) {
	m := &Mapper{
		Sheet:          dimTestSheet(),
		Bound:          models.Bound{FirstRow: 0, LastRow: 3, FirstCol: 0, LastCol: 1},
		PrintableWidth: 180, // source points 60+120, so scale is 1
	}

	// The rect reaches one column past the bound; only the visible part
	// contributes.
	rect := models.Bound{FirstRow: 0, LastRow: 0, FirstCol: 1, LastCol: 2}
	if got := m.RectWidth(rect); math.Abs(got-120) > dimEps {
		t.Errorf("RectWidth = %v, want 120", got)
	}

	outside := models.Bound{FirstRow: 0, LastRow: 0, FirstCol: 5, LastCol: 6}
	if got := m.RectWidth(outside); got != 0 {
		t.Errorf("RectWidth outside bound = %v, want 0", got)
	}
}

func TestRectHeightNotClipped(t *testing.T) {
	m := &Mapper{
		Sheet:          dimTestSheet(),
		Bound:          models.Bound{FirstRow: 0, LastRow: 0, FirstCol: 0, LastCol: 2},
		PrintableWidth: 240,
	}

	// A merged region extending below the bound keeps its full height.
	rect := models.Bound{FirstRow: 0, LastRow: 2, FirstCol: 0, LastCol: 0}
	if got := m.RectHeight(rect); got != 20+30+15 {
		t.Errorf("RectHeight = %v, want 65", got)
	}
}
