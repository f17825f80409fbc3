package layout

import (
	"testing"

	"github.com/ukaji3/sheetpdf-go/pkg/sheetpdf/models"
)

func TestRegionIndexLookups(t *testing.T) {
	idx := NewRegionIndex([]models.MergedRegion{
		{FirstRow: 0, LastRow: 1, FirstCol: 0, LastCol: 2},
		{FirstRow: 3, LastRow: 3, FirstCol: 1, LastCol: 1},
	})

	if m, ok := idx.Contains(1, 2); !ok || m.FirstRow != 0 {
		t.Fatalf("Contains(1,2) = %+v, %v", m, ok)
	}
	if _, ok := idx.Contains(2, 0); ok {
		t.Error("Contains(2,0) should be false")
	}

	if !idx.IsAnchor(0, 0) {
		t.Error("(0,0) should be the anchor")
	}
	if idx.IsAnchor(0, 1) {
		t.Error("(0,1) is covered but not the anchor")
	}
	if idx.IsAnchor(2, 2) {
		t.Error("(2,2) is outside every region")
	}
}

func TestRegionIndexSpan(t *testing.T) {
	idx := NewRegionIndex([]models.MergedRegion{
		{FirstRow: 0, LastRow: 2, FirstCol: 0, LastCol: 3},
	})
	full := models.Bound{FirstRow: 0, LastRow: 9, FirstCol: 0, LastCol: 9}

	rows, cols := idx.Span(0, 0, full)
	if rows != 3 || cols != 4 {
		t.Errorf("Span = (%d, %d), want (3, 4)", rows, cols)
	}

	// A bound cutting off the last two columns clips the span.
	narrow := models.Bound{FirstRow: 0, LastRow: 9, FirstCol: 0, LastCol: 1}
	rows, cols = idx.Span(0, 0, narrow)
	if rows != 3 || cols != 2 {
		t.Errorf("clipped Span = (%d, %d), want (3, 2)", rows, cols)
	}

	// Unmerged cells always span one by one.
	rows, cols = idx.Span(5, 5, full)
	if rows != 1 || cols != 1 {
		t.Errorf("unmerged Span = (%d, %d), want (1, 1)", rows, cols)
	}
}
