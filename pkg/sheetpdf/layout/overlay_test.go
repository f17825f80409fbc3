package layout

import (
	"errors"
	"testing"

	"github.com/ukaji3/sheetpdf-go/pkg/sheetpdf/models"
)

func TestNewOverlayRejectsBadAddress(t *testing.T) {
	_, err := NewOverlay(map[string]string{"not-an-address": "x"}, nil)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestOverlayNilReceiver(t *testing.T) {
	var o *Overlay
	if !o.Empty() {
		t.Error("nil overlay should be empty")
	}
	if _, ok := o.Value(0, 0); ok {
		t.Error("nil overlay should hold no values")
	}
	if _, ok := o.ImageIn(models.Bound{LastRow: 5, LastCol: 5}); ok {
		t.Error("nil overlay should hold no images")
	}
}

func TestOverlayPointLookups(t *testing.T) {
	o, err := NewOverlay(
		map[string]string{"B2": "approved"},
		map[string][]byte{"C3": {0x1}},
	)
	if err != nil {
		t.Fatalf("NewOverlay: %v", err)
	}

	if v, ok := o.Value(1, 1); !ok || v != "approved" {
		t.Errorf("Value(1,1) = %q, %v", v, ok)
	}
	if _, ok := o.Value(0, 0); ok {
		t.Error("Value(0,0) should miss")
	}
	if data, ok := o.Image(2, 2); !ok || len(data) != 1 {
		t.Errorf("Image(2,2) = %v, %v", data, ok)
	}
}

func TestOverlayRegionScanRowMajor(t *testing.T) {
	// Two overrides inside the same region: row-major order picks B2
	// before A3.
	o, err := NewOverlay(map[string]string{"A3": "second", "B2": "first"}, nil)
	if err != nil {
		t.Fatalf("NewOverlay: %v", err)
	}

	rect := models.Bound{FirstRow: 0, LastRow: 3, FirstCol: 0, LastCol: 3}
	if v, ok := o.ValueIn(rect); !ok || v != "first" {
		t.Errorf("ValueIn = %q, %v, want \"first\"", v, ok)
	}

	outside := models.Bound{FirstRow: 5, LastRow: 6, FirstCol: 0, LastCol: 3}
	if _, ok := o.ValueIn(outside); ok {
		t.Error("ValueIn outside the overrides should miss")
	}
}
