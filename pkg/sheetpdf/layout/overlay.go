package layout

import "github.com/ukaji3/sheetpdf-go/pkg/sheetpdf/models"

// Overlay holds coordinate-keyed content overrides built once before
// rendering and applied identically to every sheet composed in the current
// pass. Keys are not sheet-scoped: "B2" overrides (1,1) on every page. This
// is a deliberate, documented limitation.
//
// A nil *Overlay is valid and holds nothing.
type Overlay struct {
	values map[models.Coord]string
	images map[models.Coord][]byte
}

// NewOverlay parses caller-supplied address-keyed overrides. A malformed
// address key aborts the pass with a ParseError.
func NewOverlay(values map[string]string, images map[string][]byte) (*Overlay, error) {
	o := &Overlay{
		values: make(map[models.Coord]string, len(values)),
		images: make(map[models.Coord][]byte, len(images)),
	}
	for addr, v := range values {
		row, col, err := ParseAddress(addr)
		if err != nil {
			return nil, err
		}
		o.values[models.Coord{Row: row, Col: col}] = v
	}
	for addr, data := range images {
		row, col, err := ParseAddress(addr)
		if err != nil {
			return nil, err
		}
		o.images[models.Coord{Row: row, Col: col}] = data
	}
	return o, nil
}

// Empty reports whether the overlay holds no overrides.
func (o *Overlay) Empty() bool {
	return o == nil || (len(o.values) == 0 && len(o.images) == 0)
}

// Value returns the text override at (row, col), if any.
func (o *Overlay) Value(row, col int) (string, bool) {
	if o == nil {
		return "", false
	}
	v, ok := o.values[models.Coord{Row: row, Col: col}]
	return v, ok
}

// Image returns the image override at (row, col), if any.
func (o *Overlay) Image(row, col int) ([]byte, bool) {
	if o == nil {
		return nil, false
	}
	data, ok := o.images[models.Coord{Row: row, Col: col}]
	return data, ok
}

// ValueIn scans rect in row-major order and returns the first text override
// found. For merged regions an override anywhere inside the region's extent
// counts as present for the anchor's composed unit.
func (o *Overlay) ValueIn(rect models.Bound) (string, bool) {
	if o == nil || len(o.values) == 0 {
		return "", false
	}
	for r := rect.FirstRow; r <= rect.LastRow; r++ {
		for c := rect.FirstCol; c <= rect.LastCol; c++ {
			if v, ok := o.Value(r, c); ok {
				return v, true
			}
		}
	}
	return "", false
}

// ImageIn scans rect in row-major order and returns the first image override
// found.
func (o *Overlay) ImageIn(rect models.Bound) ([]byte, bool) {
	if o == nil || len(o.images) == 0 {
		return nil, false
	}
	for r := rect.FirstRow; r <= rect.LastRow; r++ {
		for c := rect.FirstCol; c <= rect.LastCol; c++ {
			if data, ok := o.Image(r, c); ok {
				return data, true
			}
		}
	}
	return nil, false
}
