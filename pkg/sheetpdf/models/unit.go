package models

// EdgeWidths holds the resolved border widths of a box in points.
type EdgeWidths struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

// Any reports whether at least one edge has a visible border.
func (e EdgeWidths) Any() bool {
	return e.Top > 0 || e.Bottom > 0 || e.Left > 0 || e.Right > 0
}

// HPos is a resolved horizontal position inside a box.
type HPos int

const (
	HPosLeft HPos = iota
	HPosCenter
	HPosRight
	HPosJustify
)

// VPos is a resolved vertical position inside a box.
type VPos int

const (
	VPosBottom VPos = iota
	VPosTop
	VPosMiddle
)

// TextTransform describes how a text run is oriented and aligned inside its
// box. For sideways text the run is laid out unconstrained along its natural
// axis, rotated by Rotation degrees and scaled to fit.
type TextTransform struct {
	// Rotation is the screen-space rotation in degrees, clockwise
	// positive: -90 reads bottom to top.
	Rotation float64
	// Sideways is set when the run reads along the vertical axis (±90°).
	Sideways bool
	// Horizontal and Vertical are the resolved positions after any
	// sideways axis swap.
	Horizontal HPos
	Vertical   VPos
	// PadLeft is a fixed left padding in points for readability; only set
	// for unindented left-aligned horizontal text.
	PadLeft float64
}

// LayerKind discriminates content layers of a renderable unit.
type LayerKind int

const (
	LayerText LayerKind = iota
	LayerImage
)

// ContentLayer is one drawable layer of a renderable unit. Layers are drawn
// in slice order, so an image layer placed before a text layer sits behind
// the text.
type ContentLayer struct {
	Kind      LayerKind
	Text      string
	Font      Font
	Transform TextTransform
	Image     *Image
}

// RenderableUnit is the compositor's output for one anchor cell: everything
// a page renderer needs to draw the cell. Units are produced and consumed
// per cell, never persisted.
type RenderableUnit struct {
	// Row and Col are bound-relative grid positions (0 is the first visible
	// row/column of the page).
	Row int
	Col int

	RowSpan int
	ColSpan int

	// Width is page-relative in points; Height is the aggregated source
	// height in points.
	Width  float64
	Height float64

	Borders EdgeWidths
	Fill    string // "RRGGBB"; empty means no fill

	Layers []ContentLayer
}

// HasContent reports whether the unit carries at least one content layer.
func (u *RenderableUnit) HasContent() bool {
	return len(u.Layers) > 0
}

// Styled reports whether the unit draws anything even without content.
func (u *RenderableUnit) Styled() bool {
	return u.Fill != "" || u.Borders.Any()
}
