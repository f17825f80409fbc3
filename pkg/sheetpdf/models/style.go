package models

// Edge identifies one side of a cell or region.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// BorderStyle enumerates the border line styles the engine distinguishes.
// Any source style that is not one of the named widths maps to BorderOther.
type BorderStyle int

const (
	BorderNone BorderStyle = iota
	BorderThin
	BorderMedium
	BorderThick
	BorderOther
)

// BorderSpec describes one edge of a cell's declared border.
type BorderSpec struct {
	Style BorderStyle
}

// HAlign is the horizontal alignment of a cell's content.
type HAlign int

const (
	// HAlignGeneral resolves to right for numeric values and left otherwise.
	HAlignGeneral HAlign = iota
	HAlignLeft
	HAlignCenter
	HAlignRight
	HAlignJustify
)

// VAlign is the vertical alignment of a cell's content. The zero value is
// bottom, matching the spreadsheet default.
type VAlign int

const (
	VAlignBottom VAlign = iota
	VAlignTop
	VAlignCenter
)

// FillPattern discriminates a cell's background fill.
type FillPattern int

const (
	// FillNone means the cell has no background fill.
	FillNone FillPattern = iota
	// FillSolid is a solid color fill.
	FillSolid
	// FillPatterned covers every non-solid pattern fill; the foreground
	// color is still used as the representative fill color.
	FillPatterned
)

// Fill describes a cell's background fill. The color is either a direct RGB
// hex string or a palette index; Indexed is -1 when RGB is authoritative.
type Fill struct {
	Pattern FillPattern
	RGB     string  // "RRGGBB" or "AARRGGBB"; empty when Indexed is set
	Indexed int     // indexed palette slot; -1 when unset
	Tint    float64 // [-1, 1]; 0 means no adjustment
}

// Font is the typeface a text run is drawn with.
type Font struct {
	Family    string
	SizePt    float64
	Bold      bool
	Italic    bool
	Underline bool
}

// StackedRotation is the sentinel rotation value meaning vertically stacked
// text. The layout engine treats it as unrotated.
const StackedRotation = 255

// Style is an immutable snapshot of a cell's resolved formatting. Styles are
// shared by reference across many cells and must never be mutated after
// construction.
type Style struct {
	Fill       Fill
	Borders    [4]BorderSpec // indexed by Edge
	Horizontal HAlign
	Vertical   VAlign
	Rotation   int // degrees in [0, 180], or StackedRotation
	Indent     int
	Font       Font
}

// Border returns the declared border spec for one edge.
func (s *Style) Border(e Edge) BorderSpec {
	if s == nil {
		return BorderSpec{}
	}
	return s.Borders[e]
}
