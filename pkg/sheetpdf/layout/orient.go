package layout

import (
	"math"

	"github.com/ukaji3/sheetpdf-go/pkg/sheetpdf/models"
)

const (
	// sidewaysToleranceDeg is the angular window around ±90° in which text
	// is treated as fully vertical.
	sidewaysToleranceDeg = 1.0
	// leftTextPaddingPt is a small fixed padding for unindented left-aligned
	// horizontal text, for readability against the cell border.
	leftTextPaddingPt = 2.0
)

// ResolveTransform maps a style's rotation angle and alignment flags to a
// concrete text transform.
//
// The source rotation θ lives in [0, 180]: 1–90 reads upward, 91–180 reads
// downward, and the stacked sentinel is treated as unrotated. The PDF-space
// angle is ρ = −θ for θ ≤ 90 and ρ = θ − 90 otherwise. When |ρ| falls within
// one degree of 90 the run is sideways and the alignment axes swap: vertical
// top/center/bottom becomes horizontal right/center/left, and horizontal
// left/center/right/justify becomes vertical bottom/middle/top/bottom.
//
// numeric reports whether the cell's value is numeric, which decides how
// "general" horizontal alignment falls for non-sideways text.
func ResolveTransform(st *models.Style, numeric bool) models.TextTransform {
	theta := 0
	h := models.HAlignGeneral
	v := models.VAlignBottom
	indent := 0
	if st != nil {
		theta = st.Rotation
		h = st.Horizontal
		v = st.Vertical
		indent = st.Indent
	}
	if theta == models.StackedRotation {
		theta = 0
	}

	var rho float64
	if theta <= 90 {
		rho = -float64(theta)
	} else {
		rho = float64(theta - 90)
	}

	if math.Abs(math.Abs(rho)-90) <= sidewaysToleranceDeg {
		return models.TextTransform{
			Rotation:   rho,
			Sideways:   true,
			Horizontal: sidewaysHPos(v),
			Vertical:   sidewaysVPos(h),
		}
	}

	t := models.TextTransform{
		Rotation:   rho,
		Horizontal: horizontalPos(h, numeric),
		Vertical:   verticalPos(v),
	}
	if t.Horizontal == models.HPosLeft && indent == 0 {
		t.PadLeft = leftTextPaddingPt
	}
	return t
}

// sidewaysHPos maps vertical alignment to the horizontal axis for sideways
// text: top→right, center→center, bottom→left.
func sidewaysHPos(v models.VAlign) models.HPos {
	switch v {
	case models.VAlignTop:
		return models.HPosRight
	case models.VAlignCenter:
		return models.HPosCenter
	default:
		return models.HPosLeft
	}
}

// sidewaysVPos maps horizontal alignment to the vertical axis for sideways
// text: left→bottom, center→middle, right→top, justify→bottom.
func sidewaysVPos(h models.HAlign) models.VPos {
	switch h {
	case models.HAlignCenter:
		return models.VPosMiddle
	case models.HAlignRight:
		return models.VPosTop
	default:
		return models.VPosBottom
	}
}

func horizontalPos(h models.HAlign, numeric bool) models.HPos {
	switch h {
	case models.HAlignLeft:
		return models.HPosLeft
	case models.HAlignCenter:
		return models.HPosCenter
	case models.HAlignRight:
		return models.HPosRight
	case models.HAlignJustify:
		return models.HPosJustify
	default:
		// General alignment follows the value type.
		if numeric {
			return models.HPosRight
		}
		return models.HPosLeft
	}
}

func verticalPos(v models.VAlign) models.VPos {
	switch v {
	case models.VAlignTop:
		return models.VPosTop
	case models.VAlignCenter:
		return models.VPosMiddle
	default:
		return models.VPosBottom
	}
}
