package layout

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/sheetpdf-go/pkg/sheetpdf/models"
)

// indexedPalette is the legacy indexed color palette. Slots 64 and 65 are
// the system foreground and background colors.
var indexedPalette = []string{
	0: "000000", 1: "FFFFFF", 2: "FF0000", 3: "00FF00",
	4: "0000FF", 5: "FFFF00", 6: "FF00FF", 7: "00FFFF",
	8: "000000", 9: "FFFFFF", 10: "FF0000", 11: "00FF00",
	12: "0000FF", 13: "FFFF00", 14: "FF00FF", 15: "00FFFF",
	16: "800000", 17: "008000", 18: "000080", 19: "808000",
	20: "800080", 21: "008080", 22: "C0C0C0", 23: "808080",
	24: "9999FF", 25: "993366", 26: "FFFFCC", 27: "CCFFFF",
	28: "660066", 29: "FF8080", 30: "0066CC", 31: "CCCCFF",
	32: "000080", 33: "FF00FF", 34: "FFFF00", 35: "00FFFF",
	36: "800080", 37: "800000", 38: "008080", 39: "0000FF",
	40: "00CCFF", 41: "CCFFFF", 42: "CCFFCC", 43: "FFFF99",
	44: "99CCFF", 45: "FF99CC", 46: "CC99FF", 47: "FFCC99",
	48: "3366FF", 49: "33CCCC", 50: "99CC00", 51: "FFCC00",
	52: "FF9900", 53: "FF6600", 54: "666699", 55: "969696",
	56: "003366", 57: "339966", 58: "003300", 59: "333300",
	60: "993300", 61: "993366", 62: "333399", 63: "333333",
	64: "000000", 65: "FFFFFF",
}

// ResolveFill returns the effective fill color of a style as a 6-hex-digit
// RGB string. ok is false when the style has no fill or the color cannot be
// resolved; fill resolution never fails, it degrades to "no fill".
func ResolveFill(st *models.Style) (rgb string, ok bool) {
	if st == nil || st.Fill.Pattern == models.FillNone {
		return "", false
	}

	base := ""
	switch {
	case st.Fill.RGB != "":
		base, ok = normalizeRGB(st.Fill.RGB)
		if !ok {
			return "", false
		}
	case st.Fill.Indexed >= 0 && st.Fill.Indexed < len(indexedPalette):
		base = indexedPalette[st.Fill.Indexed]
	default:
		return "", false
	}

	if st.Fill.Tint != 0 {
		base = ApplyTint(base, st.Fill.Tint)
	}
	return base, true
}

// ApplyTint lightens (tint >= 0) or darkens (tint < 0) each channel of a
// 6-hex-digit RGB color. Channels are clamped to [0, 255] and rounded, so
// the result stays a valid color for any tint in [-1, 1].
func ApplyTint(rgb string, tint float64) string {
	var channels [3]float64
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(rgb[i*2:i*2+2], 16, 16)
		if err != nil {
			return rgb
		}
		channels[i] = float64(v)
	}

	for i, ch := range channels {
		if tint < 0 {
			ch = ch * (1 + tint)
		} else {
			ch = ch*(1-tint) + 255*tint
		}
		channels[i] = math.Min(255, math.Max(0, math.Round(ch)))
	}

	return fmt.Sprintf("%02X%02X%02X", int(channels[0]), int(channels[1]), int(channels[2]))
}

// normalizeRGB reduces "#RRGGBB" and "AARRGGBB" color forms to upper-case
// "RRGGBB". ok is false for anything that is not a 6- or 8-digit hex string.
func normalizeRGB(hex string) (string, bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) == 8 {
		hex = hex[2:]
	}
	if len(hex) != 6 {
		return "", false
	}
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return "", false
		}
	}
	return strings.ToUpper(hex), true
}
