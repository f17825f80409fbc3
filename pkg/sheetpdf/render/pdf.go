// Package render draws composed pages into a PDF document with gofpdf.
package render

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/rs/zerolog"

	"github.com/ukaji3/sheetpdf-go/pkg/sheetpdf/models"
)

const (
	baseFontFamily = "Helvetica"
	baseFontSizePt = 10.0
	minFontSizePt  = 4.0
)

// PageSetup describes the physical page every composed sheet page is drawn
// on.
type PageSetup struct {
	Landscape bool
	// MarginPt is the uniform page margin in points.
	MarginPt float64
}

// PDF accumulates composed pages into a single document. One PDF page is
// produced per BeginPage call; drawing errors accumulate inside gofpdf and
// surface at Output.
type PDF struct {
	doc    *gofpdf.Fpdf
	setup  PageSetup
	logger zerolog.Logger

	// colX and rowY are the prefix-summed grid line offsets of the
	// current page, starting at the margins.
	colX []float64
	rowY []float64

	imageSeq int
}

// NewPDF creates an empty A4 document in points.
func NewPDF(setup PageSetup, logger zerolog.Logger) *PDF {
	orientation := "P"
	if setup.Landscape {
		orientation = "L"
	}
	doc := gofpdf.New(orientation, "pt", "A4", "")
	doc.SetMargins(setup.MarginPt, setup.MarginPt, setup.MarginPt)
	doc.SetAutoPageBreak(false, 0)
	doc.SetFont(baseFontFamily, "", baseFontSizePt)
	return &PDF{doc: doc, setup: setup, logger: logger.With().Str("component", "pdf").Logger()}
}

// PrintableWidth reports the page width left for the grid after margins.
func (p *PDF) PrintableWidth() float64 {
	pageWidth, _ := p.doc.GetPageSize()
	return pageWidth - 2*p.setup.MarginPt
}

// BeginPage starts a fresh PDF page and fixes the grid geometry for the
// PlaceCell calls that follow.
func (p *PDF) BeginPage(name string, colWidths, rowHeights []float64) {
	p.doc.AddPage()
	p.colX = prefixSums(p.setup.MarginPt, colWidths)
	p.rowY = prefixSums(p.setup.MarginPt, rowHeights)
	p.logger.Debug().Str("sheet", name).
		Int("cols", len(colWidths)).Int("rows", len(rowHeights)).Msg("page started")
}

func prefixSums(origin float64, sizes []float64) []float64 {
	offsets := make([]float64, len(sizes)+1)
	offsets[0] = origin
	for i, s := range sizes {
		offsets[i+1] = offsets[i] + s
	}
	return offsets
}

// PlaceCell draws one renderable unit: fill first, then content layers,
// then the border strokes on top.
func (p *PDF) PlaceCell(u *models.RenderableUnit) {
	x := p.colX[u.Col]
	y := p.rowY[u.Row]
	w := u.Width
	h := u.Height

	if u.Fill != "" {
		r, g, b, ok := parseHexColor(u.Fill)
		if ok {
			p.doc.SetFillColor(r, g, b)
			p.doc.Rect(x, y, w, h, "F")
		}
	}

	for _, layer := range u.Layers {
		switch layer.Kind {
		case models.LayerImage:
			p.drawImage(layer.Image, x, y, w, h)
		case models.LayerText:
			p.drawText(layer, x, y, w, h)
		}
	}

	p.drawBorders(u.Borders, x, y, w, h)
}

func (p *PDF) drawBorders(b models.EdgeWidths, x, y, w, h float64) {
	p.doc.SetDrawColor(0, 0, 0)
	if b.Top > 0 {
		p.doc.SetLineWidth(b.Top)
		p.doc.Line(x, y, x+w, y)
	}
	if b.Bottom > 0 {
		p.doc.SetLineWidth(b.Bottom)
		p.doc.Line(x, y+h, x+w, y+h)
	}
	if b.Left > 0 {
		p.doc.SetLineWidth(b.Left)
		p.doc.Line(x, y, x, y+h)
	}
	if b.Right > 0 {
		p.doc.SetLineWidth(b.Right)
		p.doc.Line(x+w, y, x+w, y+h)
	}
}

func (p *PDF) drawText(layer models.ContentLayer, x, y, w, h float64) {
	size := layer.Font.SizePt
	if size <= 0 {
		size = baseFontSizePt
	}
	p.doc.SetFont(baseFontFamily, fontStyle(layer.Font), size)
	p.doc.SetTextColor(0, 0, 0)

	t := layer.Transform
	switch {
	case t.Sideways:
		p.drawSidewaysText(layer.Text, t, x, y, w, h, size)
	case t.Rotation != 0:
		cx := x + w/2
		cy := y + h/2
		p.doc.TransformBegin()
		p.doc.TransformRotate(-t.Rotation, cx, cy)
		p.doc.SetXY(x, y)
		p.doc.CellFormat(w, h, layer.Text, "", 0, alignString(t.Horizontal, t.Vertical), false, 0, "")
		p.doc.TransformEnd()
	default:
		if t.PadLeft > 0 {
			x += t.PadLeft
			w -= t.PadLeft
		}
		p.shrinkToFit(layer.Text, w, size)
		p.doc.SetXY(x, y)
		p.doc.CellFormat(w, h, layer.Text, "", 0, alignString(t.Horizontal, t.Vertical), false, 0, "")
	}
}

// drawSidewaysText rotates the text box a quarter turn about the cell
// center, so the box's long axis runs along the cell's height.
func (p *PDF) drawSidewaysText(text string, t models.TextTransform, x, y, w, h, size float64) {
	cx := x + w/2
	cy := y + h/2
	p.shrinkToFit(text, h, size)
	p.doc.TransformBegin()
	p.doc.TransformRotate(-t.Rotation, cx, cy)
	p.doc.SetXY(cx-h/2, cy-w/2)
	p.doc.CellFormat(h, w, text, "", 0, alignString(t.Horizontal, t.Vertical), false, 0, "")
	p.doc.TransformEnd()
}

// shrinkToFit steps the current font size down until the string fits the
// given run length, stopping at a floor rather than vanishing.
func (p *PDF) shrinkToFit(text string, avail, size float64) {
	for size > minFontSizePt && p.doc.GetStringWidth(text) > avail {
		size -= 0.5
		p.doc.SetFontSize(size)
	}
}

func (p *PDF) drawImage(img *models.Image, x, y, w, h float64) {
	if img == nil || len(img.Data) == 0 {
		return
	}
	imageType := strings.ToUpper(img.Format)
	if imageType == "JPEG" {
		imageType = "JPG"
	}
	p.imageSeq++
	name := fmt.Sprintf("cellimg%d", p.imageSeq)
	info := p.doc.RegisterImageOptionsReader(name,
		gofpdf.ImageOptions{ImageType: imageType}, bytes.NewReader(img.Data))
	if info == nil || info.Width() <= 0 || info.Height() <= 0 {
		p.logger.Warn().Str("format", img.Format).Msg("image registration failed, skipping")
		return
	}

	// Scale to fit the cell, never upscale, keep the aspect ratio.
	scale := 1.0
	if s := w / info.Width(); s < scale {
		scale = s
	}
	if s := h / info.Height(); s < scale {
		scale = s
	}
	dw := info.Width() * scale
	dh := info.Height() * scale
	p.doc.ImageOptions(name, x+(w-dw)/2, y+(h-dh)/2, dw, dh, false,
		gofpdf.ImageOptions{ImageType: imageType}, 0, "")
}

// Output finalizes the document. Any drawing error recorded along the way
// is returned here.
func (p *PDF) Output() ([]byte, error) {
	var buf bytes.Buffer
	if err := p.doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Error reports the first drawing error recorded so far, if any.
func (p *PDF) Error() error {
	return p.doc.Error()
}

func fontStyle(f models.Font) string {
	var b strings.Builder
	if f.Bold {
		b.WriteByte('B')
	}
	if f.Italic {
		b.WriteByte('I')
	}
	if f.Underline {
		b.WriteByte('U')
	}
	return b.String()
}

func alignString(h models.HPos, v models.VPos) string {
	var b strings.Builder
	switch h {
	case models.HPosCenter:
		b.WriteByte('C')
	case models.HPosRight:
		b.WriteByte('R')
	default:
		b.WriteByte('L')
	}
	switch v {
	case models.VPosTop:
		b.WriteByte('T')
	case models.VPosMiddle:
		b.WriteByte('M')
	default:
		b.WriteByte('B')
	}
	return b.String()
}

func parseHexColor(rgb string) (r, g, b int, ok bool) {
	if len(rgb) != 6 {
		return 0, 0, 0, false
	}
	n, err := strconv.ParseUint(rgb, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(n >> 16 & 0xFF), int(n >> 8 & 0xFF), int(n & 0xFF), true
}
