package layout

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/rs/zerolog"

	"github.com/ukaji3/sheetpdf-go/pkg/sheetpdf/models"
)

// minCellExtentPt is the degenerate-size cutoff: cells whose computed width
// or height rounds below one layout unit emit nothing.
const minCellExtentPt = 1.0

// PageRenderer consumes composed pages. Pages arrive one at a time; within a
// page, cells arrive in strict row-major order with no overlapping output
// regions.
type PageRenderer interface {
	// BeginPage starts a new output page. colWidths are the page-relative
	// column widths in points, left to right; rowHeights are the row
	// heights in points, top to bottom.
	BeginPage(name string, colWidths, rowHeights []float64)
	// PlaceCell draws one renderable unit on the current page.
	PlaceCell(u *models.RenderableUnit)
}

// Compositor walks a print bound in row-major order and emits one renderable
// unit per visible anchor cell. It is a synchronous, single-threaded
// pipeline: one page completes before the next begins.
type Compositor struct {
	Renderer PageRenderer
	Overlay  *Overlay
	Logger   zerolog.Logger
	// PrintableWidth is the page width available to the grid, in points.
	PrintableWidth float64
}

// ComposePage composes one page from the sheet window given by bound and
// emits it to the renderer.
func (c *Compositor) ComposePage(sheet *models.Sheet, bound models.Bound) {
	logger := c.Logger.With().Str("sheet", sheet.Name).Str("range", FormatRange(bound)).Logger()
	logger.Info().Msg("composing page")

	index := NewRegionIndex(sheet.Merges)
	mapper := &Mapper{Sheet: sheet, Bound: bound, PrintableWidth: c.PrintableWidth}
	borders := BorderResolver{Sheet: sheet}

	c.Renderer.BeginPage(sheet.Name, mapper.ColumnWidths(), mapper.RowHeights())

	units := 0
	for row := bound.FirstRow; row <= bound.LastRow; row++ {
		for col := bound.FirstCol; col <= bound.LastCol; col++ {
			if region, ok := index.Contains(row, col); ok && !region.IsAnchor(row, col) {
				continue
			}
			u := c.composeCell(sheet, index, borders, mapper, bound, row, col, logger)
			if u == nil {
				continue
			}
			c.Renderer.PlaceCell(u)
			units++
		}
	}
	logger.Debug().Int("units", units).Msg("page composed")
}

// composeCell builds the renderable unit for an anchor or unmerged cell.
// It returns nil when the cell emits nothing: degenerate size, or neither
// content nor visible styling.
func (c *Compositor) composeCell(sheet *models.Sheet, index *RegionIndex, borders BorderResolver,
	mapper *Mapper, bound models.Bound, row, col int, logger zerolog.Logger) *models.RenderableUnit {

	rect := models.Bound{FirstRow: row, LastRow: row, FirstCol: col, LastCol: col}
	if region, ok := index.Contains(row, col); ok {
		rect = region.Rect()
	}

	width := mapper.RectWidth(rect)
	height := mapper.RectHeight(rect)
	if width < minCellExtentPt || height < minCellExtentPt {
		logger.Debug().Str("cell", FormatAddress(row, col)).
			Float64("w", width).Float64("h", height).Msg("skipping degenerate cell")
		return nil
	}

	rowSpan, colSpan := index.Span(row, col, bound)
	cell := sheet.CellAt(row, col)
	style := sheet.StyleAt(row, col)

	unit := &models.RenderableUnit{
		Row:     row - bound.FirstRow,
		Col:     col - bound.FirstCol,
		RowSpan: rowSpan,
		ColSpan: colSpan,
		Width:   width,
		Height:  height,
		Borders: borders.Widths(rect),
	}
	if rgb, ok := ResolveFill(style); ok {
		unit.Fill = rgb
	}

	// Image behind text when both are present.
	if img := c.resolveImage(sheet, rect, logger); img != nil {
		unit.Layers = append(unit.Layers, models.ContentLayer{Kind: models.LayerImage, Image: img})
	}

	text, overridden := c.Overlay.ValueIn(rect)
	if !overridden && cell != nil {
		text = cell.Value.Display()
	}
	if text != "" {
		numeric := !overridden && cell != nil && cell.Value.IsNumeric()
		font := models.Font{}
		if style != nil {
			font = style.Font
		}
		unit.Layers = append(unit.Layers, models.ContentLayer{
			Kind:      models.LayerText,
			Text:      text,
			Font:      font,
			Transform: ResolveTransform(style, numeric),
		})
	}

	if !unit.HasContent() && !unit.Styled() {
		return nil
	}
	return unit
}

// resolveImage picks the cell's image layer source: an overlay image
// anywhere inside the rect wins over an embedded picture. Undecodable bytes
// degrade to no image layer.
func (c *Compositor) resolveImage(sheet *models.Sheet, rect models.Bound, logger zerolog.Logger) *models.Image {
	if data, ok := c.Overlay.ImageIn(rect); ok {
		format, ok := sniffImage(data)
		if !ok {
			logger.Warn().Str("cell", FormatAddress(rect.FirstRow, rect.FirstCol)).
				Msg("undecodable overlay image, omitting layer")
			return nil
		}
		return &models.Image{Data: data, Format: format}
	}

	for r := rect.FirstRow; r <= rect.LastRow; r++ {
		for col := rect.FirstCol; col <= rect.LastCol; col++ {
			cell := sheet.CellAt(r, col)
			if cell == nil || cell.Image == nil {
				continue
			}
			if _, ok := sniffImage(cell.Image.Data); !ok {
				logger.Warn().Str("cell", FormatAddress(r, col)).
					Msg("undecodable embedded image, omitting layer")
				continue
			}
			return cell.Image
		}
	}
	return nil
}

// sniffImage detects the format of raw image bytes. ok is false when the
// bytes do not decode as any supported format.
func sniffImage(data []byte) (format string, ok bool) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", false
	}
	return format, true
}
