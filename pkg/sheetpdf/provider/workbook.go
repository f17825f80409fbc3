// Package provider loads xlsx workbooks into the neutral sheet model.
package provider

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/sheetpdf-go/pkg/sheetpdf/models"
)

// ReadWorkbook snapshots every sheet of an open workbook into the neutral
// model. Degraded components (merges, dimensions, pictures) log a warning
// and leave their part of the model empty rather than failing the read.
func ReadWorkbook(f *excelize.File, logger zerolog.Logger) (*models.Workbook, error) {
	wb := &models.Workbook{Name: f.Path}
	for _, name := range f.GetSheetList() {
		sheet, err := readSheet(f, name, logger.With().Str("sheet", name).Logger())
		if err != nil {
			return nil, err
		}
		wb.Sheets = append(wb.Sheets, sheet)
	}
	return wb, nil
}

func readSheet(f *excelize.File, name string, logger zerolog.Logger) (*models.Sheet, error) {
	visible, err := f.GetSheetVisible(name)
	if err != nil {
		return nil, err
	}
	sheet := &models.Sheet{
		Name:       name,
		Hidden:     !visible,
		Cells:      map[models.Coord]*models.Cell{},
		ColWidths:  map[int]float64{},
		RowHeights: map[int]float64{},
	}

	rows, err := f.GetRows(name)
	if err != nil {
		return nil, err
	}
	styles := styleCache{file: f, byID: map[int]*models.Style{}}
	for r, cols := range rows {
		for col := range cols {
			cell, err := readCell(f, name, r, col, &styles)
			if err != nil {
				return nil, err
			}
			if cell != nil {
				sheet.Cells[models.Coord{Row: r, Col: col}] = cell
				if r+1 > sheet.Rows {
					sheet.Rows = r + 1
				}
				if col+1 > sheet.Cols {
					sheet.Cols = col + 1
				}
			}
		}
	}

	readMerges(f, name, sheet, logger)
	readDimensions(f, name, sheet, logger)
	readPictures(f, name, sheet, logger)
	return sheet, nil
}

func readCell(f *excelize.File, name string, row, col int, styles *styleCache) (*models.Cell, error) {
	axis, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return nil, err
	}
	value, err := readValue(f, name, axis)
	if err != nil {
		return nil, err
	}
	styleID, err := f.GetCellStyle(name, axis)
	if err != nil {
		return nil, err
	}
	style, err := styles.get(styleID)
	if err != nil {
		return nil, err
	}
	if value.IsBlank() && style == nil {
		return nil, nil
	}
	return &models.Cell{Value: value, Style: style}, nil
}

func readValue(f *excelize.File, name, axis string) (models.CellValue, error) {
	display, err := f.GetCellValue(name, axis)
	if err != nil {
		return models.CellValue{}, err
	}
	formula, err := f.GetCellFormula(name, axis)
	if err != nil {
		return models.CellValue{}, err
	}
	if formula != "" {
		return models.CellValue{Kind: models.KindFormula, Text: display}, nil
	}
	kind, err := f.GetCellType(name, axis)
	if err != nil {
		return models.CellValue{}, err
	}
	switch kind {
	case excelize.CellTypeBool:
		return models.CellValue{Kind: models.KindBoolean, Bool: display == "TRUE" || display == "1"}, nil
	case excelize.CellTypeError:
		return models.CellValue{Kind: models.KindError, Text: display}, nil
	case excelize.CellTypeNumber, excelize.CellTypeDate, excelize.CellTypeUnset:
		if display == "" {
			return models.CellValue{Kind: models.KindBlank}, nil
		}
		raw, err := f.GetCellValue(name, axis, excelize.Options{RawCellValue: true})
		if err != nil {
			return models.CellValue{}, err
		}
		if n, err := strconv.ParseFloat(raw, 64); err == nil {
			return models.CellValue{Kind: models.KindNumber, Number: n, Text: display}, nil
		}
		return models.CellValue{Kind: models.KindText, Text: display}, nil
	default:
		if display == "" {
			return models.CellValue{Kind: models.KindBlank}, nil
		}
		return models.CellValue{Kind: models.KindText, Text: display}, nil
	}
}

// styleCache deduplicates style snapshots by workbook style ID so that
// identical cells share one immutable *Style.
type styleCache struct {
	file *excelize.File
	byID map[int]*models.Style
}

func (c *styleCache) get(id int) (*models.Style, error) {
	if st, ok := c.byID[id]; ok {
		return st, nil
	}
	raw, err := c.file.GetStyle(id)
	if err != nil {
		return nil, err
	}
	st := convertStyle(raw)
	c.byID[id] = st
	return st, nil
}

// convertStyle maps an excelize style snapshot onto the neutral model.
// A snapshot carrying no visual properties converts to nil.
func convertStyle(raw *excelize.Style) *models.Style {
	if raw == nil {
		return nil
	}
	st := &models.Style{Fill: models.Fill{Indexed: -1}}
	styled := false

	for _, b := range raw.Border {
		edge, ok := borderEdge(b.Type)
		if !ok {
			continue
		}
		st.Borders[edge] = models.BorderSpec{Style: borderStyle(b.Style)}
		if st.Borders[edge].Style != models.BorderNone {
			styled = true
		}
	}
	if raw.Fill.Type == "pattern" && raw.Fill.Pattern > 0 {
		if raw.Fill.Pattern == 1 {
			st.Fill.Pattern = models.FillSolid
		} else {
			st.Fill.Pattern = models.FillPatterned
		}
		if len(raw.Fill.Color) > 0 {
			st.Fill.RGB = raw.Fill.Color[0]
		}
		styled = true
	}
	if raw.Alignment != nil {
		st.Horizontal = hAlign(raw.Alignment.Horizontal)
		st.Vertical = vAlign(raw.Alignment.Vertical)
		st.Rotation = rotation(raw.Alignment.TextRotation)
		st.Indent = raw.Alignment.Indent
		if st.Horizontal != models.HAlignGeneral || st.Vertical != models.VAlignBottom ||
			st.Rotation != 0 || st.Indent != 0 {
			styled = true
		}
	}
	if raw.Font != nil {
		st.Font = models.Font{
			Family:    raw.Font.Family,
			SizePt:    raw.Font.Size,
			Bold:      raw.Font.Bold,
			Italic:    raw.Font.Italic,
			Underline: raw.Font.Underline != "" && raw.Font.Underline != "none",
		}
		if st.Font.Bold || st.Font.Italic || st.Font.Underline || st.Font.SizePt != 0 || st.Font.Family != "" {
			styled = true
		}
	}
	if !styled {
		return nil
	}
	return st
}

func borderEdge(kind string) (models.Edge, bool) {
	switch kind {
	case "top":
		return models.EdgeTop, true
	case "bottom":
		return models.EdgeBottom, true
	case "left":
		return models.EdgeLeft, true
	case "right":
		return models.EdgeRight, true
	default:
		return 0, false
	}
}

func borderStyle(style int) models.BorderStyle {
	switch style {
	case 0:
		return models.BorderNone
	case 1:
		return models.BorderThin
	case 2:
		return models.BorderMedium
	case 5:
		return models.BorderThick
	default:
		return models.BorderOther
	}
}

func hAlign(s string) models.HAlign {
	switch s {
	case "left":
		return models.HAlignLeft
	case "center", "centerContinuous":
		return models.HAlignCenter
	case "right":
		return models.HAlignRight
	case "justify", "distributed":
		return models.HAlignJustify
	default:
		return models.HAlignGeneral
	}
}

func vAlign(s string) models.VAlign {
	switch s {
	case "top":
		return models.VAlignTop
	case "center", "justify", "distributed":
		return models.VAlignCenter
	default:
		return models.VAlignBottom
	}
}

// rotation converts the xlsx rotation convention (-90..90, or 255 for
// stacked) onto the 0..180 model range, where values above 90 lean the text
// downward.
func rotation(tr int) int {
	switch {
	case tr == 255:
		return models.StackedRotation
	case tr < 0:
		return 90 - tr
	default:
		return tr
	}
}

func readMerges(f *excelize.File, name string, sheet *models.Sheet, logger zerolog.Logger) {
	merges, err := f.GetMergeCells(name)
	if err != nil {
		logger.Warn().Err(err).Msg("reading merged regions failed, continuing without")
		return
	}
	for _, mc := range merges {
		sc, sr, err := excelize.CellNameToCoordinates(mc.GetStartAxis())
		if err != nil {
			logger.Warn().Err(err).Str("range", mc.GetStartAxis()).Msg("skipping malformed merge")
			continue
		}
		ec, er, err := excelize.CellNameToCoordinates(mc.GetEndAxis())
		if err != nil {
			logger.Warn().Err(err).Str("range", mc.GetEndAxis()).Msg("skipping malformed merge")
			continue
		}
		sheet.Merges = append(sheet.Merges, models.MergedRegion{
			FirstRow: sr - 1, LastRow: er - 1,
			FirstCol: sc - 1, LastCol: ec - 1,
		})
	}
}

func readDimensions(f *excelize.File, name string, sheet *models.Sheet, logger zerolog.Logger) {
	props, err := f.GetSheetProps(name)
	if err != nil {
		logger.Warn().Err(err).Msg("reading sheet props failed, using defaults")
	} else {
		if props.DefaultColWidth != nil {
			sheet.DefaultColWidth = *props.DefaultColWidth * widthUnitsPerChar
		}
		if props.DefaultRowHeight != nil {
			sheet.DefaultRowHeight = *props.DefaultRowHeight
		}
	}
	for col := 0; col < sheet.Cols; col++ {
		colName, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			continue
		}
		w, err := f.GetColWidth(name, colName)
		if err != nil {
			logger.Warn().Err(err).Str("column", colName).Msg("reading column width failed")
			continue
		}
		sheet.ColWidths[col] = w * widthUnitsPerChar
	}
	for row := 0; row < sheet.Rows; row++ {
		h, err := f.GetRowHeight(name, row+1)
		if err != nil {
			logger.Warn().Err(err).Int("row", row+1).Msg("reading row height failed")
			continue
		}
		sheet.RowHeights[row] = h
	}
}

// widthUnitsPerChar converts the character-width units excelize reports
// into the 1/256-character units the layout model stores.
const widthUnitsPerChar = 256.0

func readPictures(f *excelize.File, name string, sheet *models.Sheet, logger zerolog.Logger) {
	cells, err := f.GetPictureCells(name)
	if err != nil {
		logger.Warn().Err(err).Msg("listing picture cells failed, continuing without")
		return
	}
	for _, axis := range cells {
		pics, err := f.GetPictures(name, axis)
		if err != nil || len(pics) == 0 {
			logger.Warn().Err(err).Str("cell", axis).Msg("reading picture failed, skipping")
			continue
		}
		col, row, err := excelize.CellNameToCoordinates(axis)
		if err != nil {
			continue
		}
		coord := models.Coord{Row: row - 1, Col: col - 1}
		cell := sheet.Cells[coord]
		if cell == nil {
			cell = &models.Cell{Value: models.CellValue{Kind: models.KindBlank}}
			sheet.Cells[coord] = cell
			if row > sheet.Rows {
				sheet.Rows = row
			}
			if col > sheet.Cols {
				sheet.Cols = col
			}
		}
		cell.Image = &models.Image{
			Data:   pics[0].File,
			Format: strings.ToLower(strings.TrimPrefix(pics[0].Extension, ".")),
		}
	}
}
