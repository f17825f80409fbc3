package provider

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/sheetpdf-go/pkg/sheetpdf/models"
)

func testWorkbookFile(t *testing.T) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	t.Cleanup(func() { f.Close() })

	if err := f.SetCellValue("Sheet1", "A1", "hello"); err != nil {
		t.Fatal(err)
	}
	if err := f.SetCellValue("Sheet1", "B2", 42.5); err != nil {
		t.Fatal(err)
	}
	if err := f.SetCellValue("Sheet1", "C1", true); err != nil {
		t.Fatal(err)
	}
	return f
}

func TestReadWorkbookValues(t *testing.T) {
	f := testWorkbookFile(t)

	wb, err := ReadWorkbook(f, zerolog.Nop())
	if err != nil {
		t.Fatalf("ReadWorkbook: %v", err)
	}
	if len(wb.Sheets) != 1 {
		t.Fatalf("got %d sheets, want 1", len(wb.Sheets))
	}
	sheet := wb.Sheets[0]
	if sheet.Name != "Sheet1" || sheet.Hidden {
		t.Fatalf("sheet = %q hidden=%v", sheet.Name, sheet.Hidden)
	}
	if sheet.Rows < 2 || sheet.Cols < 3 {
		t.Fatalf("extent = (%d, %d), want at least (2, 3)", sheet.Rows, sheet.Cols)
	}

	text := sheet.CellAt(0, 0)
	if text == nil || text.Value.Kind != models.KindText || text.Value.Text != "hello" {
		t.Errorf("A1 = %+v, want text \"hello\"", text)
	}
	num := sheet.CellAt(1, 1)
	if num == nil || !num.Value.IsNumeric() || num.Value.Number != 42.5 {
		t.Errorf("B2 = %+v, want number 42.5", num)
	}
	boolean := sheet.CellAt(0, 2)
	if boolean == nil || boolean.Value.Kind != models.KindBoolean || !boolean.Value.Bool {
		t.Errorf("C1 = %+v, want boolean true", boolean)
	}
}

func TestReadWorkbookStyles(t *testing.T) {
	f := testWorkbookFile(t)

	styleID, err := f.NewStyle(&excelize.Style{
		Border: []excelize.Border{
			{Type: "top", Style: 5, Color: "000000"},
			{Type: "left", Style: 1, Color: "000000"},
		},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FFCC00"}},
		Alignment: &excelize.Alignment{
			Horizontal:   "center",
			Vertical:     "top",
			TextRotation: 90,
		},
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := f.SetCellStyle("Sheet1", "A1", "A1", styleID); err != nil {
		t.Fatal(err)
	}

	wb, err := ReadWorkbook(f, zerolog.Nop())
	if err != nil {
		t.Fatalf("ReadWorkbook: %v", err)
	}
	st := wb.Sheets[0].StyleAt(0, 0)
	if st == nil {
		t.Fatal("A1 style missing")
	}

	if got := st.Border(models.EdgeTop).Style; got != models.BorderThick {
		t.Errorf("top border = %v, want thick", got)
	}
	if got := st.Border(models.EdgeLeft).Style; got != models.BorderThin {
		t.Errorf("left border = %v, want thin", got)
	}
	if got := st.Border(models.EdgeBottom).Style; got != models.BorderNone {
		t.Errorf("bottom border = %v, want none", got)
	}
	if st.Fill.Pattern != models.FillSolid || st.Fill.RGB == "" {
		t.Errorf("fill = %+v, want solid with a color", st.Fill)
	}
	if st.Horizontal != models.HAlignCenter || st.Vertical != models.VAlignTop {
		t.Errorf("alignment = (%v, %v), want (center, top)", st.Horizontal, st.Vertical)
	}
	if st.Rotation != 90 {
		t.Errorf("rotation = %d, want 90", st.Rotation)
	}
	if !st.Font.Bold || st.Font.SizePt != 14 {
		t.Errorf("font = %+v, want bold 14pt", st.Font)
	}
}

func TestReadWorkbookSharedStyles(t *testing.T) {
	f := testWorkbookFile(t)

	styleID, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		t.Fatal(err)
	}
	if err := f.SetCellStyle("Sheet1", "A1", "C1", styleID); err != nil {
		t.Fatal(err)
	}

	wb, err := ReadWorkbook(f, zerolog.Nop())
	if err != nil {
		t.Fatalf("ReadWorkbook: %v", err)
	}
	sheet := wb.Sheets[0]
	if sheet.StyleAt(0, 0) == nil || sheet.StyleAt(0, 0) != sheet.StyleAt(0, 2) {
		t.Error("cells with the same style ID must share one style snapshot")
	}
}

func TestReadWorkbookMergesAndDimensions(t *testing.T) {
	f := testWorkbookFile(t)

	if err := f.MergeCell("Sheet1", "A1", "B2"); err != nil {
		t.Fatal(err)
	}
	if err := f.SetColWidth("Sheet1", "A", "A", 20); err != nil {
		t.Fatal(err)
	}
	if err := f.SetRowHeight("Sheet1", 1, 30); err != nil {
		t.Fatal(err)
	}

	wb, err := ReadWorkbook(f, zerolog.Nop())
	if err != nil {
		t.Fatalf("ReadWorkbook: %v", err)
	}
	sheet := wb.Sheets[0]

	want := models.MergedRegion{FirstRow: 0, LastRow: 1, FirstCol: 0, LastCol: 1}
	if len(sheet.Merges) != 1 || sheet.Merges[0] != want {
		t.Errorf("merges = %+v, want [%+v]", sheet.Merges, want)
	}
	if got := sheet.ColWidths[0]; got != 20*256 {
		t.Errorf("column A width = %v, want %v", got, 20*256)
	}
	if got := sheet.RowHeights[0]; got != 30 {
		t.Errorf("row 1 height = %v, want 30", got)
	}
}

func TestReadWorkbookHiddenSheet(t *testing.T) {
	f := testWorkbookFile(t)

	if _, err := f.NewSheet("Internal"); err != nil {
		t.Fatal(err)
	}
	if err := f.SetSheetVisible("Internal", false); err != nil {
		t.Fatal(err)
	}

	wb, err := ReadWorkbook(f, zerolog.Nop())
	if err != nil {
		t.Fatalf("ReadWorkbook: %v", err)
	}
	if len(wb.Sheets) != 2 {
		t.Fatalf("got %d sheets, want 2", len(wb.Sheets))
	}
	for _, sheet := range wb.Sheets {
		if sheet.Name == "Internal" && !sheet.Hidden {
			t.Error("Internal sheet should read as hidden")
		}
	}
}

func TestRotationConversion(t *testing.T) {
	tests := []struct {
		source int
		want   int
	}{
		{source: 0, want: 0},
		{source: 45, want: 45},
		{source: 90, want: 90},
		{source: -45, want: 135},
		{source: -90, want: 180},
		{source: 255, want: models.StackedRotation},
	}
	for _, tt := range tests {
		if got := rotation(tt.source); got != tt.want {
			t.Errorf("rotation(%d) = %d, want %d", tt.source, got, tt.want)
		}
	}
}

func TestBorderStyleMapping(t *testing.T) {
	tests := []struct {
		style int
		want  models.BorderStyle
	}{
		{style: 0, want: models.BorderNone},
		{style: 1, want: models.BorderThin},
		{style: 2, want: models.BorderMedium},
		{style: 5, want: models.BorderThick},
		{style: 3, want: models.BorderOther},
		{style: 9, want: models.BorderOther},
	}
	for _, tt := range tests {
		if got := borderStyle(tt.style); got != tt.want {
			t.Errorf("borderStyle(%d) = %v, want %v", tt.style, got, tt.want)
		}
	}
}
