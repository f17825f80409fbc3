// Package sheetpdf converts xlsx workbooks into paginated, styled PDF
// documents.
package sheetpdf

import (
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/sheetpdf-go/pkg/sheetpdf/layout"
	"github.com/ukaji3/sheetpdf-go/pkg/sheetpdf/provider"
	"github.com/ukaji3/sheetpdf-go/pkg/sheetpdf/render"
)

// Convert reads the workbook at path and returns the rendered PDF bytes.
// Each resolved print scope becomes one output page.
func Convert(path string, opts Options) ([]byte, error) {
	logger := opts.logger()

	if _, err := os.Stat(path); err != nil {
		return nil, ErrFileNotFound
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &ConvertError{Stage: "open", Err: ErrInvalidFormat}
	}
	defer f.Close()

	wb, err := provider.ReadWorkbook(f, logger)
	if err != nil {
		return nil, &ConvertError{Stage: "read", Err: err}
	}

	targets, err := layout.ResolveScopes(wb, opts.Scopes, logger)
	if err != nil {
		return nil, &ConvertError{Stage: "scope", Err: err}
	}
	if len(targets) == 0 {
		return nil, ErrNoVisibleSheets
	}

	overlay, err := layout.NewOverlay(opts.Values, opts.Images)
	if err != nil {
		return nil, &ConvertError{Stage: "overlay", Err: err}
	}

	pdf := render.NewPDF(render.PageSetup{Landscape: opts.Landscape, MarginPt: opts.MarginPt}, logger)
	compositor := &layout.Compositor{
		Renderer:       pdf,
		Overlay:        overlay,
		Logger:         logger,
		PrintableWidth: pdf.PrintableWidth(),
	}
	for _, t := range targets {
		compositor.ComposePage(t.Sheet, t.Bound)
		if err := pdf.Error(); err != nil {
			return nil, &ConvertError{Sheet: t.Sheet.Name, Stage: "render", Err: err}
		}
	}

	out, err := pdf.Output()
	if err != nil {
		return nil, &ConvertError{Stage: "output", Err: err}
	}
	logger.Info().Str("file", path).Int("pages", len(targets)).Msg("conversion finished")
	return out, nil
}
