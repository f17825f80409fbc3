package sheetpdf

import "github.com/rs/zerolog"

// Options controls a conversion run.
type Options struct {
	// Scopes selects what to print, one entry per output page, e.g.
	// "Sheet1!A1:D10", "A1:D10" or "Sheet1". Empty means every visible
	// sheet's used range.
	Scopes []string
	// Values substitutes cell text by address, e.g. {"B2": "approved"}.
	// Substitutions apply to whichever printed cell covers the address.
	Values map[string]string
	// Images places raw image bytes into cells by address.
	Images map[string][]byte
	// Landscape selects the page orientation.
	Landscape bool
	// MarginPt is the uniform page margin in points.
	MarginPt float64
	// Logger receives progress and degradation logs. Nil disables
	// logging.
	Logger *zerolog.Logger
}

// DefaultOptions returns the options used when none are given: landscape
// A4 with a 24pt margin, printing every visible sheet.
func DefaultOptions() Options {
	return Options{
		Landscape: true,
		MarginPt:  24,
	}
}

func (o Options) logger() zerolog.Logger {
	if o.Logger == nil {
		return zerolog.Nop()
	}
	return *o.Logger
}
