// Package layout is the core of sheetpdf: it resolves print scopes, styles
// and dimensions for a read-only grid and composes renderable units for a
// page renderer.
package layout

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/sheetpdf-go/pkg/sheetpdf/models"
)

// cellAddrPattern is the cell address grammar: column letters followed by a
// 1-based row number.
var cellAddrPattern = regexp.MustCompile(`^[A-Z]+[1-9][0-9]*$`)

// ParseError reports a malformed scope, range or address string. Scope
// strings are assumed caller-validated, so a ParseError aborts the whole
// conversion pass.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q: %s", e.Input, e.Reason)
}

// ParseAddress parses a cell address like "B2" into zero-based (row, col).
func ParseAddress(addr string) (row, col int, err error) {
	if !cellAddrPattern.MatchString(addr) {
		return 0, 0, &ParseError{Input: addr, Reason: "not a cell address"}
	}
	c, r, err := excelize.CellNameToCoordinates(addr)
	if err != nil {
		return 0, 0, &ParseError{Input: addr, Reason: err.Error()}
	}
	return r - 1, c - 1, nil
}

// FormatAddress formats zero-based (row, col) as a cell address like "B2".
func FormatAddress(row, col int) string {
	name, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return ""
	}
	return name
}

// ParseRange parses "A1:D10" into a Bound. The corners may be given in any
// order; the result is normalized.
func ParseRange(rng string) (models.Bound, error) {
	first, second, ok := strings.Cut(rng, ":")
	if !ok {
		return models.Bound{}, &ParseError{Input: rng, Reason: "not a cell range"}
	}
	r1, c1, err := ParseAddress(first)
	if err != nil {
		return models.Bound{}, err
	}
	r2, c2, err := ParseAddress(second)
	if err != nil {
		return models.Bound{}, err
	}
	return models.Bound{
		FirstRow: min(r1, r2),
		LastRow:  max(r1, r2),
		FirstCol: min(c1, c2),
		LastCol:  max(c1, c2),
	}, nil
}

// FormatRange formats a Bound as "A1:D10".
func FormatRange(b models.Bound) string {
	return FormatAddress(b.FirstRow, b.FirstCol) + ":" + FormatAddress(b.LastRow, b.LastCol)
}

// Scope is a parsed print-scope specifier: an optional sheet-name filter and
// an optional rectangular bound. The zero Scope means "every visible sheet,
// full extent".
type Scope struct {
	// Sheet filters to a single sheet by name (case-insensitive). Empty
	// means every visible sheet.
	Sheet string
	// Bound restricts rendering to a window of the grid. Nil means the full
	// sheet extent.
	Bound *models.Bound
}

// ParseScope parses one scope specifier. Accepted forms are
// "Sheet!A1:D10", "A1:D10" and "SheetName". A bare token that is not a
// range is kept as a sheet name; whether it names an existing sheet is
// decided later by ResolveScopes.
func ParseScope(spec string) (Scope, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Scope{}, &ParseError{Input: spec, Reason: "empty scope"}
	}

	if name, rng, ok := strings.Cut(spec, "!"); ok {
		if name == "" {
			return Scope{}, &ParseError{Input: spec, Reason: "empty sheet name"}
		}
		b, err := ParseRange(rng)
		if err != nil {
			return Scope{}, err
		}
		return Scope{Sheet: name, Bound: &b}, nil
	}

	if strings.Contains(spec, ":") {
		b, err := ParseRange(spec)
		if err != nil {
			return Scope{}, err
		}
		return Scope{Bound: &b}, nil
	}

	return Scope{Sheet: spec}, nil
}

// String formats the scope back into the specifier grammar. The result is
// equivalent to (though not necessarily byte-identical with) the input it
// was parsed from.
func (s Scope) String() string {
	switch {
	case s.Sheet != "" && s.Bound != nil:
		return s.Sheet + "!" + FormatRange(*s.Bound)
	case s.Bound != nil:
		return FormatRange(*s.Bound)
	default:
		return s.Sheet
	}
}

// Target is one concrete page to compose: a sheet and the window of it that
// becomes the page.
type Target struct {
	Sheet *models.Sheet
	Bound models.Bound
}

// ResolveScopes expands scope specifiers against a workbook into concrete
// render targets, one per page, in workbook order per specifier. With no
// specifiers every visible sheet is rendered at full extent. Hidden sheets
// are always skipped. A sheet filter that matches no sheet is reinterpreted
// as a bare range when the token parses as one; otherwise the specifier is
// rejected.
func ResolveScopes(wb *models.Workbook, specs []string, logger zerolog.Logger) ([]Target, error) {
	if len(specs) == 0 {
		return expandScope(wb, Scope{}, logger), nil
	}

	var targets []Target
	for _, spec := range specs {
		scope, err := ParseScope(spec)
		if err != nil {
			return nil, err
		}

		if scope.Sheet != "" && lookupSheet(wb, scope.Sheet) == nil {
			// Deliberate leniency: an unresolvable sheet name downgrades the
			// specifier to a bare range over all sheets.
			b, rerr := rangeFromToken(scope)
			if rerr != nil {
				return nil, rerr
			}
			logger.Warn().Str("scope", spec).Str("sheet", scope.Sheet).
				Msg("sheet not found, applying range to all sheets")
			scope = Scope{Bound: b}
		}

		expanded := expandScope(wb, scope, logger)
		if len(expanded) == 0 {
			logger.Warn().Str("scope", spec).Msg("scope matches no visible sheet")
		}
		targets = append(targets, expanded...)
	}
	return targets, nil
}

// rangeFromToken recovers a bound from a scope whose sheet token matched
// nothing. "Sheet!A1:D10" keeps its explicit bound; a bare token must itself
// parse as a range.
func rangeFromToken(s Scope) (*models.Bound, error) {
	if s.Bound != nil {
		return s.Bound, nil
	}
	b, err := ParseRange(s.Sheet)
	if err != nil {
		return nil, &ParseError{Input: s.Sheet, Reason: "neither a sheet name nor a range"}
	}
	return &b, nil
}

func lookupSheet(wb *models.Workbook, name string) *models.Sheet {
	for _, sh := range wb.Sheets {
		if strings.EqualFold(sh.Name, name) {
			return sh
		}
	}
	return nil
}

func expandScope(wb *models.Workbook, scope Scope, logger zerolog.Logger) []Target {
	var targets []Target
	for _, sh := range wb.Sheets {
		if scope.Sheet != "" && !strings.EqualFold(sh.Name, scope.Sheet) {
			continue
		}
		if sh.Hidden {
			logger.Debug().Str("sheet", sh.Name).Msg("skipping hidden sheet")
			continue
		}

		bound := models.Bound{}
		if scope.Bound != nil {
			bound = *scope.Bound
		} else {
			extent, ok := sh.Extent()
			if !ok {
				logger.Debug().Str("sheet", sh.Name).Msg("skipping empty sheet")
				continue
			}
			bound = extent
		}
		targets = append(targets, Target{Sheet: sh, Bound: bound})
	}
	return targets
}
