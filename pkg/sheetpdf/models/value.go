// Package models defines the read-only data structures the layout engine
// consumes and the renderable units it produces.
package models

import "strconv"

// ValueKind discriminates the variants of CellValue.
type ValueKind int

const (
	// KindBlank marks an empty cell.
	KindBlank ValueKind = iota
	// KindText marks a plain text value.
	KindText
	// KindNumber marks a numeric value.
	KindNumber
	// KindBoolean marks a boolean value.
	KindBoolean
	// KindFormula marks a formula cell carrying its cached result text.
	KindFormula
	// KindError marks a cell holding a spreadsheet error (e.g. #DIV/0!).
	KindError
)

// CellValue is a tagged union over the value types a cell can hold.
// Exactly one of the payload fields is meaningful, selected by Kind.
type CellValue struct {
	Kind   ValueKind
	Text   string  // display text for Text, Formula and Error values
	Number float64 // valid when Kind == KindNumber
	Bool   bool    // valid when Kind == KindBoolean
}

// TextValue returns a CellValue holding plain text.
func TextValue(s string) CellValue {
	if s == "" {
		return CellValue{Kind: KindBlank}
	}
	return CellValue{Kind: KindText, Text: s}
}

// NumberValue returns a CellValue holding a number.
func NumberValue(n float64) CellValue {
	return CellValue{Kind: KindNumber, Number: n}
}

// IsBlank reports whether the value renders as nothing.
func (v CellValue) IsBlank() bool {
	return v.Kind == KindBlank
}

// IsNumeric reports whether the value is a number. Numeric values affect how
// "general" horizontal alignment resolves.
func (v CellValue) IsNumeric() bool {
	return v.Kind == KindNumber
}

// Display returns the string rendered for the value.
func (v CellValue) Display() string {
	switch v.Kind {
	case KindBlank:
		return ""
	case KindText, KindFormula, KindError:
		return v.Text
	case KindNumber:
		if v.Text != "" {
			// Number-formatted display text from the source document wins
			// over the raw numeric value.
			return v.Text
		}
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	case KindBoolean:
		if v.Bool {
			return "TRUE"
		}
		return "FALSE"
	}
	return ""
}
