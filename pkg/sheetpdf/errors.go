package sheetpdf

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound is returned when the input workbook path does not
	// exist.
	ErrFileNotFound = errors.New("file not found")
	// ErrInvalidFormat is returned when the input file is not a readable
	// xlsx workbook.
	ErrInvalidFormat = errors.New("invalid file format")
	// ErrNoVisibleSheets is returned when scope resolution leaves nothing
	// to print.
	ErrNoVisibleSheets = errors.New("no visible sheets to print")
)

// ConvertError wraps a failure with the sheet and pipeline stage it
// happened in.
type ConvertError struct {
	Sheet string
	Stage string
	Err   error
}

func (e *ConvertError) Error() string {
	if e.Sheet == "" {
		return fmt.Sprintf("%s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("%s: sheet %q: %v", e.Stage, e.Sheet, e.Err)
}

func (e *ConvertError) Unwrap() error {
	return e.Err
}
