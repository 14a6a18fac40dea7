package jha

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates no workbook could be found or opened.
var ErrFileNotFound = errors.New("no file found")

// ErrUnsupportedFormat indicates the input is not a recognized spreadsheet.
var ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")

// ErrMissingSheets indicates the workbook lacks the sheets a view needs.
var ErrMissingSheets = errors.New("workbook missing required sheets")

// LoadError represents an error while reading one sheet of a workbook.
type LoadError struct {
	SheetName string
	Err       error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load error in sheet %q: %v", e.SheetName, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(sheetName string, err error) *LoadError {
	return &LoadError{
		SheetName: sheetName,
		Err:       err,
	}
}
