// Package output serializes tables and edit records into downloadable files.
package output

import (
	"errors"
	"fmt"
)

// MIME types of the export formats.
const (
	MimeCSV  = "text/csv"
	MimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	MimePDF  = "application/pdf"
)

// Format names an export format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

// ErrInvalidFormat indicates an unknown export format name.
var ErrInvalidFormat = errors.New("invalid format")

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV, FormatXLSX, FormatPDF:
		return Format(s), nil
	}
	return "", fmt.Errorf("%w: %s (must be csv, xlsx, or pdf)", ErrInvalidFormat, s)
}

// Result is a serialized file ready for download.
type Result struct {
	Data     []byte
	Filename string
	MimeType string
}

// ExportError represents a serialization failure of one export.
type ExportError struct {
	Format Format
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("%s export failed: %v", e.Format, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

func exportError(format Format, err error) error {
	if err == nil {
		return nil
	}
	return &ExportError{Format: format, Err: err}
}
