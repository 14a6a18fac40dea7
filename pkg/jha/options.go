// Package jha loads Job Hazard Analysis workbooks into tables.
package jha

import "github.com/ukaji3/jha-go/pkg/jha/models"

// DefaultFileName is the workbook looked up first by FindFile.
const DefaultFileName = "JHA by Division.xlsx"

// Options configures loading behavior.
type Options struct {
	// Layout maps sheet roles to sheet indexes.
	// If nil, models.DefaultLayout is used.
	Layout models.Layout
	// IncludeShapes specifies whether to collect landing sheet text shapes.
	// If nil, defaults to true.
	IncludeShapes *bool
	// Charset is the text encoding of legacy .xls files (default "utf-8").
	Charset string
}

// DefaultOptions returns default loading options.
func DefaultOptions() Options {
	return Options{
		Layout: models.DefaultLayout(),
	}
}

// ShouldIncludeShapes returns whether to collect landing sheet text shapes.
func (o Options) ShouldIncludeShapes() bool {
	if o.IncludeShapes != nil {
		return *o.IncludeShapes
	}
	return true
}

func (o Options) layout() models.Layout {
	if o.Layout == nil {
		return models.DefaultLayout()
	}
	return o.Layout
}
