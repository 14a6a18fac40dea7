// Package views assembles the pages of the JHA viewer from a loaded workbook.
package views

import (
	"strings"

	"github.com/ukaji3/jha-go/pkg/jha"
	"github.com/ukaji3/jha-go/pkg/jha/models"
)

// OverviewRowLimit caps the rows shown from a multi-column landing sheet.
const OverviewRowLimit = 40

// OverviewView is the landing page content.
type OverviewView struct {
	Sheet      string   `json:"sheet"`
	Paragraphs []string `json:"paragraphs"`
	Shapes     []string `json:"shapes,omitempty"`
}

// Overview renders the landing sheet as paragraphs of text.
// A one-column sheet yields each non-empty cell; wider sheets yield the
// non-empty cells of each of the first rows joined by a space.
func Overview(wb *models.Workbook) (*OverviewView, error) {
	name, ok := wb.SheetAt(wb.Layout.Index(models.RoleLanding))
	if !ok {
		return nil, jha.ErrMissingSheets
	}
	grid := wb.Grid(models.RoleLanding)

	v := &OverviewView{Sheet: name, Paragraphs: []string{}}
	if grid.Width() == 1 {
		for _, row := range grid {
			if !models.IsEmpty(row[0]) {
				v.Paragraphs = append(v.Paragraphs, models.CellString(row[0]))
			}
		}
	} else {
		for i, row := range grid {
			if i >= OverviewRowLimit {
				break
			}
			if line := joinRow(row); line != "" {
				v.Paragraphs = append(v.Paragraphs, line)
			}
		}
	}

	for _, s := range wb.LandingShapes {
		v.Shapes = append(v.Shapes, s.Text)
	}
	return v, nil
}

func joinRow(row []interface{}) string {
	parts := make([]string, 0, len(row))
	for _, cell := range row {
		if !models.IsEmpty(cell) {
			parts = append(parts, models.CellString(cell))
		}
	}
	return strings.Join(parts, " ")
}
