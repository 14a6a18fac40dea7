// Package lookup locates columns by fuzzy name and filters rows by division.
package lookup

import (
	"strings"

	"github.com/ukaji3/jha-go/pkg/jha/models"
	"golang.org/x/text/cases"
)

// Column name fragments, in priority order.
var (
	DivisionPatterns = []string{"division"}
	TaskPatterns     = []string{"task", "sequence", "job step", "what am i doing"}
	HazardPatterns   = []string{"hazard", "primary hazard"}
	ControlPatterns  = []string{"control", "primary control"}
)

// FindColumn returns the first column whose name contains one of patterns,
// ignoring case, or nil when no column matches. Patterns are tried in order,
// columns in table order. A name shared by several columns resolves to the
// last of them.
func FindColumn(t *models.Table, patterns ...string) *models.ColumnRef {
	if t == nil {
		return nil
	}
	// Casers carry state; one per call
	fold := cases.Fold()
	names := make([]string, len(t.Columns))
	for i, name := range t.Columns {
		names[i] = fold.String(name)
	}

	for _, p := range patterns {
		needle := fold.String(p)
		for i, name := range names {
			if !strings.Contains(name, needle) {
				continue
			}
			idx, _ := t.Lookup(t.Columns[i])
			return &models.ColumnRef{Name: t.Columns[i], Index: idx}
		}
	}
	return nil
}
