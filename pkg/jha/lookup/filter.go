package lookup

import (
	"sort"
	"strings"

	"github.com/ukaji3/jha-go/pkg/jha/models"
)

// NoSelection is the placeholder heading every division list.
const NoSelection = "-- Select Division --"

// BlockSeparator joins the values of several matched rows.
const BlockSeparator = "\n\n"

// IsNoSelection reports whether division is the placeholder rather than a
// real division.
func IsNoSelection(division string) bool {
	return division == NoSelection || division == ""
}

// FilterRows returns the rows whose col value, as text, equals division.
// Without a column the table is returned unfiltered.
func FilterRows(t *models.Table, col *models.ColumnRef, division string) *models.Table {
	if col == nil {
		return t
	}
	idx := col.Index
	return t.Where(func(row []interface{}) bool {
		if idx < 0 || idx >= len(row) {
			return division == ""
		}
		return models.CellString(row[idx]) == division
	})
}

// DistinctValues returns the non-empty values of col in first-seen order.
func DistinctValues(t *models.Table, col *models.ColumnRef) []string {
	if col == nil {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	for r := range t.Rows {
		v := t.Cell(r, col.Index)
		if models.IsEmpty(v) {
			continue
		}
		s := models.CellString(v)
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// Divisions lists the selectable divisions, NoSelection first.
// Values come from the division column of the key sheet; without one, the
// hazard values stand in as candidates.
func Divisions(key *models.Table, divCol *models.ColumnRef, hazards *models.Table, hazardCol *models.ColumnRef) []string {
	var values []string
	switch {
	case divCol != nil:
		values = DistinctValues(key, divCol)
	case hazardCol != nil:
		values = DistinctValues(hazards, hazardCol)
	}
	sort.Strings(values)
	return append([]string{NoSelection}, values...)
}

// Tasks returns the task text of each filtered key row. Without a task
// column the first column other than the division column is used.
func Tasks(filtered *models.Table, taskCol, divCol *models.ColumnRef) []string {
	if taskCol != nil {
		return filtered.Values(taskCol.Index)
	}
	for _, name := range filtered.Columns {
		if divCol != nil && name == divCol.Name {
			continue
		}
		idx, _ := filtered.Lookup(name)
		return filtered.Values(idx)
	}
	return nil
}

// RelatedText returns the hazard or control text for a division.
// Rows of sheet are matched through its own division column, provided the
// key sheet has one. When nothing matches, every distinct value of valueCol
// across the whole sheet is returned instead.
func RelatedText(sheet *models.Table, valueCol *models.ColumnRef, keyHasDivision bool, division string) string {
	if valueCol == nil {
		return ""
	}

	var text string
	if keyHasDivision {
		if divCol := FindColumn(sheet, DivisionPatterns...); divCol != nil {
			matched := FilterRows(sheet, divCol, division)
			if matched.Len() > 0 {
				text = strings.Join(matched.Values(valueCol.Index), BlockSeparator)
			}
		}
	}
	if text == "" {
		text = strings.Join(DistinctValues(sheet, valueCol), BlockSeparator)
	}
	return text
}
