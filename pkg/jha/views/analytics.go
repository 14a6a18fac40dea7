package views

import (
	"sort"

	"github.com/montanaflynn/stats"
	"github.com/ukaji3/jha-go/pkg/jha/lookup"
	"github.com/ukaji3/jha-go/pkg/jha/models"
)

// UnknownDivision labels key rows without a division.
const UnknownDivision = "Unknown"

// DivisionCount is the number of key rows of one division.
type DivisionCount struct {
	Division string `json:"division"`
	Count    int    `json:"count"`
}

// AnalyticsView summarizes how key tasks are spread across divisions.
type AnalyticsView struct {
	Available bool            `json:"available"`
	Column    string          `json:"column,omitempty"`
	Counts    []DivisionCount `json:"counts,omitempty"`
	Total     int             `json:"total"`
	Mean      float64         `json:"mean"`
	Median    float64         `json:"median"`
	Max       float64         `json:"max"`
}

// Analytics counts key sheet rows per division, largest first.
// Without a division column, or with an empty key sheet, the view is
// returned with Available unset.
func Analytics(wb *models.Workbook) (*AnalyticsView, error) {
	v := &AnalyticsView{}
	key := wb.Table(models.RoleKeyJHAs)
	if key.Len() == 0 {
		return v, nil
	}
	col := lookup.FindColumn(key, lookup.DivisionPatterns...)
	if col == nil {
		return v, nil
	}
	v.Available = true
	v.Column = col.Name

	counts := make(map[string]int)
	for r := range key.Rows {
		cell := key.Cell(r, col.Index)
		name := UnknownDivision
		if !models.IsEmpty(cell) {
			name = models.CellString(cell)
		}
		counts[name]++
	}

	data := make([]float64, 0, len(counts))
	for name, n := range counts {
		v.Counts = append(v.Counts, DivisionCount{Division: name, Count: n})
		v.Total += n
		data = append(data, float64(n))
	}
	sort.Slice(v.Counts, func(i, j int) bool {
		if v.Counts[i].Count != v.Counts[j].Count {
			return v.Counts[i].Count > v.Counts[j].Count
		}
		return v.Counts[i].Division < v.Counts[j].Division
	})

	var err error
	if v.Mean, err = stats.Mean(data); err != nil {
		return nil, err
	}
	if v.Median, err = stats.Median(data); err != nil {
		return nil, err
	}
	if v.Max, err = stats.Max(data); err != nil {
		return nil, err
	}
	return v, nil
}
