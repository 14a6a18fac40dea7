package views

import "github.com/ukaji3/jha-go/pkg/jha/models"

// SheetInfo describes one downloadable sheet.
type SheetInfo struct {
	Index   int    `json:"index"`
	Name    string `json:"name"`
	Rows    int    `json:"rows"`
	Columns int    `json:"columns"`
}

// Sheets lists every sheet with the size of its derived table.
func Sheets(wb *models.Workbook) []SheetInfo {
	out := make([]SheetInfo, 0, len(wb.SheetNames))
	for i, name := range wb.SheetNames {
		t := wb.TableAt(i)
		out = append(out, SheetInfo{Index: i, Name: name, Rows: t.Len(), Columns: t.Width()})
	}
	return out
}
