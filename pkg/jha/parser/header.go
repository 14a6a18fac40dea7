package parser

import "github.com/ukaji3/jha-go/pkg/jha/models"

// HeaderSeparator joins the two header levels of a column.
const HeaderSeparator = " — "

// UnnamedColumn names a column whose header cells are both empty.
const UnnamedColumn = "Unnamed"

// MergeHeader builds a column name from its two header cells.
func MergeHeader(top, sub interface{}) string {
	a := models.HeaderString(top)
	b := models.HeaderString(sub)
	switch {
	case a != "" && b != "":
		return a + HeaderSeparator + b
	case a != "":
		return a
	case b != "":
		return b
	default:
		return UnnamedColumn
	}
}

// DeriveTable builds the logical table of a sheet.
// Landing sheets and sheets with fewer than two rows keep the raw grid;
// otherwise rows 0 and 1 form the column names and the body starts at row 2.
func DeriveTable(g models.Grid, landing bool) *models.Table {
	if landing || len(g) < 2 {
		return models.PositionalTable(g)
	}

	cols := make([]string, g.Width())
	for i := range cols {
		cols[i] = MergeHeader(g[0][i], g[1][i])
	}

	body := make([][]interface{}, 0, len(g)-2)
	body = append(body, g[2:]...)
	return &models.Table{Columns: cols, Rows: body}
}
