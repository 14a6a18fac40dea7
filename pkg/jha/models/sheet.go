package models

import "strconv"

// Grid is a raw sheet: rectangular rows of untyped cells.
// A cell is nil (empty), int64, float64 or string.
type Grid [][]interface{}

// Width returns the number of columns in the grid.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Table is a logical table derived from a sheet.
type Table struct {
	// Columns holds the column names in sheet order. Names may repeat.
	Columns []string
	// Rows holds the data body; every row has len(Columns) cells.
	Rows [][]interface{}
}

// ColumnRef identifies a resolved column.
type ColumnRef struct {
	// Name is the column name.
	Name string
	// Index is the position used for cell access.
	Index int
}

// PositionalTable wraps a grid as a table without interpreting any header,
// naming columns by position ("0", "1", ...).
func PositionalTable(g Grid) *Table {
	cols := make([]string, g.Width())
	for i := range cols {
		cols[i] = strconv.Itoa(i)
	}
	return &Table{Columns: cols, Rows: g}
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Width returns the number of columns.
func (t *Table) Width() int {
	if t == nil {
		return 0
	}
	return len(t.Columns)
}

// Lookup returns the index of the column called name.
// When the name is repeated the last column wins.
func (t *Table) Lookup(name string) (int, bool) {
	if t == nil {
		return -1, false
	}
	for i := len(t.Columns) - 1; i >= 0; i-- {
		if t.Columns[i] == name {
			return i, true
		}
	}
	return -1, false
}

// Cell returns the value at row r, column c, or nil when out of range.
func (t *Table) Cell(r, c int) interface{} {
	if r < 0 || r >= len(t.Rows) || c < 0 || c >= len(t.Rows[r]) {
		return nil
	}
	return t.Rows[r][c]
}

// Values returns every value of column c as text, empty cells as "".
func (t *Table) Values(c int) []string {
	out := make([]string, 0, t.Len())
	for r := range t.Rows {
		out = append(out, CellString(t.Cell(r, c)))
	}
	return out
}

// Where returns a table with the same columns holding the rows keep accepts.
func (t *Table) Where(keep func(row []interface{}) bool) *Table {
	out := &Table{Columns: t.Columns}
	for _, row := range t.Rows {
		if keep(row) {
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}
