// Package parser reads workbook sheets into grids and tables.
package parser

import (
	"math"
	"strconv"

	"github.com/ukaji3/jha-go/pkg/jha/models"
	"github.com/xuri/excelize/v2"
)

// NumericFunc reports whether the cell at row, col (both 0-based) is stored
// as a number.
type NumericFunc func(row, col int) bool

// ReadGrid reads a sheet as an untyped rectangular grid. Only cells stored
// as numbers become numbers; text cells keep their text.
func ReadGrid(f *excelize.File, sheetName string) (models.Grid, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	return NormalizeRows(rows, numericCells(f, sheetName)), nil
}

// numericCells checks the stored cell type. Number cells usually carry no
// type attribute, so an unset type counts as numeric.
func numericCells(f *excelize.File, sheetName string) NumericFunc {
	return func(row, col int) bool {
		ref, err := excelize.CoordinatesToCellName(col+1, row+1)
		if err != nil {
			return false
		}
		cellType, err := f.GetCellType(sheetName, ref)
		if err != nil {
			return false
		}
		return cellType == excelize.CellTypeNumber || cellType == excelize.CellTypeUnset
	}
}

// NormalizeRows converts ragged string rows into a rectangular grid.
// Trailing empty rows and columns are dropped and empty cells become nil.
// Cells numeric accepts are parsed into numbers; a nil numeric keeps every
// cell as text.
func NormalizeRows(rows [][]string, numeric NumericFunc) models.Grid {
	height, width := 0, 0
	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if rowIdx+1 > height {
				height = rowIdx + 1
			}
			if colIdx+1 > width {
				width = colIdx + 1
			}
		}
	}

	grid := make(models.Grid, height)
	for rowIdx := 0; rowIdx < height; rowIdx++ {
		out := make([]interface{}, width)
		for colIdx, cell := range rows[rowIdx] {
			if colIdx >= width || cell == "" {
				continue
			}
			if numeric != nil && numeric(rowIdx, colIdx) {
				out[colIdx] = parseValue(cell)
			} else {
				out[colIdx] = cell
			}
		}
		grid[rowIdx] = out
	}
	return grid
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float; "nan" and "inf" stay text
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	return s
}
