package parser

import (
	"fmt"
	"os"

	"github.com/extrame/xls"
	"github.com/ukaji3/jha-go/pkg/jha/models"
)

// LegacySheet is one sheet read from a BIFF (.xls) workbook.
type LegacySheet struct {
	Name string
	Grid models.Grid
}

// ReadLegacyWorkbook reads every sheet of an .xls file.
// Cell types are not exposed by the reader, so every cell stays text.
func ReadLegacyWorkbook(path, charset string) ([]LegacySheet, error) {
	if charset == "" {
		charset = "utf-8"
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	wb, err := xls.OpenReader(file, charset)
	if err != nil {
		return nil, err
	}

	n := wb.NumSheets()
	if n == 0 {
		return nil, fmt.Errorf("no worksheet found")
	}

	sheets := make([]LegacySheet, 0, n)
	for i := 0; i < n; i++ {
		sheet := wb.GetSheet(i)
		if sheet == nil {
			continue
		}
		sheets = append(sheets, LegacySheet{
			Name: sheet.Name,
			Grid: NormalizeRows(legacyRows(int(sheet.MaxRow), sheetRow(sheet)), nil),
		})
	}
	return sheets, nil
}

// legacyRow is the part of an xls row read here.
type legacyRow interface {
	// LastCol is one past the last cell of the row.
	LastCol() int
	Col(i int) string
}

// sheetRow returns the row accessor of sheet, yielding nil for missing rows.
func sheetRow(sheet *xls.WorkSheet) func(r int) legacyRow {
	return func(r int) (row legacyRow) {
		// WorkSheet.Row dereferences rows absent from the sheet
		defer func() {
			if recover() != nil {
				row = nil
			}
		}()
		return sheet.Row(r)
	}
}

// legacyRows reads rows 0 through maxRow as text.
func legacyRows(maxRow int, rowAt func(r int) legacyRow) [][]string {
	rows := make([][]string, 0, maxRow+1)
	for r := 0; r <= maxRow; r++ {
		row := rowAt(r)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		cells := make([]string, 0, row.LastCol())
		for c := 0; c < row.LastCol(); c++ {
			cells = append(cells, row.Col(c))
		}
		rows = append(rows, cells)
	}
	return rows
}
