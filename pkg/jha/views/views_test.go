package views

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ukaji3/jha-go/internal/testkit"
	"github.com/ukaji3/jha-go/pkg/jha"
	"github.com/ukaji3/jha-go/pkg/jha/models"
	"github.com/ukaji3/jha-go/pkg/jha/parser"
)

// loadFixture loads the six-sheet fixture workbook from disk.
func loadFixture(t *testing.T) *models.Workbook {
	t.Helper()
	wb, err := jha.Load(testkit.WriteJHAWorkbook(t), jha.DefaultOptions())
	require.NoError(t, err)
	return wb
}

// memoryBook builds a workbook without touching disk.
func memoryBook(sheets ...testkit.Sheet) *models.Workbook {
	wb := &models.Workbook{
		Raw:    make(map[string]models.Grid),
		Tables: make(map[string]*models.Table),
		Layout: models.DefaultLayout(),
	}
	for i, s := range sheets {
		g := models.Grid(s.Rows)
		wb.SheetNames = append(wb.SheetNames, s.Name)
		wb.Raw[s.Name] = g
		wb.Tables[s.Name] = parser.DeriveTable(g, i == 0)
	}
	return wb
}
