package parser

import (
	"path/filepath"
	"testing"

	"github.com/ukaji3/jha-go/pkg/jha/models"
)

func TestReadLegacyWorkbook(t *testing.T) {
	sheets, err := ReadLegacyWorkbook(filepath.Join("testdata", "legacy_table.xls"), "")
	if err != nil {
		t.Fatalf("ReadLegacyWorkbook failed: %v", err)
	}
	if len(sheets) != 1 {
		t.Fatalf("Expected 1 sheet, got %d", len(sheets))
	}
	if sheets[0].Name != "Table" {
		t.Errorf("Expected sheet 'Table', got %q", sheets[0].Name)
	}

	grid := sheets[0].Grid
	if len(grid) != 12 {
		t.Fatalf("Expected 12 rows, got %d", len(grid))
	}
	if grid.Width() != 3 {
		t.Fatalf("Expected 3 columns, got %d", grid.Width())
	}

	header := []interface{}{"Code", "Name", "Description"}
	for i, want := range header {
		if grid[0][i] != want {
			t.Errorf("grid[0][%d] = %v, expected %v", i, grid[0][i], want)
		}
	}
	if grid[11][2] != "description11" {
		t.Errorf("Expected 'description11', got %v", grid[11][2])
	}

	table := DeriveTable(grid, false)
	if table.Len() != 10 {
		t.Errorf("Expected 10 data rows, got %d", table.Len())
	}
}

func TestReadLegacyWorkbookMissingFile(t *testing.T) {
	if _, err := ReadLegacyWorkbook(filepath.Join(t.TempDir(), "none.xls"), "utf-8"); err == nil {
		t.Error("Expected error for missing file")
	}
}

type fakeRow struct {
	cells map[int]string
	last  int
}

func (r fakeRow) LastCol() int { return r.last }

func (r fakeRow) Col(i int) string {
	if v, ok := r.cells[i]; ok {
		return v
	}
	return "past the end"
}

func TestLegacyRows(t *testing.T) {
	source := map[int]fakeRow{
		0: {cells: map[int]string{0: "Division", 1: "Task"}, last: 2},
		2: {cells: map[int]string{0: "North", 1: "Lift"}, last: 2},
	}
	rowAt := func(r int) legacyRow {
		if row, ok := source[r]; ok {
			return row
		}
		return nil
	}

	rows := legacyRows(2, rowAt)
	grid := NormalizeRows(rows, nil)

	want := models.Grid{
		{"Division", "Task"},
		{nil, nil},
		{"North", "Lift"},
	}
	if len(grid) != len(want) {
		t.Fatalf("Expected %d rows, got %d", len(want), len(grid))
	}
	for i := range want {
		if len(grid[i]) != len(want[i]) {
			t.Fatalf("Row %d: expected %d cells, got %d", i, len(want[i]), len(grid[i]))
		}
		for j := range want[i] {
			if grid[i][j] != want[i][j] {
				t.Errorf("grid[%d][%d] = %v, expected %v", i, j, grid[i][j], want[i][j])
			}
		}
	}
}
