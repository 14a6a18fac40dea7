// Package testkit builds JHA workbook fixtures for tests.
package testkit

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// Sheet is a fixture sheet: a name and its rows, starting at A1.
type Sheet struct {
	Name string
	Rows [][]interface{}
}

// JHASheets returns the six sheets of a small JHA by Division workbook.
// Key JHAs lists tasks for the North and South divisions.
func JHASheets() []Sheet {
	return []Sheet{
		{Name: "Overview", Rows: [][]interface{}{
			{"Job Hazard Analysis by Division"},
			{"Review every task before work starts."},
			{nil},
			{"Stop work when conditions change."},
		}},
		{Name: "Key JHAs", Rows: [][]interface{}{
			{"Division", "Task", nil},
			{nil, "Sequence", "Notes"},
			{"North", "Lift pallets", "Use dolly"},
			{"South", "Dig trench", nil},
			{"North", "Weld frame", "Hot work permit"},
		}},
		{Name: "Critical JHAs by Division", Rows: [][]interface{}{
			{"Division", "Critical Task"},
			{nil, nil},
			{"North", "Confined space entry"},
			{"South", "Excavation over 5ft"},
		}},
		{Name: "Critical JHAs Summary", Rows: [][]interface{}{
			{"Summary", nil},
			{nil, "Count"},
			{"Critical tasks", 2},
		}},
		{Name: "Primary Hazards", Rows: [][]interface{}{
			{"Division", "Primary Hazard"},
			{nil, nil},
			{"North", "Back strain"},
			{"South", "Cave-in"},
			{"North", "Burns"},
		}},
		{Name: "Primary Controls", Rows: [][]interface{}{
			{"Division", "Primary Control"},
			{nil, nil},
			{"North", "Lift assist"},
			{"South", "Shoring"},
		}},
	}
}

// WriteWorkbook saves sheets as an xlsx file in dir and returns its path.
func WriteWorkbook(t testing.TB, dir, name string, sheets []Sheet) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.Name); err != nil {
				t.Fatalf("rename sheet: %v", err)
			}
		} else if _, err := f.NewSheet(s.Name); err != nil {
			t.Fatalf("new sheet %q: %v", s.Name, err)
		}
		for r, row := range s.Rows {
			cell, _ := excelize.CoordinatesToCellName(1, r+1)
			values := row
			if err := f.SetSheetRow(s.Name, cell, &values); err != nil {
				t.Fatalf("write %s!%s: %v", s.Name, cell, err)
			}
		}
	}

	path := filepath.Join(dir, name)
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save %s: %v", path, err)
	}
	return path
}

// WriteJHAWorkbook saves the default fixture as "JHA by Division.xlsx" in a
// temporary directory and returns its path.
func WriteJHAWorkbook(t testing.TB) string {
	t.Helper()
	return WriteWorkbook(t, t.TempDir(), "JHA by Division.xlsx", JHASheets())
}
