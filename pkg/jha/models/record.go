package models

// EditRecord is the combined row built from the current session edits.
// It exists only for the duration of a download.
type EditRecord struct {
	Division string `json:"division"`
	Task     string `json:"task"`
	Hazards  string `json:"primary_hazards"`
	Controls string `json:"primary_controls"`
}

// RecordColumns are the export column names of an EditRecord.
var RecordColumns = []string{"Division", "Task", "Primary Hazards", "Primary Controls"}

// Table returns the record as a one-row table.
func (r EditRecord) Table() *Table {
	return &Table{
		Columns: append([]string(nil), RecordColumns...),
		Rows:    [][]interface{}{{r.Division, r.Task, r.Hazards, r.Controls}},
	}
}

// Lines returns the record as the text lines of a PDF body.
func (r EditRecord) Lines() []string {
	return []string{
		"Division: " + r.Division,
		"",
		"Task:",
		r.Task,
		"",
		"Primary Hazards:",
		r.Hazards,
		"",
		"Primary Controls:",
		r.Controls,
	}
}
