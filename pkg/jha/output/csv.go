package output

import (
	"bytes"
	"encoding/csv"

	"github.com/ukaji3/jha-go/pkg/jha/models"
)

// CSV writes t as comma-separated UTF-8 text: a header row of column names,
// then one line per row. No index column is written.
func CSV(t *models.Table) ([]byte, error) {
	if t == nil {
		t = &models.Table{}
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(t.Columns); err != nil {
		return nil, exportError(FormatCSV, err)
	}

	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i := range record {
			record[i] = ""
			if i < len(row) {
				record[i] = models.CellString(row[i])
			}
		}
		// A lone empty field would be an empty line, which readers skip
		if len(record) == 1 && record[0] == "" {
			w.Flush()
			buf.WriteString("\"\"\n")
			continue
		}
		if err := w.Write(record); err != nil {
			return nil, exportError(FormatCSV, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, exportError(FormatCSV, err)
	}
	return buf.Bytes(), nil
}
