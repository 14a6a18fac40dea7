package output

import (
	"strings"

	"github.com/ukaji3/jha-go/pkg/jha/models"
)

// Suggested file names.
const (
	CombinedCSVName  = "jha_combined.csv"
	CombinedXLSXName = "jha_combined.xlsx"
	WorkbookName     = "jha_workbook_export.xlsx"
	// CombinedSheet names the single sheet of the combined workbook.
	CombinedSheet = "Filtered"
)

var filenameReplacer = strings.NewReplacer(
	"/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_",
)

// safeFilename replaces characters that cannot appear in a file name.
func safeFilename(name string) string {
	name = filenameReplacer.Replace(strings.TrimSpace(name))
	if name == "" {
		return "jha"
	}
	return name
}

// Combined serializes the edit record in format.
func Combined(rec models.EditRecord, format Format) (*Result, error) {
	switch format {
	case FormatCSV:
		data, err := CSV(rec.Table())
		if err != nil {
			return nil, err
		}
		return &Result{Data: data, Filename: CombinedCSVName, MimeType: MimeCSV}, nil
	case FormatXLSX:
		data, err := XLSX(rec.Table(), CombinedSheet)
		if err != nil {
			return nil, err
		}
		return &Result{Data: data, Filename: CombinedXLSXName, MimeType: MimeXLSX}, nil
	case FormatPDF:
		data, err := PDF("JHA — "+rec.Division, rec.Lines())
		if err != nil {
			return nil, err
		}
		return &Result{
			Data:     data,
			Filename: "jha_" + safeFilename(rec.Division) + ".pdf",
			MimeType: MimePDF,
		}, nil
	}
	_, err := ParseFormat(string(format))
	return nil, err
}

// SheetCSV serializes one derived table as CSV named after its sheet.
func SheetCSV(sheetName string, t *models.Table) (*Result, error) {
	data, err := CSV(t)
	if err != nil {
		return nil, err
	}
	return &Result{Data: data, Filename: safeFilename(sheetName) + ".csv", MimeType: MimeCSV}, nil
}

// WorkbookXLSX serializes every derived table of wb into one workbook.
func WorkbookXLSX(wb *models.Workbook) (*Result, error) {
	data, err := Workbook(wb)
	if err != nil {
		return nil, err
	}
	return &Result{Data: data, Filename: WorkbookName, MimeType: MimeXLSX}, nil
}
