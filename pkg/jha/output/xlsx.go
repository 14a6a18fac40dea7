package output

import (
	"fmt"
	"strings"

	"github.com/ukaji3/jha-go/pkg/jha/models"
	"github.com/xuri/excelize/v2"
)

// MaxSheetNameLength is the longest sheet name a workbook accepts.
const MaxSheetNameLength = 31

var sheetNameReplacer = strings.NewReplacer(
	":", "_", "\\", "_", "/", "_", "?", "_", "*", "_", "[", "_", "]", "_",
)

// SheetName turns name into a valid sheet name: forbidden characters are
// replaced and the result is cut to MaxSheetNameLength characters.
func SheetName(name string) string {
	name = strings.Trim(sheetNameReplacer.Replace(name), "'")
	if r := []rune(name); len(r) > MaxSheetNameLength {
		name = string(r[:MaxSheetNameLength])
	}
	if strings.TrimSpace(name) == "" {
		return "Sheet"
	}
	return name
}

// XLSX writes t as a single-sheet workbook. The first row holds the column
// names; no index column is written.
func XLSX(t *models.Table, sheetName string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	name := SheetName(sheetName)
	if err := f.SetSheetName("Sheet1", name); err != nil {
		return nil, exportError(FormatXLSX, err)
	}
	if err := writeTable(f, name, t); err != nil {
		return nil, exportError(FormatXLSX, err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, exportError(FormatXLSX, err)
	}
	return buf.Bytes(), nil
}

// Workbook writes every derived table of wb to one workbook, one sheet per
// source sheet, in workbook order.
func Workbook(wb *models.Workbook) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	used := make(map[string]bool)
	for i, src := range wb.SheetNames {
		name := uniqueSheetName(SheetName(src), used)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return nil, exportError(FormatXLSX, err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return nil, exportError(FormatXLSX, err)
		}
		if err := writeTable(f, name, wb.Tables[src]); err != nil {
			return nil, exportError(FormatXLSX, fmt.Errorf("sheet %q: %w", src, err))
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, exportError(FormatXLSX, err)
	}
	return buf.Bytes(), nil
}

// uniqueSheetName suffixes name until no used sheet shares it, ignoring case.
func uniqueSheetName(name string, used map[string]bool) string {
	candidate := name
	for n := 2; used[strings.ToLower(candidate)]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		base := []rune(name)
		if keep := MaxSheetNameLength - len(suffix); len(base) > keep {
			base = base[:keep]
		}
		candidate = string(base) + suffix
	}
	used[strings.ToLower(candidate)] = true
	return candidate
}

func writeTable(f *excelize.File, sheet string, t *models.Table) error {
	if t == nil {
		return nil
	}
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return err
	}

	header := make([]interface{}, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c
	}
	if err := sw.SetRow("A1", header); err != nil {
		return err
	}

	for r, row := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, row); err != nil {
			return err
		}
	}
	return sw.Flush()
}
