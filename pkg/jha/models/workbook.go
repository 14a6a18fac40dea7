// Package models defines the workbook, table and record types of a JHA workbook.
package models

// Workbook holds every sheet of a JHA workbook in both raw and derived form.
type Workbook struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// SheetNames lists sheet names in workbook order.
	SheetNames []string `json:"sheet_names"`
	// Raw maps sheet name to its untyped grid.
	Raw map[string]Grid `json:"-"`
	// Tables maps sheet name to its derived table.
	Tables map[string]*Table `json:"-"`
	// Layout maps sheet roles to indexes.
	Layout Layout `json:"-"`
	// LandingShapes holds text shapes drawn on the landing sheet.
	LandingShapes []Shape `json:"landing_shapes,omitempty"`
}

// Table returns the derived table playing role.
func (wb *Workbook) Table(role Role) *Table {
	return wb.TableAt(wb.Layout.Index(role))
}

// Grid returns the raw grid playing role.
func (wb *Workbook) Grid(role Role) Grid {
	return wb.GridAt(wb.Layout.Index(role))
}

// HasRole reports whether the workbook has a sheet for role.
func (wb *Workbook) HasRole(role Role) bool {
	_, ok := wb.SheetAt(wb.Layout.Index(role))
	return ok
}

// SheetAt returns the name of the sheet at index i.
func (wb *Workbook) SheetAt(i int) (string, bool) {
	if wb == nil || i < 0 || i >= len(wb.SheetNames) {
		return "", false
	}
	return wb.SheetNames[i], true
}

// TableAt returns the derived table of the sheet at index i.
// Missing sheets yield an empty table.
func (wb *Workbook) TableAt(i int) *Table {
	name, ok := wb.SheetAt(i)
	if !ok {
		return &Table{}
	}
	if t := wb.Tables[name]; t != nil {
		return t
	}
	return &Table{}
}

// GridAt returns the raw grid of the sheet at index i, nil when missing.
func (wb *Workbook) GridAt(i int) Grid {
	name, ok := wb.SheetAt(i)
	if !ok {
		return nil
	}
	return wb.Raw[name]
}
