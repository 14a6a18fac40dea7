package views

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/ukaji3/jha-go/pkg/jha"
	"github.com/ukaji3/jha-go/pkg/jha/lookup"
	"github.com/ukaji3/jha-go/pkg/jha/models"
	"github.com/ukaji3/jha-go/pkg/jha/session"
)

// ErrUnknownDivision indicates a division missing from the division list.
var ErrUnknownDivision = errors.New("unknown division")

// SearchColumns names the columns the search resolved, "" when missing.
type SearchColumns struct {
	Division string `json:"division"`
	Task     string `json:"task"`
	Hazard   string `json:"hazard"`
	Control  string `json:"control"`
}

// SearchView is the Search / Edit page for one division.
type SearchView struct {
	Divisions []string      `json:"divisions"`
	Division  string        `json:"division"`
	Selected  bool          `json:"selected"`
	Columns   SearchColumns `json:"columns"`
	Tasks     []string      `json:"tasks,omitempty"`
	Task      string        `json:"task"`
	Hazards   string        `json:"hazards"`
	Controls  string        `json:"controls"`
}

// Record returns the combined export row of the view.
func (v *SearchView) Record() models.EditRecord {
	return models.EditRecord{
		Division: v.Division,
		Task:     v.Task,
		Hazards:  v.Hazards,
		Controls: v.Controls,
	}
}

type searchContext struct {
	key, hazards, controls *models.Table

	divCol, taskCol, hazardCol, controlCol *models.ColumnRef
}

func newSearchContext(wb *models.Workbook) (*searchContext, error) {
	if len(wb.SheetNames) < 2 {
		return nil, jha.ErrMissingSheets
	}
	sc := &searchContext{
		key:      wb.Table(models.RoleKeyJHAs),
		hazards:  wb.Table(models.RoleHazards),
		controls: wb.Table(models.RoleControls),
	}
	sc.divCol = lookup.FindColumn(sc.key, lookup.DivisionPatterns...)
	sc.taskCol = lookup.FindColumn(sc.key, lookup.TaskPatterns...)
	sc.hazardCol = lookup.FindColumn(sc.hazards, lookup.HazardPatterns...)
	sc.controlCol = lookup.FindColumn(sc.controls, lookup.ControlPatterns...)
	return sc, nil
}

func (sc *searchContext) columns() SearchColumns {
	name := func(c *models.ColumnRef) string {
		if c == nil {
			return ""
		}
		return c.Name
	}
	return SearchColumns{
		Division: name(sc.divCol),
		Task:     name(sc.taskCol),
		Hazard:   name(sc.hazardCol),
		Control:  name(sc.controlCol),
	}
}

func (sc *searchContext) divisions() []string {
	return lookup.Divisions(sc.key, sc.divCol, sc.hazards, sc.hazardCol)
}

// Divisions returns the selectable divisions of wb, NoSelection first.
func Divisions(wb *models.Workbook) ([]string, error) {
	sc, err := newSearchContext(wb)
	if err != nil {
		return nil, err
	}
	return sc.divisions(), nil
}

// Search builds the Search / Edit page for division and seeds ed with the
// division's task, hazard and control text. Seeding never overwrites text
// already set for the same division, so edits survive repeated searches.
// The NoSelection placeholder returns the division list only and leaves ed
// untouched.
func Search(wb *models.Workbook, division string, ed *session.Editor) (*SearchView, error) {
	sc, err := newSearchContext(wb)
	if err != nil {
		return nil, err
	}

	v := &SearchView{
		Divisions: sc.divisions(),
		Columns:   sc.columns(),
	}
	if lookup.IsNoSelection(division) {
		v.Division = lookup.NoSelection
		return v, nil
	}
	if !contains(v.Divisions[1:], division) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDivision, division)
	}

	filtered := lookup.FilterRows(sc.key, sc.divCol, division)
	v.Tasks = lookup.Tasks(filtered, sc.taskCol, sc.divCol)

	hasDivision := sc.divCol != nil
	ed.Select(division)
	ed.Seed(session.FieldTask, strings.Join(v.Tasks, lookup.BlockSeparator))
	ed.Seed(session.FieldHazards, lookup.RelatedText(sc.hazards, sc.hazardCol, hasDivision, division))
	ed.Seed(session.FieldControls, lookup.RelatedText(sc.controls, sc.controlCol, hasDivision, division))

	log.Debug().
		Str("division", division).
		Int("tasks", len(v.Tasks)).
		Msg("Search")

	v.Division = division
	v.Selected = true
	v.Task = ed.Text(session.FieldTask)
	v.Hazards = ed.Text(session.FieldHazards)
	v.Controls = ed.Text(session.FieldControls)
	return v, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
