// Package session holds the per-session edit state of the Search / Edit view.
package session

import (
	"fmt"

	"github.com/ukaji3/jha-go/pkg/jha/models"
)

// Field names one editable text block.
type Field string

const (
	FieldTask     Field = "task"
	FieldHazards  Field = "hazards"
	FieldControls Field = "controls"
)

// Fields lists the editable fields in display order.
var Fields = []Field{FieldTask, FieldHazards, FieldControls}

// ParseField validates a field name.
func ParseField(s string) (Field, error) {
	for _, f := range Fields {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown field %q", s)
}

type entry struct {
	text string
	set  bool
	// edited marks text typed by the user rather than seeded
	edited bool
}

// Editor holds the three edit fields for the selected division.
// Fields are seeded once per division and then belong to the user until the
// division changes.
type Editor struct {
	division string
	fields   map[Field]*entry
}

// NewEditor creates an editor with no division selected.
func NewEditor() *Editor {
	e := &Editor{}
	e.reset()
	return e
}

func (e *Editor) reset() {
	e.fields = make(map[Field]*entry, len(Fields))
	for _, f := range Fields {
		e.fields[f] = &entry{}
	}
}

// Select makes division current. Changing division clears every field;
// selecting the current division again keeps them.
func (e *Editor) Select(division string) {
	if division == e.division {
		return
	}
	e.division = division
	e.reset()
}

// Division returns the selected division.
func (e *Editor) Division() string {
	return e.division
}

// Seed initializes field with text unless it was already set for the
// current division. It reports whether text was applied.
func (e *Editor) Seed(field Field, text string) bool {
	en, ok := e.fields[field]
	if !ok || en.set {
		return false
	}
	en.text = text
	en.set = true
	return true
}

// Set stores a user edit.
func (e *Editor) Set(field Field, text string) error {
	en, ok := e.fields[field]
	if !ok {
		return fmt.Errorf("unknown field %q", field)
	}
	en.text = text
	en.set = true
	en.edited = true
	return nil
}

// Text returns the current text of field.
func (e *Editor) Text(field Field) string {
	if en, ok := e.fields[field]; ok {
		return en.text
	}
	return ""
}

// Edited reports whether the user changed field for the current division.
func (e *Editor) Edited(field Field) bool {
	en, ok := e.fields[field]
	return ok && en.edited
}

// Record builds the combined export row from the current state.
func (e *Editor) Record() models.EditRecord {
	return models.EditRecord{
		Division: e.division,
		Task:     e.Text(FieldTask),
		Hazards:  e.Text(FieldHazards),
		Controls: e.Text(FieldControls),
	}
}
