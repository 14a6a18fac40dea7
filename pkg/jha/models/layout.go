package models

// Role is the logical meaning of a sheet in a JHA workbook.
type Role string

const (
	// RoleLanding is the unstructured overview sheet.
	RoleLanding Role = "landing"
	// RoleKeyJHAs holds tasks by division.
	RoleKeyJHAs Role = "key_jhas"
	// RoleCriticalByDivision holds critical JHAs by division.
	RoleCriticalByDivision Role = "critical_by_division"
	// RoleCriticalSummary holds the critical JHA summary.
	RoleCriticalSummary Role = "critical_summary"
	// RoleHazards holds primary hazards.
	RoleHazards Role = "hazards"
	// RoleControls holds primary controls.
	RoleControls Role = "controls"
)

// Layout maps each role to a sheet index.
type Layout map[Role]int

// DefaultLayout returns the positional contract of the JHA by Division workbook.
func DefaultLayout() Layout {
	return Layout{
		RoleLanding:            0,
		RoleKeyJHAs:            1,
		RoleCriticalByDivision: 2,
		RoleCriticalSummary:    3,
		RoleHazards:            4,
		RoleControls:           5,
	}
}

// Index returns the sheet index of role, falling back to the default layout.
func (l Layout) Index(role Role) int {
	if i, ok := l[role]; ok {
		return i
	}
	if i, ok := DefaultLayout()[role]; ok {
		return i
	}
	return -1
}
