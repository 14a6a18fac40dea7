package models

import (
	"strconv"
	"strings"
)

// CellString renders a cell value as text.
// Empty cells (nil) render as "". Integers and floats use their shortest
// decimal form.
func CellString(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case bool:
		if x {
			return "True"
		}
		return "False"
	default:
		return ""
	}
}

// IsEmpty reports whether a cell holds no value.
func IsEmpty(v interface{}) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}

// HeaderString renders a header cell: empty cells become "" and text is trimmed.
func HeaderString(v interface{}) string {
	return strings.TrimSpace(CellString(v))
}
