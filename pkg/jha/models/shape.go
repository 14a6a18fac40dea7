package models

// Shape is a text-bearing drawing shape anchored on a sheet.
type Shape struct {
	// Text is the visible text content of the shape, one line per paragraph.
	Text string `json:"text"`
	// Row is the 1-based row of the anchor cell (0 for absolute anchors).
	Row int `json:"row"`
	// Col is the 1-based column of the anchor cell (0 for absolute anchors).
	Col int `json:"col"`
}
