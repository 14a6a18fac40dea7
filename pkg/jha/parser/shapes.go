package parser

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/ukaji3/jha-go/pkg/jha/models"
)

// ExtractShapeText returns the text shapes drawn on a sheet of an xlsx file,
// ordered top to bottom, then left to right.
func ExtractShapeText(xlsxPath, sheetName string) ([]models.Shape, error) {
	r, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	part, err := sheetDrawingPart(r, sheetName)
	if err != nil || part == "" {
		return nil, err
	}

	data, err := readPart(r, part)
	if err != nil || data == nil {
		return nil, err
	}
	return parseDrawingText(data), nil
}

// readPart returns the bytes of a package part, nil if the part is absent.
func readPart(fsys fs.FS, name string) ([]byte, error) {
	data, err := fs.ReadFile(fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return data, err
}

// resolvePartPath resolves a relationship target against the folder of the
// part that owns the relationship.
func resolvePartPath(target, baseDir string) string {
	if strings.HasPrefix(target, "/") {
		return path.Clean(strings.TrimPrefix(target, "/"))
	}
	return path.Join(baseDir, target)
}

type workbookPart struct {
	Sheets []struct {
		Name  string `xml:"name,attr"`
		RelID string `xml:"id,attr"`
	} `xml:"sheets>sheet"`
}

type relationshipsPart struct {
	Relationships []struct {
		ID     string `xml:"Id,attr"`
		Type   string `xml:"Type,attr"`
		Target string `xml:"Target,attr"`
	} `xml:"Relationship"`
}

func readRelationships(fsys fs.FS, name string) (*relationshipsPart, error) {
	data, err := readPart(fsys, name)
	if err != nil || data == nil {
		return nil, err
	}
	var rels relationshipsPart
	if err := xml.Unmarshal(data, &rels); err != nil {
		return nil, err
	}
	return &rels, nil
}

// sheetDrawingPart returns the drawing part of a sheet, "" if it has none.
func sheetDrawingPart(fsys fs.FS, sheetName string) (string, error) {
	data, err := readPart(fsys, "xl/workbook.xml")
	if err != nil || data == nil {
		return "", err
	}
	var wb workbookPart
	if err := xml.Unmarshal(data, &wb); err != nil {
		return "", err
	}

	relID := ""
	for _, sheet := range wb.Sheets {
		if sheet.Name == sheetName {
			relID = sheet.RelID
			break
		}
	}
	if relID == "" {
		return "", nil
	}

	wbRels, err := readRelationships(fsys, "xl/_rels/workbook.xml.rels")
	if err != nil || wbRels == nil {
		return "", err
	}
	sheetPart := ""
	for _, rel := range wbRels.Relationships {
		if rel.ID == relID {
			sheetPart = resolvePartPath(rel.Target, "xl")
			break
		}
	}
	if sheetPart == "" {
		return "", nil
	}

	dir, file := path.Split(sheetPart)
	sheetRels, err := readRelationships(fsys, path.Join(dir, "_rels", file+".rels"))
	if err != nil || sheetRels == nil {
		return "", err
	}
	for _, rel := range sheetRels.Relationships {
		if strings.HasSuffix(strings.ToLower(rel.Type), "/drawing") {
			return resolvePartPath(rel.Target, path.Dir(sheetPart)), nil
		}
	}
	return "", nil
}

type drawingPart struct {
	Anchors []drawingAnchor `xml:",any"`
}

type drawingAnchor struct {
	XMLName xml.Name
	From    *struct {
		Col int `xml:"col"`
		Row int `xml:"row"`
	} `xml:"from"`
	shapeGroup
}

// shapeGroup holds the shapes of an anchor or of a grouped shape.
type shapeGroup struct {
	Shapes []struct {
		Paragraphs []textParagraph `xml:"txBody>p"`
	} `xml:"sp"`
	Groups []shapeGroup `xml:"grpSp"`
}

type textParagraph struct {
	Runs []struct {
		Text string `xml:"t"`
	} `xml:",any"`
}

func (g shapeGroup) texts() []string {
	var out []string
	for _, sp := range g.Shapes {
		lines := make([]string, 0, len(sp.Paragraphs))
		for _, p := range sp.Paragraphs {
			var line strings.Builder
			for _, run := range p.Runs {
				line.WriteString(run.Text)
			}
			lines = append(lines, strings.TrimSpace(line.String()))
		}
		if txt := strings.TrimSpace(strings.Join(lines, "\n")); txt != "" {
			out = append(out, txt)
		}
	}
	for _, sub := range g.Groups {
		out = append(out, sub.texts()...)
	}
	return out
}

// parseDrawingText collects the text of every shape in a drawing part.
// A shape takes the 1-based position of its anchor's top-left cell.
func parseDrawingText(data []byte) []models.Shape {
	var drawing drawingPart
	if err := xml.Unmarshal(data, &drawing); err != nil {
		return nil
	}

	var shapes []models.Shape
	for _, anchor := range drawing.Anchors {
		switch anchor.XMLName.Local {
		case "twoCellAnchor", "oneCellAnchor", "absoluteAnchor":
		default:
			continue
		}
		row, col := 0, 0
		if anchor.From != nil {
			row, col = anchor.From.Row+1, anchor.From.Col+1
		}
		for _, txt := range anchor.texts() {
			shapes = append(shapes, models.Shape{Text: txt, Row: row, Col: col})
		}
	}

	sort.SliceStable(shapes, func(i, j int) bool {
		if shapes[i].Row != shapes[j].Row {
			return shapes[i].Row < shapes[j].Row
		}
		return shapes[i].Col < shapes[j].Col
	})
	return shapes
}
