package jha

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/ukaji3/jha-go/pkg/jha/models"
	"github.com/ukaji3/jha-go/pkg/jha/parser"
	"github.com/xuri/excelize/v2"
)

// Load reads every sheet of a workbook and derives its tables.
// Any failure to open or parse the file is reported as ErrFileNotFound;
// nothing is returned from a partial read.
func Load(path string, opts Options) (*models.Workbook, error) {
	var (
		names []string
		grids []models.Grid
		err   error
	)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xls":
		names, grids, err = readLegacy(path, opts.Charset)
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		names, grids, err = readOOXML(path)
	default:
		return nil, fmt.Errorf("%w: %w: %s", ErrFileNotFound, ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFileNotFound, path, err)
	}

	layout := opts.layout()
	landing := layout.Index(models.RoleLanding)

	wb := &models.Workbook{
		BookName:   filepath.Base(path),
		SheetNames: names,
		Raw:        make(map[string]models.Grid, len(names)),
		Tables:     make(map[string]*models.Table, len(names)),
		Layout:     layout,
	}
	for i, name := range names {
		wb.Raw[name] = grids[i]
		wb.Tables[name] = parser.DeriveTable(grids[i], i == landing)
		log.Debug().
			Str("sheet", name).
			Int("rows", wb.Tables[name].Len()).
			Int("columns", wb.Tables[name].Width()).
			Msg("Loaded sheet")
	}

	// Landing text boxes only exist in OOXML drawings
	if opts.ShouldIncludeShapes() && !strings.EqualFold(filepath.Ext(path), ".xls") {
		if name, ok := wb.SheetAt(landing); ok {
			shapes, err := parser.ExtractShapeText(path, name)
			if err != nil {
				log.Warn().Err(err).Str("sheet", name).Msg("Failed to read landing shapes")
			}
			wb.LandingShapes = shapes
		}
	}

	return wb, nil
}

func readOOXML(path string) ([]string, []models.Grid, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	names := f.GetSheetList()
	grids := make([]models.Grid, len(names))
	for i, name := range names {
		grid, err := parser.ReadGrid(f, name)
		if err != nil {
			return nil, nil, NewLoadError(name, err)
		}
		grids[i] = grid
	}
	return names, grids, nil
}

func readLegacy(path, charset string) ([]string, []models.Grid, error) {
	sheets, err := parser.ReadLegacyWorkbook(path, charset)
	if err != nil {
		return nil, nil, err
	}
	names := make([]string, len(sheets))
	grids := make([]models.Grid, len(sheets))
	for i, s := range sheets {
		names[i] = s.Name
		grids[i] = s.Grid
	}
	return names, grids, nil
}
