package parser

import (
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/ukaji3/jha-go/pkg/jha/models"
)

func TestMergeHeader(t *testing.T) {
	tests := []struct {
		top      interface{}
		sub      interface{}
		expected string
	}{
		{"Division", "", "Division"},
		{"", "Task", "Task"},
		{"Division", "Task", "Division — Task"},
		{"", "", "Unnamed"},
		{nil, nil, "Unnamed"},
		{"  Hazard ", nil, "Hazard"},
		{int64(2024), "Count", "2024 — Count"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, MergeHeader(tt.top, tt.sub), "MergeHeader(%v, %v)", tt.top, tt.sub)
	}
}

func TestDeriveTable(t *testing.T) {
	g := models.Grid{
		{"Division", nil, "Hazard"},
		{nil, "Task", "Primary"},
		{"North", "Lift", "Strain"},
		{"South", "Dig", nil},
	}

	t.Run("Structured", func(t *testing.T) {
		table := DeriveTable(g, false)
		assert.Equal(t, []string{"Division", "Task", "Hazard — Primary"}, table.Columns)
		assert.Equal(t, 2, table.Len())
		assert.Equal(t, "North", table.Rows[0][0])
	})

	t.Run("Landing", func(t *testing.T) {
		table := DeriveTable(g, true)
		assert.Equal(t, []string{"0", "1", "2"}, table.Columns)
		assert.Equal(t, [][]interface{}(g), table.Rows)
	})

	t.Run("SingleRow", func(t *testing.T) {
		one := models.Grid{{"only", "row"}}
		table := DeriveTable(one, false)
		assert.Equal(t, [][]interface{}(one), table.Rows)
	})
}

func genGrid() gopter.Gen {
	return gen.IntRange(1, 6).FlatMap(func(w interface{}) gopter.Gen {
		return gen.SliceOf(gen.SliceOfN(w.(int), gen.AlphaString())).Map(func(rows [][]string) models.Grid {
			g := make(models.Grid, len(rows))
			for i, row := range rows {
				g[i] = make([]interface{}, len(row))
				for j, cell := range row {
					if cell != "" {
						g[i][j] = cell
					}
				}
			}
			return g
		})
	}, reflect.TypeOf(models.Grid(nil)))
}

func TestDeriveTableProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	// Property: the landing table is the raw grid
	properties.Property("landing table equals raw grid", prop.ForAll(
		func(g models.Grid) bool {
			table := DeriveTable(g, true)
			if table.Len() != len(g) || table.Width() != g.Width() {
				return false
			}
			for i := range g {
				for j := range g[i] {
					if table.Rows[i][j] != g[i][j] {
						return false
					}
				}
			}
			return true
		},
		genGrid(),
	))

	// Property: header merge removes exactly two rows and keeps every column
	properties.Property("data rows = raw rows - 2", prop.ForAll(
		func(g models.Grid) bool {
			table := DeriveTable(g, false)
			if len(g) < 2 {
				return table.Len() == len(g)
			}
			return table.Len() == len(g)-2 && table.Width() == g.Width()
		},
		genGrid(),
	))

	properties.TestingRun(t)
}
