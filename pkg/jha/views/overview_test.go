package views

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/jha-go/internal/testkit"
	"github.com/ukaji3/jha-go/pkg/jha"
	"github.com/ukaji3/jha-go/pkg/jha/models"
)

func TestOverviewSingleColumn(t *testing.T) {
	v, err := Overview(loadFixture(t))
	require.NoError(t, err)
	assert.Equal(t, "Overview", v.Sheet)
	assert.Equal(t, []string{
		"Job Hazard Analysis by Division",
		"Review every task before work starts.",
		"Stop work when conditions change.",
	}, v.Paragraphs)
	assert.Empty(t, v.Shapes)
}

func TestOverviewMultiColumn(t *testing.T) {
	rows := [][]interface{}{
		{"Site", nil, "Plant 4"},
		{nil, nil, nil},
		{"Revision", int64(3), nil},
	}
	for i := 0; i < 50; i++ {
		rows = append(rows, []interface{}{fmt.Sprintf("line %d", i), nil, nil})
	}
	wb := memoryBook(testkit.Sheet{Name: "Landing", Rows: rows})

	v, err := Overview(wb)
	require.NoError(t, err)
	require.NotEmpty(t, v.Paragraphs)
	assert.Equal(t, "Site Plant 4", v.Paragraphs[0])
	assert.Equal(t, "Revision 3", v.Paragraphs[1])
	// 40 rows read, one of them empty
	assert.Len(t, v.Paragraphs, OverviewRowLimit-1)
	assert.Equal(t, "line 36", v.Paragraphs[len(v.Paragraphs)-1])
}

func TestOverviewShapes(t *testing.T) {
	wb := memoryBook(testkit.Sheet{Name: "Landing", Rows: [][]interface{}{{"Intro"}}})
	wb.LandingShapes = []models.Shape{{Text: "Call 911", Row: 2, Col: 1}}

	v, err := Overview(wb)
	require.NoError(t, err)
	assert.Equal(t, []string{"Intro"}, v.Paragraphs)
	assert.Equal(t, []string{"Call 911"}, v.Shapes)
}

func TestOverviewEmptyWorkbook(t *testing.T) {
	_, err := Overview(memoryBook())
	assert.ErrorIs(t, err, jha.ErrMissingSheets)
}
