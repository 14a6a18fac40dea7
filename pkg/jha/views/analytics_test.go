package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/jha-go/internal/testkit"
)

func TestAnalytics(t *testing.T) {
	v, err := Analytics(loadFixture(t))
	require.NoError(t, err)
	assert.True(t, v.Available)
	assert.Equal(t, "Division", v.Column)
	assert.Equal(t, []DivisionCount{{"North", 2}, {"South", 1}}, v.Counts)
	assert.Equal(t, 3, v.Total)
	assert.InDelta(t, 1.5, v.Mean, 1e-9)
	assert.InDelta(t, 1.5, v.Median, 1e-9)
	assert.InDelta(t, 2.0, v.Max, 1e-9)
}

func TestAnalyticsUnknownAndTies(t *testing.T) {
	wb := memoryBook(
		testkit.Sheet{Name: "Landing", Rows: [][]interface{}{{"Intro"}}},
		testkit.Sheet{Name: "Key", Rows: [][]interface{}{
			{"Division", "Task"},
			{nil, nil},
			{"West", "a"},
			{nil, "b"},
			{"East", "c"},
			{nil, "d"},
			{"East", "e"},
			{"West", "f"},
			{"North", "g"},
		}},
	)

	v, err := Analytics(wb)
	require.NoError(t, err)
	assert.Equal(t, []DivisionCount{
		{"East", 2},
		{UnknownDivision, 2},
		{"West", 2},
		{"North", 1},
	}, v.Counts)
	assert.Equal(t, 7, v.Total)
}

func TestAnalyticsUnavailable(t *testing.T) {
	tests := []struct {
		name   string
		sheets []testkit.Sheet
	}{
		{"NoKeySheet", []testkit.Sheet{{Name: "Landing", Rows: [][]interface{}{{"Intro"}}}}},
		{"NoDivisionColumn", []testkit.Sheet{
			{Name: "Landing", Rows: [][]interface{}{{"Intro"}}},
			{Name: "Key", Rows: [][]interface{}{{"Task"}, {nil}, {"Sweep"}}},
		}},
		{"EmptyKeySheet", []testkit.Sheet{
			{Name: "Landing", Rows: [][]interface{}{{"Intro"}}},
			{Name: "Key", Rows: [][]interface{}{{"Division"}, {nil}}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Analytics(memoryBook(tt.sheets...))
			require.NoError(t, err)
			assert.False(t, v.Available)
			assert.Empty(t, v.Counts)
		})
	}
}
