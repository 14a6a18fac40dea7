package jha

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/jha-go/internal/testkit"
	"github.com/ukaji3/jha-go/pkg/jha/models"
)

func TestLoad(t *testing.T) {
	path := testkit.WriteJHAWorkbook(t)

	wb, err := Load(path, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "JHA by Division.xlsx", wb.BookName)
	assert.Equal(t, []string{
		"Overview",
		"Key JHAs",
		"Critical JHAs by Division",
		"Critical JHAs Summary",
		"Primary Hazards",
		"Primary Controls",
	}, wb.SheetNames)

	t.Run("LandingKeepsRawGrid", func(t *testing.T) {
		raw := wb.Raw["Overview"]
		table := wb.Tables["Overview"]
		assert.Equal(t, [][]interface{}(raw), table.Rows)
		assert.Equal(t, raw.Width(), table.Width())
	})

	t.Run("HeaderMerge", func(t *testing.T) {
		key := wb.Table(models.RoleKeyJHAs)
		assert.Equal(t, []string{"Division", "Task — Sequence", "Notes"}, key.Columns)
		assert.Equal(t, len(wb.Raw["Key JHAs"])-2, key.Len())
		assert.Equal(t, "North", key.Rows[0][0])
	})

	t.Run("NumbersAreTyped", func(t *testing.T) {
		summary := wb.Table(models.RoleCriticalSummary)
		assert.Equal(t, []string{"Summary", "Count"}, summary.Columns)
		assert.Equal(t, int64(2), summary.Rows[0][1])
	})

	t.Run("MissingRoleIsEmpty", func(t *testing.T) {
		wb.Layout = models.Layout{models.RoleHazards: 9}
		assert.Equal(t, 0, wb.Table(models.RoleHazards).Len())
		assert.False(t, wb.HasRole(models.RoleHazards))
		assert.True(t, wb.HasRole(models.RoleKeyJHAs))
	})
}

func TestLoadCustomLayout(t *testing.T) {
	sheets := testkit.JHASheets()
	// Put the landing sheet last
	sheets = append(sheets[1:], sheets[0])
	path := testkit.WriteWorkbook(t, t.TempDir(), "moved.xlsx", sheets)

	opts := DefaultOptions()
	opts.Layout = models.Layout{
		models.RoleLanding: 5,
		models.RoleKeyJHAs: 0,
		models.RoleHazards: 3,
	}
	wb, err := Load(path, opts)
	require.NoError(t, err)

	assert.Equal(t, []string{"0"}, wb.Table(models.RoleLanding).Columns)
	assert.Equal(t, "Division", wb.Table(models.RoleKeyJHAs).Columns[0])
	assert.Equal(t, "Primary Hazard", wb.Table(models.RoleHazards).Columns[1])
}

func TestLoadLegacy(t *testing.T) {
	wb, err := Load(filepath.Join("parser", "testdata", "legacy_table.xls"), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "legacy_table.xls", wb.BookName)
	assert.Equal(t, []string{"Table"}, wb.SheetNames)
	assert.Empty(t, wb.LandingShapes)

	// The only sheet is the landing sheet, kept raw
	table := wb.Table(models.RoleLanding)
	assert.Equal(t, 12, table.Len())
	assert.Equal(t, 3, table.Width())
	assert.Equal(t, "code1", table.Cell(1, 0))
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("MissingFile", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "absent.xlsx"), DefaultOptions())
		assert.True(t, errors.Is(err, ErrFileNotFound), "got %v", err)
	})

	t.Run("NotAWorkbook", func(t *testing.T) {
		bogus := filepath.Join(dir, "bogus.xlsx")
		require.NoError(t, os.WriteFile(bogus, []byte("not a zip"), 0644))
		_, err := Load(bogus, DefaultOptions())
		assert.True(t, errors.Is(err, ErrFileNotFound), "got %v", err)
	})

	t.Run("UnsupportedExtension", func(t *testing.T) {
		txt := filepath.Join(dir, "notes.txt")
		require.NoError(t, os.WriteFile(txt, []byte("hello"), 0644))
		_, err := Load(txt, DefaultOptions())
		assert.True(t, errors.Is(err, ErrUnsupportedFormat), "got %v", err)
		assert.True(t, errors.Is(err, ErrFileNotFound), "got %v", err)
	})
}

func TestLoadErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	err := NewLoadError("Key JHAs", inner)
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), `"Key JHAs"`)
}
