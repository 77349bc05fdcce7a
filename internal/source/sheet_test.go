package source

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "finals.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadSheet_FirstSheetSelectedColumns(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"Year", "Lg", "NBA Champion", "NBA Runner-Up"},
		{2023, "NBA", "Denver Nuggets", "Miami Heat"},
		{},
		{1979, "NBA", "Seattle SuperSonics", "Washington Bullets"},
	})

	records, err := ReadSheet(path, SheetOptions{Columns: []string{"Year", "NBA Champion"}})
	require.NoError(t, err)
	require.Len(t, records, 2, "blank rows are skipped")

	assert.Equal(t, "2023", records[0].Get("Year"))
	assert.Equal(t, "Denver Nuggets", records[0].Get("NBA Champion"))
	assert.Equal(t, "Seattle SuperSonics", records[1].Get("NBA Champion"))
	_, kept := records[0]["NBA Runner-Up"]
	assert.False(t, kept, "unselected columns are dropped")
}

func TestReadSheet_MissingColumn(t *testing.T) {
	path := writeWorkbook(t, [][]any{{"Year", "Champion"}, {2020, "Los Angeles Lakers"}})

	_, err := ReadSheet(path, SheetOptions{Columns: []string{"Year", "NBA Champion"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestReadSheet_ShortRows(t *testing.T) {
	path := writeWorkbook(t, [][]any{{"Year", "NBA Champion"}, {1950}})

	records, err := ReadSheet(path, SheetOptions{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "1950", records[0].Get("Year"))
	assert.Equal(t, "", records[0].Get("NBA Champion"))
}
