package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/PlanCut/internal/model"
)

// ─── Delimiter detection ───

func TestDetectCSVDelimiter(t *testing.T) {
	tests := []struct {
		name string
		data string
		want rune
	}{
		{"comma", "type,min_area,max_area\nkitchen,6,20\n", ','},
		{"semicolon", "type;min_area;max_area\nkitchen;6;20\n", ';'},
		{"tab", "type\tmin_area\tmax_area\nkitchen\t6\t20\n", '\t'},
		{"pipe", "type|min_area|max_area\nkitchen|6|20\n", '|'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectCSVDelimiter([]byte(tt.data)))
		})
	}
}

// ─── Column detection ───

func TestDetectColumns_HeaderAliases(t *testing.T) {
	mapping, hasHeader := DetectColumns([]string{"Room Type", "Min Area", "Max Area", "Required", "Priority"})
	require.True(t, hasHeader)
	assert.Equal(t, 0, mapping.Type)
	assert.Equal(t, 1, mapping.MinArea)
	assert.Equal(t, 2, mapping.MaxArea)
	assert.Equal(t, 3, mapping.Required)
	assert.Equal(t, 4, mapping.Priority)
}

func TestDetectColumns_PositionalFallback(t *testing.T) {
	mapping, hasHeader := DetectColumns([]string{"kitchen", "6", "20"})
	assert.False(t, hasHeader)
	assert.Equal(t, 0, mapping.Type)
	assert.Equal(t, 1, mapping.MinArea)
	assert.Equal(t, 2, mapping.MaxArea)
}

func TestDetectColumns_ReorderedHeader(t *testing.T) {
	mapping, hasHeader := DetectColumns([]string{"max", "min", "name"})
	require.True(t, hasHeader)
	assert.Equal(t, 2, mapping.Type)
	assert.Equal(t, 1, mapping.MinArea)
	assert.Equal(t, 0, mapping.MaxArea)
}

// ─── CSV import ───

func TestImportCSVFromReader_WithHeader(t *testing.T) {
	csv := strings.Join([]string{
		"type,min_area,max_area,required,priority",
		"kitchen,6,20,yes,1",
		"Living Room,12,45,no,3",
		"sauna,3,8,,9",
	}, "\n")

	result := ImportCSVFromReader(strings.NewReader(csv), ',')
	require.Empty(t, result.Errors)
	require.Len(t, result.Specs, 3)

	assert.Equal(t, model.RoomKitchen, result.Specs[0].Type)
	assert.True(t, result.Specs[0].Required)
	assert.Equal(t, 1, result.Specs[0].Priority)

	assert.Equal(t, model.RoomLivingRoom, result.Specs[1].Type, "display names normalize to snake_case tags")
	assert.False(t, result.Specs[1].Required)

	assert.Equal(t, model.RoomType("sauna"), result.Specs[2].Type)
	assert.Equal(t, 9, result.Specs[2].Priority)
}

func TestImportCSVFromReader_RowErrorsDoNotAbort(t *testing.T) {
	csv := strings.Join([]string{
		"type,min_area,max_area",
		"kitchen,6,20",
		",5,10",
		"study,abc,15",
		"bathroom,10,4",
		"storage,1,8",
	}, "\n")

	result := ImportCSVFromReader(strings.NewReader(csv), ',')
	require.Len(t, result.Specs, 2, "good rows survive bad neighbors")
	require.Len(t, result.Errors, 3)
	assert.Contains(t, result.Errors[0], "Missing room type name")
	assert.Contains(t, result.Errors[1], "Invalid min area")
	assert.Contains(t, result.Errors[2], "must satisfy 0 < min <= max")
}

func TestImportCSVFromReader_UnknownFlagsWarn(t *testing.T) {
	csv := strings.Join([]string{
		"type,min_area,max_area,required,priority",
		"kitchen,6,20,maybe,high",
	}, "\n")

	result := ImportCSVFromReader(strings.NewReader(csv), ',')
	require.Empty(t, result.Errors)
	require.Len(t, result.Specs, 1)
	assert.False(t, result.Specs[0].Required)
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "Unknown required flag")
}

func TestImportCSV_SemicolonFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "types.csv")
	data := "type;min_area;max_area\nkitchen;6;20\nbedroom;8;25\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	result := ImportCSV(path)
	require.Empty(t, result.Errors)
	assert.Len(t, result.Specs, 2)
	assert.Contains(t, strings.Join(result.Warnings, " "), "semicolon")
}

func TestImportCSV_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.csv")
	require.NoError(t, os.WriteFile(path, []byte("  \n"), 0644))

	result := ImportCSV(path)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "empty")
}

func TestImportCSV_MissingRequiredHeaderColumns(t *testing.T) {
	csv := "type,required\nkitchen,yes\n"
	result := ImportCSVFromReader(strings.NewReader(csv), ',')
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "Required columns not found")
}

// ─── Excel import ───

func TestImportExcel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "types.xlsx")

	f := excelize.NewFile()
	rows := [][]any{
		{"Type", "Min Area", "Max Area", "Required"},
		{"kitchen", 6, 20, "yes"},
		{"bedroom", 8, 25, ""},
	}
	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", cell, v))
		}
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	result := ImportExcel(path)
	require.Empty(t, result.Errors)
	require.Len(t, result.Specs, 2)
	assert.Equal(t, model.RoomKitchen, result.Specs[0].Type)
	assert.True(t, result.Specs[0].Required)
	assert.Equal(t, model.RoomBedroom, result.Specs[1].Type)
}

func TestImportExcel_MissingFile(t *testing.T) {
	result := ImportExcel(filepath.Join(t.TempDir(), "nope.xlsx"))
	require.NotEmpty(t, result.Errors)
}
