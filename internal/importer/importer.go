// Package importer reads room type tables from CSV and Excel files and
// building footprints from DXF drawings. It supports automatic delimiter
// detection, flexible column mapping, and case-insensitive header
// recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/PlanCut/internal/model"
)

// ImportResult holds the results of a room type table import. Row-level
// problems land in Errors and Warnings without aborting the whole import.
type ImportResult struct {
	Specs    []model.RoomTypeSpec
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Type     int
	MinArea  int
	MaxArea  int
	Required int
	Priority int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"type":     {"type", "room type", "room", "name", "kind"},
	"min_area": {"min_area", "min area", "min", "minimum area", "area min"},
	"max_area": {"max_area", "max area", "max", "maximum area", "area max"},
	"required": {"required", "req", "mandatory", "must"},
	"priority": {"priority", "prio", "order", "rank"},
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1 // Allow variable field counts

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		// Score: count how many rows have the same column count as the first row
		// Only consider delimiters that produce more than 1 column
		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		// Prefer delimiters with higher consistency and more columns
		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// It performs case-insensitive matching against known aliases for each column role.
// Returns the mapping and true if a header was detected, or a default positional
// mapping and false if no header was found.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{
		Type:     -1,
		MinArea:  -1,
		MaxArea:  -1,
		Required: -1,
		Priority: -1,
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized == alias {
					isHeader = true
					switch role {
					case "type":
						if mapping.Type == -1 {
							mapping.Type = i
						}
					case "min_area":
						if mapping.MinArea == -1 {
							mapping.MinArea = i
						}
					case "max_area":
						if mapping.MaxArea == -1 {
							mapping.MaxArea = i
						}
					case "required":
						if mapping.Required == -1 {
							mapping.Required = i
						}
					case "priority":
						if mapping.Priority == -1 {
							mapping.Priority = i
						}
					}
				}
			}
		}
	}

	if !isHeader {
		// Fall back to positional mapping: Type, MinArea, MaxArea, Required, Priority
		return ColumnMapping{
			Type:     0,
			MinArea:  1,
			MaxArea:  2,
			Required: 3,
			Priority: 4,
		}, false
	}

	return mapping, true
}

// parseRequired converts a required flag string to a bool.
// It returns the value and whether the string was recognized.
func parseRequired(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "y", "1", "required":
		return true, true
	case "", "false", "no", "n", "0", "-":
		return false, true
	default:
		return false, false
	}
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseRow extracts a RoomTypeSpec from a row using the given column mapping.
// Returns the spec, any error message, and any warning message.
func parseRow(row []string, mapping ColumnMapping, rowLabel string, specCount int) (model.RoomTypeSpec, string, string) {
	typeName := getCell(row, mapping.Type)
	if typeName == "" {
		return model.RoomTypeSpec{}, fmt.Sprintf("%s: Missing room type name", rowLabel), ""
	}
	// Normalize "Living Room" style names to the snake_case tags.
	tag := strings.ToLower(strings.ReplaceAll(typeName, " ", "_"))

	minStr := getCell(row, mapping.MinArea)
	if minStr == "" {
		return model.RoomTypeSpec{}, fmt.Sprintf("%s: Missing min area value", rowLabel), ""
	}
	minArea, err := strconv.ParseFloat(minStr, 64)
	if err != nil {
		return model.RoomTypeSpec{}, fmt.Sprintf("%s: Invalid min area '%s'", rowLabel, minStr), ""
	}

	maxStr := getCell(row, mapping.MaxArea)
	if maxStr == "" {
		return model.RoomTypeSpec{}, fmt.Sprintf("%s: Missing max area value", rowLabel), ""
	}
	maxArea, err := strconv.ParseFloat(maxStr, 64)
	if err != nil {
		return model.RoomTypeSpec{}, fmt.Sprintf("%s: Invalid max area '%s'", rowLabel, maxStr), ""
	}

	if minArea <= 0 || maxArea < minArea {
		return model.RoomTypeSpec{}, fmt.Sprintf("%s: Area range [%g, %g] must satisfy 0 < min <= max", rowLabel, minArea, maxArea), ""
	}

	spec := model.RoomTypeSpec{
		Type:     model.RoomType(tag),
		MinArea:  minArea,
		MaxArea:  maxArea,
		Priority: specCount + 1,
	}

	var warning string
	if reqStr := getCell(row, mapping.Required); reqStr != "" {
		req, ok := parseRequired(reqStr)
		if ok {
			spec.Required = req
		} else {
			warning = fmt.Sprintf("%s: Unknown required flag '%s', defaulting to optional", rowLabel, reqStr)
		}
	}

	if prioStr := getCell(row, mapping.Priority); prioStr != "" {
		prio, err := strconv.Atoi(prioStr)
		if err != nil {
			if warning == "" {
				warning = fmt.Sprintf("%s: Invalid priority '%s', using row order", rowLabel, prioStr)
			}
		} else {
			spec.Priority = prio
		}
	}

	return spec, "", warning
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports a room type table from a CSV file with delimiter auto-detection.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	result = importFromRows(records, "Line", result.Warnings)
	return result
}

// ImportCSVFromReader imports a room type table from a CSV reader with a
// specific delimiter. This is useful for testing or when the delimiter is
// already known.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", nil)
}

// ImportExcel imports a room type table from an Excel (.xlsx) file.
// Reads the first sheet and auto-detects column mapping from headers.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// importFromRows is the shared import logic for both CSV and Excel data.
// It detects headers, maps columns, and parses each row into specs.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	// Detect columns from first row
	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		// Validate that required columns were found
		missing := []string{}
		if mapping.Type == -1 {
			missing = append(missing, "Type")
		}
		if mapping.MinArea == -1 {
			missing = append(missing, "Min Area")
		}
		if mapping.MaxArea == -1 {
			missing = append(missing, "Max Area")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else {
		// No header: check if the second column is numeric (positional mapping)
		if len(rows[0]) >= 3 {
			if _, err := strconv.ParseFloat(strings.TrimSpace(rows[0][1]), 64); err != nil {
				// Second column is not numeric - might be an unrecognized header
				// Skip it as a header but use positional mapping
				startRow = 1
				result.Warnings = append(result.Warnings, "Detected header row, skipping")
			}
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		lineNum := i + 1

		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, lineNum)
		spec, errMsg, warning := parseRow(row, mapping, rowLabel, len(result.Specs))

		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}

		result.Specs = append(result.Specs, spec)
	}

	return result
}
