package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/PlanCut/internal/model"
)

// ExportXLSX writes a floor plan workbook with Rooms, Openings, Walls and
// Summary worksheets.
func ExportXLSX(path string, plan model.FloorPlan) error {
	if len(plan.Rooms) == 0 {
		return fmt.Errorf("no rooms to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E0E0E0"}},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeRoomsSheet(f, plan, headerStyle); err != nil {
		return err
	}
	if err := writeOpeningsSheet(f, plan, headerStyle); err != nil {
		return err
	}
	if err := writeWallsSheet(f, plan, headerStyle); err != nil {
		return err
	}
	if err := writeSummarySheet(f, plan, headerStyle); err != nil {
		return err
	}

	// Drop the default sheet and land on Rooms.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}
	idx, err := f.GetSheetIndex("Rooms")
	if err != nil {
		return err
	}
	f.SetActiveSheet(idx)

	return f.SaveAs(path)
}

// setHeaderRow writes the header cells of row 1 and applies the bold style.
func setHeaderRow(f *excelize.File, sheet string, headers []string, style int) error {
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, style)
}

// setRow writes values left to right starting at column A of the given row.
func setRow(f *excelize.File, sheet string, row int, values []any) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

func writeRoomsSheet(f *excelize.File, plan model.FloorPlan, headerStyle int) error {
	const sheet = "Rooms"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []string{"ID", "Type", "Area (m²)", "Width (m)", "Height (m)", "Ceiling (m)", "Doors", "Windows", "Connected To"}
	if err := setHeaderRow(f, sheet, headers, headerStyle); err != nil {
		return err
	}

	for i, room := range plan.Rooms {
		b := room.Bounds()
		values := []any{
			room.ID,
			room.Type.DisplayName(),
			room.Area(),
			b.Width,
			b.Height,
			room.Height,
			len(room.Doors),
			len(room.Windows),
			strings.Join(connectedRooms(plan, room.ID), ", "),
		}
		if err := setRow(f, sheet, i+2, values); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(sheet, "A", "B", 14); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "I", "I", 24)
}

func writeOpeningsSheet(f *excelize.File, plan model.FloorPlan, headerStyle int) error {
	const sheet = "Openings"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []string{"Kind", "ID", "Room", "Wall", "Position", "Width (m)", "Height (m)", "Style", "From (x, y)", "To (x, y)"}
	if err := setHeaderRow(f, sheet, headers, headerStyle); err != nil {
		return err
	}

	row := 2
	for _, room := range plan.Rooms {
		for _, d := range room.Doors {
			a, b := OpeningSegment(room, d.Wall, d.Position, d.Width)
			values := []any{
				"door", d.ID, room.ID, d.Wall, d.Position, d.Width, d.Height, d.Style,
				fmt.Sprintf("(%.2f, %.2f)", a.X, a.Y),
				fmt.Sprintf("(%.2f, %.2f)", b.X, b.Y),
			}
			if err := setRow(f, sheet, row, values); err != nil {
				return err
			}
			row++
		}
		for _, w := range room.Windows {
			a, b := OpeningSegment(room, w.Wall, w.Position, w.Width)
			values := []any{
				"window", "", room.ID, w.Wall, w.Position, w.Width, w.Height, w.Style,
				fmt.Sprintf("(%.2f, %.2f)", a.X, a.Y),
				fmt.Sprintf("(%.2f, %.2f)", b.X, b.Y),
			}
			if err := setRow(f, sheet, row, values); err != nil {
				return err
			}
			row++
		}
	}

	return f.SetColWidth(sheet, "I", "J", 16)
}

func writeWallsSheet(f *excelize.File, plan model.FloorPlan, headerStyle int) error {
	const sheet = "Walls"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []string{"Room", "Type", "Perimeter (m)", "Exterior (m)", "Shared (m)", "Openings (m)", "Net Wall (m)"}
	if err := setHeaderRow(f, sheet, headers, headerStyle); err != nil {
		return err
	}

	summary := model.ComputeWallStats(plan)
	row := 2
	for _, r := range summary.Rooms {
		values := []any{
			r.RoomID, r.Type.DisplayName(), r.Perimeter, r.ExteriorLen, r.SharedLen, r.OpeningWidth, r.NetWallLen,
		}
		if err := setRow(f, sheet, row, values); err != nil {
			return err
		}
		row++
	}

	totals := []any{
		"Total", "", summary.TotalPerimeter, summary.TotalExterior, summary.TotalShared, summary.TotalOpenings, summary.TotalNet,
	}
	if err := setRow(f, sheet, row, totals); err != nil {
		return err
	}
	cell, err := excelize.CoordinatesToCellName(len(totals), row)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), cell, headerStyle)
}

func writeSummarySheet(f *excelize.File, plan model.FloorPlan, headerStyle int) error {
	const sheet = "Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []string{"Metric", "Value"}
	if err := setHeaderRow(f, sheet, headers, headerStyle); err != nil {
		return err
	}

	stats := model.ComputePlanStats(plan)
	rows := []struct {
		label string
		value any
	}{
		{"Plan ID", plan.ID},
		{"Version", plan.Version},
		{"Footprint (m)", fmt.Sprintf("%.1f x %.1f", plan.Dimensions.Width, plan.Dimensions.Height)},
		{"Seed", plan.Metadata.Seed},
		{"Algorithm", string(plan.Metadata.Algorithm)},
		{"Rooms", stats.RoomCount},
		{"Rooms requested", plan.Metadata.RoomsRequested},
		{"Total room area (m²)", stats.TotalRoomArea},
		{"Mean room area (m²)", stats.MeanRoomArea},
		{"Doors", stats.DoorCount},
		{"Windows", stats.WindowCount},
		{"Connections", stats.ConnectionCount},
		{"Degraded connections", stats.DegradedCount},
		{"Unreachable rooms", stats.UnreachableCount},
		{"Area balance score", stats.BalanceScore},
	}

	row := 2
	for _, r := range rows {
		if err := setRow(f, sheet, row, []any{r.label, r.value}); err != nil {
			return err
		}
		row++
	}

	// Per-type areas in stable order.
	types := make([]string, 0, len(stats.AreaByType))
	for t := range stats.AreaByType {
		types = append(types, string(t))
	}
	sort.Strings(types)
	for _, t := range types {
		label := fmt.Sprintf("Area: %s (m²)", model.RoomType(t).DisplayName())
		if err := setRow(f, sheet, row, []any{label, stats.AreaByType[model.RoomType(t)]}); err != nil {
			return err
		}
		row++
	}

	for _, warning := range plan.Metadata.Warnings {
		if err := setRow(f, sheet, row, []any{"Warning", warning}); err != nil {
			return err
		}
		row++
	}

	return f.SetColWidth(sheet, "A", "B", 28)
}
