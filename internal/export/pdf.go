// Package export renders generated floor plans to shareable file formats:
// PDF plan sheets, DXF drawings, XLSX schedules and QR-coded room placards.
package export

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/PlanCut/internal/model"
)

// roomColor represents an RGB fill for a room type.
type roomColor struct {
	R, G, B int
}

// roomTypeColors assigns a stable fill color per room type.
var roomTypeColors = map[model.RoomType]roomColor{
	model.RoomLivingRoom: {R: 76, G: 175, B: 80},   // green
	model.RoomKitchen:    {R: 255, G: 152, B: 0},   // orange
	model.RoomBedroom:    {R: 33, G: 150, B: 243},  // blue
	model.RoomBathroom:   {R: 0, G: 188, B: 212},   // cyan
	model.RoomHallway:    {R: 255, G: 235, B: 59},  // yellow
	model.RoomStorage:    {R: 121, G: 85, B: 72},   // brown
	model.RoomStudy:      {R: 156, G: 39, B: 176},  // purple
	model.RoomDining:     {R: 244, G: 67, B: 54},   // red
}

// fallbackColors cycle for room types outside the built-in table.
var fallbackColors = []roomColor{
	{R: 96, G: 125, B: 139},
	{R: 205, G: 220, B: 57},
	{R: 63, G: 81, B: 181},
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 14.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF generates a PDF document for a generated floor plan: a plan
// sheet with the scaled room layout followed by a summary page with
// statistics, the room table and any generation warnings.
func ExportPDF(path string, plan model.FloorPlan, settings model.PlanSettings) error {
	if len(plan.Rooms) == 0 {
		return fmt.Errorf("no rooms to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderPlanPage(pdf, plan)

	pdf.AddPage()
	renderSummaryPage(pdf, plan, settings)

	return pdf.OutputFileAndClose(path)
}

// colorForType returns the fill color for a room type.
func colorForType(t model.RoomType, fallbackIdx int) roomColor {
	if col, ok := roomTypeColors[t]; ok {
		return col
	}
	return fallbackColors[fallbackIdx%len(fallbackColors)]
}

// renderPlanPage draws the scaled floor plan on the current PDF page.
func renderPlanPage(pdf *fpdf.Fpdf, plan model.FloorPlan) {
	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Floor Plan: %.1f x %.1f m, %d rooms", plan.Dimensions.Width, plan.Dimensions.Height, len(plan.Rooms))
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Stats line
	stats := model.ComputePlanStats(plan)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	line := fmt.Sprintf("Total area: %.1f m² | Doors: %d | Windows: %d | Seed: %d",
		stats.TotalRoomArea, stats.DoorCount, stats.WindowCount, plan.Metadata.Seed)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, line, "", 0, "L", false, 0, "")

	// Calculate drawing area
	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - legendHeight

	// Calculate scale to fit the footprint within the drawing area
	scaleX := drawWidth / plan.Dimensions.Width
	scaleY := drawHeight / plan.Dimensions.Height
	scale := math.Min(scaleX, scaleY)

	canvasW := plan.Dimensions.Width * scale
	canvasH := plan.Dimensions.Height * scale

	// Center the drawing horizontally
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// toPage maps plan coordinates (y up) to page coordinates (y down).
	toPage := func(p model.Point2D) (float64, float64) {
		return offsetX + p.X*scale, offsetY + (plan.Dimensions.Height-p.Y)*scale
	}

	// Footprint outline
	pdf.SetFillColor(250, 248, 240)
	pdf.SetDrawColor(60, 60, 60)
	pdf.SetLineWidth(0.6)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	// Room fills and labels
	for i, room := range plan.Rooms {
		b := room.Bounds()
		col := colorForType(room.Type, i)
		rx := offsetX + b.X*scale
		ry := offsetY + (plan.Dimensions.Height-b.Top())*scale
		rw := b.Width * scale
		rh := b.Height * scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.4)
		pdf.Rect(rx, ry, rw, rh, "FD")

		// Room label (only if the rectangle is large enough)
		if rw > 18 && rh > 10 {
			pdf.SetFont("Helvetica", "B", labelFontSize(rw, rh))
			pdf.SetTextColor(0, 0, 0)

			name := room.Type.DisplayName()
			area := fmt.Sprintf("%.1f m²", room.Area())

			nameW := pdf.GetStringWidth(name)
			if nameW < rw-2 {
				pdf.SetXY(rx+(rw-nameW)/2, ry+rh/2-4)
				pdf.CellFormat(nameW, 4, name, "", 0, "C", false, 0, "")
			}
			pdf.SetFont("Helvetica", "", labelFontSize(rw, rh)-1)
			areaW := pdf.GetStringWidth(area)
			if rh > 16 && areaW < rw-2 {
				pdf.SetXY(rx+(rw-areaW)/2, ry+rh/2)
				pdf.CellFormat(areaW, 4, area, "", 0, "C", false, 0, "")
			}
		}
	}

	// Doors: drawn once per unique id as a gap in the wall with a
	// contrasting stroke and a quarter-circle swing arc off the hinge.
	drawnDoors := make(map[string]bool)
	pdf.SetDrawColor(180, 30, 30)
	for _, room := range plan.Rooms {
		for _, d := range room.Doors {
			if drawnDoors[d.ID] {
				continue
			}
			drawnDoors[d.ID] = true
			a, b := OpeningSegment(room, d.Wall, d.Position, d.Width)
			x1, y1 := toPage(a)
			x2, y2 := toPage(b)
			pdf.SetLineWidth(1.0)
			pdf.Line(x1, y1, x2, y2)

			// Swing arc hinged at the first endpoint, radius = door width.
			r := math.Hypot(x2-x1, y2-y1)
			wallAngle := math.Atan2(y1-y2, x2-x1) * 180 / math.Pi
			pdf.SetLineWidth(0.2)
			pdf.Arc(x1, y1, r, r, 0, wallAngle, wallAngle+90, "D")
		}
	}

	// Windows: double line slightly inside and outside the wall.
	pdf.SetDrawColor(30, 90, 200)
	pdf.SetLineWidth(0.5)
	for _, room := range plan.Rooms {
		for _, w := range room.Windows {
			a, b := OpeningSegment(room, w.Wall, w.Position, w.Width)
			x1, y1 := toPage(a)
			x2, y2 := toPage(b)
			// Offset perpendicular to the wall direction by a hair.
			nx, ny := perpendicular(x1, y1, x2, y2, 0.4)
			pdf.Line(x1+nx, y1+ny, x2+nx, y2+ny)
			pdf.Line(x1-nx, y1-ny, x2-nx, y2-ny)
		}
	}

	drawDimensionAnnotations(pdf, plan.Dimensions, offsetX, offsetY, canvasW, canvasH)
	drawRoomLegend(pdf, plan, offsetY+canvasH+5)
}

// OpeningSegment returns the world-coordinate endpoints of an opening on a
// room's wall. The opening is centered at the normalized position along
// edge wall and extends half its width in both directions, clamped to the
// edge.
func OpeningSegment(room model.Room, wall int, position, width float64) (model.Point2D, model.Point2D) {
	a, b := room.Polygon.Edge(wall)
	length := room.Polygon.EdgeLength(wall)
	if length == 0 {
		return a, a
	}
	dx := (b.X - a.X) / length
	dy := (b.Y - a.Y) / length

	center := position * length
	lo := math.Max(0, center-width/2)
	hi := math.Min(length, center+width/2)

	start := model.Point2D{X: a.X + dx*lo, Y: a.Y + dy*lo}
	end := model.Point2D{X: a.X + dx*hi, Y: a.Y + dy*hi}
	return start, end
}

// perpendicular returns a vector of the given length normal to the segment.
func perpendicular(x1, y1, x2, y2, length float64) (float64, float64) {
	dx := x2 - x1
	dy := y2 - y1
	d := math.Hypot(dx, dy)
	if d == 0 {
		return 0, 0
	}
	return -dy / d * length, dx / d * length
}

// drawDimensionAnnotations adds width and height labels outside the footprint.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, dims model.Dimensions, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	// Width annotation (below the plan)
	widthLabel := fmt.Sprintf("%.1f m", dims.Width)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	// Height annotation (to the left of the plan, rotated)
	heightLabel := fmt.Sprintf("%.1f m", dims.Height)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	hLabelW := pdf.GetStringWidth(heightLabel)
	pdf.SetXY(offsetX-3-hLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(hLabelW, 4, heightLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// drawRoomLegend renders a compact room type legend below the plan.
func drawRoomLegend(pdf *fpdf.Fpdf, plan model.FloorPlan, startY float64) {
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Room types:", "", 0, "L", false, 0, "")

	// One legend entry per distinct type, in first-seen order.
	var order []model.RoomType
	seen := make(map[model.RoomType]bool)
	for _, room := range plan.Rooms {
		if !seen[room.Type] {
			seen[room.Type] = true
			order = append(order, room.Type)
		}
	}

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 32
	maxX := pageWidth - marginRight

	for i, t := range order {
		col := colorForType(t, i)
		label := t.DisplayName()
		labelW := pdf.GetStringWidth(label) + 6

		// Wrap to next line if needed
		if xPos+labelW > maxX {
			startY += 5
			xPos = marginLeft
		}

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")

		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")

		xPos += labelW + 2
	}
}

// renderSummaryPage draws the summary page with statistics, the per-room
// table, warnings and the generation settings.
func renderSummaryPage(pdf *fpdf.Fpdf, plan model.FloorPlan, settings model.PlanSettings) {
	// Title
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Floor Plan Summary", "", 0, "L", false, 0, "")

	// Separator line
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18
	stats := model.ComputePlanStats(plan)

	// Overall statistics
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Overall Statistics", "", 0, "L", false, 0, "")
	y += 9

	summaryItems := []struct {
		label string
		value string
	}{
		{"Rooms", fmt.Sprintf("%d (requested %d)", stats.RoomCount, plan.Metadata.RoomsRequested)},
		{"Total Area", fmt.Sprintf("%.1f m²", stats.TotalRoomArea)},
		{"Mean Room Area", fmt.Sprintf("%.1f m²", stats.MeanRoomArea)},
		{"Doors / Windows", fmt.Sprintf("%d / %d", stats.DoorCount, stats.WindowCount)},
		{"Area Balance", fmt.Sprintf("%.2f", stats.BalanceScore)},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 5

	// Per-room table
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Rooms", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{25, 50, 40, 40, 25, 25, 60}
	headers := []string{"ID", "Type", "Size", "Area", "Doors", "Windows", "Connected To"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, room := range plan.Rooms {
		b := room.Bounds()
		xPos = marginLeft
		rowData := []string{
			room.ID,
			room.Type.DisplayName(),
			fmt.Sprintf("%.1f x %.1f m", b.Width, b.Height),
			fmt.Sprintf("%.1f m²", room.Area()),
			fmt.Sprintf("%d", len(room.Doors)),
			fmt.Sprintf("%d", len(room.Windows)),
			strings.Join(connectedRooms(plan, room.ID), ", "),
		}

		// Alternate row background
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	// Warnings
	if len(plan.Metadata.Warnings) > 0 {
		y += 8
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(200, 7, "Generation Warnings", "", 0, "L", false, 0, "")
		y += 8

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)

		for _, warning := range plan.Metadata.Warnings {
			pdf.SetXY(marginLeft+5, y)
			pdf.CellFormat(200, 5, "- "+warning, "", 0, "L", false, 0, "")
			y += 5
		}
	}

	// Generation settings summary
	y += 8
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Generation Settings", "", 0, "L", false, 0, "")
	y += 9

	settingsItems := []struct {
		label string
		value string
	}{
		{"Algorithm", string(settings.Algorithm)},
		{"Seed", fmt.Sprintf("%d", plan.Metadata.Seed)},
		{"Min Room Area", fmt.Sprintf("%.1f m²", settings.MinRoomArea)},
		{"Max Depth", fmt.Sprintf("%d", settings.MaxDepth)},
		{"Split Ratio", fmt.Sprintf("%.2f - %.2f", settings.SplitRatioMin, settings.SplitRatioMax)},
		{"Door Width", fmt.Sprintf("%.2f m", settings.DoorWidth)},
		{"Ceiling Height", fmt.Sprintf("%.2f m", settings.RoomHeightDefault)},
	}

	pdf.SetFont("Helvetica", "", 9)
	for _, item := range settingsItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(50, 5, item.label+":", "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 5, item.value, "", 0, "L", false, 0, "")
		y += 5
	}

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by PlanCut - Procedural Floor Plan Generator", "", 0, "C", false, 0, "")
}

// connectedRooms lists the ids of rooms joined to roomID by a passable
// connection, sorted for stable output.
func connectedRooms(plan model.FloorPlan, roomID string) []string {
	var ids []string
	for _, c := range plan.Connections {
		if c.Type == model.ConnectionNone {
			continue
		}
		switch roomID {
		case c.RoomA:
			ids = append(ids, c.RoomB)
		case c.RoomB:
			ids = append(ids, c.RoomA)
		}
	}
	sort.Strings(ids)
	return ids
}

// labelFontSize returns an appropriate font size based on the rectangle dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 9
	case minDim > 20:
		return 8
	default:
		return 7
	}
}
