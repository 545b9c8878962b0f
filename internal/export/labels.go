package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/PlanCut/internal/model"
)

// LabelInfo holds the data encoded into each room placard's QR code.
type LabelInfo struct {
	PlanID  string  `json:"plan"`
	RoomID  string  `json:"room"`
	Type    string  `json:"type"`
	Area    float64 `json:"area_m2"`
	Width   float64 `json:"width_m"`
	Height  float64 `json:"height_m"`
	Ceiling float64 `json:"ceiling_m"`
	Doors   int     `json:"doors"`
	Windows int     `json:"windows"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows per page).
// Each label cell is approximately 66.7mm x 25.4mm on US Letter paper.
const (
	labelMarginTop  = 12.7 // mm
	labelMarginLeft = 4.8  // mm
	labelWidth      = 66.7 // mm per label
	labelHeight     = 25.4 // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// ExportRoomLabels generates a PDF of QR-coded placards, one per room.
// Each placard carries the room's display name, dimensions and a QR code
// encoding room metadata as JSON. Labels are laid out on a standard label
// sheet format (Avery 5160 / 3 columns x 10 rows on US Letter).
func ExportRoomLabels(path string, plan model.FloorPlan) error {
	labels := CollectLabelInfos(plan)
	if len(labels) == 0 {
		return fmt.Errorf("no rooms to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		// Add new page when needed
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, label); err != nil {
			return fmt.Errorf("failed to render label for %q: %w", label.RoomID, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single room placard at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo) error {
	// Draw light border for cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	// Generate QR code PNG bytes
	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	// Register QR image with a unique name
	imgName := fmt.Sprintf("qr_%s_%s", info.PlanID, info.RoomID)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	// Place QR code on the right side of the label
	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	// Text area (left side of label)
	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	// Room type name (bold, larger)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)

	// Truncate the name if too long
	name := model.RoomType(info.Type).DisplayName()
	if pdf.GetStringWidth(name) > textW {
		for len(name) > 0 && pdf.GetStringWidth(name+"...") > textW {
			name = name[:len(name)-1]
		}
		name += "..."
	}
	pdf.CellFormat(textW, 4.5, name, "", 1, "L", false, 0, "")

	// Dimensions
	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	dims := fmt.Sprintf("%.1f x %.1f m  (%.1f m²)", info.Width, info.Height, info.Area)
	pdf.CellFormat(textW, 3.5, dims, "", 1, "L", false, 0, "")

	// Room id and opening counts
	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	detail := fmt.Sprintf("%s | %d doors, %d windows", info.RoomID, info.Doors, info.Windows)
	pdf.CellFormat(textW, 3, detail, "", 1, "L", false, 0, "")

	// Ceiling height
	pdf.SetXY(textX, y+labelPadding+12.5)
	pdf.SetFont("Helvetica", "I", 6)
	pdf.CellFormat(textW, 3, fmt.Sprintf("Ceiling %.2f m", info.Ceiling), "", 0, "L", false, 0, "")

	// Reset text color
	pdf.SetTextColor(0, 0, 0)

	return nil
}

// CollectLabelInfos extracts placard information from a plan for use in
// testing or alternative export formats.
func CollectLabelInfos(plan model.FloorPlan) []LabelInfo {
	var labels []LabelInfo
	for _, room := range plan.Rooms {
		b := room.Bounds()
		labels = append(labels, LabelInfo{
			PlanID:  plan.ID,
			RoomID:  room.ID,
			Type:    string(room.Type),
			Area:    room.Area(),
			Width:   b.Width,
			Height:  b.Height,
			Ceiling: room.Height,
			Doors:   len(room.Doors),
			Windows: len(room.Windows),
		})
	}
	return labels
}
