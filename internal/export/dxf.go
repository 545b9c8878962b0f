package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"

	"github.com/piwi3910/PlanCut/internal/model"
)

// DXF layer names used in exported drawings.
const (
	layerFootprint = "FOOTPRINT"
	layerWalls     = "WALLS"
	layerDoors     = "DOORS"
	layerWindows   = "WINDOWS"
)

// ExportDXF writes a floor plan as a DXF drawing with separate layers for
// the footprint outline, room walls, door openings and windows. All
// coordinates are in meters, matching the plan.
func ExportDXF(path string, plan model.FloorPlan) error {
	if len(plan.Rooms) == 0 {
		return fmt.Errorf("no rooms to export")
	}

	d := dxf.NewDrawing()

	if _, err := d.AddLayer(layerFootprint, color.White, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add layer %s: %w", layerFootprint, err)
	}
	if _, err := d.AddLayer(layerWalls, color.Yellow, dxf.DefaultLineType, false); err != nil {
		return fmt.Errorf("failed to add layer %s: %w", layerWalls, err)
	}
	if _, err := d.AddLayer(layerDoors, color.Red, dxf.DefaultLineType, false); err != nil {
		return fmt.Errorf("failed to add layer %s: %w", layerDoors, err)
	}
	if _, err := d.AddLayer(layerWindows, color.Cyan, dxf.DefaultLineType, false); err != nil {
		return fmt.Errorf("failed to add layer %s: %w", layerWindows, err)
	}

	// Footprint outline
	if err := d.ChangeLayer(layerFootprint); err != nil {
		return err
	}
	outline := model.RectPolygon(model.Rect{Width: plan.Dimensions.Width, Height: plan.Dimensions.Height})
	if err := drawRing(d, outline); err != nil {
		return err
	}

	// Room walls
	if err := d.ChangeLayer(layerWalls); err != nil {
		return err
	}
	for _, room := range plan.Rooms {
		if err := drawRing(d, room.Polygon); err != nil {
			return fmt.Errorf("room %s: %w", room.ID, err)
		}
	}

	// Doors: one segment per unique door id.
	if err := d.ChangeLayer(layerDoors); err != nil {
		return err
	}
	drawn := make(map[string]bool)
	for _, room := range plan.Rooms {
		for _, dr := range room.Doors {
			if drawn[dr.ID] {
				continue
			}
			drawn[dr.ID] = true
			a, b := OpeningSegment(room, dr.Wall, dr.Position, dr.Width)
			if _, err := d.Line(a.X, a.Y, 0, b.X, b.Y, 0); err != nil {
				return fmt.Errorf("door %s: %w", dr.ID, err)
			}
		}
	}

	// Windows
	if err := d.ChangeLayer(layerWindows); err != nil {
		return err
	}
	for _, room := range plan.Rooms {
		for _, w := range room.Windows {
			a, b := OpeningSegment(room, w.Wall, w.Position, w.Width)
			if _, err := d.Line(a.X, a.Y, 0, b.X, b.Y, 0); err != nil {
				return fmt.Errorf("room %s window: %w", room.ID, err)
			}
		}
	}

	return d.SaveAs(path)
}

// drawRing emits one line per polygon edge, closing the ring.
func drawRing(d *drawing.Drawing, poly model.Polygon) error {
	for i := range poly {
		a, b := poly.Edge(i)
		if _, err := d.Line(a.X, a.Y, 0, b.X, b.Y, 0); err != nil {
			return err
		}
	}
	return nil
}
