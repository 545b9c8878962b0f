package engine

import (
	"fmt"
	"math"

	"github.com/piwi3910/PlanCut/internal/model"
)

// placeOpenings positions doors on shared walls and windows on exterior
// walls. A door is registered on both rooms of its connection under one id,
// each with the wall index and normalized position of that room's own edge.
// Shared walls too narrow for even the minimum door downgrade their
// connection to "none" instead of failing generation.
func placeOpenings(rooms []model.Room, conns []model.Connection, shares []wallShare, dims model.Dimensions, s model.PlanSettings) []string {
	var warnings []string
	doorCount := 0

	for k := range conns {
		sh := shares[k]
		usable := (sh.hi - sh.lo) - 2*s.OpeningMargin
		width := math.Min(s.DoorWidth, usable)
		if width < s.MinDoorWidth {
			conns[k].Type = model.ConnectionNone
			warnings = append(warnings, fmt.Sprintf(
				"shared wall between %s and %s too narrow for a door, leaving the rooms unconnected",
				conns[k].RoomA, conns[k].RoomB))
			continue
		}

		id := fmt.Sprintf("door_%d", doorCount)
		doorCount++
		center := (sh.lo + sh.hi) / 2

		for _, idx := range []int{sh.a, sh.b} {
			wall, pos := wallPlacement(rooms[idx].Bounds(), sh, center)
			rooms[idx].Doors = append(rooms[idx].Doors, model.Door{
				ID:       id,
				Wall:     wall,
				Position: pos,
				Width:    width,
				Height:   s.DoorHeight,
				Style:    s.DoorStyle,
			})
		}
		conns[k].DoorID = id
	}

	placeWindows(rooms, dims, s)
	return warnings
}

// wallPlacement maps a world-coordinate opening center onto a room's own
// wall index and normalized edge position. Rooms are counter-clockwise
// rings, so the two rooms of a shared wall see mirrored positions.
func wallPlacement(b model.Rect, sh wallShare, center float64) (int, float64) {
	if sh.vertical {
		if math.Abs(b.Right()-sh.at) <= coordEps {
			return 1, (center - b.Y) / b.Height // right wall runs bottom to top
		}
		return 3, (b.Top() - center) / b.Height // left wall runs top to bottom
	}
	if math.Abs(b.Top()-sh.at) <= coordEps {
		return 2, (b.Right() - center) / b.Width // top wall runs right to left
	}
	return 0, (center - b.X) / b.Width // bottom wall runs left to right
}

// placeWindows puts one centered window on every exterior edge long enough
// to carry one. Window width grows with the edge up to the configured cap.
func placeWindows(rooms []model.Room, dims model.Dimensions, s model.PlanSettings) {
	for i := range rooms {
		poly := rooms[i].Polygon
		for e := range poly {
			if !exteriorEdge(poly, e, dims) {
				continue
			}
			length := poly.EdgeLength(e)
			if length <= s.WindowMinEdge {
				continue
			}
			rooms[i].Windows = append(rooms[i].Windows, model.Window{
				Wall:     e,
				Position: 0.5,
				Width:    math.Min(length*s.WindowWidthRatio, s.WindowMaxWidth),
				Height:   s.WindowHeight,
				Style:    s.WindowStyle,
			})
		}
	}
}

// exteriorEdge reports whether polygon edge e lies on the plan boundary.
func exteriorEdge(poly model.Polygon, e int, dims model.Dimensions) bool {
	a, b := poly.Edge(e)
	switch {
	case math.Abs(a.X-b.X) <= coordEps: // vertical edge
		return math.Abs(a.X) <= coordEps || math.Abs(a.X-dims.Width) <= coordEps
	case math.Abs(a.Y-b.Y) <= coordEps: // horizontal edge
		return math.Abs(a.Y) <= coordEps || math.Abs(a.Y-dims.Height) <= coordEps
	default:
		return false
	}
}
