package engine

import (
	"fmt"
	"math"
	"sort"

	"github.com/piwi3910/PlanCut/internal/model"
)

// Scores this large mark an area outside a spec's range, so any in-range
// region always beats an out-of-range one.
const outOfRangePenalty = 1e6

// assignRooms turns the tree's leaves into typed rooms. Required types claim
// their best-fitting regions first in priority order; every other region
// takes whichever type suits its area best. Leaf order is pre-order, which
// fixes the room_N numbering.
func assignRooms(t *Tree, types []model.RoomTypeSpec, s model.PlanSettings) ([]model.Room, []string) {
	if len(types) == 0 {
		types = model.DefaultRoomTypeTable()
	}
	pool := sortedByPriority(types)
	leaves := t.Leaves()
	var warnings []string

	areas := make([]float64, len(leaves))
	for i, id := range leaves {
		areas[i] = t.Nodes[id].Bounds.Area()
	}

	assigned := make([]model.RoomType, len(leaves))
	taken := make([]bool, len(leaves))
	requiredTag := make([]bool, len(leaves))

	for _, spec := range pool {
		if !spec.Required {
			continue
		}
		best := -1
		bestScore := math.MaxFloat64
		for i := range leaves {
			if taken[i] {
				continue
			}
			if score := fitDistance(spec, areas[i]); score < bestScore {
				bestScore = score
				best = i
			}
		}
		if best == -1 {
			warnings = append(warnings, fmt.Sprintf("no room left for required type %s", spec.Type))
			continue
		}
		taken[best] = true
		requiredTag[best] = true
		assigned[best] = spec.Type
		if !spec.Fits(areas[best]) {
			warnings = append(warnings, fmt.Sprintf("%s area %.1f outside preferred range [%.1f, %.1f]",
				spec.Type, areas[best], spec.MinArea, spec.MaxArea))
		}
	}

	for i := range leaves {
		if !taken[i] {
			assigned[i] = bestType(pool, areas[i])
		}
	}

	rooms := make([]model.Room, len(leaves))
	for i, id := range leaves {
		node := t.Nodes[id]
		node.RoomIdx = i
		t.Nodes[id] = node

		room := model.Room{
			ID:      fmt.Sprintf("room_%d", i),
			Type:    assigned[i],
			Polygon: model.RectPolygon(node.Bounds),
			Doors:   []model.Door{},
			Windows: []model.Window{},
			Height:  s.RoomHeightDefault,
		}
		if requiredTag[i] {
			room.Tags = []string{"required"}
		}
		rooms[i] = room
	}
	return rooms, warnings
}

// sortedByPriority returns a copy of the table ordered by ascending
// priority, so ties in fit resolve the same way every run.
func sortedByPriority(types []model.RoomTypeSpec) []model.RoomTypeSpec {
	pool := make([]model.RoomTypeSpec, len(types))
	copy(pool, types)
	sort.SliceStable(pool, func(i, j int) bool { return pool[i].Priority < pool[j].Priority })
	return pool
}

// fitDistance scores how well an area suits a spec. Areas inside the range
// score their distance from the range midpoint; areas outside score their
// distance to the nearest bound plus a penalty, so in-range regions always
// win.
func fitDistance(spec model.RoomTypeSpec, area float64) float64 {
	if spec.Fits(area) {
		mid := (spec.MinArea + spec.MaxArea) / 2
		return math.Abs(area - mid)
	}
	if area < spec.MinArea {
		return outOfRangePenalty + (spec.MinArea - area)
	}
	return outOfRangePenalty + (area - spec.MaxArea)
}

// bestType picks the type whose range suits the area best. The pool must be
// priority-sorted; the first best score wins, so lower priority values take
// ties. Types may repeat across rooms.
func bestType(pool []model.RoomTypeSpec, area float64) model.RoomType {
	best := pool[0].Type
	bestScore := math.MaxFloat64
	for _, spec := range pool {
		if score := fitDistance(spec, area); score < bestScore {
			bestScore = score
			best = spec.Type
		}
	}
	return best
}
