package model

import "math"

const wallEps = 1e-6

// PlanStats holds the aggregate figures computed from a generated plan.
type PlanStats struct {
	RoomCount        int                  `json:"room_count"`
	TotalRoomArea    float64              `json:"total_room_area"` // m²
	MeanRoomArea     float64              `json:"mean_room_area"`  // m²
	MinRoomArea      float64              `json:"min_room_area"`   // m²
	MaxRoomArea      float64              `json:"max_room_area"`   // m²
	DoorCount        int                  `json:"door_count"`      // unique doors
	WindowCount      int                  `json:"window_count"`
	ConnectionCount  int                  `json:"connection_count"`
	DegradedCount    int                  `json:"degraded_count"`    // connections with no opening
	UnreachableCount int                  `json:"unreachable_count"` // rooms with no passable connection
	AreaByType       map[RoomType]float64 `json:"area_by_type"`
	BalanceScore     float64              `json:"balance_score"` // 1 = all rooms equal area
}

// ComputePlanStats derives the aggregate figures for a plan.
func ComputePlanStats(plan FloorPlan) PlanStats {
	stats := PlanStats{
		RoomCount:  len(plan.Rooms),
		AreaByType: make(map[RoomType]float64),
	}
	if len(plan.Rooms) == 0 {
		stats.BalanceScore = 1.0
		return stats
	}

	doorIDs := make(map[string]bool)
	stats.MinRoomArea = math.MaxFloat64
	for _, room := range plan.Rooms {
		area := room.Area()
		stats.TotalRoomArea += area
		stats.MinRoomArea = math.Min(stats.MinRoomArea, area)
		stats.MaxRoomArea = math.Max(stats.MaxRoomArea, area)
		stats.AreaByType[room.Type] += area
		stats.WindowCount += len(room.Windows)
		for _, d := range room.Doors {
			doorIDs[d.ID] = true
		}
	}
	stats.DoorCount = len(doorIDs)
	stats.MeanRoomArea = stats.TotalRoomArea / float64(len(plan.Rooms))

	reachable := make(map[string]bool)
	for _, c := range plan.Connections {
		stats.ConnectionCount++
		if c.Type == ConnectionNone {
			stats.DegradedCount++
			continue
		}
		reachable[c.RoomA] = true
		reachable[c.RoomB] = true
	}
	for _, room := range plan.Rooms {
		if !reachable[room.ID] {
			stats.UnreachableCount++
		}
	}
	// A single room cannot be unreachable in a meaningful sense.
	if len(plan.Rooms) == 1 {
		stats.UnreachableCount = 0
	}

	stats.BalanceScore = balanceScore(plan.Rooms, stats.MeanRoomArea)
	return stats
}

// balanceScore maps the spread of room areas onto [0, 1], with 1 meaning all
// rooms have equal area.
func balanceScore(rooms []Room, mean float64) float64 {
	if len(rooms) < 2 || mean <= 0 {
		return 1.0
	}
	var variance float64
	for _, room := range rooms {
		d := room.Area() - mean
		variance += d * d
	}
	stddev := math.Sqrt(variance / float64(len(rooms)))
	score := 1.0 - stddev/mean
	if score < 0 {
		return 0
	}
	return score
}

// RoomWallStats is the wall schedule for a single room.
type RoomWallStats struct {
	RoomID       string   `json:"room_id"`
	Type         RoomType `json:"type"`
	Perimeter    float64  `json:"perimeter"`     // m
	ExteriorLen  float64  `json:"exterior_len"`  // m on the plan boundary
	SharedLen    float64  `json:"shared_len"`    // m backing another room
	OpeningWidth float64  `json:"opening_width"` // m taken up by doors and windows
	NetWallLen   float64  `json:"net_wall_len"`  // perimeter minus openings
}

// WallSummary is the plan-wide wall schedule. Shared walls appear on both of
// their rooms' rows, so totals count each party wall from both sides.
type WallSummary struct {
	Rooms          []RoomWallStats `json:"rooms"`
	TotalPerimeter float64         `json:"total_perimeter"`
	TotalExterior  float64         `json:"total_exterior"`
	TotalShared    float64         `json:"total_shared"`
	TotalOpenings  float64         `json:"total_openings"`
	TotalNet       float64         `json:"total_net"`
}

// ComputeWallStats builds the per-room wall schedule for a plan.
func ComputeWallStats(plan FloorPlan) WallSummary {
	var summary WallSummary
	for _, room := range plan.Rooms {
		b := room.Bounds()
		row := RoomWallStats{
			RoomID:    room.ID,
			Type:      room.Type,
			Perimeter: room.Polygon.Perimeter(),
		}

		if math.Abs(b.X) <= wallEps {
			row.ExteriorLen += b.Height
		}
		if math.Abs(b.Right()-plan.Dimensions.Width) <= wallEps {
			row.ExteriorLen += b.Height
		}
		if math.Abs(b.Y) <= wallEps {
			row.ExteriorLen += b.Width
		}
		if math.Abs(b.Top()-plan.Dimensions.Height) <= wallEps {
			row.ExteriorLen += b.Width
		}

		for _, other := range plan.Rooms {
			if other.ID == room.ID {
				continue
			}
			row.SharedLen += sharedWallLength(b, other.Bounds())
		}

		for _, d := range room.Doors {
			row.OpeningWidth += d.Width
		}
		for _, w := range room.Windows {
			row.OpeningWidth += w.Width
		}
		row.NetWallLen = row.Perimeter - row.OpeningWidth

		summary.Rooms = append(summary.Rooms, row)
		summary.TotalPerimeter += row.Perimeter
		summary.TotalExterior += row.ExteriorLen
		summary.TotalShared += row.SharedLen
		summary.TotalOpenings += row.OpeningWidth
		summary.TotalNet += row.NetWallLen
	}
	return summary
}

// sharedWallLength returns the length of wall that rectangles a and b share,
// counting only edges that touch with opposite orientation.
func sharedWallLength(a, b Rect) float64 {
	var total float64
	if math.Abs(a.Right()-b.X) <= wallEps || math.Abs(b.Right()-a.X) <= wallEps {
		total += Overlap1D(a.Y, a.Top(), b.Y, b.Top())
	}
	if math.Abs(a.Top()-b.Y) <= wallEps || math.Abs(b.Top()-a.Y) <= wallEps {
		total += Overlap1D(a.X, a.Right(), b.X, b.Right())
	}
	return total
}
