package model

import (
	"math"
	"testing"
)

func TestComputePlanStats(t *testing.T) {
	plan := twoRoomPlan()
	stats := ComputePlanStats(plan)

	if stats.RoomCount != 2 {
		t.Errorf("expected 2 rooms, got %d", stats.RoomCount)
	}
	if stats.TotalRoomArea != 80 {
		t.Errorf("expected total area 80, got %g", stats.TotalRoomArea)
	}
	if stats.MeanRoomArea != 40 {
		t.Errorf("expected mean area 40, got %g", stats.MeanRoomArea)
	}
	if stats.MinRoomArea != 40 || stats.MaxRoomArea != 40 {
		t.Errorf("expected min=max=40, got %g and %g", stats.MinRoomArea, stats.MaxRoomArea)
	}
	// door_0 appears on both rooms but is one physical door.
	if stats.DoorCount != 1 {
		t.Errorf("expected 1 unique door, got %d", stats.DoorCount)
	}
	if stats.WindowCount != 1 {
		t.Errorf("expected 1 window, got %d", stats.WindowCount)
	}
	if stats.ConnectionCount != 1 || stats.DegradedCount != 0 {
		t.Errorf("expected 1 connection, 0 degraded, got %d and %d", stats.ConnectionCount, stats.DegradedCount)
	}
	if stats.UnreachableCount != 0 {
		t.Errorf("expected no unreachable rooms, got %d", stats.UnreachableCount)
	}
	if stats.AreaByType[RoomKitchen] != 40 {
		t.Errorf("expected kitchen area 40, got %g", stats.AreaByType[RoomKitchen])
	}
	// Equal room areas give a perfect balance score.
	if stats.BalanceScore != 1.0 {
		t.Errorf("expected balance score 1.0, got %g", stats.BalanceScore)
	}
}

func TestComputePlanStatsDegradedAndUnreachable(t *testing.T) {
	plan := twoRoomPlan()
	plan.Connections = []Connection{
		{RoomA: "room_0", RoomB: "room_1", Type: ConnectionNone},
	}

	stats := ComputePlanStats(plan)
	if stats.DegradedCount != 1 {
		t.Errorf("expected 1 degraded connection, got %d", stats.DegradedCount)
	}
	// A "none" connection is not passable, so both rooms count as unreachable.
	if stats.UnreachableCount != 2 {
		t.Errorf("expected 2 unreachable rooms, got %d", stats.UnreachableCount)
	}
}

func TestComputePlanStatsEmptyPlan(t *testing.T) {
	stats := ComputePlanStats(FloorPlan{})
	if stats.RoomCount != 0 || stats.TotalRoomArea != 0 {
		t.Errorf("empty plan should produce zero stats, got %+v", stats)
	}
	if stats.BalanceScore != 1.0 {
		t.Errorf("empty plan balance should be 1.0, got %g", stats.BalanceScore)
	}
}

func TestBalanceScoreSpread(t *testing.T) {
	plan := twoRoomPlan()
	// Shrink one room's polygon to skew the areas.
	plan.Rooms[0].Polygon = RectPolygon(Rect{X: 0, Y: 0, Width: 2, Height: 8})

	stats := ComputePlanStats(plan)
	if stats.BalanceScore >= 1.0 {
		t.Errorf("unequal areas should lower the balance score, got %g", stats.BalanceScore)
	}
	if stats.BalanceScore < 0 {
		t.Errorf("balance score should not go negative, got %g", stats.BalanceScore)
	}
}

func TestComputeWallStats(t *testing.T) {
	plan := twoRoomPlan()
	summary := ComputeWallStats(plan)

	if len(summary.Rooms) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(summary.Rooms))
	}

	row := summary.Rooms[0]
	if row.RoomID != "room_0" {
		t.Fatalf("expected room_0 first, got %s", row.RoomID)
	}
	// 5x8 room: perimeter 26, three sides on the boundary (5 + 8 + 5 = 18),
	// the right wall shared with room_1 (8).
	if row.Perimeter != 26 {
		t.Errorf("expected perimeter 26, got %g", row.Perimeter)
	}
	if math.Abs(row.ExteriorLen-18) > 1e-9 {
		t.Errorf("expected exterior length 18, got %g", row.ExteriorLen)
	}
	if math.Abs(row.SharedLen-8) > 1e-9 {
		t.Errorf("expected shared length 8, got %g", row.SharedLen)
	}
	// One 0.9 door plus one 1.5 window.
	if math.Abs(row.OpeningWidth-2.4) > 1e-9 {
		t.Errorf("expected opening width 2.4, got %g", row.OpeningWidth)
	}
	if math.Abs(row.NetWallLen-(26-2.4)) > 1e-9 {
		t.Errorf("expected net wall 23.6, got %g", row.NetWallLen)
	}

	if summary.TotalPerimeter != 52 {
		t.Errorf("expected total perimeter 52, got %g", summary.TotalPerimeter)
	}
	// The party wall is counted from both sides.
	if math.Abs(summary.TotalShared-16) > 1e-9 {
		t.Errorf("expected total shared 16, got %g", summary.TotalShared)
	}
}
