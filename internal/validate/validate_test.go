package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/PlanCut/internal/model"
)

// twoRoomPlan builds a valid 10x8 plan split down the middle, with a door
// on the party wall shared under one id by both rooms.
func twoRoomPlan() model.FloorPlan {
	left := model.Room{
		ID:      "room_0",
		Type:    model.RoomKitchen,
		Polygon: model.RectPolygon(model.Rect{X: 0, Y: 0, Width: 5, Height: 8}),
		Doors:   []model.Door{{ID: "door_0", Wall: 1, Position: 0.5, Width: 0.9}},
		Windows: []model.Window{{Wall: 3, Position: 0.5, Width: 1.5}},
		Height:  2.7,
	}
	right := model.Room{
		ID:      "room_1",
		Type:    model.RoomLivingRoom,
		Polygon: model.RectPolygon(model.Rect{X: 5, Y: 0, Width: 5, Height: 8}),
		Doors:   []model.Door{{ID: "door_0", Wall: 3, Position: 0.5, Width: 0.9}},
		Windows: []model.Window{{Wall: 1, Position: 0.5, Width: 1.5}},
		Height:  2.7,
	}
	return model.FloorPlan{
		Version:    model.PlanVersion,
		ID:         "test-plan",
		Dimensions: model.Dimensions{Width: 10, Height: 8},
		Rooms:      []model.Room{left, right},
		Connections: []model.Connection{
			{RoomA: "room_0", RoomB: "room_1", DoorID: "door_0", Type: model.ConnectionDoorway},
		},
	}
}

func TestCheck_ValidPlanHasNoFindings(t *testing.T) {
	assert.Empty(t, Check(twoRoomPlan()))
}

func TestCheck_EmptyPlanDoesNotPanic(t *testing.T) {
	errs := Check(model.FloorPlan{})
	require.NotEmpty(t, errs)
	assert.Equal(t, CodeDimensionMismatch, errs[0].Code)
}

func TestCheck_PolygonShape(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(*model.Room)
	}{
		{"triangle", func(r *model.Room) { r.Polygon = r.Polygon[:3] }},
		{"five points", func(r *model.Room) { r.Polygon = append(r.Polygon, model.Point2D{X: 2, Y: 2}) }},
		{"diagonal edge", func(r *model.Room) { r.Polygon[2] = model.Point2D{X: 4, Y: 9} }},
		{"zero area", func(r *model.Room) {
			r.Polygon = model.RectPolygon(model.Rect{X: 0, Y: 0, Width: 5, Height: 0})
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := twoRoomPlan()
			tt.corrupt(&plan.Rooms[0])
			errs := Check(plan)
			require.NotEmpty(t, errs)
			assert.True(t, hasCode(errs, CodePolygonShape), "want polygon_shape finding, got %v", errs)
		})
	}
}

func TestCheck_OpeningRange(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(*model.Room)
	}{
		{"wall index out of range", func(r *model.Room) { r.Doors[0].Wall = 4 }},
		{"negative wall index", func(r *model.Room) { r.Doors[0].Wall = -1 }},
		{"position above one", func(r *model.Room) { r.Doors[0].Position = 1.2 }},
		{"negative position", func(r *model.Room) { r.Windows[0].Position = -0.1 }},
		{"width exceeds edge", func(r *model.Room) { r.Doors[0].Width = 9.5 }},
		{"non-positive width", func(r *model.Room) { r.Windows[0].Width = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := twoRoomPlan()
			tt.corrupt(&plan.Rooms[0])
			errs := Check(plan)
			require.NotEmpty(t, errs)
			assert.True(t, hasCode(errs, CodeOpeningRange), "want opening_range finding, got %v", errs)
			assert.Equal(t, "room_0", errs[0].RoomID)
		})
	}
}

func TestCheck_BrokenReferences(t *testing.T) {
	t.Run("unknown room", func(t *testing.T) {
		plan := twoRoomPlan()
		plan.Connections[0].RoomB = "room_9"
		errs := Check(plan)
		require.Len(t, errs, 1)
		assert.Equal(t, CodeBrokenReference, errs[0].Code)
	})

	t.Run("unknown door", func(t *testing.T) {
		plan := twoRoomPlan()
		plan.Connections[0].DoorID = "door_9"
		errs := Check(plan)
		require.Len(t, errs, 1)
		assert.Equal(t, CodeBrokenReference, errs[0].Code)
	})

	t.Run("doorway without a door", func(t *testing.T) {
		plan := twoRoomPlan()
		plan.Connections[0].DoorID = ""
		errs := Check(plan)
		require.Len(t, errs, 1)
		assert.Equal(t, CodeBrokenReference, errs[0].Code)
	})

	t.Run("degraded connection needs no door", func(t *testing.T) {
		plan := twoRoomPlan()
		plan.Connections[0].Type = model.ConnectionNone
		plan.Connections[0].DoorID = ""
		assert.Empty(t, Check(plan))
	})
}

func TestCheck_RoomOverlap(t *testing.T) {
	plan := twoRoomPlan()
	// Widen the left room so it reaches 1m into the right one.
	plan.Rooms[0].Polygon = model.RectPolygon(model.Rect{X: 0, Y: 0, Width: 6, Height: 8})

	errs := Check(plan)
	assert.True(t, hasCode(errs, CodeRoomOverlap), "want room_overlap finding, got %v", errs)
	// The extra meter also breaks tiling completeness.
	assert.True(t, hasCode(errs, CodeTilingIncomplete), "want tiling_incomplete finding, got %v", errs)
}

func TestCheck_TilingGap(t *testing.T) {
	plan := twoRoomPlan()
	// Shrink the right room, leaving a strip of footprint uncovered.
	plan.Rooms[1].Polygon = model.RectPolygon(model.Rect{X: 5, Y: 0, Width: 4, Height: 8})

	errs := Check(plan)
	require.Len(t, errs, 1)
	assert.Equal(t, CodeTilingIncomplete, errs[0].Code)
}

func TestCheck_DuplicateRoomID(t *testing.T) {
	plan := twoRoomPlan()
	plan.Rooms[1].ID = "room_0"

	errs := Check(plan)
	assert.True(t, hasCode(errs, CodeDuplicateRoomID), "want duplicate_room_id finding, got %v", errs)
}

func TestCheck_FindingsAccumulate(t *testing.T) {
	plan := twoRoomPlan()
	plan.Rooms[0].Doors[0].Position = 2.0
	plan.Connections[0].RoomA = "nope"

	errs := Check(plan)
	assert.True(t, hasCode(errs, CodeOpeningRange))
	assert.True(t, hasCode(errs, CodeBrokenReference))
}

func TestFormatValidationErrors(t *testing.T) {
	errs := []ValidationError{
		{Code: CodeRoomOverlap, RoomID: "room_0", Detail: "overlaps room_1 by 8 m²"},
		{Code: CodeTilingIncomplete, Detail: "room areas sum to 72 m², footprint is 80 m²"},
	}
	lines := FormatValidationErrors(errs)
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "room_overlap (room_0)")
	assert.Contains(t, lines[1], "tiling_incomplete:")

	assert.Nil(t, FormatValidationErrors(nil))
}

func hasCode(errs []ValidationError, code ErrorCode) bool {
	for _, e := range errs {
		if e.Code == code {
			return true
		}
	}
	return false
}
