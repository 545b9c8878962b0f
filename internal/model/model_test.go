package model

import (
	"testing"
)

// twoRoomPlan builds a minimal valid plan: a 10x8 footprint split at x=5
// with a doorway between the two rooms.
func twoRoomPlan() FloorPlan {
	return FloorPlan{
		Version:    PlanVersion,
		ID:         "test-plan",
		Dimensions: Dimensions{Width: 10, Height: 8},
		Rooms: []Room{
			{
				ID:      "room_0",
				Type:    RoomLivingRoom,
				Polygon: RectPolygon(Rect{X: 0, Y: 0, Width: 5, Height: 8}),
				Doors: []Door{
					{ID: "door_0", Wall: 1, Position: 0.5, Width: 0.9, Height: 2.1, Style: "hinged"},
				},
				Windows: []Window{
					{Wall: 3, Position: 0.5, Width: 1.5, Height: 1.2, Style: "fixed"},
				},
				Height: 2.7,
			},
			{
				ID:      "room_1",
				Type:    RoomKitchen,
				Polygon: RectPolygon(Rect{X: 5, Y: 0, Width: 5, Height: 8}),
				Doors: []Door{
					{ID: "door_0", Wall: 3, Position: 0.5, Width: 0.9, Height: 2.1, Style: "hinged"},
				},
				Windows: []Window{},
				Height:  2.7,
			},
		},
		Connections: []Connection{
			{RoomA: "room_0", RoomB: "room_1", DoorID: "door_0", Type: ConnectionDoorway},
		},
		Metadata: PlanMetadata{Seed: 42, RoomsRequested: 2, Algorithm: AlgorithmBSP},
	}
}

func TestRoomTypeDisplayName(t *testing.T) {
	if got := RoomLivingRoom.DisplayName(); got != "Living Room" {
		t.Errorf("expected 'Living Room', got %q", got)
	}
	if got := RoomType("wine_cellar").DisplayName(); got != "wine_cellar" {
		t.Errorf("unknown type should fall back to its tag, got %q", got)
	}
}

func TestRoomBoundsAndArea(t *testing.T) {
	plan := twoRoomPlan()
	room := plan.Rooms[0]

	b := room.Bounds()
	if b.Width != 5 || b.Height != 8 {
		t.Errorf("expected bounds 5x8, got %gx%g", b.Width, b.Height)
	}
	if room.Area() != 40 {
		t.Errorf("expected area 40, got %g", room.Area())
	}
}

func TestFindRoom(t *testing.T) {
	plan := twoRoomPlan()

	if r := plan.FindRoom("room_1"); r == nil || r.Type != RoomKitchen {
		t.Errorf("expected to find kitchen room_1, got %+v", r)
	}
	if r := plan.FindRoom("room_9"); r != nil {
		t.Errorf("expected nil for missing room, got %+v", r)
	}
}

func TestFindDoor(t *testing.T) {
	plan := twoRoomPlan()

	room, door := plan.FindDoor("door_0")
	if room == nil || door == nil {
		t.Fatal("expected to find door_0")
	}
	// The first room carrying the id wins.
	if room.ID != "room_0" {
		t.Errorf("expected owning room room_0, got %s", room.ID)
	}
	if door.Width != 0.9 {
		t.Errorf("expected door width 0.9, got %g", door.Width)
	}

	if room, door := plan.FindDoor("door_9"); room != nil || door != nil {
		t.Error("expected nil, nil for missing door")
	}
}

func TestTotalRoomArea(t *testing.T) {
	plan := twoRoomPlan()
	if got := plan.TotalRoomArea(); got != 80 {
		t.Errorf("expected total area 80, got %g", got)
	}
}

func TestDimensionsArea(t *testing.T) {
	d := Dimensions{Width: 10, Height: 8}
	if d.Area() != 80 {
		t.Errorf("expected 80, got %g", d.Area())
	}
}

func TestNewProjectDefaults(t *testing.T) {
	p := NewProject()
	if p.Name != "Untitled" {
		t.Errorf("expected name 'Untitled', got %q", p.Name)
	}
	if p.RoomCount != 4 {
		t.Errorf("expected room count 4, got %d", p.RoomCount)
	}
	if p.Settings.Algorithm != AlgorithmBSP {
		t.Errorf("expected bsp algorithm, got %q", p.Settings.Algorithm)
	}
	if p.Plan != nil {
		t.Error("new project should have no plan")
	}
}
