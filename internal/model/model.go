package model

// PlanVersion is the interchange format version written to and accepted from
// floor plan JSON documents.
const PlanVersion = "1.0"

// RoomType identifies the semantic function of a room.
type RoomType string

const (
	RoomLivingRoom RoomType = "living_room"
	RoomKitchen    RoomType = "kitchen"
	RoomBedroom    RoomType = "bedroom"
	RoomBathroom   RoomType = "bathroom"
	RoomHallway    RoomType = "hallway"
	RoomStorage    RoomType = "storage"
	RoomStudy      RoomType = "study"
	RoomDining     RoomType = "dining_room"
)

func (t RoomType) DisplayName() string {
	switch t {
	case RoomLivingRoom:
		return "Living Room"
	case RoomKitchen:
		return "Kitchen"
	case RoomBedroom:
		return "Bedroom"
	case RoomBathroom:
		return "Bathroom"
	case RoomHallway:
		return "Hallway"
	case RoomStorage:
		return "Storage"
	case RoomStudy:
		return "Study"
	case RoomDining:
		return "Dining Room"
	default:
		return string(t)
	}
}

// Door represents an opening in a room wall. Wall indexes the room's own
// polygon edges (0 = edge from point 0 to point 1); Position is normalized
// along that edge, 0 at the edge start and 1 at its end.
type Door struct {
	ID       string  `json:"id"`
	Wall     int     `json:"wall"`
	Position float64 `json:"position"` // 0..1 along the wall edge
	Width    float64 `json:"width"`    // m
	Height   float64 `json:"height,omitempty"`
	Style    string  `json:"style,omitempty"`
}

// Window represents a glazed opening on an exterior wall. Wall and Position
// follow the same conventions as Door.
type Window struct {
	Wall     int     `json:"wall"`
	Position float64 `json:"position"` // 0..1 along the wall edge
	Width    float64 `json:"width"`    // m
	Height   float64 `json:"height,omitempty"`
	Style    string  `json:"style,omitempty"`
}

// ConnectionType describes how two adjacent rooms join.
type ConnectionType string

const (
	ConnectionDoorway ConnectionType = "doorway"
	ConnectionArch    ConnectionType = "arch"
	ConnectionNone    ConnectionType = "none" // adjacency too narrow for an opening
)

// Connection records that two rooms share a wall. DoorID references the door
// placed on that wall, or is empty when Type is "none" or "arch".
type Connection struct {
	RoomA  string         `json:"room_a"`
	RoomB  string         `json:"room_b"`
	DoorID string         `json:"door_id,omitempty"`
	Type   ConnectionType `json:"type"`
}

// Room is a single rectangular room of the plan. Polygon always holds exactly
// four points forming an axis-aligned counter-clockwise ring.
type Room struct {
	ID      string   `json:"id"`
	Type    RoomType `json:"type"`
	Polygon Polygon  `json:"polygon"`
	Doors   []Door   `json:"doors"`
	Windows []Window `json:"windows"`
	Height  float64  `json:"height"` // ceiling height in m
	Tags    []string `json:"tags,omitempty"`
}

func (r Room) Bounds() Rect {
	return r.Polygon.Bounds()
}

func (r Room) Area() float64 {
	return r.Polygon.Area()
}

// FindDoor returns the door with the given id, or nil.
func (r Room) FindDoor(id string) *Door {
	for i := range r.Doors {
		if r.Doors[i].ID == id {
			return &r.Doors[i]
		}
	}
	return nil
}

// Dimensions is the overall footprint of a plan.
type Dimensions struct {
	Width  float64 `json:"width"`  // m
	Height float64 `json:"height"` // m
}

func (d Dimensions) Area() float64 {
	return d.Width * d.Height
}

// PlanMetadata carries the generation inputs and any relaxations applied.
// All fields are deterministic functions of the generation inputs so that
// identical inputs yield byte-identical plans.
type PlanMetadata struct {
	Seed           int64     `json:"seed"`
	RoomsRequested int       `json:"rooms_requested"`
	Algorithm      Algorithm `json:"algorithm"`
	Warnings       []string  `json:"warnings,omitempty"`
}

// FloorPlan is the complete generated plan. It is immutable after
// generation: derived values are computed, never cached back onto it.
type FloorPlan struct {
	Version     string       `json:"version"`
	ID          string       `json:"id"`
	Dimensions  Dimensions   `json:"dimensions"`
	Rooms       []Room       `json:"rooms"`
	Connections []Connection `json:"connections"`
	Metadata    PlanMetadata `json:"metadata"`
}

// FindRoom returns the room with the given id, or nil.
func (p FloorPlan) FindRoom(id string) *Room {
	for i := range p.Rooms {
		if p.Rooms[i].ID == id {
			return &p.Rooms[i]
		}
	}
	return nil
}

// FindDoor returns the room owning the door with the given id along with the
// door itself, or nil, nil.
func (p FloorPlan) FindDoor(id string) (*Room, *Door) {
	for i := range p.Rooms {
		if d := p.Rooms[i].FindDoor(id); d != nil {
			return &p.Rooms[i], d
		}
	}
	return nil, nil
}

// TotalRoomArea returns the summed area of all rooms.
func (p FloorPlan) TotalRoomArea() float64 {
	var total float64
	for _, r := range p.Rooms {
		total += r.Area()
	}
	return total
}

// Project ties a generation request and its result together for save/load.
type Project struct {
	Name      string         `json:"name"`
	Width     float64        `json:"width"`  // m
	Height    float64        `json:"height"` // m
	RoomCount int            `json:"room_count"`
	Seed      int64          `json:"seed"`
	Settings  PlanSettings   `json:"settings"`
	RoomTypes []RoomTypeSpec `json:"room_types,omitempty"` // nil means the built-in table
	Plan      *FloorPlan     `json:"plan,omitempty"`
}

func NewProject() Project {
	return Project{
		Name:      "Untitled",
		Width:     10.0,
		Height:    8.0,
		RoomCount: 4,
		Seed:      1,
		Settings:  DefaultSettings(),
	}
}
