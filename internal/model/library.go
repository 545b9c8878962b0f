package model

import "github.com/google/uuid"

// OpeningProfile represents a reusable door and window sizing configuration.
type OpeningProfile struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	DoorWidth      float64 `json:"door_width"`
	DoorHeight     float64 `json:"door_height"`
	MinDoorWidth   float64 `json:"min_door_width"`
	OpeningMargin  float64 `json:"opening_margin"`
	DoorStyle      string  `json:"door_style"`
	WindowHeight   float64 `json:"window_height"`
	WindowMaxWidth float64 `json:"window_max_width"`
	WindowStyle    string  `json:"window_style"`
}

// NewOpeningProfile creates a new OpeningProfile with a generated ID.
func NewOpeningProfile(name string, doorWidth, doorHeight, minDoorWidth, margin float64, doorStyle string, windowHeight, windowMaxWidth float64, windowStyle string) OpeningProfile {
	return OpeningProfile{
		ID:             uuid.New().String()[:8],
		Name:           name,
		DoorWidth:      doorWidth,
		DoorHeight:     doorHeight,
		MinDoorWidth:   minDoorWidth,
		OpeningMargin:  margin,
		DoorStyle:      doorStyle,
		WindowHeight:   windowHeight,
		WindowMaxWidth: windowMaxWidth,
		WindowStyle:    windowStyle,
	}
}

// ApplyToSettings copies this opening profile's parameters into the given PlanSettings.
func (op OpeningProfile) ApplyToSettings(s *PlanSettings) {
	s.DoorWidth = op.DoorWidth
	s.DoorHeight = op.DoorHeight
	s.MinDoorWidth = op.MinDoorWidth
	s.OpeningMargin = op.OpeningMargin
	s.DoorStyle = op.DoorStyle
	s.WindowHeight = op.WindowHeight
	s.WindowMaxWidth = op.WindowMaxWidth
	s.WindowStyle = op.WindowStyle
}

// FootprintPreset represents a reusable building footprint definition.
type FootprintPreset struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Width     float64 `json:"width"`  // m
	Height    float64 `json:"height"` // m
	RoomCount int     `json:"room_count"`
}

// NewFootprintPreset creates a new FootprintPreset with a generated ID.
func NewFootprintPreset(name string, width, height float64, roomCount int) FootprintPreset {
	return FootprintPreset{
		ID:        uuid.New().String()[:8],
		Name:      name,
		Width:     width,
		Height:    height,
		RoomCount: roomCount,
	}
}

// ToDimensions converts a FootprintPreset into plan dimensions.
func (fp FootprintPreset) ToDimensions() Dimensions {
	return Dimensions{Width: fp.Width, Height: fp.Height}
}

// Library holds the user's saved opening profiles and footprint presets.
type Library struct {
	Openings   []OpeningProfile  `json:"openings"`
	Footprints []FootprintPreset `json:"footprints"`
}

// DefaultLibrary returns a library populated with common defaults.
func DefaultLibrary() Library {
	return Library{
		Openings: []OpeningProfile{
			NewOpeningProfile("Standard Hinged 0.9m", 0.9, 2.1, 0.6, 0.1, "hinged", 1.2, 2.0, "fixed"),
			NewOpeningProfile("Narrow Hinged 0.8m", 0.8, 2.0, 0.6, 0.1, "hinged", 1.2, 1.8, "fixed"),
			NewOpeningProfile("Wide Sliding 1.2m", 1.2, 2.1, 0.8, 0.15, "sliding", 1.4, 2.4, "sliding"),
			NewOpeningProfile("Accessible 1.0m", 1.0, 2.1, 0.9, 0.2, "hinged", 1.2, 2.0, "fixed"),
		},
		Footprints: []FootprintPreset{
			NewFootprintPreset("Studio 6x8", 6.0, 8.0, 3),
			NewFootprintPreset("Apartment 10x8", 10.0, 8.0, 4),
			NewFootprintPreset("Cottage 12x9", 12.0, 9.0, 5),
			NewFootprintPreset("Family Home 14x10", 14.0, 10.0, 6),
			NewFootprintPreset("Bungalow 16x12", 16.0, 12.0, 8),
		},
	}
}

// FindOpeningByID returns a pointer to the opening profile with the given ID, or nil.
func (lib *Library) FindOpeningByID(id string) *OpeningProfile {
	for i := range lib.Openings {
		if lib.Openings[i].ID == id {
			return &lib.Openings[i]
		}
	}
	return nil
}

// FindFootprintByID returns a pointer to the footprint preset with the given ID, or nil.
func (lib *Library) FindFootprintByID(id string) *FootprintPreset {
	for i := range lib.Footprints {
		if lib.Footprints[i].ID == id {
			return &lib.Footprints[i]
		}
	}
	return nil
}

// OpeningNames returns a list of opening profile names for selection lists.
func (lib *Library) OpeningNames() []string {
	names := make([]string, len(lib.Openings))
	for i, op := range lib.Openings {
		names[i] = op.Name
	}
	return names
}

// FootprintNames returns a list of footprint preset names for selection lists.
func (lib *Library) FootprintNames() []string {
	names := make([]string, len(lib.Footprints))
	for i, fp := range lib.Footprints {
		names[i] = fp.Name
	}
	return names
}

// FindOpeningByName returns a pointer to the first opening profile with the given name, or nil.
func (lib *Library) FindOpeningByName(name string) *OpeningProfile {
	for i := range lib.Openings {
		if lib.Openings[i].Name == name {
			return &lib.Openings[i]
		}
	}
	return nil
}

// FindFootprintByName returns a pointer to the first footprint preset with the given name, or nil.
func (lib *Library) FindFootprintByName(name string) *FootprintPreset {
	for i := range lib.Footprints {
		if lib.Footprints[i].Name == name {
			return &lib.Footprints[i]
		}
	}
	return nil
}
