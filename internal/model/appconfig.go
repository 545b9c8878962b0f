package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Default generation settings applied to new projects
	DefaultAlgorithm   Algorithm `json:"default_algorithm"`
	DefaultMinRoomArea float64   `json:"default_min_room_area"`
	DefaultMaxRoomArea float64   `json:"default_max_room_area"`
	DefaultMaxDepth    int       `json:"default_max_depth"`
	DefaultRoomHeight  float64   `json:"default_room_height"`
	DefaultDoorWidth   float64   `json:"default_door_width"`
	DefaultDoorStyle   string    `json:"default_door_style"`

	// Default footprint for new projects
	LastWidth     float64 `json:"last_width"`  // m
	LastHeight    float64 `json:"last_height"` // m
	LastRoomCount int     `json:"last_room_count"`

	// Application preferences
	RecentPlans []string `json:"recent_plans"`
}

const maxRecentPlans = 10

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching the values from DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		DefaultAlgorithm:   defaults.Algorithm,
		DefaultMinRoomArea: defaults.MinRoomArea,
		DefaultMaxRoomArea: defaults.MaxRoomArea,
		DefaultMaxDepth:    defaults.MaxDepth,
		DefaultRoomHeight:  defaults.RoomHeightDefault,
		DefaultDoorWidth:   defaults.DoorWidth,
		DefaultDoorStyle:   defaults.DoorStyle,
		LastWidth:          10.0,
		LastHeight:         8.0,
		LastRoomCount:      4,
		RecentPlans:        []string{},
	}
}

// ApplyToSettings copies the default values from AppConfig into a PlanSettings
// struct. This is used when creating a new project so it inherits the user's
// saved defaults.
func (c AppConfig) ApplyToSettings(s *PlanSettings) {
	s.Algorithm = c.DefaultAlgorithm
	s.MinRoomArea = c.DefaultMinRoomArea
	s.MaxRoomArea = c.DefaultMaxRoomArea
	s.MaxDepth = c.DefaultMaxDepth
	s.RoomHeightDefault = c.DefaultRoomHeight
	s.DoorWidth = c.DefaultDoorWidth
	s.DoorStyle = c.DefaultDoorStyle
}

// AddRecentPlan records a plan path at the head of the recent list, removing
// duplicates and capping the list length.
func (c *AppConfig) AddRecentPlan(path string) {
	recent := []string{path}
	for _, p := range c.RecentPlans {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > maxRecentPlans {
		recent = recent[:maxRecentPlans]
	}
	c.RecentPlans = recent
}
