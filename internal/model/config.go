package model

import (
	"errors"
	"fmt"
)

// ErrConfig marks configuration errors reported before generation starts.
// Callers test for it with errors.Is.
var ErrConfig = errors.New("invalid configuration")

// Algorithm selects the layout strategy.
type Algorithm string

const (
	AlgorithmBSP     Algorithm = "bsp"     // Seeded binary space partition (fast)
	AlgorithmEvolved Algorithm = "evolved" // Evolutionary search over split decisions (slower, often better)
)

// PlanSettings holds partitioner, connectivity and opening configuration.
// All lengths are meters, areas square meters.
type PlanSettings struct {
	// Partitioner settings
	Algorithm       Algorithm `json:"algorithm"`
	MinRoomArea     float64   `json:"min_room_area"`
	MaxRoomArea     float64   `json:"max_room_area"`
	MaxDepth        int       `json:"max_depth"`
	SplitRatioMin   float64   `json:"split_ratio_min"`   // lower bound of the split position draw
	SplitRatioMax   float64   `json:"split_ratio_max"`   // upper bound of the split position draw
	SplitRetries    int       `json:"split_retries"`     // redraws before a region is kept whole
	AspectSplitHigh float64   `json:"aspect_split_high"` // width/height above this forces a vertical split
	AspectSplitLow  float64   `json:"aspect_split_low"`  // width/height below this forces a horizontal split

	// Room settings
	RoomHeightDefault float64 `json:"room_height_default"` // ceiling height

	// Connectivity
	MinAdjacencyOverlap float64 `json:"min_adjacency_overlap"` // shared wall shorter than this is not an adjacency

	// Door settings
	DoorWidth     float64 `json:"door_width"`
	DoorHeight    float64 `json:"door_height"`
	MinDoorWidth  float64 `json:"min_door_width"` // below this the connection degrades to "none"
	OpeningMargin float64 `json:"opening_margin"` // clearance kept at both ends of a shared wall
	DoorStyle     string  `json:"door_style"`

	// Window settings
	WindowMinEdge    float64 `json:"window_min_edge"`    // exterior edges shorter than this get no window
	WindowWidthRatio float64 `json:"window_width_ratio"` // window width as a fraction of the edge
	WindowMaxWidth   float64 `json:"window_max_width"`
	WindowHeight     float64 `json:"window_height"`
	WindowStyle      string  `json:"window_style"`
}

func DefaultSettings() PlanSettings {
	return PlanSettings{
		Algorithm:           AlgorithmBSP,
		MinRoomArea:         4.0,
		MaxRoomArea:         60.0,
		MaxDepth:            8,
		SplitRatioMin:       0.3,
		SplitRatioMax:       0.7,
		SplitRetries:        8,
		AspectSplitHigh:     1.25,
		AspectSplitLow:      0.8,
		RoomHeightDefault:   2.7,
		MinAdjacencyOverlap: 0.5,
		DoorWidth:           0.9,
		DoorHeight:          2.1,
		MinDoorWidth:        0.6,
		OpeningMargin:       0.1,
		DoorStyle:           "hinged",
		WindowMinEdge:       2.0,
		WindowWidthRatio:    0.3,
		WindowMaxWidth:      2.0,
		WindowHeight:        1.2,
		WindowStyle:         "fixed",
	}
}

// Validate checks the settings for internal consistency. All violations are
// reported as ErrConfig so callers can distinguish configuration problems
// from anything that happens during generation.
func (s PlanSettings) Validate() error {
	if s.Algorithm != AlgorithmBSP && s.Algorithm != AlgorithmEvolved {
		return fmt.Errorf("%w: unknown algorithm %q", ErrConfig, s.Algorithm)
	}
	if s.MinRoomArea <= 0 {
		return fmt.Errorf("%w: min_room_area must be positive, got %g", ErrConfig, s.MinRoomArea)
	}
	if s.MaxRoomArea < s.MinRoomArea {
		return fmt.Errorf("%w: max_room_area %g is below min_room_area %g", ErrConfig, s.MaxRoomArea, s.MinRoomArea)
	}
	if s.MaxDepth < 1 || s.MaxDepth > 32 {
		return fmt.Errorf("%w: max_depth must be in 1..32, got %d", ErrConfig, s.MaxDepth)
	}
	if s.SplitRatioMin <= 0 || s.SplitRatioMax >= 1 || s.SplitRatioMin > s.SplitRatioMax {
		return fmt.Errorf("%w: split ratio range [%g, %g] must satisfy 0 < min <= max < 1",
			ErrConfig, s.SplitRatioMin, s.SplitRatioMax)
	}
	if s.SplitRetries < 1 {
		return fmt.Errorf("%w: split_retries must be at least 1, got %d", ErrConfig, s.SplitRetries)
	}
	if s.AspectSplitLow <= 0 || s.AspectSplitHigh <= s.AspectSplitLow {
		return fmt.Errorf("%w: aspect thresholds [%g, %g] must satisfy 0 < low < high",
			ErrConfig, s.AspectSplitLow, s.AspectSplitHigh)
	}
	if s.RoomHeightDefault <= 0 {
		return fmt.Errorf("%w: room_height_default must be positive, got %g", ErrConfig, s.RoomHeightDefault)
	}
	if s.MinAdjacencyOverlap <= 0 {
		return fmt.Errorf("%w: min_adjacency_overlap must be positive, got %g", ErrConfig, s.MinAdjacencyOverlap)
	}
	if s.MinDoorWidth <= 0 || s.DoorWidth < s.MinDoorWidth {
		return fmt.Errorf("%w: door widths must satisfy 0 < min_door_width <= door_width, got min %g width %g",
			ErrConfig, s.MinDoorWidth, s.DoorWidth)
	}
	if s.DoorHeight <= 0 {
		return fmt.Errorf("%w: door_height must be positive, got %g", ErrConfig, s.DoorHeight)
	}
	if s.OpeningMargin < 0 {
		return fmt.Errorf("%w: opening_margin must not be negative, got %g", ErrConfig, s.OpeningMargin)
	}
	if s.WindowMinEdge <= 0 || s.WindowHeight <= 0 || s.WindowMaxWidth <= 0 {
		return fmt.Errorf("%w: window dimensions must be positive", ErrConfig)
	}
	if s.WindowWidthRatio <= 0 || s.WindowWidthRatio >= 1 {
		return fmt.Errorf("%w: window_width_ratio must be in (0, 1), got %g", ErrConfig, s.WindowWidthRatio)
	}
	return nil
}
