package model

import "math"

// RoomTypeSpec constrains how a room type is assigned to partitioned spaces.
type RoomTypeSpec struct {
	Type     RoomType `json:"type"`
	MinArea  float64  `json:"min_area"` // m²
	MaxArea  float64  `json:"max_area"` // m²
	Required bool     `json:"required"` // must appear in every plan that has space for it
	Priority int      `json:"priority"` // lower is assigned first among required types
}

// Fits reports whether an area satisfies the spec's range.
func (s RoomTypeSpec) Fits(area float64) bool {
	return area >= s.MinArea && area <= s.MaxArea
}

// Built-in room type table.
var RoomTypeSpecs = []RoomTypeSpec{
	{Type: RoomKitchen, MinArea: 6.0, MaxArea: 20.0, Required: true, Priority: 1},
	{Type: RoomBathroom, MinArea: 3.0, MaxArea: 10.0, Required: true, Priority: 2},
	{Type: RoomLivingRoom, MinArea: 12.0, MaxArea: 45.0, Required: false, Priority: 3},
	{Type: RoomBedroom, MinArea: 8.0, MaxArea: 25.0, Required: false, Priority: 4},
	{Type: RoomDining, MinArea: 8.0, MaxArea: 25.0, Required: false, Priority: 5},
	{Type: RoomStudy, MinArea: 5.0, MaxArea: 15.0, Required: false, Priority: 6},
	{Type: RoomHallway, MinArea: 2.0, MaxArea: 12.0, Required: false, Priority: 7},
	{Type: RoomStorage, MinArea: 1.0, MaxArea: 8.0, Required: false, Priority: 8},
}

// GetRoomTypeSpec returns the built-in spec for a type, or a permissive
// fallback spec when the type is unknown.
func GetRoomTypeSpec(t RoomType) RoomTypeSpec {
	for _, s := range RoomTypeSpecs {
		if s.Type == t {
			return s
		}
	}
	return RoomTypeSpec{Type: t, MinArea: 0, MaxArea: math.MaxFloat64}
}

// DefaultRoomTypeTable returns a copy of the built-in room type table.
func DefaultRoomTypeTable() []RoomTypeSpec {
	table := make([]RoomTypeSpec, len(RoomTypeSpecs))
	copy(table, RoomTypeSpecs)
	return table
}

// RoomTypeNames returns the names of all built-in room types.
func RoomTypeNames() []string {
	var names []string
	for _, s := range RoomTypeSpecs {
		names = append(names, string(s.Type))
	}
	return names
}

// MergeRoomTypeTables overlays custom specs onto a base table. Specs with a
// matching type replace the base entry; new types are appended in order.
func MergeRoomTypeTables(base, overrides []RoomTypeSpec) []RoomTypeSpec {
	merged := make([]RoomTypeSpec, len(base))
	copy(merged, base)
	for _, o := range overrides {
		replaced := false
		for i := range merged {
			if merged[i].Type == o.Type {
				merged[i] = o
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, o)
		}
	}
	return merged
}
