// Package validate checks the structural invariants of a generated floor
// plan. Check is a total function: any plan, however broken, produces a list
// of findings rather than a panic, so batch pipelines can scan many plans
// without interruption.
package validate

import (
	"fmt"
	"math"

	"github.com/piwi3910/PlanCut/internal/model"
)

// Tolerance for area and overlap comparisons. Split coordinates are shared
// exactly between siblings, so anything beyond float noise is a real defect.
const eps = 1e-6

// ErrorCode classifies a validation finding.
type ErrorCode string

const (
	CodePolygonShape      ErrorCode = "polygon_shape"      // not a 4-point axis-aligned rectangle
	CodeOpeningRange      ErrorCode = "opening_range"      // wall index or position out of range
	CodeBrokenReference   ErrorCode = "broken_reference"   // connection names an unknown room or door
	CodeRoomOverlap       ErrorCode = "room_overlap"       // two rooms cover the same area
	CodeTilingIncomplete  ErrorCode = "tiling_incomplete"  // room areas do not sum to the footprint
	CodeDimensionMismatch ErrorCode = "dimension_mismatch" // footprint dimensions not positive
	CodeDuplicateRoomID   ErrorCode = "duplicate_room_id"
)

// ValidationError is a single structural defect found in a plan.
type ValidationError struct {
	Code   ErrorCode `json:"code"`
	RoomID string    `json:"room_id,omitempty"` // room involved, when one can be named
	Detail string    `json:"detail"`
}

func (e ValidationError) Error() string {
	if e.RoomID != "" {
		return fmt.Sprintf("%s (%s): %s", e.Code, e.RoomID, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Detail)
}

// Check validates a plan against its structural invariants. An empty result
// means the plan is valid. Findings accumulate: one broken room does not
// hide defects elsewhere in the plan.
func Check(plan model.FloorPlan) []ValidationError {
	var errs []ValidationError

	if plan.Dimensions.Width <= 0 || plan.Dimensions.Height <= 0 {
		errs = append(errs, ValidationError{
			Code:   CodeDimensionMismatch,
			Detail: fmt.Sprintf("footprint %gx%g must have positive dimensions", plan.Dimensions.Width, plan.Dimensions.Height),
		})
	}

	errs = append(errs, checkRooms(plan)...)
	errs = append(errs, checkOverlaps(plan)...)
	errs = append(errs, checkTiling(plan)...)
	errs = append(errs, checkConnections(plan)...)
	return errs
}

// checkRooms verifies each room's polygon shape and opening placement.
func checkRooms(plan model.FloorPlan) []ValidationError {
	var errs []ValidationError
	seen := make(map[string]bool, len(plan.Rooms))

	for _, room := range plan.Rooms {
		if seen[room.ID] {
			errs = append(errs, ValidationError{
				Code:   CodeDuplicateRoomID,
				RoomID: room.ID,
				Detail: "room id appears more than once",
			})
		}
		seen[room.ID] = true

		if !room.Polygon.IsAxisAlignedRect(eps) {
			errs = append(errs, ValidationError{
				Code:   CodePolygonShape,
				RoomID: room.ID,
				Detail: fmt.Sprintf("polygon with %d points is not a positive-area axis-aligned rectangle", len(room.Polygon)),
			})
			// Opening checks index into the polygon; skip them for a
			// malformed ring.
			continue
		}

		for _, d := range room.Doors {
			errs = append(errs, checkOpening(room, "door "+d.ID, d.Wall, d.Position, d.Width)...)
		}
		for i, w := range room.Windows {
			errs = append(errs, checkOpening(room, fmt.Sprintf("window %d", i), w.Wall, w.Position, w.Width)...)
		}
	}
	return errs
}

// checkOpening verifies one door or window against its owning room's edge.
func checkOpening(room model.Room, name string, wall int, position, width float64) []ValidationError {
	var errs []ValidationError
	if wall < 0 || wall >= len(room.Polygon) {
		errs = append(errs, ValidationError{
			Code:   CodeOpeningRange,
			RoomID: room.ID,
			Detail: fmt.Sprintf("%s wall index %d out of range [0, %d)", name, wall, len(room.Polygon)),
		})
		return errs
	}
	if position < 0 || position > 1 {
		errs = append(errs, ValidationError{
			Code:   CodeOpeningRange,
			RoomID: room.ID,
			Detail: fmt.Sprintf("%s position %g outside [0, 1]", name, position),
		})
	}
	if edge := room.Polygon.EdgeLength(wall); width <= 0 || width > edge+eps {
		errs = append(errs, ValidationError{
			Code:   CodeOpeningRange,
			RoomID: room.ID,
			Detail: fmt.Sprintf("%s width %g does not fit edge length %g", name, width, edge),
		})
	}
	return errs
}

// checkOverlaps reports every room pair covering common area beyond eps.
func checkOverlaps(plan model.FloorPlan) []ValidationError {
	var errs []ValidationError
	for i := 0; i < len(plan.Rooms); i++ {
		for j := i + 1; j < len(plan.Rooms); j++ {
			a, b := plan.Rooms[i], plan.Rooms[j]
			if overlap := a.Bounds().IntersectionArea(b.Bounds()); overlap > eps {
				errs = append(errs, ValidationError{
					Code:   CodeRoomOverlap,
					RoomID: a.ID,
					Detail: fmt.Sprintf("overlaps %s by %g m²", b.ID, overlap),
				})
			}
		}
	}
	return errs
}

// checkTiling verifies that the rooms exactly cover the footprint. Overlaps
// are reported separately, so a matching total area with no overlaps implies
// a gap-free tiling.
func checkTiling(plan model.FloorPlan) []ValidationError {
	if len(plan.Rooms) == 0 || plan.Dimensions.Width <= 0 || plan.Dimensions.Height <= 0 {
		return nil
	}
	total := plan.TotalRoomArea()
	want := plan.Dimensions.Area()
	if math.Abs(total-want) > eps {
		return []ValidationError{{
			Code:   CodeTilingIncomplete,
			Detail: fmt.Sprintf("room areas sum to %g m², footprint is %g m²", total, want),
		}}
	}
	return nil
}

// checkConnections verifies that every connection's room and door ids
// resolve within the plan. A doorway connection must carry a resolvable
// door; degraded connections carry none by design.
func checkConnections(plan model.FloorPlan) []ValidationError {
	var errs []ValidationError
	for i, c := range plan.Connections {
		for _, id := range []string{c.RoomA, c.RoomB} {
			if plan.FindRoom(id) == nil {
				errs = append(errs, ValidationError{
					Code:   CodeBrokenReference,
					Detail: fmt.Sprintf("connection %d references unknown room %q", i, id),
				})
			}
		}
		if c.DoorID != "" {
			if room, _ := plan.FindDoor(c.DoorID); room == nil {
				errs = append(errs, ValidationError{
					Code:   CodeBrokenReference,
					Detail: fmt.Sprintf("connection %d references unknown door %q", i, c.DoorID),
				})
			}
		}
		if c.Type == model.ConnectionDoorway && c.DoorID == "" {
			errs = append(errs, ValidationError{
				Code:   CodeBrokenReference,
				Detail: fmt.Sprintf("doorway connection %d between %s and %s has no door", i, c.RoomA, c.RoomB),
			})
		}
	}
	return errs
}

// FormatValidationErrors produces one human-readable line per finding.
func FormatValidationErrors(errs []ValidationError) []string {
	var lines []string
	for _, e := range errs {
		lines = append(lines, e.Error())
	}
	return lines
}
