package engine

import (
	"fmt"
	"math"

	"github.com/piwi3910/PlanCut/internal/model"
)

// wallShare describes the overlap interval between two adjacent rooms.
type wallShare struct {
	a, b     int     // room indexes
	vertical bool    // the shared wall is vertical
	at       float64 // x of the wall when vertical, otherwise y
	lo, hi   float64 // overlap interval along the wall
}

// resolveConnections finds every room pair sharing enough wall for an
// opening and records one doorway connection per pair, ordered by room
// index. Share k corresponds to connection k. Rooms with no adjacency at
// all come back as "unreachable room" warnings; they never fail generation.
func resolveConnections(rooms []model.Room, s model.PlanSettings) ([]model.Connection, []wallShare, []string) {
	var conns []model.Connection
	var shares []wallShare
	adjacent := make([]bool, len(rooms))

	for i := 0; i < len(rooms); i++ {
		for j := i + 1; j < len(rooms); j++ {
			share, ok := sharedWall(rooms[i].Bounds(), rooms[j].Bounds(), s.MinAdjacencyOverlap)
			if !ok {
				continue
			}
			share.a, share.b = i, j
			shares = append(shares, share)
			conns = append(conns, model.Connection{
				RoomA: rooms[i].ID,
				RoomB: rooms[j].ID,
				Type:  model.ConnectionDoorway,
			})
			adjacent[i] = true
			adjacent[j] = true
		}
	}

	var warnings []string
	if len(rooms) > 1 {
		for i, room := range rooms {
			if !adjacent[i] {
				warnings = append(warnings, fmt.Sprintf("unreachable room: %s", room.ID))
			}
		}
	}
	return conns, shares, warnings
}

// sharedWall reports the wall interval two rectangles share. Edges must be
// collinear and face each other, and the overlap must clear the adjacency
// threshold; corner contact alone never counts.
func sharedWall(a, b model.Rect, minOverlap float64) (wallShare, bool) {
	if math.Abs(a.Right()-b.X) <= coordEps || math.Abs(b.Right()-a.X) <= coordEps {
		lo := math.Max(a.Y, b.Y)
		hi := math.Min(a.Top(), b.Top())
		if hi-lo > minOverlap {
			at := a.Right()
			if math.Abs(b.Right()-a.X) <= coordEps {
				at = a.X
			}
			return wallShare{vertical: true, at: at, lo: lo, hi: hi}, true
		}
	}
	if math.Abs(a.Top()-b.Y) <= coordEps || math.Abs(b.Top()-a.Y) <= coordEps {
		lo := math.Max(a.X, b.X)
		hi := math.Min(a.Right(), b.Right())
		if hi-lo > minOverlap {
			at := a.Top()
			if math.Abs(b.Top()-a.Y) <= coordEps {
				at = a.Y
			}
			return wallShare{vertical: false, at: at, lo: lo, hi: hi}, true
		}
	}
	return wallShare{}, false
}
