package engine

import (
	"fmt"

	"github.com/piwi3910/PlanCut/internal/model"
)

// Coordinates produced by splitting are reused exactly for both children, so
// adjacency checks only need to absorb float noise, not modelling error.
const coordEps = 1e-9

// splitSource supplies the random decisions the partitioner consumes in
// pre-order: one draw per ambiguous axis choice and one per split attempt.
// *rand.Rand satisfies it; the evolutionary search substitutes a genome
// replayer.
type splitSource interface {
	Float64() float64
}

// buildTree partitions the footprint into roomCount regions. When a region
// cannot be split further without producing a room below MinRoomArea, it is
// kept whole and the plan ends up with fewer rooms than requested; those
// relaxations come back as warnings.
func buildTree(width, height float64, roomCount int, src splitSource, s model.PlanSettings) (Tree, []string) {
	tree := Tree{Root: NoNode}
	var warnings []string

	root := Node{
		Bounds:  model.Rect{X: 0, Y: 0, Width: width, Height: height},
		Left:    NoNode,
		Right:   NoNode,
		Budget:  roomCount,
		RoomIdx: -1,
	}
	tree.Root = tree.add(root)
	splitNode(&tree, tree.Root, src, s, &warnings)
	return tree, warnings
}

// splitNode recursively subdivides the node until a stop rule fires. The
// arena grows during recursion, so the node is read by value and written
// back once its children exist.
func splitNode(t *Tree, id NodeID, src splitSource, s model.PlanSettings, warnings *[]string) {
	n := t.Nodes[id]

	if n.Budget <= 1 {
		return
	}
	if n.Bounds.Area() <= 2*s.MinRoomArea {
		*warnings = append(*warnings, fmt.Sprintf(
			"region at (%.2f, %.2f) too small to hold %d rooms, keeping it whole",
			n.Bounds.X, n.Bounds.Y, n.Budget))
		return
	}
	if n.Depth >= s.MaxDepth {
		*warnings = append(*warnings, fmt.Sprintf(
			"max depth %d reached with %d rooms pending", s.MaxDepth, n.Budget))
		return
	}

	axis := chooseAxis(n.Bounds, src, s)
	splitAt, ok := chooseSplit(n.Bounds, axis, src, s)
	if !ok {
		*warnings = append(*warnings, fmt.Sprintf(
			"no valid split for region at (%.2f, %.2f), keeping %d-room budget as one room",
			n.Bounds.X, n.Bounds.Y, n.Budget))
		return
	}

	var leftBounds, rightBounds model.Rect
	if axis == SplitVertical {
		leftBounds, rightBounds = n.Bounds.SplitAtX(splitAt)
	} else {
		leftBounds, rightBounds = n.Bounds.SplitAtY(splitAt)
	}

	// The larger half of an odd budget always goes left.
	leftBudget := (n.Budget + 1) / 2
	rightBudget := n.Budget / 2

	leftID := t.add(Node{
		Bounds: leftBounds, Left: NoNode, Right: NoNode,
		Budget: leftBudget, Depth: n.Depth + 1, RoomIdx: -1,
	})
	rightID := t.add(Node{
		Bounds: rightBounds, Left: NoNode, Right: NoNode,
		Budget: rightBudget, Depth: n.Depth + 1, RoomIdx: -1,
	})

	n.Axis = axis
	n.SplitAt = splitAt
	n.Left = leftID
	n.Right = rightID
	t.Nodes[id] = n

	splitNode(t, leftID, src, s, warnings)
	splitNode(t, rightID, src, s, warnings)
}

// chooseAxis picks the cut direction. Elongated regions are always cut
// across their long side; only near-square regions consume a random draw.
func chooseAxis(r model.Rect, src splitSource, s model.PlanSettings) SplitAxis {
	aspect := r.AspectRatio()
	switch {
	case aspect > s.AspectSplitHigh:
		return SplitVertical
	case aspect < s.AspectSplitLow:
		return SplitHorizontal
	default:
		if src.Float64() < 0.5 {
			return SplitVertical
		}
		return SplitHorizontal
	}
}

// chooseSplit draws a cut position uniformly within the configured ratio
// range, rejecting positions that would leave either child under
// MinRoomArea. It reports false once the retry budget is exhausted.
func chooseSplit(r model.Rect, axis SplitAxis, src splitSource, s model.PlanSettings) (float64, bool) {
	for try := 0; try < s.SplitRetries; try++ {
		ratio := s.SplitRatioMin + src.Float64()*(s.SplitRatioMax-s.SplitRatioMin)

		var at, areaA, areaB float64
		if axis == SplitVertical {
			at = r.X + r.Width*ratio
			areaA = (at - r.X) * r.Height
			areaB = (r.Right() - at) * r.Height
		} else {
			at = r.Y + r.Height*ratio
			areaA = (at - r.Y) * r.Width
			areaB = (r.Top() - at) * r.Width
		}

		if areaA >= s.MinRoomArea && areaB >= s.MinRoomArea {
			return at, true
		}
	}
	return 0, false
}
