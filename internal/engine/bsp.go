package engine

import "github.com/piwi3910/PlanCut/internal/model"

// NodeID indexes a node within a Tree's arena. NoNode marks an absent child.
type NodeID int32

const NoNode NodeID = -1

// SplitAxis identifies the direction of a partition cut.
type SplitAxis int

const (
	SplitVertical   SplitAxis = iota // cut parallel to the y axis, dividing the width
	SplitHorizontal                  // cut parallel to the x axis, dividing the height
)

func (a SplitAxis) String() string {
	if a == SplitVertical {
		return "vertical"
	}
	return "horizontal"
}

// Node is one region of the partition. Leaves have Left == Right == NoNode
// and each eventually maps to a room.
type Node struct {
	Bounds  model.Rect
	Axis    SplitAxis
	SplitAt float64 // absolute coordinate of the cut, meaningless on leaves
	Left    NodeID
	Right   NodeID
	Budget  int // rooms this subtree must still produce
	Depth   int
	RoomIdx int // index of the assigned room, -1 before assignment
}

func (n Node) IsLeaf() bool {
	return n.Left == NoNode && n.Right == NoNode
}

// Tree is a binary space partition stored as a flat arena. Node ids are
// stable across appends, so children reference their parent's arena.
type Tree struct {
	Nodes []Node
	Root  NodeID
}

func (t *Tree) Len() int {
	return len(t.Nodes)
}

// At returns the node with the given id.
func (t *Tree) At(id NodeID) Node {
	return t.Nodes[id]
}

func (t *Tree) add(n Node) NodeID {
	t.Nodes = append(t.Nodes, n)
	return NodeID(len(t.Nodes) - 1)
}

// PreOrder returns all node ids in pre-order (parent, left subtree, right
// subtree).
func (t *Tree) PreOrder() []NodeID {
	var order []NodeID
	if t.Root == NoNode {
		return order
	}
	stack := []NodeID{t.Root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, id)
		n := t.Nodes[id]
		if !n.IsLeaf() {
			// Push right first so the left subtree is visited first.
			stack = append(stack, n.Right, n.Left)
		}
	}
	return order
}

// Leaves returns the leaf node ids in pre-order. Room indexes follow this
// ordering, which is what makes generation reproducible.
func (t *Tree) Leaves() []NodeID {
	var leaves []NodeID
	for _, id := range t.PreOrder() {
		if t.Nodes[id].IsLeaf() {
			leaves = append(leaves, id)
		}
	}
	return leaves
}

// MaxDepth returns the deepest node depth in the tree.
func (t *Tree) MaxDepth() int {
	var max int
	for _, n := range t.Nodes {
		if n.Depth > max {
			max = n.Depth
		}
	}
	return max
}
