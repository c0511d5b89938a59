// Package layout computes deterministic 2-D positions for every node of a
// mind map tree. Positions depend only on tree shape and sibling order,
// never on node text, so the result is stable while the user types.
package layout

import "github.com/pstuifzand/tui-mindmap/internal/model"

// Fixed node box and spacing metrics, in layout units (rendered as pixels
// by the SVG exporter and scaled to cells by the terminal view).
const (
	NodeWidth  = 170.0
	NodeHeight = 40.0
	HGap       = 60.0
	VGap       = 14.0
	PaddingX   = 40.0
	PaddingY   = 40.0
)

// Position is the placement of one node. X is a pure function of Depth;
// Y is assigned bottom-up from the node's subtree.
type Position struct {
	X     float64
	Y     float64
	Depth int
}

// Layout is the full placement of a tree plus the bounds of the rendering
// surface that exactly contains all placed nodes.
type Layout struct {
	Positions     map[string]Position
	ContentWidth  float64
	ContentHeight float64
}

// Compute lays out the tree left-to-right: a node's x follows from its
// depth, leaves take consecutive vertical slots in traversal order, and an
// internal node is centered on the vertical span of its direct children.
//
// Dangling node references stop the descent at that point; layout never
// fails on an inconsistent tree because it runs on every edit.
func Compute(tree *model.Tree) *Layout {
	l := &Layout{Positions: map[string]Position{}}
	if tree == nil || tree.Root() == nil {
		l.ContentWidth = 2 * PaddingX
		l.ContentHeight = 2 * PaddingY
		return l
	}

	nextY := PaddingY
	maxDepth := 0
	visited := map[string]bool{}

	var place func(id string, depth int) (float64, bool)
	place = func(id string, depth int) (float64, bool) {
		node := tree.Node(id)
		if node == nil || visited[id] {
			return 0, false
		}
		visited[id] = true
		if depth > maxDepth {
			maxDepth = depth
		}

		var minY, maxY float64
		placed := 0
		for _, childID := range node.ChildrenIDs {
			y, ok := place(childID, depth+1)
			if !ok {
				continue
			}
			if placed == 0 {
				minY, maxY = y, y
			} else {
				if y < minY {
					minY = y
				}
				if y > maxY {
					maxY = y
				}
			}
			placed++
		}

		var y float64
		if placed == 0 {
			// Leaf: take the next vertical slot.
			y = nextY
			nextY += NodeHeight + VGap
		} else {
			// Center on the direct children only, not the whole subtree.
			y = (minY + maxY) / 2
		}

		l.Positions[id] = Position{
			X:     PaddingX + float64(depth)*(NodeWidth+HGap),
			Y:     y,
			Depth: depth,
		}
		return y, true
	}
	place(tree.RootID, 0)

	// The bottom edge of the last leaf is one VGap short of the running
	// cursor.
	l.ContentWidth = 2*PaddingX + float64(maxDepth)*(NodeWidth+HGap) + NodeWidth
	l.ContentHeight = nextY - VGap + PaddingY
	if len(l.Positions) == 0 {
		l.ContentWidth = 2 * PaddingX
		l.ContentHeight = 2 * PaddingY
	}
	return l
}
