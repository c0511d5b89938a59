package layout

import (
	"fmt"

	"github.com/pstuifzand/tui-mindmap/internal/model"
)

// Curve is a cubic Bézier segment for one parent-to-child containment edge
type Curve struct {
	X1, Y1 float64 // start: parent's right-middle edge
	CX1    float64
	CY1    float64
	CX2    float64
	CY2    float64
	X2, Y2 float64 // end: child's left-middle edge
}

// Edge is the drawable geometry for one parent/child pair
type Edge struct {
	ParentID string
	ChildID  string
	Curve    Curve
}

// EdgeCurve builds the edge curve between a laid-out parent and child. Both
// control points sit at the horizontal midpoint, which keeps the curves
// visually consistent regardless of the vertical offset.
func EdgeCurve(parent, child Position) Curve {
	x1 := parent.X + NodeWidth
	y1 := parent.Y + NodeHeight/2
	x2 := child.X
	y2 := child.Y + NodeHeight/2
	mx := (x1 + x2) / 2
	return Curve{
		X1: x1, Y1: y1,
		CX1: mx, CY1: y1,
		CX2: mx, CY2: y2,
		X2: x2, Y2: y2,
	}
}

// Edges lists the drawable edges of a laid-out tree, in tree walk order.
// Pairs whose endpoints were not placed are skipped; a nil tree or layout
// has no edges.
func Edges(tree *model.Tree, l *Layout) []Edge {
	if tree == nil || l == nil {
		return nil
	}
	var edges []Edge
	tree.Walk(func(node *model.Node, depth int) {
		parentPos, ok := l.Positions[node.ID]
		if !ok {
			return
		}
		for _, childID := range node.ChildrenIDs {
			childPos, ok := l.Positions[childID]
			if !ok {
				continue
			}
			edges = append(edges, Edge{
				ParentID: node.ID,
				ChildID:  childID,
				Curve:    EdgeCurve(parentPos, childPos),
			})
		}
	})
	return edges
}

// SVGPath renders the curve as an SVG path description
func (c Curve) SVGPath() string {
	return fmt.Sprintf("M %.1f %.1f C %.1f %.1f, %.1f %.1f, %.1f %.1f",
		c.X1, c.Y1, c.CX1, c.CY1, c.CX2, c.CY2, c.X2, c.Y2)
}
