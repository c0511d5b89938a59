package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pstuifzand/tui-mindmap/internal/layout"
	"github.com/pstuifzand/tui-mindmap/internal/model"
)

// Node box dimensions in terminal cells, borders included
const (
	cellNodeWidth  = 20
	cellNodeHeight = 3
	cellHGap       = 6
	cellVGap       = 1
)

// Scale factors from layout units to cells. One depth step in the layout
// maps to one box plus gap in cells, so the scaled picture keeps the
// layout's proportions.
var (
	scaleX = float64(cellNodeWidth+cellHGap) / (layout.NodeWidth + layout.HGap)
	scaleY = float64(cellNodeHeight+cellVGap) / (layout.NodeHeight + layout.VGap)
)

// MapView renders a laid-out tree into a rectangular region of the screen,
// scrolling to keep the cursor node visible
type MapView struct {
	offsetX int
	offsetY int
}

// NewMapView creates a new MapView
func NewMapView() *MapView {
	return &MapView{}
}

type cellRect struct {
	x, y, w, h int
}

func toCells(pos layout.Position) cellRect {
	return cellRect{
		x: int(pos.X * scaleX),
		y: int(pos.Y * scaleY),
		w: cellNodeWidth,
		h: cellNodeHeight,
	}
}

// ensureVisible scrolls the viewport so the cursor box is fully inside it,
// centering when the cursor jumped out of view
func (v *MapView) ensureVisible(box cellRect, viewW, viewH int) {
	if box.x < v.offsetX || box.x+box.w > v.offsetX+viewW {
		v.offsetX = box.x - (viewW-box.w)/2
	}
	if box.y < v.offsetY || box.y+box.h > v.offsetY+viewH {
		v.offsetY = box.y - (viewH-box.h)/2
	}
	if v.offsetX < 0 {
		v.offsetX = 0
	}
	if v.offsetY < 0 {
		v.offsetY = 0
	}
}

// Render draws the tree into the rows [top, top+height) of the screen.
// When editor is non-nil it replaces the text of the cursor node.
func (v *MapView) Render(screen *Screen, tree *model.Tree, top, height int, editor *Editor) {
	if tree == nil || height <= 0 {
		return
	}
	l := layout.Compute(tree)
	width := screen.GetWidth()

	if pos, ok := l.Positions[tree.CursorID]; ok {
		v.ensureVisible(toCells(pos), width, height)
	}

	for _, edge := range layout.Edges(tree, l) {
		v.drawEdge(screen, edge, top, height)
	}

	tree.Walk(func(node *model.Node, depth int) {
		pos, ok := l.Positions[node.ID]
		if !ok {
			return
		}
		v.drawNode(screen, tree, node, toCells(pos), top, height, editor)
	})
}

// drawEdge draws one parent-to-child connector as an elbow line. The curve
// geometry degrades to straight segments at cell resolution.
func (v *MapView) drawEdge(screen *Screen, edge layout.Edge, top, height int) {
	style := screen.EdgeStyle()
	c := edge.Curve

	x1 := int(c.X1*scaleX) - v.offsetX
	y1 := int(c.Y1*scaleY) - v.offsetY + top
	x2 := int(c.X2*scaleX) - v.offsetX - 1
	y2 := int(c.Y2*scaleY) - v.offsetY + top
	mx := (x1 + x2) / 2

	set := func(x, y int, r rune) {
		if y >= top && y < top+height {
			screen.SetCell(x, y, r, style)
		}
	}

	for x := x1; x < mx; x++ {
		set(x, y1, '─')
	}
	for x := mx + 1; x <= x2; x++ {
		set(x, y2, '─')
	}
	switch {
	case y1 == y2:
		set(mx, y1, '─')
	case y1 < y2:
		set(mx, y1, '╮')
		for y := y1 + 1; y < y2; y++ {
			set(mx, y, '│')
		}
		set(mx, y2, '╰')
	default:
		set(mx, y1, '╯')
		for y := y2 + 1; y < y1; y++ {
			set(mx, y, '│')
		}
		set(mx, y2, '╭')
	}
}

// drawNode draws one node box with its text row
func (v *MapView) drawNode(screen *Screen, tree *model.Tree, node *model.Node, box cellRect, top, height int, editor *Editor) {
	x := box.x - v.offsetX
	y := box.y - v.offsetY + top

	isCursor := node.ID == tree.CursorID
	borderStyle := screen.NodeBorderStyle()
	textStyle := screen.NodeStyle()
	if node.IsRoot() {
		textStyle = screen.RootNodeStyle()
	}
	if isCursor {
		borderStyle = screen.CursorNodeStyle()
		if editor == nil {
			textStyle = screen.CursorNodeStyle()
		}
	}

	set := func(cx, cy int, r rune, style tcell.Style) {
		if cy >= top && cy < top+height {
			screen.SetCell(cx, cy, r, style)
		}
	}

	set(x, y, '┌', borderStyle)
	set(x+box.w-1, y, '┐', borderStyle)
	set(x, y+box.h-1, '└', borderStyle)
	set(x+box.w-1, y+box.h-1, '┘', borderStyle)
	for cx := x + 1; cx < x+box.w-1; cx++ {
		set(cx, y, '─', borderStyle)
		set(cx, y+box.h-1, '─', borderStyle)
	}
	for cy := y + 1; cy < y+box.h-1; cy++ {
		set(x, cy, '│', borderStyle)
		set(x+box.w-1, cy, '│', borderStyle)
	}

	textY := y + box.h/2
	textX := x + 2
	textW := box.w - 4
	if textY < top || textY >= top+height {
		return
	}

	if isCursor && editor != nil {
		editor.Render(screen, textX, textY, textW)
		return
	}

	text := TruncateToWidthWithEllipsis(node.Text, textW)
	screen.DrawString(textX, textY, PadStringToWidth(text, textW), textStyle)
}
