package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pstuifzand/tui-mindmap/internal/model"
)

func buildTree(root string, children map[string][]string) *model.Tree {
	t := &model.Tree{
		RootID:   root,
		CursorID: root,
		Nodes:    map[string]*model.Node{},
	}
	var add func(id, parentID string)
	add = func(id, parentID string) {
		kids := children[id]
		if kids == nil {
			kids = []string{}
		}
		t.Nodes[id] = &model.Node{ID: id, Text: "text " + id, ParentID: parentID, ChildrenIDs: kids}
		for _, childID := range kids {
			add(childID, id)
		}
	}
	add(root, "")
	return t
}

func TestSingleNodeLayout(t *testing.T) {
	tree := buildTree("r", nil)
	l := Compute(tree)

	require.Len(t, l.Positions, 1)
	pos := l.Positions["r"]
	assert.Equal(t, PaddingX, pos.X)
	assert.Equal(t, PaddingY, pos.Y)
	assert.Equal(t, 0, pos.Depth)
	assert.Equal(t, 2*PaddingX+NodeWidth, l.ContentWidth)
	assert.Equal(t, 2*PaddingY+NodeHeight, l.ContentHeight)
}

func TestXDependsOnlyOnDepth(t *testing.T) {
	tree := buildTree("r", map[string][]string{
		"r": {"a", "b"},
		"a": {"a1"},
		"b": {"b1"},
	})
	l := Compute(tree)

	assert.Equal(t, l.Positions["a"].X, l.Positions["b"].X)
	assert.Equal(t, l.Positions["a1"].X, l.Positions["b1"].X)
	assert.Equal(t, PaddingX+NodeWidth+HGap, l.Positions["a"].X)
	assert.Equal(t, PaddingX+2*(NodeWidth+HGap), l.Positions["a1"].X)
	assert.Equal(t, 1, l.Positions["a"].Depth)
	assert.Equal(t, 2, l.Positions["b1"].Depth)
}

func TestLeafYIncreasesInSiblingOrder(t *testing.T) {
	tree := buildTree("r", map[string][]string{
		"r": {"a", "b", "c"},
		"b": {"b1", "b2"},
	})
	l := Compute(tree)

	// Leaves in traversal order: a, b1, b2, c.
	leaves := []string{"a", "b1", "b2", "c"}
	for i := 1; i < len(leaves); i++ {
		prev := l.Positions[leaves[i-1]].Y
		cur := l.Positions[leaves[i]].Y
		assert.Greater(t, cur, prev, "leaf %s must sit below leaf %s", leaves[i], leaves[i-1])
	}
	// Slots advance by exactly one node height plus gap.
	assert.Equal(t, l.Positions["a"].Y+NodeHeight+VGap, l.Positions["b1"].Y)
}

func TestParentCenteredOnDirectChildren(t *testing.T) {
	tree := buildTree("r", map[string][]string{
		"r": {"a", "b"},
		"a": {"a1", "a2", "a3"},
	})
	l := Compute(tree)

	aTop := l.Positions["a1"].Y
	aBottom := l.Positions["a3"].Y
	assert.Equal(t, (aTop+aBottom)/2, l.Positions["a"].Y)

	// The root centers on its direct children a and b, not on the leaf
	// span of the whole subtree.
	assert.Equal(t, (l.Positions["a"].Y+l.Positions["b"].Y)/2, l.Positions["r"].Y)
}

func TestLayoutIgnoresText(t *testing.T) {
	tree := buildTree("r", map[string][]string{"r": {"a", "b"}, "a": {"c"}})
	first := Compute(tree)

	for _, node := range tree.Nodes {
		node.Text = node.Text + " changed considerably"
	}
	second := Compute(tree)

	assert.Equal(t, first.Positions, second.Positions)
	assert.Equal(t, first.ContentWidth, second.ContentWidth)
	assert.Equal(t, first.ContentHeight, second.ContentHeight)
}

func TestLayoutIsDeterministic(t *testing.T) {
	tree := buildTree("r", map[string][]string{
		"r": {"a", "b", "c"},
		"a": {"a1", "a2"},
		"c": {"c1"},
	})

	first := Compute(tree)
	second := Compute(tree)
	assert.Equal(t, first, second)
}

func TestMissingNodeStopsDescent(t *testing.T) {
	tree := buildTree("r", map[string][]string{"r": {"a", "b"}})
	tree.Node("r").ChildrenIDs = []string{"a", "ghost", "b"}

	l := Compute(tree)

	require.Len(t, l.Positions, 3)
	assert.NotContains(t, l.Positions, "ghost")
	// The two placed leaves take consecutive slots; the ghost leaves no
	// hole behind.
	assert.Equal(t, l.Positions["a"].Y+NodeHeight+VGap, l.Positions["b"].Y)
}

func TestDanglingRootProducesEmptyLayout(t *testing.T) {
	tree := buildTree("r", nil)
	tree.RootID = "ghost"

	l := Compute(tree)

	assert.Empty(t, l.Positions)
	assert.Equal(t, 2*PaddingX, l.ContentWidth)
	assert.Equal(t, 2*PaddingY, l.ContentHeight)
}

func TestContentBoundsContainAllNodes(t *testing.T) {
	tree := buildTree("r", map[string][]string{
		"r": {"a", "b"},
		"a": {"a1", "a2"},
		"b": {"b1"},
	})
	l := Compute(tree)

	for id, pos := range l.Positions {
		assert.LessOrEqual(t, pos.X+NodeWidth+PaddingX, l.ContentWidth, "node %s overflows width", id)
		assert.LessOrEqual(t, pos.Y+NodeHeight+PaddingY, l.ContentHeight, "node %s overflows height", id)
		assert.GreaterOrEqual(t, pos.X, PaddingX)
		assert.GreaterOrEqual(t, pos.Y, PaddingY)
	}
}

func TestEdgeCurveGeometry(t *testing.T) {
	tree := buildTree("r", map[string][]string{"r": {"a"}})
	l := Compute(tree)

	edges := Edges(tree, l)
	require.Len(t, edges, 1)
	c := edges[0].Curve

	parent := l.Positions["r"]
	child := l.Positions["a"]
	assert.Equal(t, parent.X+NodeWidth, c.X1)
	assert.Equal(t, parent.Y+NodeHeight/2, c.Y1)
	assert.Equal(t, child.X, c.X2)
	assert.Equal(t, child.Y+NodeHeight/2, c.Y2)
	assert.Equal(t, (c.X1+c.X2)/2, c.CX1)
	assert.Equal(t, c.CX1, c.CX2)
	assert.Equal(t, c.Y1, c.CY1)
	assert.Equal(t, c.Y2, c.CY2)

	assert.Contains(t, c.SVGPath(), "C ")
}

func TestEdgesNilInputs(t *testing.T) {
	tree := buildTree("r", map[string][]string{"r": {"a"}})

	assert.Nil(t, Edges(nil, Compute(nil)))
	assert.Nil(t, Edges(tree, nil))
}

func TestEdgesSkipMissingEndpoints(t *testing.T) {
	tree := buildTree("r", map[string][]string{"r": {"a"}})
	tree.Node("a").ChildrenIDs = []string{"ghost"}
	l := Compute(tree)

	edges := Edges(tree, l)
	require.Len(t, edges, 1)
	assert.Equal(t, "a", edges[0].ChildID)
}
