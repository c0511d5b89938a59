// Package editor implements the document mutation engine: cursor movement,
// structural edits, the insert-mode lifecycle and snapshot undo/redo.
//
// Every operation is total: when a precondition does not hold (boundary
// condition, protected root, wrong mode, dangling reference) the operation
// simply reports false and leaves the document unchanged.
package editor

import "github.com/pstuifzand/tui-mindmap/internal/model"

// Direction selects the target of a cursor move
type Direction int

const (
	DirParent Direction = iota
	DirChild
	DirNextSibling
	DirPrevSibling
)

// SwapDirection selects the adjacent sibling for a swap
type SwapDirection int

const (
	SwapUp SwapDirection = iota
	SwapDown
)

// MoveCursor moves the cursor within the tree. Moves past a boundary (root
// upward, leaf downward, first/last sibling sideways) are no-ops. Cursor
// movement never touches history.
func MoveCursor(doc *model.Document, dir Direction) bool {
	if doc == nil {
		return false
	}
	cursor := doc.Cursor()
	if cursor == nil {
		return false
	}

	switch dir {
	case DirParent:
		if cursor.ParentID == "" {
			return false
		}
		doc.CursorID = cursor.ParentID
		return true
	case DirChild:
		if len(cursor.ChildrenIDs) == 0 {
			return false
		}
		doc.CursorID = cursor.ChildrenIDs[0]
		return true
	case DirNextSibling, DirPrevSibling:
		parent := doc.Node(cursor.ParentID)
		if parent == nil {
			return false
		}
		i := doc.ChildIndex(cursor.ID)
		if i < 0 {
			return false
		}
		if dir == DirNextSibling {
			i++
		} else {
			i--
		}
		if i < 0 || i >= len(parent.ChildrenIDs) {
			return false
		}
		doc.CursorID = parent.ChildrenIDs[i]
		return true
	}
	return false
}

// SwapSibling exchanges the cursor node with its adjacent sibling in the
// parent's children list. No-op at the boundary or on the root. Sibling
// order changes are deliberately not recorded in history (see DESIGN.md),
// but like any mutation they discard the redo branch.
func SwapSibling(doc *model.Document, dir SwapDirection) bool {
	if doc == nil {
		return false
	}
	cursor := doc.Cursor()
	if cursor == nil || cursor.ParentID == "" {
		return false
	}
	parent := doc.Node(cursor.ParentID)
	if parent == nil {
		return false
	}
	i := doc.ChildIndex(cursor.ID)
	if i < 0 {
		return false
	}
	j := i - 1
	if dir == SwapDown {
		j = i + 1
	}
	if j < 0 || j >= len(parent.ChildrenIDs) {
		return false
	}
	parent.ChildrenIDs[i], parent.ChildrenIDs[j] = parent.ChildrenIDs[j], parent.ChildrenIDs[i]
	doc.ClearRedo()
	return true
}

// AddChild creates a new empty node as the last child of the cursor node
// and moves the cursor to it. Returns the new node's id. No undo snapshot
// is pushed (the insert-mode commit owns that), but the redo branch is
// discarded.
func AddChild(doc *model.Document) (string, bool) {
	if doc == nil {
		return "", false
	}
	cursor := doc.Cursor()
	if cursor == nil {
		return "", false
	}
	node := &model.Node{
		ID:          model.NewNodeID(),
		ParentID:    cursor.ID,
		ChildrenIDs: []string{},
	}
	doc.Nodes[node.ID] = node
	cursor.ChildrenIDs = append(cursor.ChildrenIDs, node.ID)
	doc.CursorID = node.ID
	doc.ClearRedo()
	return node.ID, true
}

// AddSibling creates a new empty node immediately after the cursor in its
// parent's children list and moves the cursor to it. On the root, which
// cannot have siblings, it behaves as AddChild.
func AddSibling(doc *model.Document) (string, bool) {
	if doc == nil {
		return "", false
	}
	cursor := doc.Cursor()
	if cursor == nil {
		return "", false
	}
	if cursor.ParentID == "" {
		return AddChild(doc)
	}
	parent := doc.Node(cursor.ParentID)
	if parent == nil {
		return "", false
	}
	i := doc.ChildIndex(cursor.ID)
	if i < 0 {
		return "", false
	}
	node := &model.Node{
		ID:          model.NewNodeID(),
		ParentID:    parent.ID,
		ChildrenIDs: []string{},
	}
	doc.Nodes[node.ID] = node
	parent.ChildrenIDs = append(parent.ChildrenIDs[:i+1], append([]string{node.ID}, parent.ChildrenIDs[i+1:]...)...)
	doc.CursorID = node.ID
	doc.ClearRedo()
	return node.ID, true
}

// DeleteCursorNode removes the cursor node and promotes its children into
// the parent's children list at the deleted node's position, preserving
// their order. The root cannot be deleted. The pre-mutation tree is pushed
// as an undo snapshot, so a delete is undoable in one step.
//
// Cursor relocation after the delete, in priority order: the first promoted
// child, the sibling now occupying the deleted index, the sibling before
// it, or the parent when no siblings remain.
func DeleteCursorNode(doc *model.Document) bool {
	if doc == nil {
		return false
	}
	cursor := doc.Cursor()
	if cursor == nil || cursor.ParentID == "" {
		return false
	}
	parent := doc.Node(cursor.ParentID)
	if parent == nil {
		return false
	}
	i := doc.ChildIndex(cursor.ID)
	if i < 0 {
		return false
	}

	doc.PushSnapshot(doc.Tree.Clone())

	promoted := cursor.ChildrenIDs
	for _, childID := range promoted {
		if child := doc.Node(childID); child != nil {
			child.ParentID = parent.ID
		}
	}
	rest := append([]string{}, parent.ChildrenIDs[i+1:]...)
	parent.ChildrenIDs = append(append(parent.ChildrenIDs[:i], promoted...), rest...)
	delete(doc.Nodes, cursor.ID)

	switch {
	case len(promoted) > 0:
		doc.CursorID = promoted[0]
	case i < len(parent.ChildrenIDs):
		doc.CursorID = parent.ChildrenIDs[i]
	case i > 0:
		doc.CursorID = parent.ChildrenIDs[i-1]
	default:
		doc.CursorID = parent.ID
	}
	return true
}
