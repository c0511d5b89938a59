package model

import "fmt"

// Tree is the node table for one document: a flat mapping from id to node,
// plus the root and the cursor (the currently selected node). The Tree is
// the unit snapshotted for undo/redo.
type Tree struct {
	RootID   string           `json:"rootId"`
	CursorID string           `json:"cursorId"`
	Nodes    map[string]*Node `json:"nodes"`
}

// NewTree creates a tree with a single empty root node, cursor on the root
func NewTree() *Tree {
	root := &Node{
		ID:          NewNodeID(),
		ChildrenIDs: []string{},
	}
	return &Tree{
		RootID:   root.ID,
		CursorID: root.ID,
		Nodes:    map[string]*Node{root.ID: root},
	}
}

// Node returns the node with the given id, or nil if it does not exist
func (t *Tree) Node(id string) *Node {
	return t.Nodes[id]
}

// Root returns the root node, or nil if the root id is dangling
func (t *Tree) Root() *Node {
	return t.Nodes[t.RootID]
}

// Cursor returns the cursor node, or nil if the cursor id is dangling
func (t *Tree) Cursor() *Node {
	return t.Nodes[t.CursorID]
}

// Len returns the number of nodes in the tree
func (t *Tree) Len() int {
	return len(t.Nodes)
}

// Clone returns a deep copy of the tree. The copy shares no mutable
// structure with the original, so it can be kept as a history snapshot.
func (t *Tree) Clone() *Tree {
	nodes := make(map[string]*Node, len(t.Nodes))
	for id, node := range t.Nodes {
		nodes[id] = node.Clone()
	}
	return &Tree{
		RootID:   t.RootID,
		CursorID: t.CursorID,
		Nodes:    nodes,
	}
}

// Equal reports full structural and content equality between two trees:
// same root, same cursor, same node set, and per node the same text,
// parent and child order.
func (t *Tree) Equal(other *Tree) bool {
	if other == nil {
		return false
	}
	if t.RootID != other.RootID || t.CursorID != other.CursorID {
		return false
	}
	if len(t.Nodes) != len(other.Nodes) {
		return false
	}
	for id, node := range t.Nodes {
		o := other.Nodes[id]
		if o == nil {
			return false
		}
		if node.Text != o.Text || node.ParentID != o.ParentID {
			return false
		}
		if len(node.ChildrenIDs) != len(o.ChildrenIDs) {
			return false
		}
		for i, childID := range node.ChildrenIDs {
			if o.ChildrenIDs[i] != childID {
				return false
			}
		}
	}
	return true
}

// ChildIndex returns the position of id within its parent's children list,
// or -1 if id is the root, dangling, or not listed by its parent.
func (t *Tree) ChildIndex(id string) int {
	node := t.Node(id)
	if node == nil || node.ParentID == "" {
		return -1
	}
	parent := t.Node(node.ParentID)
	if parent == nil {
		return -1
	}
	for i, childID := range parent.ChildrenIDs {
		if childID == id {
			return i
		}
	}
	return -1
}

// Validate checks the structural invariants of the tree: exactly one root,
// consistent parent/child references, no unreachable nodes and no cycles.
func (t *Tree) Validate() error {
	root := t.Root()
	if root == nil {
		return fmt.Errorf("root id %q does not resolve", t.RootID)
	}
	if root.ParentID != "" {
		return fmt.Errorf("root node %q has a parent", t.RootID)
	}
	if t.Cursor() == nil {
		return fmt.Errorf("cursor id %q does not resolve", t.CursorID)
	}

	for id, node := range t.Nodes {
		if node.ID != id {
			return fmt.Errorf("node keyed %q has id %q", id, node.ID)
		}
		if id != t.RootID {
			if node.ParentID == "" {
				return fmt.Errorf("node %q has no parent but is not the root", id)
			}
			parent := t.Node(node.ParentID)
			if parent == nil {
				return fmt.Errorf("node %q has dangling parent %q", id, node.ParentID)
			}
			if count := countOccurrences(parent.ChildrenIDs, id); count != 1 {
				return fmt.Errorf("node %q listed %d times by parent %q", id, count, node.ParentID)
			}
		}
		for _, childID := range node.ChildrenIDs {
			child := t.Node(childID)
			if child == nil {
				return fmt.Errorf("node %q lists dangling child %q", id, childID)
			}
			if child.ParentID != id {
				return fmt.Errorf("child %q of %q claims parent %q", childID, id, child.ParentID)
			}
		}
	}

	// Walking up from every node must terminate at the root without
	// revisiting an id, which rules out cycles.
	for id := range t.Nodes {
		seen := map[string]bool{}
		for cur := id; cur != ""; {
			if seen[cur] {
				return fmt.Errorf("cycle through node %q", cur)
			}
			seen[cur] = true
			node := t.Node(cur)
			if node == nil {
				break
			}
			cur = node.ParentID
		}
		if !seen[t.RootID] {
			return fmt.Errorf("node %q is not reachable from the root", id)
		}
	}

	return nil
}

// Walk visits every node reachable from the root in depth-first pre-order,
// following children in sibling order. Dangling child references are
// skipped; revisiting an id stops descent so a malformed tree cannot loop.
func (t *Tree) Walk(visit func(node *Node, depth int)) {
	visited := map[string]bool{}
	var walk func(id string, depth int)
	walk = func(id string, depth int) {
		node := t.Node(id)
		if node == nil || visited[id] {
			return
		}
		visited[id] = true
		visit(node, depth)
		for _, childID := range node.ChildrenIDs {
			walk(childID, depth+1)
		}
	}
	walk(t.RootID, 0)
}

func countOccurrences(ids []string, id string) int {
	count := 0
	for _, candidate := range ids {
		if candidate == id {
			count++
		}
	}
	return count
}
