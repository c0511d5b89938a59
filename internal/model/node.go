// Package model contains the data model for mind map documents
package model

import (
	"math/rand/v2"
	"time"
)

// Node represents a single node in a mind map tree. Relationships are
// expressed as id references into the owning Tree's node table, never as
// nested structures.
type Node struct {
	ID          string   `json:"id"`
	Text        string   `json:"text"`
	ParentID    string   `json:"parentId"` // empty for the root node
	ChildrenIDs []string `json:"childrenIds"`
}

// Clone returns a deep copy of the node
func (n *Node) Clone() *Node {
	children := make([]string, len(n.ChildrenIDs))
	copy(children, n.ChildrenIDs)
	return &Node{
		ID:          n.ID,
		Text:        n.Text,
		ParentID:    n.ParentID,
		ChildrenIDs: children,
	}
}

// IsRoot returns true if this node has no parent
func (n *Node) IsRoot() bool {
	return n.ParentID == ""
}

// NewNodeID generates a unique id for a node
func NewNodeID() string {
	return generateID("node")
}

// NewDocID generates a unique id for a document
func NewDocID() string {
	return generateID("doc")
}

func generateID(prefix string) string {
	return prefix + "_" + time.Now().Format("20060102150405") + "_" + randomString(8)
}

func randomString(length int) string {
	const chars = "abcdefghijklmnopqrstuvwxyz0123456789"
	result := make([]byte, length)
	for i := range result {
		result[i] = chars[rand.IntN(len(chars))]
	}
	return string(result)
}
