package model

// Document is one independent tree plus its undo/redo history. The embedded
// Tree flattens into the persisted JSON (id, rootId, cursorId, nodes); the
// history stacks are session-only and never persisted.
type Document struct {
	ID string `json:"id"`
	*Tree
	UndoStack []*Tree `json:"-"`
	RedoStack []*Tree `json:"-"`
}

// NewDocument creates a document with a single empty root node and empty
// history stacks
func NewDocument() *Document {
	return &Document{
		ID:   NewDocID(),
		Tree: NewTree(),
	}
}

// PushSnapshot records snap as an undo point and discards the redo branch.
// The caller must pass an independent copy (see Tree.Clone); snapshots on
// the stacks are never mutated afterwards.
func (d *Document) PushSnapshot(snap *Tree) {
	d.UndoStack = append(d.UndoStack, snap)
	d.RedoStack = nil
}

// ClearRedo discards the redo branch. Mutations that do not push an undo
// snapshot still invalidate redo, keeping history linear.
func (d *Document) ClearRedo() {
	d.RedoStack = nil
}

// Undo replaces the live tree with the most recent undo snapshot, moving
// the current state to the redo stack. Returns false if there is nothing
// to undo.
func (d *Document) Undo() bool {
	if len(d.UndoStack) == 0 {
		return false
	}
	snap := d.UndoStack[len(d.UndoStack)-1]
	d.UndoStack = d.UndoStack[:len(d.UndoStack)-1]
	d.RedoStack = append(d.RedoStack, d.Tree.Clone())
	d.Tree = snap
	return true
}

// Redo is the inverse of Undo. Returns false if there is nothing to redo.
func (d *Document) Redo() bool {
	if len(d.RedoStack) == 0 {
		return false
	}
	snap := d.RedoStack[len(d.RedoStack)-1]
	d.RedoStack = d.RedoStack[:len(d.RedoStack)-1]
	d.UndoStack = append(d.UndoStack, d.Tree.Clone())
	d.Tree = snap
	return true
}
