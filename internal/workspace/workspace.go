// Package workspace manages the open documents, their tab order and the
// active-document selection.
package workspace

import (
	"github.com/pstuifzand/tui-mindmap/internal/model"
)

// Tab references a document in the workspace's document table. Tab order is
// the display and cycle order.
type Tab struct {
	DocID string `json:"docId"`
}

// Workspace holds all open documents. Invariants: at least one tab, every
// tab and ActiveDocID resolve to a document, and no document is referenced
// by more than one tab.
type Workspace struct {
	Tabs        []Tab                      `json:"tabs"`
	ActiveDocID string                     `json:"activeDocId"`
	Documents   map[string]*model.Document `json:"documents"`

	pendingClose string
}

// New creates a workspace with a single empty document
func New() *Workspace {
	doc := model.NewDocument()
	return &Workspace{
		Tabs:        []Tab{{DocID: doc.ID}},
		ActiveDocID: doc.ID,
		Documents:   map[string]*model.Document{doc.ID: doc},
	}
}

// ActiveDocument returns the active document, or nil if the active id does
// not resolve
func (w *Workspace) ActiveDocument() *model.Document {
	return w.Documents[w.ActiveDocID]
}

// Document returns the document with the given id, or nil
func (w *Workspace) Document(id string) *model.Document {
	return w.Documents[id]
}

// CreateDocument builds a new empty document, appends a tab for it and
// makes it active. Other documents and their histories are untouched.
func (w *Workspace) CreateDocument() *model.Document {
	doc := model.NewDocument()
	w.Documents[doc.ID] = doc
	w.Tabs = append(w.Tabs, Tab{DocID: doc.ID})
	w.ActiveDocID = doc.ID
	return doc
}

// SetActiveDocument switches the active document. No-op if the id is
// already active or has no tab.
func (w *Workspace) SetActiveDocument(docID string) bool {
	if docID == w.ActiveDocID {
		return false
	}
	if w.tabIndex(docID) < 0 || w.Documents[docID] == nil {
		return false
	}
	w.ActiveDocID = docID
	return true
}

// SwitchNext cycles the active document to the next tab, wrapping at the end
func (w *Workspace) SwitchNext() bool {
	return w.switchBy(1)
}

// SwitchPrevious cycles the active document to the previous tab, wrapping
// at the start
func (w *Workspace) SwitchPrevious() bool {
	return w.switchBy(-1)
}

func (w *Workspace) switchBy(delta int) bool {
	if len(w.Tabs) == 0 {
		return false
	}
	i := w.tabIndex(w.ActiveDocID)
	if i < 0 {
		return false
	}
	next := (i + delta + len(w.Tabs)) % len(w.Tabs)
	w.ActiveDocID = w.Tabs[next].DocID
	return true
}

// RequestCloseActive starts the two-step close protocol for the active
// document. The last remaining tab is protected, and only one close may be
// pending at a time.
func (w *Workspace) RequestCloseActive() bool {
	if len(w.Tabs) <= 1 || w.pendingClose != "" {
		return false
	}
	if w.ActiveDocument() == nil {
		return false
	}
	w.pendingClose = w.ActiveDocID
	return true
}

// PendingClose returns the document id awaiting close confirmation
func (w *Workspace) PendingClose() (string, bool) {
	return w.pendingClose, w.pendingClose != ""
}

// ConfirmClose removes the pending document and its tab, discarding its
// history. The tab now occupying the closed tab's index becomes active,
// clamped to the last tab when the closed tab was last.
func (w *Workspace) ConfirmClose() bool {
	if w.pendingClose == "" {
		return false
	}
	docID := w.pendingClose
	w.pendingClose = ""

	i := w.tabIndex(docID)
	if i < 0 || len(w.Tabs) <= 1 {
		return false
	}
	w.Tabs = append(w.Tabs[:i], w.Tabs[i+1:]...)
	delete(w.Documents, docID)

	if i >= len(w.Tabs) {
		i = len(w.Tabs) - 1
	}
	w.ActiveDocID = w.Tabs[i].DocID
	return true
}

// CancelClose abandons a pending close without removing anything
func (w *Workspace) CancelClose() bool {
	if w.pendingClose == "" {
		return false
	}
	w.pendingClose = ""
	return true
}

func (w *Workspace) tabIndex(docID string) int {
	for i, tab := range w.Tabs {
		if tab.DocID == docID {
			return i
		}
	}
	return -1
}

// Sanitize repairs a workspace loaded from persistence so the engine never
// sees a malformed value. Tabs without a document are dropped (first
// occurrence wins for duplicates), documents without a tab are discarded,
// and each surviving document's tree is repaired. An emptied workspace gets
// a single fresh document.
func (w *Workspace) Sanitize() {
	if w.Documents == nil {
		w.Documents = map[string]*model.Document{}
	}

	kept := make([]Tab, 0, len(w.Tabs))
	seen := map[string]bool{}
	for _, tab := range w.Tabs {
		if seen[tab.DocID] {
			continue
		}
		doc := w.Documents[tab.DocID]
		if doc == nil || !repairDocument(doc) {
			delete(w.Documents, tab.DocID)
			continue
		}
		seen[tab.DocID] = true
		kept = append(kept, tab)
	}
	w.Tabs = kept

	for id := range w.Documents {
		if !seen[id] {
			delete(w.Documents, id)
		}
	}

	if len(w.Tabs) == 0 {
		doc := model.NewDocument()
		w.Documents[doc.ID] = doc
		w.Tabs = []Tab{{DocID: doc.ID}}
		w.ActiveDocID = doc.ID
	} else if !seen[w.ActiveDocID] {
		w.ActiveDocID = w.Tabs[0].DocID
	}

	w.pendingClose = ""
}

// repairDocument fixes structural drift inside one document. Returns false
// when the document cannot be salvaged (no resolvable root).
func repairDocument(doc *model.Document) bool {
	if doc.Tree == nil || doc.Tree.Nodes == nil || doc.Tree.Root() == nil {
		return false
	}
	if doc.ID == "" {
		doc.ID = model.NewDocID()
	}

	// Rebuild the node table by walking from the root. Dangling child
	// references, nodes claimed by an earlier parent, self references and
	// unreachable nodes are all dropped; parent ids are rewritten to match
	// the surviving child listings.
	nodes := map[string]*model.Node{}
	var walk func(id, parentID string)
	walk = func(id, parentID string) {
		node := doc.Tree.Node(id)
		node.ParentID = parentID
		nodes[id] = node
		children := node.ChildrenIDs[:0]
		for _, childID := range node.ChildrenIDs {
			if childID == id || doc.Tree.Node(childID) == nil {
				continue
			}
			if _, claimed := nodes[childID]; claimed {
				continue
			}
			nodes[childID] = doc.Tree.Node(childID)
			children = append(children, childID)
		}
		node.ChildrenIDs = children
		for _, childID := range children {
			walk(childID, id)
		}
	}
	walk(doc.Tree.RootID, "")
	doc.Tree.Nodes = nodes

	if doc.Tree.Cursor() == nil {
		doc.Tree.CursorID = doc.Tree.RootID
	}

	// History is session-only state; a freshly loaded document starts with
	// empty stacks.
	doc.UndoStack = nil
	doc.RedoStack = nil
	return true
}
