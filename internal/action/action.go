// Package action defines the closed set of user intents the editor core
// accepts, and a single dispatcher that applies one intent to the
// workspace. The input layer decodes raw key events into exactly one
// Action per gesture; the dispatcher enforces the mode gating so that no
// cross-document action can run while an insert is pending.
package action

import (
	"github.com/pstuifzand/tui-mindmap/internal/editor"
	"github.com/pstuifzand/tui-mindmap/internal/workspace"
)

// Op discriminates the action variants
type Op int

const (
	OpMoveCursor Op = iota
	OpSwapSibling
	OpAddChild
	OpAddSibling
	OpAddChildAndInsert
	OpAddSiblingAndInsert
	OpDeleteNode
	OpEnterInsert
	OpSetText
	OpCommitInsert
	OpUndo
	OpRedo
	OpNewDocument
	OpSwitchDocument
	OpNextDocument
	OpPreviousDocument
	OpRequestClose
	OpConfirmClose
	OpCancelClose
)

// Action is one discrete user intent. Only the fields relevant to the Op
// are read.
type Action struct {
	Op        Op
	Direction editor.Direction
	Swap      editor.SwapDirection
	Text      string
	DocID     string
}

// Apply executes a single action against the workspace's active document.
// It returns true when the action changed anything; violated preconditions
// make the action inert.
func Apply(s *editor.Session, ws *workspace.Workspace, a Action) bool {
	if s == nil || ws == nil {
		return false
	}
	doc := ws.ActiveDocument()

	switch a.Op {
	case OpMoveCursor:
		return !s.InInsert() && editor.MoveCursor(doc, a.Direction)
	case OpSwapSibling:
		return !s.InInsert() && editor.SwapSibling(doc, a.Swap)
	case OpAddChild:
		if s.InInsert() {
			return false
		}
		_, ok := editor.AddChild(doc)
		return ok
	case OpAddSibling:
		if s.InInsert() {
			return false
		}
		_, ok := editor.AddSibling(doc)
		return ok
	case OpAddChildAndInsert:
		_, ok := s.AddChildAndInsert(doc)
		return ok
	case OpAddSiblingAndInsert:
		_, ok := s.AddSiblingAndInsert(doc)
		return ok
	case OpDeleteNode:
		return !s.InInsert() && editor.DeleteCursorNode(doc)
	case OpEnterInsert:
		return s.EnterInsert(doc)
	case OpSetText:
		return s.SetCursorText(doc, a.Text)
	case OpCommitInsert:
		return s.CommitInsert(doc)
	case OpUndo:
		return s.Undo(doc)
	case OpRedo:
		return s.Redo(doc)
	case OpNewDocument:
		if s.InInsert() {
			return false
		}
		ws.CreateDocument()
		return true
	case OpSwitchDocument:
		return !s.InInsert() && ws.SetActiveDocument(a.DocID)
	case OpNextDocument:
		return !s.InInsert() && ws.SwitchNext()
	case OpPreviousDocument:
		return !s.InInsert() && ws.SwitchPrevious()
	case OpRequestClose:
		return !s.InInsert() && ws.RequestCloseActive()
	case OpConfirmClose:
		return !s.InInsert() && ws.ConfirmClose()
	case OpCancelClose:
		return !s.InInsert() && ws.CancelClose()
	}
	return false
}
