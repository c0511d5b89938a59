package editor

import "github.com/pstuifzand/tui-mindmap/internal/model"

// Mode is the modal editing state, shared by all documents in the session
type Mode string

const (
	NormalMode Mode = "NORMAL"
	InsertMode Mode = "INSERT"
)

// insertOrigin is the tree snapshot taken when insert mode was entered. On
// commit it decides whether a history entry is needed and which document it
// belongs to.
type insertOrigin struct {
	docID    string
	snapshot *model.Tree
}

// Session carries the modal state explicitly so engine behavior is a pure
// function of its inputs; there is no package-level mode.
type Session struct {
	mode   Mode
	origin *insertOrigin
}

// NewSession creates a session in normal mode
func NewSession() *Session {
	return &Session{mode: NormalMode}
}

// Mode returns the current editing mode
func (s *Session) Mode() Mode {
	return s.mode
}

// InInsert returns true while insert mode is active
func (s *Session) InInsert() bool {
	return s.mode == InsertMode
}

// EnterInsert switches to insert mode on the given document, capturing the
// current tree as the insert origin. Permitted only from normal mode; the
// tree itself is not touched.
func (s *Session) EnterInsert(doc *model.Document) bool {
	if s.mode != NormalMode || doc == nil || doc.Cursor() == nil {
		return false
	}
	s.origin = &insertOrigin{docID: doc.ID, snapshot: doc.Tree.Clone()}
	s.mode = InsertMode
	return true
}

// AddChildAndInsert creates a child node and enters insert mode on it. The
// origin snapshot is taken before the structural change, so committing the
// edit makes the node creation part of the same undo step.
func (s *Session) AddChildAndInsert(doc *model.Document) (string, bool) {
	if s.mode != NormalMode || doc == nil || doc.Cursor() == nil {
		return "", false
	}
	origin := &insertOrigin{docID: doc.ID, snapshot: doc.Tree.Clone()}
	id, ok := AddChild(doc)
	if !ok {
		return "", false
	}
	s.origin = origin
	s.mode = InsertMode
	return id, true
}

// AddSiblingAndInsert creates a sibling node and enters insert mode on it,
// with the origin snapshot taken before the structural change.
func (s *Session) AddSiblingAndInsert(doc *model.Document) (string, bool) {
	if s.mode != NormalMode || doc == nil || doc.Cursor() == nil {
		return "", false
	}
	origin := &insertOrigin{docID: doc.ID, snapshot: doc.Tree.Clone()}
	id, ok := AddSibling(doc)
	if !ok {
		return "", false
	}
	s.origin = origin
	s.mode = InsertMode
	return id, true
}

// SetCursorText replaces the cursor node's text verbatim. Permitted only in
// insert mode and only on the document the insert was entered on.
func (s *Session) SetCursorText(doc *model.Document, text string) bool {
	if s.mode != InsertMode || s.origin == nil {
		return false
	}
	if doc == nil || doc.ID != s.origin.docID {
		return false
	}
	cursor := doc.Cursor()
	if cursor == nil {
		return false
	}
	cursor.Text = text
	return true
}

// CommitInsert leaves insert mode. If the tree differs from the insert
// origin, the origin snapshot is pushed as an undo point (discarding the
// redo branch); an unchanged tree produces no history entry.
func (s *Session) CommitInsert(doc *model.Document) bool {
	if s.mode != InsertMode || s.origin == nil {
		return false
	}
	if doc == nil || doc.ID != s.origin.docID {
		return false
	}
	if !doc.Tree.Equal(s.origin.snapshot) {
		doc.PushSnapshot(s.origin.snapshot)
	}
	s.origin = nil
	s.mode = NormalMode
	return true
}

// Undo restores the most recent undo snapshot. No-op in insert mode.
func (s *Session) Undo(doc *model.Document) bool {
	if s.mode == InsertMode || doc == nil {
		return false
	}
	return doc.Undo()
}

// Redo restores the most recent redo snapshot. No-op in insert mode.
func (s *Session) Redo(doc *model.Document) bool {
	if s.mode == InsertMode || doc == nil {
		return false
	}
	return doc.Redo()
}
