package action

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pstuifzand/tui-mindmap/internal/editor"
	"github.com/pstuifzand/tui-mindmap/internal/workspace"
)

func TestInsertLifecycleThroughDispatch(t *testing.T) {
	s := editor.NewSession()
	ws := workspace.New()

	require.True(t, Apply(s, ws, Action{Op: OpAddChildAndInsert}))
	assert.Equal(t, editor.InsertMode, s.Mode())

	require.True(t, Apply(s, ws, Action{Op: OpSetText, Text: "first idea"}))
	require.True(t, Apply(s, ws, Action{Op: OpCommitInsert}))
	assert.Equal(t, editor.NormalMode, s.Mode())

	doc := ws.ActiveDocument()
	assert.Equal(t, "first idea", doc.Cursor().Text)
	assert.Len(t, doc.UndoStack, 1)
}

func TestCrossDocumentActionsGatedInInsertMode(t *testing.T) {
	s := editor.NewSession()
	ws := workspace.New()
	Apply(s, ws, Action{Op: OpNewDocument})
	first := ws.Tabs[0].DocID

	require.True(t, Apply(s, ws, Action{Op: OpEnterInsert}))

	gated := []Action{
		{Op: OpNewDocument},
		{Op: OpSwitchDocument, DocID: first},
		{Op: OpNextDocument},
		{Op: OpPreviousDocument},
		{Op: OpRequestClose},
		{Op: OpConfirmClose},
		{Op: OpCancelClose},
	}
	for _, a := range gated {
		assert.False(t, Apply(s, ws, a), "op %d must be inert in insert mode", a.Op)
	}
	assert.Len(t, ws.Tabs, 2)
}

func TestStructuralActionsGatedInInsertMode(t *testing.T) {
	s := editor.NewSession()
	ws := workspace.New()
	doc := ws.ActiveDocument()

	require.True(t, Apply(s, ws, Action{Op: OpEnterInsert}))
	before := doc.Tree.Clone()

	gated := []Action{
		{Op: OpMoveCursor, Direction: editor.DirChild},
		{Op: OpSwapSibling, Swap: editor.SwapDown},
		{Op: OpAddChild},
		{Op: OpAddSibling},
		{Op: OpDeleteNode},
		{Op: OpUndo},
		{Op: OpRedo},
	}
	for _, a := range gated {
		assert.False(t, Apply(s, ws, a), "op %d must be inert in insert mode", a.Op)
	}
	assert.True(t, doc.Tree.Equal(before))
}

func TestSetTextGatedInNormalMode(t *testing.T) {
	s := editor.NewSession()
	ws := workspace.New()

	assert.False(t, Apply(s, ws, Action{Op: OpSetText, Text: "nope"}))
	assert.False(t, Apply(s, ws, Action{Op: OpCommitInsert}))
	assert.Equal(t, "", ws.ActiveDocument().Cursor().Text)
}

func TestWorkspaceActionsThroughDispatch(t *testing.T) {
	s := editor.NewSession()
	ws := workspace.New()
	first := ws.ActiveDocID

	require.True(t, Apply(s, ws, Action{Op: OpNewDocument}))
	second := ws.ActiveDocID
	require.True(t, Apply(s, ws, Action{Op: OpSwitchDocument, DocID: first}))
	require.True(t, Apply(s, ws, Action{Op: OpNextDocument}))
	assert.Equal(t, second, ws.ActiveDocID)

	require.True(t, Apply(s, ws, Action{Op: OpRequestClose}))
	require.True(t, Apply(s, ws, Action{Op: OpConfirmClose}))
	assert.Len(t, ws.Tabs, 1)
	assert.Equal(t, first, ws.ActiveDocID)
}

func TestNilArgumentsAreInert(t *testing.T) {
	assert.False(t, Apply(nil, workspace.New(), Action{Op: OpUndo}))
	assert.False(t, Apply(editor.NewSession(), nil, Action{Op: OpUndo}))
}
