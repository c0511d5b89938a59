package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pstuifzand/tui-mindmap/internal/workspace"
)

func TestLoadMissingFileReturnsFreshWorkspace(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "does-not-exist.json"))

	ws, err := store.Load()
	require.NoError(t, err)
	require.Len(t, ws.Tabs, 1)
	require.NotNil(t, ws.ActiveDocument())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workspace.json")
	store := NewStore(path)

	ws := workspace.New()
	doc := ws.ActiveDocument()
	doc.Cursor().Text = "root topic"
	second := ws.CreateDocument()
	second.Cursor().Text = "second root"

	require.NoError(t, store.Save(ws))
	require.True(t, store.FileExists())

	loaded, err := store.Load()
	require.NoError(t, err)

	require.Len(t, loaded.Tabs, 2)
	assert.Equal(t, ws.ActiveDocID, loaded.ActiveDocID)
	assert.Equal(t, ws.Tabs, loaded.Tabs)
	require.NotNil(t, loaded.Document(doc.ID))
	assert.True(t, doc.Tree.Equal(loaded.Document(doc.ID).Tree))
	assert.True(t, second.Tree.Equal(loaded.Document(second.ID).Tree))
}

func TestHistoryIsNotPersisted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workspace.json")
	store := NewStore(path)

	ws := workspace.New()
	doc := ws.ActiveDocument()
	snap := doc.Tree.Clone()
	doc.Cursor().Text = "changed"
	doc.PushSnapshot(snap)

	require.NoError(t, store.Save(ws))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "undoStack")

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded.Document(doc.ID).UndoStack)
}

func TestPersistedFieldNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workspace.json")
	store := NewStore(path)
	require.NoError(t, store.Save(workspace.New()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "tabs")
	assert.Contains(t, decoded, "activeDocId")
	assert.Contains(t, decoded, "documents")
}

func TestLoadCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workspace.json")
	require.NoError(t, os.WriteFile(path, []byte("{not valid json"), 0o644))

	ws, err := NewStore(path).Load()
	require.NoError(t, err)
	require.Len(t, ws.Tabs, 1)
	require.NotNil(t, ws.ActiveDocument())
	require.NoError(t, ws.ActiveDocument().Tree.Validate())
}

func TestLoadSanitizesGhostTabs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workspace.json")
	raw := `{"tabs":[{"docId":"ghost"}],"activeDocId":"ghost","documents":{}}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	ws, err := NewStore(path).Load()
	require.NoError(t, err)
	require.Len(t, ws.Tabs, 1)
	doc := ws.ActiveDocument()
	require.NotNil(t, doc)
	require.NoError(t, doc.Tree.Validate())
	assert.Equal(t, 1, doc.Tree.Len())
}

func TestBackupCreateAndPrune(t *testing.T) {
	dir := t.TempDir()
	bm, err := NewBackupManager(dir)
	require.NoError(t, err)

	ws := workspace.New()
	require.NoError(t, bm.CreateBackup(ws))

	backups, err := bm.ListBackups()
	require.NoError(t, err)
	require.Len(t, backups, 1)

	// Backups beyond the retention limit are pruned oldest-first.
	for i := 0; i < maxBackups+5; i++ {
		name := filepath.Join(dir, fmt.Sprintf("20200101_%06d.json", i))
		require.NoError(t, os.WriteFile(name, []byte("{}"), 0o644))
	}
	require.NoError(t, bm.CreateBackup(ws))

	backups, err = bm.ListBackups()
	require.NoError(t, err)
	assert.Len(t, backups, maxBackups)
}
