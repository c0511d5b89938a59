// Package history persists small recall lists, like recent search queries,
// as TOML files under the user's data directory.
package history

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Manager handles loading and saving history to TOML files
type Manager struct {
	historyDir string
}

// HistoryFile represents the structure of a history TOML file
type HistoryFile struct {
	Entries []string `toml:"entries"`
}

// NewManager creates a new history manager with directory at ~/.local/share/tui-mindmap/history/
func NewManager() (*Manager, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	historyDir := filepath.Join(homeDir, ".local", "share", "tui-mindmap", "history")

	if err := os.MkdirAll(historyDir, 0755); err != nil {
		return nil, err
	}

	return &Manager{
		historyDir: historyDir,
	}, nil
}

// NewManagerAt creates a manager rooted at an explicit directory
func NewManagerAt(dir string) (*Manager, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &Manager{historyDir: dir}, nil
}

// Load loads history entries from a TOML file. A missing or corrupted file
// reads as an empty history.
func (m *Manager) Load(filename string) ([]string, error) {
	filePath := filepath.Join(m.historyDir, filename)

	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}

	var histFile HistoryFile
	if err := toml.Unmarshal(data, &histFile); err != nil {
		return []string{}, nil
	}

	return histFile.Entries, nil
}

// Save saves history entries to a TOML file
func (m *Manager) Save(filename string, entries []string) error {
	filePath := filepath.Join(m.historyDir, filename)

	histFile := HistoryFile{
		Entries: entries,
	}

	data, err := toml.Marshal(histFile)
	if err != nil {
		return err
	}

	return os.WriteFile(filePath, data, 0644)
}

// Append adds an entry to a history file, dropping duplicates and keeping
// at most limit entries, newest last
func (m *Manager) Append(filename, entry string, limit int) error {
	entries, err := m.Load(filename)
	if err != nil {
		return err
	}

	kept := entries[:0]
	for _, e := range entries {
		if e != entry {
			kept = append(kept, e)
		}
	}
	kept = append(kept, entry)
	if limit > 0 && len(kept) > limit {
		kept = kept[len(kept)-limit:]
	}

	return m.Save(filename, kept)
}
