// Package storage persists the workspace to a JSON file. Undo/redo history
// is session-only and never written; a restart forgets history.
package storage

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/pstuifzand/tui-mindmap/internal/workspace"
)

// Store handles workspace JSON file persistence
type Store struct {
	FilePath string
}

// NewStore creates a store for the given file path
func NewStore(filePath string) *Store {
	return &Store{FilePath: filePath}
}

// DefaultPath returns the standard workspace file location,
// ~/.local/share/tui-mindmap/workspace.json
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".local", "share", "tui-mindmap", "workspace.json"), nil
}

// Load reads the workspace from disk and sanitizes it before the engine
// touches it. A missing or unparseable file yields a fresh single-document
// workspace: a load failure means "start empty", not an error.
func (s *Store) Load() (*workspace.Workspace, error) {
	data, err := os.ReadFile(s.FilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return workspace.New(), nil
		}
		return nil, fmt.Errorf("failed to read workspace file: %w", err)
	}

	var ws workspace.Workspace
	if err := json.Unmarshal(data, &ws); err != nil {
		log.Printf("workspace file %s is corrupt, starting empty: %v", s.FilePath, err)
		return workspace.New(), nil
	}

	ws.Sanitize()
	return &ws, nil
}

// Save writes the workspace to disk, creating the directory if needed
func (s *Store) Save(ws *workspace.Workspace) error {
	dir := filepath.Dir(s.FilePath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(ws, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if err := os.WriteFile(s.FilePath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// FileExists checks if the workspace file exists
func (s *Store) FileExists() bool {
	_, err := os.Stat(s.FilePath)
	return err == nil
}
