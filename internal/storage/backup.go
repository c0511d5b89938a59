package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/pstuifzand/tui-mindmap/internal/workspace"
)

// maxBackups is the number of timestamped backups kept per workspace
const maxBackups = 20

// BackupManager creates timestamped workspace backups before saving
type BackupManager struct {
	backupDir string
}

// NewBackupManager creates a backup manager writing to the given directory
func NewBackupManager(backupDir string) (*BackupManager, error) {
	if err := os.MkdirAll(backupDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create backup directory: %w", err)
	}
	return &BackupManager{backupDir: backupDir}, nil
}

// DefaultBackupDir returns ~/.local/share/tui-mindmap/backups
func DefaultBackupDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback if the home directory cannot be determined
		return filepath.Join("/tmp", ".tui-mindmap", "backups")
	}
	return filepath.Join(homeDir, ".local", "share", "tui-mindmap", "backups")
}

// CreateBackup writes a timestamped copy of the workspace, then prunes the
// oldest backups beyond the retention limit
func (bm *BackupManager) CreateBackup(ws *workspace.Workspace) error {
	filename := time.Now().Format("20060102_150405") + ".json"
	backupPath := filepath.Join(bm.backupDir, filename)

	data, err := json.MarshalIndent(ws, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal backup JSON: %w", err)
	}
	if err := os.WriteFile(backupPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}

	return bm.prune()
}

// ListBackups returns the backup file paths sorted oldest first
func (bm *BackupManager) ListBackups() ([]string, error) {
	entries, err := os.ReadDir(bm.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		paths = append(paths, filepath.Join(bm.backupDir, entry.Name()))
	}
	// Timestamped names sort chronologically.
	slices.Sort(paths)
	return paths, nil
}

func (bm *BackupManager) prune() error {
	paths, err := bm.ListBackups()
	if err != nil {
		return err
	}
	for len(paths) > maxBackups {
		if err := os.Remove(paths[0]); err != nil {
			return fmt.Errorf("failed to prune backup: %w", err)
		}
		paths = paths[1:]
	}
	return nil
}
