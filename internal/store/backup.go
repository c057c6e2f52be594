package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
)

// BackupTasks copies tasks.json into the backup directory with a timestamped
// name before a destructive operation touches it.
func BackupTasks(jsonPath string, backupDir string) error {
	if err := os.MkdirAll(backupDir, 0755); err != nil {
		return fmt.Errorf("❌ Failed to create backup directory: %w", err)
	}

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("❌ Failed to read tasks file: %w", err)
	}

	backupName := fmt.Sprintf("tasks_%s.json", time.Now().Format("20060102T150405"))
	backupPath := filepath.Join(backupDir, backupName)
	if err := os.WriteFile(backupPath, data, 0644); err != nil {
		return fmt.Errorf("❌ Failed to write backup file: %w", err)
	}

	log.Debugf("Backed up tasks to %s", backupPath)
	return nil
}

// CleanupBackups removes backup files older than the retention window.
func CleanupBackups(backupDir string, retention time.Duration) error {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("❌ Failed to read backup directory: %w", err)
	}

	cutoff := time.Now().Add(-retention)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			log.Warnf("Failed to stat backup file %s: %v", entry.Name(), err)
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(backupDir, entry.Name())); err != nil {
				log.Warnf("Failed to remove old backup %s: %v", entry.Name(), err)
			}
		}
	}
	return nil
}
