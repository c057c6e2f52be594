package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/okmtz/tsk-cli/internal/model"
)

var ErrTaskNotFound = errors.New("task not found")

func LoadTasks(config model.Config) ([]model.Task, string, error) {
	taskJsonPath := filepath.Join(config.DataDir, "tasks.json")

	// Create the data directory on first use
	if err := os.MkdirAll(config.DataDir, 0755); err != nil {
		return nil, "", fmt.Errorf("❌ Failed to create json data directory: %w", err)
	}

	// Initialize tasks.json with an empty JSON array if it does not exist
	if _, err := os.Stat(taskJsonPath); os.IsNotExist(err) {
		if err := os.WriteFile(taskJsonPath, []byte("[]"), 0644); err != nil {
			return nil, "", fmt.Errorf("❌ Failed to create tasks.json file: %w", err)
		}
	} else if err != nil {
		return nil, "", fmt.Errorf("❌ Failed to check tasks.json: %w", err)
	}

	var tasks []model.Task
	if err := LoadJson(taskJsonPath, &tasks); err != nil {
		return nil, "", fmt.Errorf("❌ Error loading tasks from JSON: %w", err)
	}

	return tasks, taskJsonPath, nil
}

func SaveTasks(tasks []model.Task, jsonPath string) error {
	return SaveJson(tasks, jsonPath)
}

// InsertTaskToJson assigns identifiers and appends the task to tasks.json.
func InsertTaskToJson(task model.Task, config model.Config) (model.Task, error) {
	tasks, taskJsonPath, err := LoadTasks(config)
	if err != nil {
		return model.Task{}, fmt.Errorf("❌ Failed to load to JSON: %w", err)
	}

	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	task.SeqID = NextSeqID(tasks)

	tasks = append(tasks, task)

	if err := SaveTasks(tasks, taskJsonPath); err != nil {
		return model.Task{}, err
	}

	return task, nil
}

// NextSeqID returns one past the highest sequence id in use. Gaps left by
// trashed tasks are not reused.
func NextSeqID(tasks []model.Task) int {
	maxID := 0
	for _, t := range tasks {
		if t.SeqID > maxID {
			maxID = t.SeqID
		}
	}
	return maxID + 1
}

// FindTask resolves a user-supplied key to a task index. The key is either
// a sequence id ("12") or a UUID prefix of at least four characters.
func FindTask(tasks []model.Task, key string) (int, error) {
	if key == "" {
		return -1, ErrTaskNotFound
	}

	if seqID, err := strconv.Atoi(key); err == nil {
		for i := range tasks {
			if tasks[i].SeqID == seqID {
				return i, nil
			}
		}
		return -1, fmt.Errorf("❌ %w: no task with id %d", ErrTaskNotFound, seqID)
	}

	if len(key) < 4 {
		return -1, fmt.Errorf("❌ id prefix %q is too short (need at least 4 characters)", key)
	}

	found := -1
	for i := range tasks {
		if strings.HasPrefix(tasks[i].ID, key) {
			if found != -1 {
				return -1, fmt.Errorf("❌ id prefix %q is ambiguous", key)
			}
			found = i
		}
	}
	if found == -1 {
		return -1, fmt.Errorf("❌ %w: no task matching %q", ErrTaskNotFound, key)
	}
	return found, nil
}

// CleanupTrash drops trashed tasks whose deletion is older than the
// retention window and rewrites tasks.json.
func CleanupTrash(config model.Config, retention time.Duration) error {
	tasks, taskJsonPath, err := LoadTasks(config)
	if err != nil {
		return err
	}

	cutoff := time.Now().Add(-retention)
	kept := tasks[:0]
	removed := 0
	for _, t := range tasks {
		if t.Deleted && t.DeletedAt != nil && t.DeletedAt.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, t)
	}

	if removed == 0 {
		return nil
	}
	return SaveTasks(kept, taskJsonPath)
}
