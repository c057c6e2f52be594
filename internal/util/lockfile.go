package util

import (
	"fmt"
	"os"
	"time"

	"github.com/okmtz/tsk-cli/internal/model"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// CreateLockFile marks a task as being edited so a second `tsk edit` on the
// same task can refuse. Callers remove the file when the editor exits.
func CreateLockFile(lockFileName string) error {
	log.Debugf("Creating lock file: %s", lockFileName)

	t := time.Now()
	id := fmt.Sprintf("%d%02d%02d%02d%02d%02d",
		t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second())

	user := os.Getenv("USER")
	if user == "" {
		user = os.Getenv("USERNAME")
	}
	if user == "" {
		return fmt.Errorf("failed to retrieve the username")
	}

	pid := os.Getpid()

	lockFile := model.LockFile{ID: id, User: user, Pid: pid, TimeStamp: t.Format(time.RFC3339)}

	info, err := yaml.Marshal(&lockFile)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	err = os.WriteFile(lockFileName, info, 0644)
	if err != nil {
		return fmt.Errorf("failed to write lock file: %w", err)
	}

	return nil
}

// IsLocked reports whether a lock file already exists for the task.
func IsLocked(lockFileName string) bool {
	_, err := os.Stat(lockFileName)
	return err == nil
}
