/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/okmtz/tsk-cli/internal/model"
	"github.com/okmtz/tsk-cli/internal/store"
	"github.com/okmtz/tsk-cli/internal/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:     "edit [task]",
	Short:   "Edit a task in your editor",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"e"},
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v\n", err)
			os.Exit(1)
		}

		if err := editTaskByKey(args[0], *config); err != nil {
			log.Fatalf("%v", err)
		}
	},
}

// editTaskByKey round-trips a task through $EDITOR as a markdown file with a
// YAML front matter header. The body is the task's notes; id, source and the
// create timestamp are shown but not applied back.
func editTaskByKey(key string, config model.Config) error {
	tasks, jsonPath, err := store.LoadTasks(config)
	if err != nil {
		return fmt.Errorf("❌ Error loading tasks: %w", err)
	}

	idx, err := store.FindTask(tasks, key)
	if err != nil {
		return err
	}
	task := tasks[idx]

	lockFile := filepath.Join(config.DataDir, task.ID+".lock")
	if util.IsLocked(lockFile) {
		return fmt.Errorf("❌ Task #%d is already being edited (remove %s if that is stale)", task.SeqID, lockFile)
	}
	if err := util.CreateLockFile(lockFile); err != nil {
		return fmt.Errorf("❌ Failed to create lock file: %w", err)
	}
	defer os.Remove(lockFile)

	if config.Backup.Enable {
		if err := store.BackupTasks(jsonPath, config.Backup.BackupDir); err != nil {
			log.Printf("⚠️ Backup failed: %v", err)
		}
	}

	frontMatter := task.FrontMatter()
	content := store.UpdateFrontMatter(&frontMatter, task.Notes)

	tmpFile, err := os.CreateTemp("", fmt.Sprintf("tsk-%d-*.md", task.SeqID))
	if err != nil {
		return fmt.Errorf("❌ Failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpFile.WriteString(content); err != nil {
		tmpFile.Close()
		return fmt.Errorf("❌ Failed to write temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("❌ Failed to close temp file: %w", err)
	}

	if err := util.OpenEditor(tmpPath, config); err != nil {
		return fmt.Errorf("❌ Failed to open editor: %w", err)
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return fmt.Errorf("❌ Failed to read edited file: %w", err)
	}

	if string(edited) == content {
		fmt.Printf("⚠️ Task #%d unchanged.\n", task.SeqID)
		return nil
	}

	newFrontMatter, body, err := store.ParseFrontMatter(string(edited))
	if err != nil {
		return err
	}

	if err := tasks[idx].ApplyFrontMatter(newFrontMatter, body, time.Now()); err != nil {
		return fmt.Errorf("❌ %w", err)
	}

	if err := store.SaveTasks(tasks, jsonPath); err != nil {
		return err
	}

	fmt.Printf("✅ Task #%d %q updated.\n", tasks[idx].SeqID, tasks[idx].Title)
	return nil
}

func init() {
	rootCmd.AddCommand(editCmd)
}
