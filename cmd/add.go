/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/okmtz/tsk-cli/internal/model"
	"github.com/okmtz/tsk-cli/internal/store"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var addPriority string
var addDue string
var addNotes string
var addSource string
var addEdit bool

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:     "add [title]",
	Short:   "Add a new task",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"a", "new"},
	Run: func(cmd *cobra.Command, args []string) {
		taskTitle := args[0]

		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v\n", err)
			os.Exit(1)
		}

		// Perform cleanup tasks
		if config.Backup.Enable {
			if err := store.CleanupBackups(config.Backup.BackupDir, time.Duration(config.Backup.Retention)*24*time.Hour); err != nil {
				log.Printf("⚠️ Backup cleanup failed: %v", err)
			}
		}
		if err := store.CleanupTrash(*config, time.Duration(config.Trash.Retention)*24*time.Hour); err != nil {
			log.Printf("⚠️ Trash cleanup failed: %v", err)
		}

		priority := model.PriorityNone
		if addPriority != "" {
			priority, err = model.ParsePriority(addPriority)
			if err != nil {
				log.Fatalf("❌ %v", err)
			}
		}

		due, err := model.ParseDueDate(addDue)
		if err != nil {
			log.Fatalf("❌ %v", err)
		}

		// Tasks typed in are manual by default; --source records where a
		// hand-copied task actually came from.
		source := model.ManualSource()
		if addSource != "" {
			srcType, err := model.ParseSourceType(addSource)
			if err != nil {
				log.Fatalf("❌ %v", err)
			}
			source = model.Source{Type: srcType}
		}

		now := time.Now()
		task := model.Task{
			Title:      taskTitle,
			Notes:      addNotes,
			Status:     model.StatusPending,
			Priority:   priority,
			Source:     source,
			Confidence: model.ConfidenceHigh,
			DueDate:    due,
			CreatedAt:  now,
			UpdatedAt:  now,
		}

		task, err = store.InsertTaskToJson(task, *config)
		if err != nil {
			log.Printf("❌ Failed to create task: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("✅ Task #%d %q has been created successfully.\n", task.SeqID, task.Title)

		if addEdit {
			if err := editTaskByKey(strconv.Itoa(task.SeqID), *config); err != nil {
				log.Printf("❌ Failed to open editor: %v\n", err)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "", "Set priority (low, medium, high, urgent)")
	addCmd.Flags().StringVarP(&addDue, "due", "d", "", "Set due date (YYYY-MM-DD or \"YYYY-MM-DD HH:MM\")")
	addCmd.Flags().StringVarP(&addNotes, "notes", "n", "", "Set notes (markdown)")
	addCmd.Flags().StringVar(&addSource, "source", "", "Record the source channel (manual, messages, email, clipboard)")
	addCmd.Flags().BoolVarP(&addEdit, "edit", "e", false, "Open the new task in the editor")
}
