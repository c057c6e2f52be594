/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/okmtz/tsk-cli/internal/store"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// doneCmd represents the done command. It toggles: running it on a completed
// task reopens the task and clears the completion timestamp.
var doneCmd = &cobra.Command{
	Use:     "done [task]",
	Short:   "Toggle a task between done and pending",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"do", "toggle"},
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v\n", err)
			os.Exit(1)
		}

		tasks, jsonPath, err := store.LoadTasks(*config)
		if err != nil {
			log.Printf("❌ Error loading tasks: %v\n", err)
			os.Exit(1)
		}

		idx, err := store.FindTask(tasks, args[0])
		if err != nil {
			log.Fatalf("%v", err)
		}

		if config.Backup.Enable {
			if err := store.BackupTasks(jsonPath, config.Backup.BackupDir); err != nil {
				log.Printf("⚠️ Backup failed: %v", err)
			}
		}

		tasks[idx].ToggleCompletion(time.Now())

		if err := store.SaveTasks(tasks, jsonPath); err != nil {
			log.Fatalf("❌ Failed to save tasks: %v", err)
		}

		if tasks[idx].IsCompleted() {
			fmt.Printf("✅ Task #%d %q completed.\n", tasks[idx].SeqID, tasks[idx].Title)
		} else {
			fmt.Printf("🔄 Task #%d %q reopened.\n", tasks[idx].SeqID, tasks[idx].Title)
		}
	},
}

func init() {
	rootCmd.AddCommand(doneCmd)
}
