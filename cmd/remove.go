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

var removeForce bool

// removeCmd represents the remove command
var removeCmd = &cobra.Command{
	Use:     "remove [task]",
	Short:   "Move a task to the trash",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"rm"},
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

		if removeForce {
			removed := tasks[idx]
			tasks = append(tasks[:idx], tasks[idx+1:]...)
			if err := store.SaveTasks(tasks, jsonPath); err != nil {
				log.Fatalf("❌ Failed to save tasks: %v", err)
			}
			fmt.Printf("✅ Task #%d %q permanently deleted.\n", removed.SeqID, removed.Title)
			return
		}

		if tasks[idx].Deleted {
			fmt.Printf("⚠️ Task #%d is already in the trash.\n", tasks[idx].SeqID)
			return
		}

		tasks[idx].SetDeleted(time.Now())
		if err := store.SaveTasks(tasks, jsonPath); err != nil {
			log.Fatalf("❌ Failed to save tasks: %v", err)
		}

		fmt.Printf("✅ Task #%d %q moved to trash. Restore it with `tsk restore %d`.\n",
			tasks[idx].SeqID, tasks[idx].Title, tasks[idx].SeqID)
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
	removeCmd.Flags().BoolVarP(&removeForce, "force", "f", false, "Permanently delete the task")
}
