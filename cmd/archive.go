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

var archiveUnset bool

// archiveCmd represents the archive command. Archived tasks are hidden from
// the default list but stay in the store; --unset brings a task back.
var archiveCmd = &cobra.Command{
	Use:   "archive [task]",
	Short: "Archive a task",
	Args:  cobra.ExactArgs(1),
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

		if archiveUnset {
			if !tasks[idx].Archived {
				fmt.Printf("⚠️ Task #%d is not archived.\n", tasks[idx].SeqID)
				return
			}
			tasks[idx].ResetArchived(time.Now())
		} else {
			if tasks[idx].Archived {
				fmt.Printf("⚠️ Task #%d is already archived.\n", tasks[idx].SeqID)
				return
			}
			tasks[idx].SetArchived(time.Now())
		}

		if err := store.SaveTasks(tasks, jsonPath); err != nil {
			log.Fatalf("❌ Failed to save tasks: %v", err)
		}

		if archiveUnset {
			fmt.Printf("✅ Task #%d %q unarchived.\n", tasks[idx].SeqID, tasks[idx].Title)
		} else {
			fmt.Printf("✅ Task #%d %q archived.\n", tasks[idx].SeqID, tasks[idx].Title)
		}
	},
}

func init() {
	rootCmd.AddCommand(archiveCmd)
	archiveCmd.Flags().BoolVarP(&archiveUnset, "unset", "u", false, "Move the task back out of the archive")
}
