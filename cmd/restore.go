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

// restoreCmd represents the restore command
var restoreCmd = &cobra.Command{
	Use:   "restore [task]",
	Short: "Restore a task from the trash",
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

		if !tasks[idx].Deleted {
			fmt.Printf("⚠️ Task #%d is not in the trash.\n", tasks[idx].SeqID)
			return
		}

		tasks[idx].ResetDeleted(time.Now())
		if err := store.SaveTasks(tasks, jsonPath); err != nil {
			log.Fatalf("❌ Failed to save tasks: %v", err)
		}

		fmt.Printf("✅ Task #%d %q restored from trash.\n", tasks[idx].SeqID, tasks[idx].Title)
	},
}

func init() {
	rootCmd.AddCommand(restoreCmd)
}
