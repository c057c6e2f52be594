/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"
	"time"

	"github.com/okmtz/tsk-cli/internal/store"
	"github.com/okmtz/tsk-cli/internal/ui"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:     "tui",
	Short:   "Work through tasks in an interactive list",
	Aliases: []string{"ui"},
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

		// The TUI saves on quit; back the file up before it can.
		if config.Backup.Enable {
			if err := store.BackupTasks(jsonPath, config.Backup.BackupDir); err != nil {
				log.Printf("⚠️ Backup failed: %v", err)
			}
			if err := store.CleanupBackups(config.Backup.BackupDir, time.Duration(config.Backup.Retention)*24*time.Hour); err != nil {
				log.Printf("⚠️ Backup cleanup failed: %v", err)
			}
		}

		if err := ui.RunInteractive(tasks, jsonPath); err != nil {
			log.Fatalf("❌ %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
