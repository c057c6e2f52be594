/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/okmtz/tsk-cli/internal/model"
	"github.com/okmtz/tsk-cli/internal/store"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Synchronize the task store with S3",
}

var syncPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Upload local changes to S3",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadSyncConfig()
		if err != nil {
			return err
		}

		if err := SyncWithS3(*config, "push"); err != nil {
			log.Printf("❌ Sync failed: %v", err)
			return fmt.Errorf("sync push: %w", err)
		}
		return nil
	},
}

var syncPullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Download latest changes from S3",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadSyncConfig()
		if err != nil {
			return err
		}

		if err := SyncWithS3(*config, "pull"); err != nil {
			log.Printf("❌ Sync failed: %v", err)
			return fmt.Errorf("sync pull: %w", err)
		}
		return nil
	},
}

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show differences between local and S3 files",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadSyncConfig()
		if err != nil {
			return err
		}

		return ShowSyncStatus(*config)
	},
}

// loadSyncConfig loads the config and refuses to run when sync is disabled
// or unconfigured, before any AWS call is attempted.
func loadSyncConfig() (*model.Config, error) {
	config, err := store.LoadConfig()
	if err != nil {
		log.Printf("❌ Error loading config: %v", err)
		os.Exit(1)
	}

	if !config.Sync.Enable {
		return nil, fmt.Errorf("❌ Sync is disabled; enable it with `tsk config` (sync.enable)")
	}
	if config.Sync.Bucket == "" {
		return nil, fmt.Errorf("❌ No sync bucket configured; set sync.bucket with `tsk config`")
	}

	return config, nil
}

func init() {
	syncCmd.AddCommand(syncPushCmd, syncPullCmd, syncStatusCmd)
	rootCmd.AddCommand(syncCmd)
}
