/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/okmtz/tsk-cli/internal/model"
	"github.com/okmtz/tsk-cli/internal/store"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize config.yaml and the task store",
	Run: func(cmd *cobra.Command, args []string) {
		configPath, err := store.GetConfigPath()
		if err != nil {
			log.Fatalf("❌ Failed to get config path: %v", err)
		}

		configDir := filepath.Dir(configPath)

		if err := os.MkdirAll(configDir, 0755); err != nil {
			log.Fatalf("❌ Failed to create config directory: %v", err)
		}

		if _, err := os.Stat(configPath); err == nil {
			fmt.Println("⚠️ Config file already exists:", configPath)
			return
		}

		configData, err := yaml.Marshal(model.DefaultConfig())
		if err != nil {
			log.Fatalf("❌ Failed to generate config: %v", err)
		}

		if err := os.WriteFile(configPath, configData, 0644); err != nil {
			log.Fatalf("❌ Failed to create config file: %v", err)
		}

		config, err := store.LoadConfig()
		if err != nil {
			log.Fatalf("❌ Failed to load config: %v", err)
		}

		if _, _, err := store.LoadTasks(*config); err != nil {
			log.Fatalf("❌ Failed to initialize task store: %v", err)
		}

		fmt.Println("✅ tsk initialized successfully!")
		fmt.Println("📄 Config file created at:", configPath)
		fmt.Println("📄 Tasks stored under:", config.DataDir)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
