/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/okmtz/tsk-cli/internal/store"
	"github.com/okmtz/tsk-cli/internal/ui"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var showMeta bool

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:     "show [task]",
	Short:   "Show task detail",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"s"},
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v\n", err)
			os.Exit(1)
		}

		tasks, _, err := store.LoadTasks(*config)
		if err != nil {
			log.Printf("❌ Error loading tasks: %v\n", err)
			os.Exit(1)
		}

		idx, err := store.FindTask(tasks, args[0])
		if err != nil {
			log.Fatalf("%v", err)
		}
		task := tasks[idx]

		titleStyle := color.New(color.FgCyan, color.Bold).SprintFunc()
		metaStyle := color.New(color.FgHiGreen).SprintFunc()
		warnStyle := color.New(color.FgHiRed).SprintFunc()

		fmt.Printf("[#%v] %v\n", titleStyle(task.SeqID), titleStyle(task.Title))
		fmt.Println(strings.Repeat("-", 50))
		fmt.Printf("ID: %v\n", metaStyle(task.ID))
		fmt.Printf("Status: %v\n", metaStyle(task.Status))
		fmt.Printf("Priority: %v\n", metaStyle(task.Priority))

		source := string(task.Source.Type)
		if task.Source.Identifier != "" {
			source = fmt.Sprintf("%s (%s)", task.Source.Type, task.Source.Identifier)
		}
		fmt.Printf("Source: %v\n", metaStyle(source))
		fmt.Printf("Confidence: %v\n", metaStyle(task.Confidence))

		now := time.Now()
		if task.DueDate != nil {
			label := ui.DueLabel(*task.DueDate, now)
			if task.IsOverdue(now) {
				label += ", overdue"
			}
			due := fmt.Sprintf("%s (%s)", task.DueDate.Format("2006-01-02 15:04"), label)
			if task.IsOverdue(now) {
				fmt.Printf("Due: %v\n", warnStyle(due))
			} else {
				fmt.Printf("Due: %v\n", metaStyle(due))
			}
		}

		fmt.Printf("Created at: %v\n", metaStyle(task.CreatedAt.Format("2006-01-02 15:04")))
		fmt.Printf("Updated at: %v\n", metaStyle(task.UpdatedAt.Format("2006-01-02 15:04")))
		if task.CompletedAt != nil {
			fmt.Printf("Completed at: %v\n", metaStyle(task.CompletedAt.Format("2006-01-02 15:04")))
		}
		if task.Archived {
			fmt.Printf("Archived: %v\n", metaStyle("yes"))
		}
		if task.Deleted {
			fmt.Printf("In trash: %v\n", warnStyle("yes"))
		}

		// Render notes as markdown unless --meta is used
		if !showMeta && task.Notes != "" {
			renderedContent, err := glamour.Render(task.Notes, "dark")
			if err != nil {
				log.Printf("⚠️ Failed to render notes: %v", err)
			} else {
				fmt.Println(renderedContent)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showMeta, "meta", false, "Show only metadata without the notes")
}
