/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/okmtz/tsk-cli/internal/model"
	"github.com/okmtz/tsk-cli/internal/store"
	"github.com/okmtz/tsk-cli/internal/ui"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show task counts and progress",
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

		now := time.Now()
		byStatus := map[model.Status]int{}
		byPriority := map[model.Priority]int{}
		total, overdue, trashed, archived := 0, 0, 0, 0

		for _, task := range tasks {
			if task.Deleted {
				trashed++
				continue
			}
			if task.Archived {
				archived++
				continue
			}
			total++
			byStatus[task.Status]++
			if !task.IsCompleted() && task.Status != model.StatusCancelled {
				byPriority[task.Priority]++
			}
			if task.IsOverdue(now) {
				overdue++
			}
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleDouble)
		t.Style().Options.SeparateRows = false
		t.AppendHeader(table.Row{
			text.FgGreen.Sprintf("Status"),
			text.FgGreen.Sprintf("Count"),
		})
		t.AppendRow(table.Row{text.FgHiYellow.Sprintf("%s", model.StatusPending), byStatus[model.StatusPending]})
		t.AppendRow(table.Row{text.FgHiGreen.Sprintf("%s", model.StatusCompleted), byStatus[model.StatusCompleted]})
		t.AppendRow(table.Row{text.FgHiBlack.Sprintf("%s", model.StatusCancelled), byStatus[model.StatusCancelled]})
		t.Render()

		// Priority breakdown covers open tasks only; done work has no urgency.
		p := table.NewWriter()
		p.SetOutputMirror(os.Stdout)
		p.SetStyle(table.StyleDouble)
		p.Style().Options.SeparateRows = false
		p.AppendHeader(table.Row{
			text.FgGreen.Sprintf("Priority (open)"),
			text.FgGreen.Sprintf("Count"),
		})
		p.AppendRow(table.Row{text.FgHiRed.Sprintf("%s", model.PriorityUrgent), byPriority[model.PriorityUrgent]})
		p.AppendRow(table.Row{text.FgRed.Sprintf("%s", model.PriorityHigh), byPriority[model.PriorityHigh]})
		p.AppendRow(table.Row{text.FgHiYellow.Sprintf("%s", model.PriorityMedium), byPriority[model.PriorityMedium]})
		p.AppendRow(table.Row{text.FgHiBlue.Sprintf("%s", model.PriorityLow), byPriority[model.PriorityLow]})
		p.AppendRow(table.Row{string(model.PriorityNone), byPriority[model.PriorityNone]})
		p.Render()

		done := byStatus[model.StatusCompleted]
		fmt.Println(ui.ProgressBar(done, total, 28))
		if overdue > 0 {
			fmt.Println(text.FgHiRed.Sprintf("⚠️ %d overdue", overdue))
		}
		if trashed > 0 || archived > 0 {
			fmt.Printf("(%d in trash, %d archived)\n", trashed, archived)
		}
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
