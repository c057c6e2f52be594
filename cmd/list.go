/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/okmtz/tsk-cli/internal/model"
	"github.com/okmtz/tsk-cli/internal/store"
	"github.com/okmtz/tsk-cli/internal/ui"
	"github.com/okmtz/tsk-cli/internal/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var listStatus string
var listPriority string
var listSource string
var listFrom string
var listTo string
var listSearchQuery string
var listPageSize int
var listTrash bool
var listArchive bool
var listOverdue bool

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List tasks",
	Aliases: []string{"ls"},
	Run: func(cmd *cobra.Command, args []string) {
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

		tasks, _, err := store.LoadTasks(*config)
		if err != nil {
			log.Printf("❌ Error loading tasks: %v\n", err)
			os.Exit(1)
		}

		// Typed filters are validated up front so a typo fails before any output.
		var status model.Status
		if listStatus != "" {
			status, err = model.ParseStatus(listStatus)
			if err != nil {
				log.Fatalf("❌ %v", err)
			}
		}
		var priority model.Priority
		if listPriority != "" {
			priority, err = model.ParsePriority(listPriority)
			if err != nil {
				log.Fatalf("❌ %v", err)
			}
		}
		var source model.SourceType
		if listSource != "" {
			source, err = model.ParseSourceType(listSource)
			if err != nil {
				log.Fatalf("❌ %v", err)
			}
		}

		if listSearchQuery != "" {
			tasks = util.FullTextSearch(tasks, listSearchQuery)
		}

		now := time.Now()
		filtered := []model.Task{}
		for _, task := range tasks {
			switch {
			case listTrash:
				if !task.Deleted {
					continue
				}
			case listArchive:
				if !task.Archived || task.Deleted {
					continue
				}
			default:
				if task.Deleted || task.Archived {
					continue
				}
			}

			if listStatus != "" && task.Status != status {
				continue
			}
			if listPriority != "" && task.Priority != priority {
				continue
			}
			if listSource != "" && task.Source.Type != source {
				continue
			}
			if listOverdue && !task.IsOverdue(now) {
				continue
			}
			if !util.IsWithinDateRange(task.CreatedAt, listFrom, listTo) {
				continue
			}

			filtered = append(filtered, task)
		}

		// Pagination
		reader := bufio.NewReader(os.Stdin)
		page := 0

		fmt.Println(strings.Repeat("=", 30))
		fmt.Printf("Tasks: %v tasks shown\n", len(filtered))
		fmt.Println(strings.Repeat("=", 30))

		// No --limit flag means show everything at once
		if listPageSize <= 0 {
			listPageSize = len(filtered)
		}

		for len(filtered) > 0 {
			start := page * listPageSize
			end := start + listPageSize

			if start >= len(filtered) {
				fmt.Println("No more tasks to display.")
				break
			}
			if end > len(filtered) {
				end = len(filtered)
			}

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.SetStyle(table.StyleDouble)
			t.Style().Options.SeparateRows = false

			t.AppendHeader(table.Row{
				text.FgGreen.Sprintf("ID"),
				text.FgGreen.Sprintf("%s", text.Bold.Sprintf("Title")),
				text.FgGreen.Sprintf("Status"),
				text.FgGreen.Sprintf("Priority"),
				text.FgGreen.Sprintf("Source"),
				text.FgGreen.Sprintf("Due"),
				text.FgGreen.Sprintf("Created"),
			})

			for _, task := range filtered[start:end] {
				t.AppendRow(listRow(task, now))
			}

			t.Render()

			if end >= len(filtered) {
				break
			}

			fmt.Print("\nPress Enter for the next page (q to quit): ")
			input, _ := reader.ReadString('\n')
			if strings.TrimSpace(input) == "q" {
				break
			}

			page++
		}

		done := 0
		for _, task := range filtered {
			if task.IsCompleted() {
				done++
			}
		}
		fmt.Println(ui.ProgressBar(done, len(filtered), 28))
	},
}

// listRow colors the enum cells the way the rest of the CLI does: status by
// progress, priority by severity, due dates red once overdue.
func listRow(task model.Task, now time.Time) table.Row {
	title := task.Title
	if g := ui.ConfidenceGlyph(task.Confidence); g != "" {
		title = fmt.Sprintf("%s %s", title, text.FgHiYellow.Sprintf("%s", g))
	}

	var statusColored string
	switch task.Status {
	case model.StatusPending:
		statusColored = text.FgHiYellow.Sprintf("%s", task.Status)
	case model.StatusCompleted:
		statusColored = text.FgHiGreen.Sprintf("%s", task.Status)
	case model.StatusCancelled:
		statusColored = text.FgHiBlack.Sprintf("%s", task.Status)
	default:
		statusColored = string(task.Status)
	}

	priorityColored := ""
	switch task.Priority {
	case model.PriorityUrgent:
		priorityColored = text.FgHiRed.Sprintf("%s", ui.PriorityLabel(task.Priority))
	case model.PriorityHigh:
		priorityColored = text.FgRed.Sprintf("%s", ui.PriorityLabel(task.Priority))
	case model.PriorityMedium:
		priorityColored = text.FgHiYellow.Sprintf("%s", ui.PriorityLabel(task.Priority))
	case model.PriorityLow:
		priorityColored = text.FgHiBlue.Sprintf("%s", ui.PriorityLabel(task.Priority))
	}

	due := ""
	if task.DueDate != nil {
		due = ui.DueLabel(*task.DueDate, now)
		if task.IsOverdue(now) {
			due = text.FgHiRed.Sprintf("%s", due)
		}
	}

	return table.Row{
		task.SeqID,
		title,
		statusColored,
		priorityColored,
		ui.SourceLabel(task.Source.Type),
		due,
		task.CreatedAt.Format("2006-01-02"),
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listStatus, "status", "", "Filter by status (pending, completed, cancelled)")
	listCmd.Flags().StringVarP(&listPriority, "priority", "p", "", "Filter by priority (low, medium, high, urgent)")
	listCmd.Flags().StringVar(&listSource, "source", "", "Filter by source (manual, messages, email, clipboard)")
	listCmd.Flags().StringVar(&listFrom, "from", "", "Filter by creation date from (YYYY-MM-DD)")
	listCmd.Flags().StringVar(&listTo, "to", "", "Filter by creation date to (YYYY-MM-DD)")
	listCmd.Flags().StringVarP(&listSearchQuery, "search", "q", "", "Search by title or notes")
	listCmd.Flags().IntVar(&listPageSize, "limit", 0, "Number of tasks per page (0 for all)")
	listCmd.Flags().BoolVar(&listTrash, "trash", false, "Show trashed tasks")
	listCmd.Flags().BoolVar(&listArchive, "archive", false, "Show archived tasks")
	listCmd.Flags().BoolVar(&listOverdue, "overdue", false, "Show only overdue tasks")
}
