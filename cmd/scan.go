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
	"github.com/okmtz/tsk-cli/internal/extract"
	"github.com/okmtz/tsk-cli/internal/model"
	"github.com/okmtz/tsk-cli/internal/store"
	"github.com/okmtz/tsk-cli/internal/ui"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var scanYes bool
var scanMinConfidence string
var scanSource string

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan [file]",
	Short: "Scan a message export for tasks people asked you to do",
	Long: `scan reads a conversation export (plain text or JSON) and proposes
tasks for messages that look like requests. Each candidate carries the
source message, a guessed priority and due date, and a confidence level;
you confirm candidates one by one unless --yes is given.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v\n", err)
			os.Exit(1)
		}

		srcType := model.SourceMessages
		if scanSource != "" {
			srcType, err = model.ParseSourceType(scanSource)
			if err != nil {
				log.Fatalf("❌ %v", err)
			}
		}

		var minConfidence model.Confidence
		if scanMinConfidence != "" {
			minConfidence, err = model.ParseConfidence(scanMinConfidence)
			if err != nil {
				log.Fatalf("❌ %v", err)
			}
		}

		messages, err := extract.ParseMessageFile(args[0])
		if err != nil {
			log.Fatalf("❌ Failed to parse %s: %v", args[0], err)
		}

		now := time.Now()
		candidates := extract.ExtractTasks(messages, srcType, now)

		if scanMinConfidence != "" {
			kept := candidates[:0]
			for _, c := range candidates {
				if c.Task.Confidence.Rank() >= minConfidence.Rank() {
					kept = append(kept, c)
				}
			}
			candidates = kept
		}

		if len(candidates) == 0 {
			fmt.Printf("Scanned %d messages, nothing actionable found.\n", len(messages))
			return
		}

		fmt.Printf("Scanned %d messages, %d candidates:\n\n", len(messages), len(candidates))

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleDouble)
		t.Style().Options.SeparateRows = false
		t.AppendHeader(table.Row{
			text.FgGreen.Sprintf("#"),
			text.FgGreen.Sprintf("%s", text.Bold.Sprintf("Title")),
			text.FgGreen.Sprintf("Priority"),
			text.FgGreen.Sprintf("Due"),
			text.FgGreen.Sprintf("Confidence"),
			text.FgGreen.Sprintf("Cues"),
		})
		for i, c := range candidates {
			due := ""
			if c.Task.DueDate != nil {
				due = ui.DueLabel(*c.Task.DueDate, now)
			}

			var confColored string
			switch c.Task.Confidence {
			case model.ConfidenceHigh:
				confColored = text.FgHiGreen.Sprintf("%s", c.Task.Confidence)
			case model.ConfidenceMedium:
				confColored = text.FgHiYellow.Sprintf("%s", c.Task.Confidence)
			default:
				confColored = text.FgHiRed.Sprintf("%s", c.Task.Confidence)
			}

			t.AppendRow(table.Row{
				i + 1,
				c.Task.Title,
				ui.PriorityLabel(c.Task.Priority),
				due,
				confColored,
				strings.Join(c.Why, ", "),
			})
		}
		t.Render()
		fmt.Println()

		reader := bufio.NewReader(os.Stdin)
		imported := 0
		for i, c := range candidates {
			if !scanYes {
				fmt.Printf("Import %d/%d %q [y/n/q]: ", i+1, len(candidates), c.Task.Title)
				input, _ := reader.ReadString('\n')
				input = strings.ToLower(strings.TrimSpace(input))
				if input == "q" {
					break
				}
				if input != "y" && input != "yes" {
					continue
				}
			}

			task, err := store.InsertTaskToJson(c.Task, *config)
			if err != nil {
				log.Fatalf("❌ Failed to import task: %v", err)
			}
			fmt.Printf("✅ Task #%d %q imported.\n", task.SeqID, task.Title)
			imported++
		}

		fmt.Printf("Imported %d of %d candidates.\n", imported, len(candidates))
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().BoolVarP(&scanYes, "yes", "y", false, "Import all candidates without prompting")
	scanCmd.Flags().StringVar(&scanMinConfidence, "min-confidence", "", "Drop candidates below this confidence (low, medium, high)")
	scanCmd.Flags().StringVar(&scanSource, "source", "", "Source type to record for imported tasks (default messages)")
}
