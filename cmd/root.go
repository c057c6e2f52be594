/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tsk",
	Short: "A personal task manager for the terminal",
	Long: `tsk keeps your tasks in a local JSON store and works on them from
the command line: add and list tasks, toggle them done, scan message
exports for things people asked you to do, and sync the store to S3.

Run 'tsk init' once to create the config file, then 'tsk add' to get going.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(func() {
		if verbose || os.Getenv("TSK_DEBUG") != "" {
			log.SetLevel(log.DebugLevel)
		}
	})

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
