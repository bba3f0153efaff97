package cmd

import (
	"fmt"
	"os"

	"github.com/iksnae/listcorpus/internal"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	version string = "dev"
	commit  string = "unknown"
	date    string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "listcorpus",
	Short: "Normalize and analyze mailing-list archives",
	Long: `A CLI tool to turn raw mailing-list archives into an analyzable corpus.

listcorpus ingests mbox files, LISTSERV text archives, or previously
exported CSV datasets, normalizes them into a deduplicated, time-ordered
message table, and derives reply-thread structure and per-sender activity
from it.

Quick Start:
  listcorpus import --mbox list.mbox --db corpus.db   # ingest once
  listcorpus stats --db corpus.db                     # sender activity
  listcorpus threads --db corpus.db                   # reply forest
  listcorpus footers --db corpus.db                   # shared footers
  listcorpus export --db corpus.db --format csv       # flat table out`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
