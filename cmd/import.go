package cmd

import (
	"fmt"

	"github.com/iksnae/listcorpus/internal"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Ingest archives into an archive database",
	Long: `Parse mbox, LISTSERV, or CSV sources, normalize them into the
canonical message table, and save the result to a SQLite archive database
for the other commands to read.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if dbPath == "" {
			return fmt.Errorf("--db is required: where should the archive be written?")
		}
		if mboxPath == "" && listservPath == "" && csvPath == "" {
			return fmt.Errorf("no input given: one of --mbox, --listserv or --csv is required")
		}

		rows, err := loadRawRows()
		if err != nil {
			return err
		}
		archive, err := internal.NewArchive(rows)
		if err != nil {
			return err
		}

		store, err := internal.OpenStore(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.SaveArchive(archive); err != nil {
			return err
		}

		stats := archive.Stats()
		first, last := archive.Span()
		fmt.Println(headerStyle.Render(fmt.Sprintf("Imported %d message(s) into %s", archive.Len(), dbPath)))
		fmt.Printf("  span:       %s to %s\n",
			dateStyle.Render(first.Format("2006-01-02")), dateStyle.Render(last.Format("2006-01-02")))
		fmt.Printf("  raw rows:   %d\n", stats.Input)
		if stats.Duplicates > 0 {
			fmt.Printf("  duplicates: %d dropped\n", stats.Duplicates)
		}
		if stats.BadDate > 0 {
			fmt.Printf("  bad dates:  %d dropped\n", stats.BadDate)
		}
		if stats.BadZone > 0 {
			fmt.Printf("  bad zones:  %d dropped\n", stats.BadZone)
		}
		if stats.DuplicateIDs > 0 {
			fmt.Printf("  dup ids:    %d dropped\n", stats.DuplicateIDs)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	addSourceFlags(importCmd)
}
