package cmd

import (
	"fmt"
	"os"

	"github.com/iksnae/listcorpus/internal/export"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the canonical dataset",
	Long: `Write the normalized message table to a flat file. CSV preserves the
external column contract (Message-ID, From, Date, In-Reply-To, References,
Body) and can be re-imported with --csv.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		archive, err := loadArchive()
		if err != nil {
			return err
		}

		exporter, err := export.NewExporter(exportFormat)
		if err != nil {
			return err
		}

		w := os.Stdout
		if exportOutput != "" {
			f, err := os.Create(exportOutput)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", exportOutput, err)
			}
			defer f.Close()
			w = f
		}

		if err := exporter.Export(archive, w); err != nil {
			return err
		}
		if exportOutput != "" {
			fmt.Fprintln(os.Stderr, headerStyle.Render(fmt.Sprintf("Wrote %d message(s) to %s", archive.Len(), exportOutput)))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	addSourceFlags(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "csv", "Output format (csv, json, yaml)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
}
