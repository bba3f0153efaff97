package cmd

import (
	"fmt"

	"github.com/iksnae/listcorpus/internal"
	"github.com/spf13/cobra"
)

var footersTop int

var footersCmd = &cobra.Command{
	Use:   "footers",
	Short: "Detect shared message footers",
	Long: `Find the most probable shared footer strings across message bodies,
such as mailing-list disclaimers and signature blocks, ranked by estimated
frequency.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		archive, err := loadArchive()
		if err != nil {
			return err
		}

		footers := internal.FindFooters(archive.Bodies(), footersTop)
		shown := 0
		for _, f := range footers {
			if f.Text == "" {
				continue
			}
			shown++
			fmt.Println(headerStyle.Render(fmt.Sprintf("#%d seen ~%d time(s)", shown, f.Count)))
			fmt.Println(f.Text)
			fmt.Println()
		}
		if shown == 0 {
			fmt.Println(headerStyle.Render("No shared footers found"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(footersCmd)
	addSourceFlags(footersCmd)
	footersCmd.Flags().IntVar(&footersTop, "top", 3, "Number of footer candidates to show")
}
