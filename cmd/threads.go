package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/listcorpus/internal"
	"github.com/spf13/cobra"
)

var (
	threadsTop    int
	threadsRelink bool
)

var threadsCmd = &cobra.Command{
	Use:   "threads",
	Short: "Reconstruct and summarize reply threads",
	Long: `Reconstruct the reply forest from the canonical message table and
show the largest conversations. Threads rooted at a message that was never
observed (a reply to an unseen ancestor) are marked as placeholder-rooted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		archive, err := loadArchive()
		if err != nil {
			return err
		}

		var threads []*internal.Thread
		if threadsRelink {
			b := internal.ThreadBuilder{RelinkPlaceholders: true}
			threads, err = b.Build(archive.Records())
		} else {
			threads, err = archive.Threads()
		}
		if err != nil {
			internal.LogWarn("Some messages were excluded from the forest: %v", err)
		}

		known := 0
		for _, t := range threads {
			if t.RootKnown {
				known++
			}
		}
		fmt.Println(headerStyle.Render(fmt.Sprintf("%d thread(s): %d with known roots, %d placeholder-rooted",
			len(threads), known, len(threads)-known)))
		fmt.Println()

		sorted := make([]*internal.Thread, len(threads))
		copy(sorted, threads)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Len() > sorted[j].Len()
		})
		if len(sorted) > threadsTop {
			sorted = sorted[:threadsTop]
		}

		w := tabwriter.NewWriter(lipgloss.DefaultRenderer().Output(), 0, 0, 3, ' ', tabwriter.AlignRight)
		_, _ = fmt.Fprintln(w, titleStyle.Render("Root")+"\t"+titleStyle.Render("Known")+"\t"+titleStyle.Render("Messages")+"\t"+titleStyle.Render("Depth")+"\t"+titleStyle.Render("Started")+"\t")
		_, _ = fmt.Fprintln(w, strings.Repeat("─", 90))

		for _, t := range sorted {
			rootID := t.Root.ID
			if len(rootID) > 32 {
				rootID = rootID[:29] + "..."
			}

			knownMark := "yes"
			if !t.RootKnown {
				knownMark = idStyle.Render("placeholder")
			}

			started := dateStyle.Render("—")
			if t.Root.Record != nil {
				started = dateStyle.Render(t.Root.Record.Date.Format("2006-01-02"))
			} else if len(t.Root.Children) > 0 && t.Root.Children[0].Record != nil {
				started = dateStyle.Render(t.Root.Children[0].Record.Date.Format("2006-01-02"))
			}

			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t\n",
				idStyle.Render(rootID),
				knownMark,
				countStyle.Render(strconv.Itoa(t.Len())),
				strconv.Itoa(t.Root.Depth()),
				started)
		}
		_ = w.Flush()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(threadsCmd)
	addSourceFlags(threadsCmd)
	threadsCmd.Flags().IntVar(&threadsTop, "top", 20, "Number of threads to show")
	threadsCmd.Flags().BoolVar(&threadsRelink, "relink-placeholders", false, "Merge placeholder roots whose real message was observed later")
}
