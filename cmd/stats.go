package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	statsResolve bool
	statsTop     int
)

var (
	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-sender activity",
	Long: `Build the sender-by-day activity matrix and show the most active
senders: message totals and the number of distinct days each sender posted
on. With --resolve, sender aliases are first collapsed into entities.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		archive, err := loadArchive()
		if err != nil {
			return err
		}

		activity := archive.Activity()
		if statsResolve {
			before := len(activity.Senders)
			var entities map[string][]string
			activity, entities = archive.ActivityResolved()
			fmt.Println(headerStyle.Render(fmt.Sprintf("Resolved %d sender(s) into %d entities",
				before, len(entities))))
		}

		first, last := archive.Span()
		fmt.Println(headerStyle.Render(fmt.Sprintf("%d message(s), %d sender(s), %d day span",
			archive.Len(), len(activity.Senders), activity.Days())))
		fmt.Println(dateStyle.Render(fmt.Sprintf("  %s to %s",
			first.Format("2006-01-02"), last.Format("2006-01-02"))))
		fmt.Println()

		senders := make([]string, len(activity.Senders))
		copy(senders, activity.Senders)
		sort.SliceStable(senders, func(i, j int) bool {
			return activity.SenderTotal(senders[i]) > activity.SenderTotal(senders[j])
		})
		if len(senders) > statsTop {
			senders = senders[:statsTop]
		}

		w := tabwriter.NewWriter(lipgloss.DefaultRenderer().Output(), 0, 0, 3, ' ', tabwriter.AlignRight)
		_, _ = fmt.Fprintln(w, titleStyle.Render("Sender")+"\t"+titleStyle.Render("Messages")+"\t"+titleStyle.Render("Active days")+"\t")
		_, _ = fmt.Fprintln(w, strings.Repeat("─", 70))

		for _, sender := range senders {
			name := sender
			if len(name) > 48 {
				name = name[:45] + "..."
			}
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t\n",
				name,
				countStyle.Render(strconv.Itoa(activity.SenderTotal(sender))),
				strconv.Itoa(activity.ActiveDays(sender)))
		}
		_ = w.Flush()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	addSourceFlags(statsCmd)
	statsCmd.Flags().BoolVar(&statsResolve, "resolve", false, "Collapse sender aliases into entities before counting")
	statsCmd.Flags().IntVar(&statsTop, "top", 20, "Number of senders to show")
}
