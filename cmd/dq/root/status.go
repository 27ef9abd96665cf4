package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"dailyquest/internal/engine"
	"dailyquest/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show coins, streaks and today's progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			sum := svc.Summary(ctx)
			st := sum.Stats
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Player Status"))
			fmt.Fprintln(out, ui.LabelValue("Coins", ui.Coins(st.TotalCoins)))
			fmt.Fprintln(out, ui.LabelValue("Earned overall", sum.CoinsEarned))
			fmt.Fprintln(out, ui.LabelValue("Current streak", ui.Streak(st.CurrentStreak)))
			fmt.Fprintln(out, ui.LabelValue("Longest streak", ui.Streak(st.LongestStreak)))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconChart+" Progress"))
			fmt.Fprintf(out, "- %s %d/%d %s\n", ui.Key.Render("Today:"), sum.CompletedToday, sum.TotalTasks, ui.Bar(sum.CompletedToday, sum.TotalTasks, 20))
			fmt.Fprintf(out, "- %s %d\n", ui.Key.Render("Last 7 days:"), st.TasksCompletedThisWeek)
			last := st.LastActiveDate
			if last == "" {
				last = "never"
			}
			fmt.Fprintf(out, "- %s %s\n", ui.Key.Render("Last active:"), ui.Muted.Render(last))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconShirt+" Outfit"))
			outfit := svc.Outfit(ctx)
			for _, cat := range engine.Categories {
				item, ok := outfit[cat]
				name := ui.Muted.Render("(empty)")
				if ok {
					name = item.Name
				}
				fmt.Fprintf(out, "- %s %s %s\n", ui.CategoryIcon(string(cat)), ui.Key.Render(string(cat)+":"), name)
			}
			fmt.Fprintf(out, "- %s %d/%d\n", ui.Key.Render("Owned items:"), sum.OwnedItems, svc.Catalog().Len())

			if svc.Pending() {
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" Some changes could not be saved"))
			}
			return nil
		},
	}

	return cmd
}
