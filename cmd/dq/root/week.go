package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"dailyquest/internal/ui"
)

func newWeekCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show tasks completed per day over the last 7 days",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			days := svc.WeeklyStats(ctx)
			peak, total := 1, 0
			for _, d := range days {
				peak = max(peak, d.Completed)
				total += d.Completed
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconChart, "This week"))
			for _, d := range days {
				fmt.Fprintf(out, "%s %s %s %d\n", ui.Key.Render(d.DayLabel), ui.Muted.Render(d.Date), ui.Bar(d.Completed, peak, 20), d.Completed)
			}
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.LabelValue("Total", total))
			return nil
		},
	}

	return cmd
}
