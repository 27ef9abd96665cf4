package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"dailyquest/internal/engine"
	"dailyquest/internal/ui"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent coin transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			txns := svc.RecentTransactions(ctx, limit)
			fmt.Fprintln(out, ui.Heading(ui.IconScroll, "Coin history"))
			if len(txns) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No transactions yet. Complete a task to earn coins."))
				return nil
			}
			for _, t := range txns {
				fmt.Fprintf(out, "%s %6s %s\n", ui.Muted.Render(t.Timestamp.Local().Format("Jan 02 15:04")), ui.Delta(t.Amount), t.Reason)
			}
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.LabelValue("Balance", ui.Coins(svc.Stats(ctx).TotalCoins)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", engine.DefaultHistoryLimit, "Number of entries to show (0 = all)")

	return cmd
}
