package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"dailyquest/internal/engine"
	"dailyquest/internal/ui"
)

func newDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <id>",
		Short: "Toggle a task (complete it, or uncheck it if already done)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			t, err := svc.FindTask(ctx, args[0])
			if err != nil {
				return err
			}
			res, err := svc.ToggleTask(ctx, t.ID)
			if err != nil {
				return err
			}
			printToggle(cmd, res)
			return nil
		},
	}

	return cmd
}

func printToggle(cmd *cobra.Command, res *engine.ToggleResult) {
	out := cmd.OutOrStdout()
	if res.Task.Completed {
		fmt.Fprintf(out, "%s %s %s\n", ui.Good.Render(ui.IconDone+" Completed"), res.Task.Title, ui.Delta(res.CoinsChanged))
	} else {
		fmt.Fprintf(out, "%s %s %s\n", ui.Warn.Render(ui.IconUndo+" Unchecked"), res.Task.Title, ui.Delta(res.CoinsChanged))
	}
	fmt.Fprintln(out, ui.LabelValue("Balance", ui.Coins(res.Stats.TotalCoins)))
	if res.StreakUpdated {
		fmt.Fprintf(out, "%s %s\n", ui.BadgeStreak, ui.Streak(res.Stats.CurrentStreak))
	}
}
