package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"dailyquest/internal/ui"
)

func newResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Uncheck every task without touching coins",
		Long: `Clear the completed flag of every task, the same way the daily rollover does.

Coins and the coin history are not changed, so checking a task again afterwards
earns its reward a second time.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			tasks, err := svc.ResetDaily(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d tasks\n", ui.Warn.Render(ui.IconUndo+" Reset"), len(tasks))
			return nil
		},
	}

	return cmd
}
