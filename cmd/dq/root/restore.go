package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"dailyquest/internal/ui"
)

func newRestoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore <id>",
		Short: "Uncheck a completed task (undo completion)",
		Long: `Restore a task to not-done by undoing today's completion.

This will:
- Record a debit equal to the task reward in the coin history
- Lower the balance (never below zero)
- Mark the task as not completed

Unlike "do", restore refuses to touch a task that is not completed.`,
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
			if !t.Completed {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Muted.Render(ui.IconInfo+" Not completed:"), t.Title)
				return nil
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
