package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"dailyquest/internal/ui"
)

func newRenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <id> <title>",
		Short: "Change a task's title",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("id and new title are required")
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
			renamed, err := svc.RenameTask(ctx, t.ID, strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s → %s\n", ui.Good.Render(ui.IconSparkle+" Renamed"), ui.Muted.Render(t.Title), renamed.Title)
			return nil
		},
	}

	return cmd
}
