package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"dailyquest/internal/ui"
)

func newAchievementsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "achievements",
		Short: "Show earned and locked badges",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			list := svc.Achievements(ctx)
			earned := 0
			for _, a := range list {
				if a.Earned {
					earned++
				}
			}
			fmt.Fprintf(out, "%s %s\n", ui.Heading(ui.IconTrophy, "Achievements"), ui.Muted.Render(fmt.Sprintf("(%d/%d)", earned, len(list))))
			for _, a := range list {
				if a.Earned {
					fmt.Fprintf(out, "%s %s %s\n", a.Icon, ui.Good.Render(a.Name), ui.Muted.Render(a.Description))
				} else {
					fmt.Fprintf(out, "%s %s %s\n", ui.IconLock, ui.Dim.Render(a.Name), ui.Muted.Render(a.Description))
				}
			}
			return nil
		},
	}

	return cmd
}
