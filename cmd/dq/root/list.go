package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"dailyquest/internal/ui"
)

func newListCmd() *cobra.Command {
	var pending bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List today's tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			tasks := svc.Tasks(ctx)
			fmt.Fprintln(out, ui.Heading(ui.IconQuest, "Today's quests"))
			if len(tasks) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No tasks yet. Add one with: dq add \"Drink water\""))
				return nil
			}
			done := 0
			for _, t := range tasks {
				if t.Completed {
					done++
					if pending {
						continue
					}
				}
				fmt.Fprintf(out, "%s %s %s\n", ui.Checkbox(t.Completed), ui.Muted.Render(shortID(t.ID)), t.Title)
			}
			fmt.Fprintln(out, "")
			fmt.Fprintf(out, "%s %s\n", ui.LabelValue("Done", fmt.Sprintf("%d/%d", done, len(tasks))), ui.Bar(done, len(tasks), 20))
			return nil
		},
	}

	cmd.Flags().BoolVar(&pending, "pending", false, "Only show tasks that are not completed")

	return cmd
}
