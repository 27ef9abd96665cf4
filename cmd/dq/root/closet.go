package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"dailyquest/internal/engine"
	"dailyquest/internal/ui"
)

func newClosetCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "closet",
		Short: "List the items you own",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := engine.ParseCategory(category)
			if err != nil {
				return err
			}
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			items := svc.Closet(ctx, cat)
			fmt.Fprintln(out, ui.Heading(ui.IconShirt, "Closet"))
			if len(items) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("Nothing here yet. Visit the shop with: dq shop"))
				return nil
			}
			for _, it := range items {
				mark := "  "
				if it.Equipped {
					mark = ui.Good.Render("★ ")
				}
				fmt.Fprintf(out, "%s%s %-12s %s\n", mark, ui.CategoryIcon(string(it.Category)), ui.Muted.Render(it.ID), it.Name)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Filter by category (clothing|accessory|background)")

	return cmd
}
