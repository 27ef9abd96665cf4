package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"dailyquest/internal/engine"
	"dailyquest/internal/ui"
)

func newShopCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Browse items you can buy with coins",
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
			fmt.Fprintf(out, "%s %s\n", ui.Heading(ui.IconCart, "Shop"), ui.Coins(svc.Stats(ctx).TotalCoins))
			for _, it := range svc.Shop(ctx, cat) {
				state := ui.Muted.Render(fmt.Sprintf("%d coins", it.Price))
				switch {
				case it.Owned:
					state = ui.Good.Render("owned")
				case it.Affordable:
					state = ui.Gold.Render(fmt.Sprintf("%d coins", it.Price))
				}
				fmt.Fprintf(out, "%s %-12s %-18s %s\n", ui.CategoryIcon(string(it.Category)), ui.Muted.Render(it.ID), it.Name, state)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Filter by category (clothing|accessory|background)")

	return cmd
}
