package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"dailyquest/internal/ui"
)

func newBuyCmd() *cobra.Command {
	var equip bool

	cmd := &cobra.Command{
		Use:   "buy <item_id>",
		Short: "Buy a shop item",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("item_id is required")
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

			res, err := svc.Purchase(ctx, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s %s\n", ui.Good.Render(ui.IconCart+" Bought"), res.Item.Name, ui.Delta(res.Transaction.Amount))
			fmt.Fprintln(out, ui.LabelValue("Balance", ui.Coins(res.Balance)))

			if equip {
				if _, err := svc.Equip(ctx, res.Item.ID); err != nil {
					return err
				}
				fmt.Fprintf(out, "%s %s\n", ui.CategoryIcon(string(res.Item.Category)), ui.Muted.Render("Equipped"))
			} else {
				fmt.Fprintf(out, "%s Wear it with: %s\n", ui.Muted.Render("💡"), ui.Key.Render("dq equip "+res.Item.ID))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&equip, "equip", "e", false, "Equip the item right away")

	return cmd
}
