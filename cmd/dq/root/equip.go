package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"dailyquest/internal/engine"
	"dailyquest/internal/ui"
)

func newEquipCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "equip <item_id>",
		Short: "Equip an owned item, or take it off if it is already equipped",
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

			if _, ok := svc.Catalog().Get(args[0]); !ok {
				return engine.NotFoundError{Kind: "item", ID: args[0]}
			}
			res, err := svc.Equip(ctx, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch {
			case !res.Changed:
				fmt.Fprintf(out, "%s %s\n", ui.Warn.Render(ui.IconLock+" Not owned:"), res.Item.Name)
				fmt.Fprintf(out, "%s Buy it with: %s\n", ui.Muted.Render("💡"), ui.Key.Render("dq buy "+res.Item.ID))
			case res.Equipped:
				fmt.Fprintf(out, "%s %s %s\n", ui.CategoryIcon(string(res.Item.Category)), ui.Good.Render("Equipped"), res.Item.Name)
			default:
				fmt.Fprintf(out, "%s %s %s\n", ui.CategoryIcon(string(res.Item.Category)), ui.Warn.Render("Unequipped"), res.Item.Name)
			}
			return nil
		},
	}

	return cmd
}
