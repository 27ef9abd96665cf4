package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dailyquest/internal/ui"
)

const Version = "0.1.0"

var envFile string

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "dq",
		Short:         "DailyQuest: daily tasks, coins and streaks",
		Long:          "DailyQuest is a local-first CLI/TUI daily task tracker. Completing tasks earns coins, consecutive active days build a streak and coins buy cosmetics in the shop.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Optional dotenv file with DQ_* settings")

	rootCmd.AddCommand(
		newAddCmd(),
		newDoCmd(),
		newRestoreCmd(),
		newRmCmd(),
		newRenameCmd(),
		newListCmd(),
		newResetCmd(),
		newStatusCmd(),
		newWeekCmd(),
		newHistoryCmd(),
		newShopCmd(),
		newBuyCmd(),
		newEquipCmd(),
		newClosetCmd(),
		newAchievementsCmd(),
		newBoardCmd(),
		newDBCmd(),
	)
	return rootCmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
