package cmd

import (
	"github.com/anisan-cli/anidex/history"
	"github.com/anisan-cli/anidex/inline"
	"github.com/anisan-cli/anidex/style"
	"github.com/anisan-cli/anidex/tui"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntP("limit", "n", 20, "How many entries to show, 0 for all")
	historyCmd.Flags().BoolP("json", "j", false, "Print as JSON")
	historyCmd.Flags().BoolP("interactive", "i", false, "Browse the history in the interactive browser")
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently opened media and characters",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("interactive")) {
			handleErr(tui.Run(&tui.Options{History: true}))
			return
		}

		entries, err := history.Recent(lo.Must(cmd.Flags().GetInt("limit")))
		handleErr(err)

		asJson := lo.Must(cmd.Flags().GetBool("json"))
		if len(entries) == 0 && !asJson {
			cmd.Println(style.Faint("nothing opened yet"))
			return
		}

		handleErr(inline.Write(cmd.OutOrStdout(), inline.HistoryColumns, entries, asJson))
	},
}
