package cmd

import (
	"fmt"

	"github.com/anisan-cli/anidex/filesystem"
	"github.com/anisan-cli/anidex/icon"
	"github.com/anisan-cli/anidex/util"
	"github.com/anisan-cli/anidex/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// clearable is stored data that "anidex clear" can remove.
type clearable struct {
	name  string
	flag  string
	short string
	path  func() string
}

var clearables = []clearable{
	{"cache", "cache", "c", where.Cache},
	{"details cache", "details", "d", where.Details},
	{"history", "history", "s", where.History},
	{"query suggestions", "queries", "q", where.Queries},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, c := range clearables {
		clearCmd.Flags().BoolP(c.flag, c.short, false, "clear "+c.name)
	}
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove cached and stored data",
	Run: func(cmd *cobra.Command, args []string) {
		selected := lo.Filter(clearables, func(c clearable, _ int) bool {
			return lo.Must(cmd.Flags().GetBool(c.flag))
		})

		if len(selected) == 0 {
			handleErr(cmd.Help())
			return
		}

		for _, c := range selected {
			erase := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), c.name))
			err := filesystem.API().RemoveAll(c.path())
			erase()
			handleErr(err)

			success("%s cleared", util.Capitalize(c.name))
		}
	},
}
