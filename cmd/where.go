package cmd

import (
	"github.com/anisan-cli/anidex/color"
	"github.com/anisan-cli/anidex/style"
	"github.com/anisan-cli/anidex/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// location is a directory or file anidex keeps on disk.
type location struct {
	name   string
	flag   string
	short  mo.Option[string]
	path   func() string
	hidden bool
}

var locations = []location{
	{"Config", "config", mo.Some("c"), where.Config, false},
	{"Logs", "logs", mo.Some("l"), where.Logs, false},
	{"History", "history", mo.Some("s"), where.History, false},
	{"Cache", "cache", mo.None[string](), where.Cache, true},
	{"Queries", "queries", mo.None[string](), where.Queries, true},
	{"Details", "details", mo.None[string](), where.Details, true},
	{"Temp", "temp", mo.None[string](), where.Temp, true},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, l := range locations {
		if short, ok := l.short.Get(); ok {
			whereCmd.Flags().BoolP(l.flag, short, false, l.name+" path")
		} else {
			whereCmd.Flags().Bool(l.flag, false, l.name+" path")
		}

		if l.hidden {
			lo.Must0(whereCmd.Flags().MarkHidden(l.flag))
		}
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(locations, func(l location, _ int) string { return l.flag })...)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where anidex keeps its files",
	Run: func(cmd *cobra.Command, args []string) {
		for _, l := range locations {
			if lo.Must(cmd.Flags().GetBool(l.flag)) {
				cmd.Println(l.path())
				return
			}
		}

		header := style.New().Bold(true).Foreground(color.HiPurple).Render
		visible := lo.Reject(locations, func(l location, _ int) bool { return l.hidden })
		for i, l := range visible {
			cmd.Printf("%s %s\n", header(l.name+"?"), style.Fg(color.Yellow)("--"+l.flag))
			cmd.Println(l.path())

			if i < len(visible)-1 {
				cmd.Println()
			}
		}
	},
}
