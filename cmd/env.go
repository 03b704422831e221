package cmd

import (
	"os"

	"github.com/anisan-cli/anidex/color"
	"github.com/anisan-cli/anidex/config"
	"github.com/anisan-cli/anidex/style"
	"github.com/anisan-cli/anidex/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Only show variables that are set")
	envCmd.Flags().BoolP("unset-only", "u", false, "Only show variables that are not set")
	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

// exposedEnv lists every environment variable anidex reads, sorted.
func exposedEnv() []string {
	names := lo.Map(config.EnvExposed, func(k string, _ int) string {
		field := config.Default[k]
		return field.Env()
	})
	names = append(names, where.EnvConfigPath)
	slices.Sort(names)
	return names
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List the environment variables anidex reads",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			setOnly   = lo.Must(cmd.Flags().GetBool("set-only"))
			unsetOnly = lo.Must(cmd.Flags().GetBool("unset-only"))
			nameStyle = style.New().Bold(true).Foreground(color.Purple).Render
		)

		for _, name := range exposedEnv() {
			value, present := os.LookupEnv(name)
			if (setOnly && !present) || (unsetOnly && present) {
				continue
			}

			if present {
				cmd.Printf("%s=%s\n", nameStyle(name), style.Fg(color.Green)(value))
			} else {
				cmd.Printf("%s=%s\n", nameStyle(name), style.Fg(color.Red)("unset"))
			}
		}
	},
}
