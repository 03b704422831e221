// Package cmd implements the command-line interface for anidex.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/anisan-cli/anidex/color"
	"github.com/anisan-cli/anidex/constant"
	"github.com/anisan-cli/anidex/icon"
	"github.com/anisan-cli/anidex/key"
	"github.com/anisan-cli/anidex/log"
	"github.com/anisan-cli/anidex/style"
	"github.com/anisan-cli/anidex/tui"
	"github.com/anisan-cli/anidex/util"
	"github.com/anisan-cli/anidex/version"
	"github.com/anisan-cli/anidex/where"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.SetOut(os.Stdout)
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")
	rootCmd.Flags().BoolP("history", "H", false, "Start from the recently opened records")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Icons variant (e.g. nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().Bool("show-adult", false, "Include adult titles in every list")
	lo.Must0(rootCmd.PersistentFlags().MarkHidden("show-adult"))

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("show-adult")) {
			viper.Set(key.BrowseHideAdult, false)
		}
	}

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// rootCmd opens the interactive browser.
var rootCmd = &cobra.Command{
	Use:   constant.Anidex,
	Short: "Browse Anilist anime, manga, characters and news from the terminal",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Browse Anilist from the terminal"),
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("version")) {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(tui.Run(&tui.Options{
			History: lo.Must(cmd.Flags().GetBool("history")),
		}))
	},
}

// Execute runs the command tree.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}

func success(format string, args ...any) {
	fmt.Printf("%s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), fmt.Sprintf(format, args...))
}
