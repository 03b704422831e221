package cmd

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/anisan-cli/anidex/auth"
	"github.com/anisan-cli/anidex/color"
	"github.com/anisan-cli/anidex/constant"
	"github.com/anisan-cli/anidex/icon"
	"github.com/anisan-cli/anidex/open"
	"github.com/anisan-cli/anidex/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/zalando/go-keyring"
)

// tokenPage is where a logged in user can create a personal access token.
const tokenPage = constant.AnilistSite + "/settings/developer"

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authSetCmd, authRemoveCmd, authStatusCmd)

	authSetCmd.Flags().StringP("token", "t", "", "Token to store instead of prompting for it")
	authRemoveCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the Anilist token sent with requests",
	Long: `Anilist answers anonymous requests, but a personal access token lifts
the stricter anonymous rate limit. The token is kept in the system keyring.`,
}

var authSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Store an Anilist access token",
	Run: func(cmd *cobra.Command, args []string) {
		token := lo.Must(cmd.Flags().GetString("token"))

		if token == "" {
			var openPage bool
			handleErr(survey.AskOne(&survey.Confirm{
				Message: "Open the Anilist developer settings to create a token?",
				Default: true,
			}, &openPage))

			if openPage {
				if err := open.Start(tokenPage); err != nil {
					cmd.Printf("%s open %s manually\n", icon.Get(icon.Warn), style.Fg(color.Blue)(tokenPage))
				}
			}

			handleErr(survey.AskOne(&survey.Password{
				Message: "Access token",
			}, &token, survey.WithValidator(survey.Required)))
		}

		handleErr(auth.SetToken(token))
		success("token saved to the keyring")
	},
}

var authRemoveCmd = &cobra.Command{
	Use:     "remove",
	Aliases: []string{"rm", "logout"},
	Short:   "Forget the stored Anilist access token",
	Run: func(cmd *cobra.Command, args []string) {
		if !lo.Must(cmd.Flags().GetBool("yes")) {
			var confirmed bool
			handleErr(survey.AskOne(&survey.Confirm{
				Message: "Remove the stored token?",
			}, &confirmed))

			if !confirmed {
				return
			}
		}

		handleErr(auth.DeleteToken())
		success("token removed")
	},
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Tell whether a token is stored",
	Run: func(cmd *cobra.Command, args []string) {
		_, err := auth.GetToken()
		switch {
		case errors.Is(err, keyring.ErrNotFound):
			cmd.Println(style.Faint("no token stored, requests are anonymous"))
		case err != nil:
			handleErr(err)
		default:
			cmd.Printf("%s token stored\n", style.Fg(color.Green)(icon.Get(icon.Success)))
		}
	},
}
