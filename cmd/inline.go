package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/anisan-cli/anidex/anilist"
	"github.com/anisan-cli/anidex/config"
	"github.com/anisan-cli/anidex/filesystem"
	"github.com/anisan-cli/anidex/inline"
	"github.com/anisan-cli/anidex/key"
	"github.com/anisan-cli/anidex/log"
	"github.com/anisan-cli/anidex/paginate"
	"github.com/anisan-cli/anidex/query"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.PersistentFlags().IntP("pages", "p", 1, "How many pages to collect")
	inlineCmd.PersistentFlags().Int("page-size", 0, "Records per page (defaults to browse.page_size)")
	inlineCmd.PersistentFlags().BoolP("json", "j", false, "Print as JSON instead of a table")
	inlineCmd.PersistentFlags().StringP("output", "o", "", "Write to this file instead of stdout")

	inlineCmd.AddCommand(inlineAnimeCmd, inlineSearchCmd, inlineCharactersCmd, inlineNewsCmd, inlineMediaCmd, inlineSchemaCmd)

	inlineSearchCmd.Flags().StringP("query", "q", "", "Title to search for")
	inlineSearchCmd.Flags().StringP("type", "t", "", "Media type")
	lo.Must0(inlineSearchCmd.MarkFlagRequired("query"))
	lo.Must0(inlineSearchCmd.RegisterFlagCompletionFunc("query", completionQueries))
	lo.Must0(inlineSearchCmd.RegisterFlagCompletionFunc("type", completionOptions(anilist.TypeOptions)))

	inlineCharactersCmd.Flags().StringP("query", "q", "", "Name to search for, empty lists the most popular")
	inlineCharactersCmd.Flags().StringP("sort", "s", "FAVOURITES_DESC", "Order of the results")
	lo.Must0(inlineCharactersCmd.RegisterFlagCompletionFunc("query", completionQueries))
	lo.Must0(inlineCharactersCmd.RegisterFlagCompletionFunc("sort", completionOptions(anilist.CharacterSortOptions)))

	inlineNewsCmd.Flags().StringP("genre", "g", "", "Genre")
	inlineNewsCmd.Flags().StringP("type", "t", "", "Media type")
	inlineNewsCmd.Flags().StringP("status", "s", "", "Release status")
	inlineNewsCmd.Flags().String("sort", "", "Order of the results")
	lo.Must0(inlineNewsCmd.RegisterFlagCompletionFunc("genre", completionOptions(anilist.GenreOptions)))
	lo.Must0(inlineNewsCmd.RegisterFlagCompletionFunc("type", completionOptions(anilist.TypeOptions)))
	lo.Must0(inlineNewsCmd.RegisterFlagCompletionFunc("status", completionOptions(anilist.StatusOptions)))
	lo.Must0(inlineNewsCmd.RegisterFlagCompletionFunc("sort", completionOptions(anilist.SortOptions)))

	inlineMediaCmd.Flags().StringP("name", "n", "", "Title to look up, the closest match wins")
	inlineMediaCmd.Flags().Int("id", 0, "Anilist id to look up")
	inlineMediaCmd.MarkFlagsMutuallyExclusive("name", "id")
	inlineMediaCmd.MarkFlagsOneRequired("name", "id")
}

func completionQueries(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
}

func completionOptions(options []anilist.Option) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return lo.Compact(anilist.Values(options)), cobra.ShellCompDirectiveNoFileComp
	}
}

// optionFlag reads a flag whose value must be one of options.
func optionFlag(cmd *cobra.Command, name string, options []anilist.Option) (string, error) {
	value := lo.Must(cmd.Flags().GetString(name))

	option, ok := lo.Find(options, func(o anilist.Option) bool { return strings.EqualFold(o.Value, value) })
	if !ok {
		return "", fmt.Errorf("invalid %s %q, expected one of: %s", name, value, strings.Join(lo.Compact(anilist.Values(options)), ", "))
	}
	return option.Value, nil
}

// inlineOptions builds the collection options from the shared inline flags.
// The returned function closes the output file, if any.
func inlineOptions(cmd *cobra.Command) (*inline.Options, func(), error) {
	options := &inline.Options{
		Out:      cmd.OutOrStdout(),
		Pages:    lo.Must(cmd.Flags().GetInt("pages")),
		PageSize: lo.Must(cmd.Flags().GetInt("page-size")),
		Json:     lo.Must(cmd.Flags().GetBool("json")),
	}
	if options.PageSize <= 0 {
		options.PageSize = config.PageSize()
	}

	output := lo.Must(cmd.Flags().GetString("output"))
	if output == "" {
		return options, func() {}, nil
	}

	file, err := filesystem.API().Create(output)
	if err != nil {
		return nil, nil, fmt.Errorf("create %s: %w", output, err)
	}
	options.Out = file
	return options, func() { _ = file.Close() }, nil
}

func interruptible(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(cmd.Context(), os.Interrupt)
}

func mediaFilter() paginate.Option[*anilist.Media] {
	return paginate.WithFilter(anilist.Keep(viper.GetBool(key.BrowseHideAdult)))
}

// runInline collects pages of fetcher for params and writes them out.
func runInline[P comparable, T paginate.Item](
	cmd *cobra.Command,
	fetcher paginate.Fetcher[P, T],
	params P,
	columns inline.Columns[T],
	opts ...paginate.Option[T],
) {
	options, closeOutput, err := inlineOptions(cmd)
	handleErr(err)

	ctx, cancel := interruptible(cmd)
	err = inline.Run(ctx, fetcher, params, columns, options, opts...)
	cancel()
	closeOutput()

	handleErr(err)
}

var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Print Anilist lists without the interactive browser",
	Long: `Collect one or more pages of an Anilist list and print them as a table or JSON.

Pages are merged in order with duplicates removed. If a later page fails,
what was collected so far is still printed and the command exits with an error.`,
	Example: `  anidex inline anime --pages 3
  anidex inline search -q frieren --json
  anidex inline news --genre Action --status RELEASING -o news.json -j
  anidex inline schema search`,
}

var inlineAnimeCmd = &cobra.Command{
	Use:   "anime",
	Short: "Most popular anime",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		client := anilist.Configured()
		runInline(cmd, client.AnimeListing(), anilist.MediaListing{}, inline.MediaColumns, mediaFilter())
	},
}

var inlineSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search anime and manga by title",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		mediaType, err := optionFlag(cmd, "type", anilist.TypeOptions)
		handleErr(err)

		search := lo.Must(cmd.Flags().GetString("query"))
		if err := query.Remember(search, 1); err != nil {
			log.Warnf("remembering query: %v", err)
		}

		client := anilist.Configured()
		runInline(cmd, client.MediaSearcher(), anilist.MediaSearch{Search: search, Type: mediaType}, inline.MediaColumns, mediaFilter())
	},
}

var inlineCharactersCmd = &cobra.Command{
	Use:   "characters",
	Short: "Search characters by name",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		sort, err := optionFlag(cmd, "sort", anilist.CharacterSortOptions)
		handleErr(err)

		client := anilist.Configured()
		params := anilist.CharacterSearch{
			Search: lo.Must(cmd.Flags().GetString("query")),
			Sort:   sort,
		}
		runInline(cmd, client.CharacterSearcher(), params, inline.CharacterColumns)
	},
}

var inlineNewsCmd = &cobra.Command{
	Use:   "news",
	Short: "Browse media by genre, type, status and order",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			params anilist.NewsFilter
			err    error
		)

		params.Genre, err = optionFlag(cmd, "genre", anilist.GenreOptions)
		handleErr(err)
		params.Type, err = optionFlag(cmd, "type", anilist.TypeOptions)
		handleErr(err)
		params.Status, err = optionFlag(cmd, "status", anilist.StatusOptions)
		handleErr(err)
		params.Sort, err = optionFlag(cmd, "sort", anilist.SortOptions)
		handleErr(err)

		client := anilist.Configured()
		runInline(cmd, client.NewsFeed(), params, inline.NewsColumns, mediaFilter())
	},
}

var inlineMediaCmd = &cobra.Command{
	Use:   "media",
	Short: "Show a single media by id or closest title",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := interruptible(cmd)
		defer cancel()

		client := anilist.Configured()

		var (
			media *anilist.Media
			err   error
		)
		if id := lo.Must(cmd.Flags().GetInt("id")); id > 0 {
			media, err = client.MediaByID(ctx, id)
		} else {
			media, err = client.FindClosest(ctx, lo.Must(cmd.Flags().GetString("name")))
		}
		handleErr(err)

		options, closeOutput, err := inlineOptions(cmd)
		handleErr(err)

		if options.Json {
			err = json.NewEncoder(options.Out).Encode(media)
		} else {
			err = inline.Write(options.Out, inline.MediaColumns, []*anilist.Media{media}, false)
		}
		closeOutput()
		handleErr(err)
	},
}

var inlineSchemaCmd = &cobra.Command{
	Use:       "schema [surface]",
	Short:     "Print the JSON schema of inline output",
	Args:      cobra.ExactArgs(1),
	ValidArgs: lo.Keys(inline.Schemas),
	Run: func(cmd *cobra.Command, args []string) {
		schema, ok := inline.Schema(args[0])
		if !ok {
			handleErr(fmt.Errorf("unknown surface %q, expected one of: %s", args[0], strings.Join(lo.Keys(inline.Schemas), ", ")))
		}

		options, closeOutput, err := inlineOptions(cmd)
		handleErr(err)

		encoder := json.NewEncoder(options.Out)
		encoder.SetIndent("", "  ")
		err = encoder.Encode(schema)
		closeOutput()
		handleErr(err)
	},
}
