package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/anisan-cli/anidex/color"
	"github.com/anisan-cli/anidex/constant"
	"github.com/anisan-cli/anidex/key"
	"github.com/anisan-cli/anidex/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field is a setting with its default value.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Section is the part of the key before the first dot, e.g. "browse".
func (f *Field) Section() string {
	section, _, _ := strings.Cut(f.Key, ".")
	return section
}

// Type names the Go type of the default value.
func (f *Field) Type() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	default:
		return fmt.Sprintf("%T", f.Value)
	}
}

// Env is the environment variable overriding the field.
func (f *Field) Env() string {
	return strings.ToUpper(constant.Anidex + "_" + EnvKeyReplacer.Replace(f.Key))
}

// Pretty describes the field for "anidex config info".
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
		Env         string `json:"env"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.Type(),
		Env:         f.Env(),
	})
}

var fields = []Field{
	{key.BrowsePageSize, 20, "Number of records requested per page"},
	{key.BrowseHideAdult, true, "Hide adult titles from every list"},

	{key.SearchThrottleMs, 300, "Minimum milliseconds between two search queries while typing"},
	{key.SearchShowQuerySuggestions, true, "Suggest past queries while typing"},

	{key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)"},

	{key.AnilistEndpoint, "https://graphql.anilist.co", "Anilist GraphQL endpoint"},
	{key.AnilistRequestsPerMinute, 90, "Maximum requests sent to Anilist per minute.\nSet to 0 to disable the limiter"},
	{key.AnilistTimeoutSeconds, 30, "Timeout of a single Anilist request in seconds"},
	{key.AnilistRetries, 2, "How many times a failed Anilist request is retried"},
	{key.AnilistCacheDetails, true, "Cache media and character details on disk"},

	{key.HistorySaveOnOpen, true, "Remember opened media and characters"},

	{key.TUIItemSpacing, 1, "Blank lines between list items"},
	{key.TUISearchPromptString, "> ", "Prompt shown before the search input"},
	{key.TUILoadMoreThreshold, 3, "Load the next page when the cursor is this many rows from the end"},

	{key.LogsWrite, false, "Write logs to the logs directory"},
	{key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace"},
	{key.LogsJson, false, "Write logs as JSON lines"},

	{key.CliColored, true, "Colorize help output"},
	{key.CliVersionCheck, true, "Check for a newer release when showing help and version"},
}

// Default holds every known field by key.
var Default = make(map[string]Field, len(fields))

// EnvExposed lists the keys bound to environment variables.
var EnvExposed []string

func init() {
	for _, f := range fields {
		if _, dup := Default[f.Key]; dup {
			panic("duplicate config key: " + f.Key)
		}
		Default[f.Key] = f
		EnvExposed = append(EnvExposed, f.Key)
	}
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":  style.Faint,
	"purple": style.Fg(color.Purple),
	"blue":   style.Fg(color.Blue),
	"value":  func(k string) any { return viper.Get(k) },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			if value {
				return style.Fg(color.Green)(strconv.FormatBool(value))
			}
			return style.Fg(color.Red)(strconv.FormatBool(value))
		case string:
			return style.Fg(color.Yellow)(strconv.Quote(value))
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ purple .Key }} {{ faint .Type }}
{{ faint .Description }}
{{ blue "value  " }} {{ hl (value .Key) }}
{{ blue "default" }} {{ hl .Value }}
{{ blue "env    " }} {{ .Env }}`))
