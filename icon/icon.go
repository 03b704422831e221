// Package icon renders status and category symbols in the variant chosen by icons.variant.
package icon

import (
	"github.com/anisan-cli/anidex/key"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

// variants pick one rendering out of a definition, by variant name.
var variants = map[string]func(*iconDef) string{
	"emoji":   func(d *iconDef) string { return d.emoji },
	"nerd":    func(d *iconDef) string { return d.nerd },
	"plain":   func(d *iconDef) string { return d.plain },
	"kaomoji": func(d *iconDef) string { return d.kaomoji },
	"squares": func(d *iconDef) string { return d.squares },
}

// AvailableVariants lists the accepted icons.variant values.
func AvailableVariants() []string {
	names := lo.Keys(variants)
	slices.Sort(names)
	return names
}

// Get renders i in the configured variant. Unknown variants render as plain text.
func Get(i Icon) string {
	def, ok := icons[i]
	if !ok {
		return ""
	}

	render, ok := variants[viper.GetString(key.IconsVariant)]
	if !ok {
		render = variants["plain"]
	}
	return render(def)
}
