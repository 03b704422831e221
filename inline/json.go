// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"encoding/json"
	"io"
	"reflect"
	"strings"

	"github.com/anisan-cli/anidex/anilist"
	"github.com/anisan-cli/anidex/paginate"
	"github.com/invopop/jsonschema"
)

// Output is the JSON document written by inline mode.
type Output[P any, T any] struct {
	Query       P    `json:"query" jsonschema:"description=Parameters the pages were fetched for."`
	Pages       int  `json:"pages" jsonschema:"description=Number of pages merged into items."`
	HasNextPage bool `json:"hasNextPage"`
	Items       []T  `json:"items" jsonschema:"description=Deduplicated items in arrival order."`
}

func newOutput[P comparable, T paginate.Item](params P, state paginate.State[T]) *Output[P, T] {
	items := state.Items
	if items == nil {
		items = []T{}
	}

	return &Output[P, T]{
		Query:       params,
		Pages:       state.PageInfo.CurrentPage,
		HasNextPage: state.PageInfo.HasNextPage,
		Items:       items,
	}
}

func writeJson(out io.Writer, output any) error {
	return json.NewEncoder(out).Encode(output)
}

// Schemas lists the documents inline mode can emit, by surface name.
var Schemas = map[string]any{
	"anime":      &Output[anilist.MediaListing, *anilist.Media]{},
	"search":     &Output[anilist.MediaSearch, *anilist.Media]{},
	"characters": &Output[anilist.CharacterSearch, *anilist.Character]{},
	"news":       &Output[anilist.NewsFilter, *anilist.Media]{},
}

// Schema returns the JSON schema of the document emitted for surface.
func Schema(surface string) (*jsonschema.Schema, bool) {
	v, ok := Schemas[surface]
	if !ok {
		return nil, false
	}

	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.Namer = schemaName
	return reflector.Reflect(v), true
}

// schemaName strips package paths from generic instantiations, so
// Output[...MediaSearch,*...Media] becomes OutputMediaSearchMedia.
func schemaName(t reflect.Type) string {
	name := t.Name()
	open := strings.IndexByte(name, '[')
	if open < 0 {
		return name
	}

	base := name[:open]
	for _, arg := range strings.Split(strings.TrimSuffix(name[open+1:], "]"), ",") {
		arg = strings.TrimLeft(arg, "*")
		if dot := strings.LastIndexByte(arg, '.'); dot >= 0 {
			arg = arg[dot+1:]
		}
		base += arg
	}

	return base
}
