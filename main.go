// Package main is the entry point for anidex.
package main

import (
	"github.com/anisan-cli/anidex/cmd"
	"github.com/anisan-cli/anidex/config"
	"github.com/anisan-cli/anidex/internal/cache"
	"github.com/anisan-cli/anidex/log"
	"github.com/anisan-cli/anidex/where"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	go func() {
		_, _ = cache.CollectGarbage(where.Details(), cache.TTL)
	}()

	cmd.Execute()
}
