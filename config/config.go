// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/anisan-cli/anidex/constant"
	"github.com/anisan-cli/anidex/filesystem"
	"github.com/anisan-cli/anidex/key"
	"github.com/anisan-cli/anidex/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer is a strings.Replacer used to normalize configuration keys into environment variable naming conventions.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup initializes the global configuration state, including defaults, environment bindings, and localized file resolution.
func Setup() error {
	viper.SetConfigName(constant.Anidex)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Anidex)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}

	return nil
}

// PageSize returns the configured page size, never less than 1.
func PageSize() int {
	return max(1, viper.GetInt(key.BrowsePageSize))
}

// ThrottleInterval returns the configured minimum spacing between search queries.
func ThrottleInterval() time.Duration {
	return time.Duration(max(0, viper.GetInt(key.SearchThrottleMs))) * time.Millisecond
}
