// Package version provides unified mechanisms for application version tracking, update discovery, and compatibility validation.
package version

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/anisan-cli/anidex/filesystem"
	"github.com/anisan-cli/anidex/network"
	"github.com/anisan-cli/anidex/where"
	"github.com/metafates/gache"
)

// ReleasesURL is queried for the latest published release.
var ReleasesURL = "https://api.github.com/repos/anisan-cli/anidex/releases/latest"

var (
	cacherOnce    sync.Once
	versionCacher *gache.Cache[string]
)

func store() *gache.Cache[string] {
	cacherOnce.Do(func() {
		versionCacher = gache.New[string](&gache.Options{
			Path:       filepath.Join(where.Cache(), "version.json"),
			Lifetime:   time.Hour * 24 * 2,
			FileSystem: &filesystem.GacheFs{},
		})
	})
	return versionCacher
}

// Latest returns the most recent released version, cached for two days.
func Latest(ctx context.Context) (string, error) {
	ver, expired, err := store().Get()
	if err != nil {
		return "", err
	}

	if !expired && ver != "" {
		return ver, nil
	}

	resp, err := network.New(network.Options{Timeout: 5 * time.Second}).R().
		SetContext(ctx).
		SetHeader("Accept", "application/vnd.github+json").
		Get(ReleasesURL)
	if err != nil {
		return "", fmt.Errorf("fetch latest release: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("fetch latest release: %s", resp.Status())
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.Unmarshal(resp.Bytes(), &release); err != nil {
		return "", fmt.Errorf("decode latest release: %w", err)
	}

	if release.TagName == "" {
		return "", errors.New("empty tag name")
	}

	ver = strings.TrimPrefix(release.TagName, "v")
	_ = store().Set(ver)
	return ver, nil
}
