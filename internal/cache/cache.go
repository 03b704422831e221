// Package cache prunes on-disk caches that outlived their usefulness.
package cache

import (
	"os"
	"time"

	"github.com/anisan-cli/anidex/filesystem"
	"github.com/anisan-cli/anidex/log"
)

// TTL is how long an untouched cache file is kept.
const TTL = 7 * 24 * time.Hour

// CollectGarbage removes files under dir that were not modified within ttl
// and returns how many were removed. Unreadable entries are skipped.
func CollectGarbage(dir string, ttl time.Duration) (int, error) {
	var (
		fs      = filesystem.API()
		removed int
		cutoff  = time.Now().Add(-ttl)
	)

	exists, err := fs.DirExists(dir)
	if err != nil || !exists {
		return 0, err
	}

	err = fs.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() || info.ModTime().After(cutoff) {
			return nil
		}

		if err := fs.Remove(path); err != nil {
			log.Warnf("removing stale cache file %s: %v", path, err)
			return nil
		}

		removed++
		return nil
	})

	return removed, err
}
