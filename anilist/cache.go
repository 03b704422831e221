// Package anilist provides a client for the Anilist GraphQL API.
package anilist

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/anisan-cli/anidex/filesystem"
	"github.com/anisan-cli/anidex/key"
	"github.com/anisan-cli/anidex/where"
	"github.com/metafates/gache"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

type cacheData[K comparable, T any] struct {
	Records map[K]T `json:"records"`
}

// cacher is a keyed view over a single gache file.
// The file is opened on first use so that tests can swap the filesystem beforehand.
type cacher[K comparable, T any] struct {
	name       string
	lifetime   time.Duration
	keyWrapper func(K) K

	once     sync.Once
	internal *gache.Cache[*cacheData[K, T]]
	mu       sync.RWMutex
}

func (c *cacher[K, T]) cache() *gache.Cache[*cacheData[K, T]] {
	c.once.Do(func() {
		c.internal = gache.New[*cacheData[K, T]](&gache.Options{
			Path:       filepath.Join(where.Details(), c.name),
			Lifetime:   c.lifetime,
			FileSystem: &filesystem.GacheFs{},
		})
	})
	return c.internal
}

func (c *cacher[K, T]) wrap(k K) K {
	if c.keyWrapper == nil {
		return k
	}
	return c.keyWrapper(k)
}

func cacheEnabled() bool {
	return viper.GetBool(key.AnilistCacheDetails)
}

// Get retrieves the value stored under key.
func (c *cacher[K, T]) Get(key K) mo.Option[T] {
	if !cacheEnabled() {
		return mo.None[T]()
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	data, expired, err := c.cache().Get()
	if err != nil || expired || data == nil {
		return mo.None[T]()
	}

	if value, ok := data.Records[c.wrap(key)]; ok {
		return mo.Some(value)
	}

	return mo.None[T]()
}

// Set stores value under key. An expired file is started over.
func (c *cacher[K, T]) Set(key K, value T) error {
	if !cacheEnabled() {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	data, expired, err := c.cache().Get()
	if err != nil {
		return err
	}

	if expired || data == nil || data.Records == nil {
		data = &cacheData[K, T]{Records: make(map[K]T)}
	}

	data.Records[c.wrap(key)] = value
	return c.cache().Set(data)
}

// Delete removes the value stored under key.
func (c *cacher[K, T]) Delete(key K) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, expired, err := c.cache().Get()
	if err != nil {
		return err
	}

	if expired || data == nil {
		return nil
	}

	delete(data.Records, c.wrap(key))
	return c.cache().Set(data)
}

var mediaCacher = &cacher[int, *Media]{
	name:     "media.json",
	lifetime: time.Hour * 24 * 2,
}

var characterCacher = &cacher[int, *Character]{
	name:     "characters.json",
	lifetime: time.Hour * 24 * 2,
}

// relationCacher maps normalized titles to media ids resolved by FindClosest. -1 marks a title with no match.
var relationCacher = &cacher[string, int]{
	name:       "relations.json",
	lifetime:   time.Hour * 24 * 10,
	keyWrapper: normalizedSearch,
}
