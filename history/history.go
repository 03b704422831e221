// Package history tracks the media and characters the user opened.
package history

import (
	"sync"
	"time"

	"github.com/anisan-cli/anidex/filesystem"
	"github.com/anisan-cli/anidex/where"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

var (
	mu         sync.Mutex
	cacherOnce sync.Once
	cacher     *gache.Cache[map[string]*Entry]
)

func store() *gache.Cache[map[string]*Entry] {
	cacherOnce.Do(func() {
		cacher = gache.New[map[string]*Entry](&gache.Options{
			Path:       where.History(),
			FileSystem: &filesystem.GacheFs{},
		})
	})
	return cacher
}

func get() (map[string]*Entry, error) {
	cached, expired, err := store().Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*Entry), nil
	}
	return cached, nil
}

// Get returns every saved entry keyed by kind and id.
func Get() (map[string]*Entry, error) {
	mu.Lock()
	defer mu.Unlock()
	return get()
}

// Save records that entry was opened now. Reopening bumps the counter and timestamp.
func Save(entry *Entry) error {
	mu.Lock()
	defer mu.Unlock()

	saved, err := get()
	if err != nil {
		return err
	}

	record := *entry
	record.Opened = 1
	if existing, ok := saved[record.encode()]; ok {
		record.Opened = existing.Opened + 1
	}
	record.OpenedAt = time.Now()

	saved[record.encode()] = &record
	return store().Set(saved)
}

// Remove deletes entry from the history.
func Remove(entry *Entry) error {
	mu.Lock()
	defer mu.Unlock()

	saved, err := get()
	if err != nil {
		return err
	}

	delete(saved, entry.encode())
	return store().Set(saved)
}

// Recent returns up to n entries, most recently opened first. n <= 0 returns all.
func Recent(n int) ([]*Entry, error) {
	saved, err := Get()
	if err != nil {
		return nil, err
	}

	entries := lo.Values(saved)
	slices.SortFunc(entries, func(a, b *Entry) int {
		return b.OpenedAt.Compare(a.OpenedAt)
	})

	if n > 0 {
		entries = lo.Slice(entries, 0, n)
	}
	return entries, nil
}
