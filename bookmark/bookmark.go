// Package bookmark provides the persistent registry of user-saved videos.
package bookmark

import (
	"fmt"

	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/ytui-cli/ytui/filesystem"
	"github.com/ytui-cli/ytui/where"
)

// Entry is one saved video reference.
type Entry struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

func (e *Entry) String() string {
	return e.Title
}

var cacher = gache.New[[]*Entry](
	&gache.Options{
		Path:       where.Bookmarks(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// All returns every saved bookmark in insertion order.
func All() ([]*Entry, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, fmt.Errorf("load bookmarks: %w", err)
	}
	if expired || cached == nil {
		return nil, nil
	}
	return cached, nil
}

// Add saves an entry, deduplicated by URL, and persists the registry.
func Add(entry *Entry) error {
	entries, err := All()
	if err != nil {
		return err
	}

	if lo.ContainsBy(entries, func(e *Entry) bool { return e.URL == entry.URL }) {
		return nil
	}

	return cacher.Set(append(entries, entry))
}

// Remove deletes the entry with the given URL and persists the registry.
func Remove(url string) error {
	entries, err := All()
	if err != nil {
		return err
	}

	filtered := lo.Filter(entries, func(e *Entry, _ int) bool {
		return e.URL != url
	})

	return cacher.Set(filtered)
}

// Clear removes every saved bookmark.
func Clear() error {
	return cacher.Set(nil)
}
