// Package queue implements the FIFO playback queue and its synchronization with the
// external player's observed progress.
package queue

import (
	"fmt"

	"github.com/metafates/gache"
	"github.com/ytui-cli/ytui/filesystem"
	"github.com/ytui-cli/ytui/where"
)

// Item is one queued video. The head of the queue is the next item to play.
type Item struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

func (i *Item) String() string {
	return i.Title
}

// cacher persists the queue; every mutation writes through immediately so the on-disk
// state always mirrors memory.
var cacher = gache.New[[]*Item](
	&gache.Options{
		Path:       where.Queue(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Queue is the in-memory FIFO, loaded once and written through on each mutation.
type Queue struct {
	items []*Item
}

// Load reads the persisted queue from disk.
func Load() (*Queue, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, fmt.Errorf("load queue: %w", err)
	}
	if expired || cached == nil {
		cached = nil
	}
	return &Queue{items: cached}, nil
}

// Items returns the queued items in playback order.
func (q *Queue) Items() []*Item {
	return q.items
}

// Len returns the number of queued items.
func (q *Queue) Len() int {
	return len(q.items)
}

// Head returns the next item to play.
func (q *Queue) Head() (*Item, bool) {
	if len(q.items) == 0 {
		return nil, false
	}
	return q.items[0], true
}

// Add appends an item to the tail and persists the queue.
func (q *Queue) Add(item *Item) error {
	q.items = append(q.items, item)
	return q.persist()
}

// PopHead removes the head item and persists the queue.
// Only the synchronizer and explicit user removal may call this; order is FIFO and
// nothing ever removes from the middle on playback grounds.
func (q *Queue) PopHead() (*Item, error) {
	if len(q.items) == 0 {
		return nil, nil
	}
	head := q.items[0]
	q.items = q.items[1:]
	return head, q.persist()
}

// Remove deletes the item at the given position and persists the queue.
func (q *Queue) Remove(index int) error {
	if index < 0 || index >= len(q.items) {
		return fmt.Errorf("queue index %d out of range", index)
	}
	q.items = append(q.items[:index], q.items[index+1:]...)
	return q.persist()
}

// Clear empties the queue and persists it.
func (q *Queue) Clear() error {
	q.items = nil
	return q.persist()
}

func (q *Queue) persist() error {
	if err := cacher.Set(q.items); err != nil {
		return fmt.Errorf("persist queue: %w", err)
	}
	return nil
}
