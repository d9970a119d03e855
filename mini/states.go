// Package mini implements a lightweight, minimalist interface for video search and playback.
package mini

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"github.com/ytui-cli/ytui/bookmark"
	"github.com/ytui-cli/ytui/icon"
	"github.com/ytui-cli/ytui/key"
	"github.com/ytui-cli/ytui/log"
	"github.com/ytui-cli/ytui/open"
	"github.com/ytui-cli/ytui/query"
	"github.com/ytui-cli/ytui/queue"
	"github.com/ytui-cli/ytui/search"
	"github.com/ytui-cli/ytui/style"
	"github.com/ytui-cli/ytui/util"
)

type state int

const (
	searchState state = iota + 1
	resultSelectState
	actionSelectState
	queueViewState
	bookmarkViewState
	recentViewState
	quitState
)

func (m *mini) handleSearchState() error {
	title("Search Videos")

	if m.options.Query != "" {
		q := m.options.Query
		m.options.Query = ""

		found, err := m.runSearch(q)
		if err != nil || found {
			return err
		}
	}

	var searchLoop func() error
	searchLoop = func() error {
		in, err := getInput(func(s string) bool {
			return strings.TrimSpace(s) != ""
		})
		if err != nil {
			return err
		}

		found, err := m.runSearch(in.value)
		if err != nil {
			return err
		}
		if !found {
			return searchLoop()
		}
		return nil
	}

	return searchLoop()
}

func (m *mini) runSearch(q string) (bool, error) {
	if err := query.Remember(q, 1); err != nil {
		log.Warnf("remember query: %v", err)
	}

	erase := progress("Searching Query..")
	videos, err := m.client.Search(q, viper.GetInt(key.SearchLimit))
	erase()
	if err != nil {
		return false, err
	}

	if len(videos) == 0 {
		fail("No search results found")
		return false, nil
	}

	m.cachedResults[q] = videos
	m.query = q
	m.newState(resultSelectState)
	return true, nil
}

func (m *mini) handleResultSelectState() error {
	title("Query Results >>")

	b, v, err := menu(m.cachedResults[m.query], searchAgain, viewQueue, viewBookmarks, viewRecent)
	if err != nil {
		return err
	}

	switch {
	case quit.eq(b):
		m.newState(quitState)
	case searchAgain.eq(b):
		m.newState(searchState)
	case viewQueue.eq(b):
		m.newState(queueViewState)
	case viewBookmarks.eq(b):
		m.newState(bookmarkViewState)
	case viewRecent.eq(b):
		m.newState(recentViewState)
	default:
		m.selectedVideo = v
		m.newState(actionSelectState)
	}

	return nil
}

func (m *mini) handleActionSelectState() error {
	title(fmt.Sprintf("%s >>", m.selectedVideo.Title))

	b, _, err := menu([]fmt.Stringer{}, playNow, playEnqueue, addToQueue, saveBookmark, openBrowser, back)
	if err != nil {
		return err
	}

	switch {
	case playNow.eq(b):
		m.orchestrator.Play(m.selectedVideo, false)
	case playEnqueue.eq(b):
		m.orchestrator.Play(m.selectedVideo, true)
	case addToQueue.eq(b):
		if err := m.queue.Add(&queue.Item{Title: m.selectedVideo.Title, URL: m.selectedVideo.URL}); err != nil {
			return err
		}
		fmt.Printf("%s Queued %s\n", icon.Get(icon.Queue), style.Bold(m.selectedVideo.Title))
	case saveBookmark.eq(b):
		if err := bookmark.Add(&bookmark.Entry{Title: m.selectedVideo.Title, URL: m.selectedVideo.URL}); err != nil {
			return err
		}
		fmt.Printf("%s Bookmarked %s\n", icon.Get(icon.Bookmark), style.Bold(m.selectedVideo.Title))
	case openBrowser.eq(b):
		if err := open.Start(m.selectedVideo.URL); err != nil {
			fail(err.Error())
		}
	case back.eq(b):
		m.previousState()
	case quit.eq(b):
		m.newState(quitState)
	}

	return nil
}

func (m *mini) handleQueueViewState() error {
	items := m.queue.Items()
	title(fmt.Sprintf("Playback Queue, %s >> select to remove", util.Quantify(len(items), "item", "items")))

	b, item, err := menu(items, clearAll, back)
	if err != nil {
		return err
	}

	switch {
	case quit.eq(b):
		m.newState(quitState)
	case back.eq(b):
		m.previousState()
	case clearAll.eq(b):
		if err := m.queue.Clear(); err != nil {
			return err
		}
	default:
		for i, queued := range m.queue.Items() {
			if queued == item {
				if err := m.queue.Remove(i); err != nil {
					return err
				}
				break
			}
		}
	}

	return nil
}

func (m *mini) handleBookmarkViewState() error {
	entries, err := bookmark.All()
	if err != nil {
		return err
	}

	title("Bookmarks >>")

	b, entry, err := menu(entries, back)
	if err != nil {
		return err
	}

	switch {
	case quit.eq(b):
		m.newState(quitState)
	case back.eq(b):
		m.previousState()
	default:
		m.selectedVideo = &search.Video{Title: entry.Title, URL: entry.URL}
		m.newState(actionSelectState)
	}

	return nil
}

func (m *mini) handleRecentViewState() error {
	title("Recently Played >>")

	labels := m.orchestrator.Recent().Items()
	if len(labels) == 0 {
		fmt.Println(style.Faint("Nothing played yet"))
	}
	for _, label := range labels {
		fmt.Printf("%s %s\n", icon.Get(icon.Recent), label)
	}

	b, _, err := menu([]fmt.Stringer{}, back)
	if err != nil {
		return err
	}

	if quit.eq(b) {
		m.newState(quitState)
		return nil
	}

	m.previousState()
	return nil
}
