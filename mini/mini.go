// Package mini implements a lightweight, minimalist interface for video search and playback.
package mini

import (
	"fmt"
	"os"

	"github.com/ytui-cli/ytui/constant"
	"github.com/ytui-cli/ytui/playback"
	"github.com/ytui-cli/ytui/player"
	"github.com/ytui-cli/ytui/queue"
	"github.com/ytui-cli/ytui/resolver"
	"github.com/ytui-cli/ytui/search"
	"github.com/ytui-cli/ytui/tool"
	"github.com/ytui-cli/ytui/util"
	"github.com/ytui-cli/ytui/where"
)

var (
	truncateAt = 100
)

type Options struct {
	Query string
}

type mini struct {
	width, height int

	state         state
	statesHistory util.Stack[state]

	options *Options

	client       *search.Client
	orchestrator *playback.Orchestrator
	queue        *queue.Queue
	synchronizer *queue.Synchronizer

	cachedResults map[string][]*search.Video

	query         string
	selectedVideo *search.Video
}

func newMini(options *Options) (*mini, error) {
	extractor, ok := tool.Extractor().Get()
	if !ok {
		return nil, fmt.Errorf("%s not found, install it with: %s", constant.ExtractorName, tool.InstallHint(constant.ExtractorName))
	}

	playerPath, ok := tool.Player().Get()
	if !ok {
		return nil, fmt.Errorf("%s not found, install it with: %s", constant.PlayerName, tool.InstallHint(constant.PlayerName))
	}

	session := player.NewVLC(playerPath)

	q, err := queue.Load()
	if err != nil {
		return nil, err
	}

	return &mini{
		statesHistory: util.Stack[state]{},
		options:       options,
		client:        search.NewClient(extractor),
		orchestrator:  playback.New(resolver.New(extractor), session, where.ResolverJournal()),
		queue:         q,
		synchronizer:  queue.NewSynchronizer(q, session),
		cachedResults: make(map[string][]*search.Video),
	}, nil
}

func (m *mini) previousState() {
	if m.statesHistory.Len() > 0 {
		m.setState(m.statesHistory.Pop())
	}
}

func (m *mini) setState(s state) {
	m.state = s
}

func (m *mini) newState(s state) {
	if m.state == s {
		return
	}

	m.statesHistory.Push(m.state)
	m.setState(s)
}

func Run(options *Options) error {
	m, err := newMini(options)
	if err != nil {
		return err
	}
	m.state = searchState

	if w, h, err := util.TerminalSize(); err == nil {
		m.width, m.height = w, h
		truncateAt = w
	}

	for {
		if err := m.handleState(); err != nil {
			return err
		}
	}
}

// handleState runs one interaction round. Queue synchronization happens before every
// round so the queue tracks the player even while the user idles in a menu.
func (m *mini) handleState() error {
	m.synchronizer.SyncOnTick()

	switch m.state {
	case searchState:
		return m.handleSearchState()
	case resultSelectState:
		return m.handleResultSelectState()
	case actionSelectState:
		return m.handleActionSelectState()
	case queueViewState:
		return m.handleQueueViewState()
	case bookmarkViewState:
		return m.handleBookmarkViewState()
	case recentViewState:
		return m.handleRecentViewState()
	case quitState:
		os.Exit(0)
	}

	return nil
}
