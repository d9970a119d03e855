package queue

import (
	"strings"

	"github.com/ytui-cli/ytui/log"
	"github.com/ytui-cli/ytui/util"
)

// Probe is the read-only view of the player session the synchronizer needs.
type Probe interface {
	IsRunning() bool
	LiveTitle() string
}

// Synchronizer keeps the queue aligned with the player's real playback progress.
//
// It is deliberately polling-based: the menu loop calls SyncOnTick before each redraw,
// on its own cadence. The live window title is a heuristic signal; titles can collide
// or be renamed by the player, and that imprecision is an accepted trade-off over
// requiring a richer player-control protocol.
type Synchronizer struct {
	queue  *Queue
	player Probe
}

// NewSynchronizer couples a queue with a player probe.
func NewSynchronizer(q *Queue, player Probe) *Synchronizer {
	return &Synchronizer{queue: q, player: player}
}

// SyncOnTick pops the queue head when the running session's live title corroborates
// that the head item is the one currently playing. It never removes on assumption
// alone: no session, no observable title, or no match all leave the queue untouched.
func (s *Synchronizer) SyncOnTick() {
	head, ok := s.queue.Head()
	if !ok {
		return
	}

	if !s.player.IsRunning() {
		return
	}

	live := s.player.LiveTitle()
	if live == "" {
		return
	}

	if !titleMatches(live, head.Title) {
		return
	}

	if _, err := s.queue.PopHead(); err != nil {
		log.Warnf("queue sync: %v", err)
		return
	}
	log.Debugf("queue sync: popped %q (live title %q)", head.Title, live)
}

// titleMatches reports whether the queued title occurs within the live window title.
// Containment, not equality: the window title commonly decorates the media title.
// Both sides are case-folded and whitespace-collapsed before comparison.
func titleMatches(live, queued string) bool {
	if queued == "" {
		return false
	}
	live = strings.ToLower(util.CollapseWhitespace(live))
	queued = strings.ToLower(util.CollapseWhitespace(queued))
	return strings.Contains(live, queued)
}
