// Package playback composes stream resolution and player session management into the
// user-facing play action.
package playback

import (
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/ytui-cli/ytui/color"
	"github.com/ytui-cli/ytui/icon"
	"github.com/ytui-cli/ytui/log"
	"github.com/ytui-cli/ytui/open"
	"github.com/ytui-cli/ytui/player"
	"github.com/ytui-cli/ytui/resolver"
	"github.com/ytui-cli/ytui/search"
	"github.com/ytui-cli/ytui/style"
)

// StreamResolver is the slice of the resolver the orchestrator depends on.
type StreamResolver interface {
	Resolve(pageURL string) resolver.Result
}

// Orchestrator drives a single play action end to end: resolve the stream, hand it to
// the player, record recency, and explain failures with actionable diagnostics.
type Orchestrator struct {
	resolver    StreamResolver
	session     player.Session
	recent      *Recent
	journalPath string

	out     io.Writer
	opener  func(input string) error
	confirm func(prompt string) bool
}

// New wires an orchestrator from its collaborators.
func New(res StreamResolver, session player.Session, journalPath string) *Orchestrator {
	return &Orchestrator{
		resolver:    res,
		session:     session,
		recent:      &Recent{},
		journalPath: journalPath,
		out:         os.Stdout,
		opener:      open.Start,
		confirm:     askConfirm,
	}
}

// Recent exposes the recency list for display elsewhere.
func (o *Orchestrator) Recent() *Recent {
	return o.recent
}

// Play resolves the video's page URL and hands the stream to the player session.
//
// Resolution failure is terminal for this action: the user sees the last strategy
// tried, its error preview and the journal path, and may fall back to opening the
// page URL with the system handler. That fallback is the only non-player playback
// path in the application.
func (o *Orchestrator) Play(video *search.Video, enqueue bool) {
	result := o.resolver.Resolve(video.URL)

	streamURL, ok := result.URL.Get()
	if !ok {
		o.reportFailure(video, result)
		return
	}

	o.session.EnsureLaunchedOrUpdated(streamURL, video.URL, enqueue)
	o.recent.Push(video.Title)
	log.Infof("playing %q via attempt %s", video.Title, result.AttemptName)
}

func (o *Orchestrator) reportFailure(video *search.Video, result resolver.Result) {
	fmt.Fprintf(o.out, "%s %s\n", icon.Get(icon.Fail), style.ErrorTitle("Could not resolve a playable stream"))
	fmt.Fprintf(o.out, "Last attempt: %s\n", style.Bold(result.AttemptName))

	if len(result.ErrorPreview) > 0 {
		fmt.Fprintln(o.out, "Extractor output:")
		for _, line := range result.ErrorPreview {
			fmt.Fprintf(o.out, "  %s\n", style.Faint(line))
		}
	}

	fmt.Fprintf(o.out, "Full attempt log: %s\n", style.Fg(color.Yellow)(o.journalPath))

	if o.confirm("Open the page in your browser instead?") {
		if err := o.opener(video.URL); err != nil {
			fmt.Fprintf(o.out, "%s %v\n", icon.Get(icon.Fail), err)
		}
	}
}

func askConfirm(prompt string) bool {
	confirmed := false
	if err := survey.AskOne(&survey.Confirm{Message: prompt}, &confirmed); err != nil {
		return false
	}
	return confirmed
}
