// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// VideoPicker narrows search results to a single video, or nil when nothing matches.
type VideoPicker func([]*Video) *Video

type Options struct {
	Out     io.Writer
	Query   string
	Json    bool
	Resolve bool
	Play    bool
	Enqueue bool
	Picker  mo.Option[VideoPicker]
}

// ParseVideoPicker parses a picker description.
// Format: "first", "last", a zero-based index, or "@substring@" matching a title.
func ParseVideoPicker(description string) (VideoPicker, error) {
	switch description {
	case "first":
		return func(videos []*Video) *Video {
			if len(videos) == 0 {
				return nil
			}
			return videos[0]
		}, nil
	case "last":
		return func(videos []*Video) *Video {
			if len(videos) == 0 {
				return nil
			}
			return videos[len(videos)-1]
		}, nil
	}

	if strings.HasPrefix(description, "@") && strings.HasSuffix(description, "@") && len(description) > 2 {
		sub := strings.ToLower(description[1 : len(description)-1])
		return func(videos []*Video) *Video {
			found, ok := lo.Find(videos, func(v *Video) bool {
				return strings.Contains(strings.ToLower(v.Title), sub)
			})
			if !ok {
				return nil
			}
			return found
		}, nil
	}

	if idx, err := strconv.ParseUint(description, 10, 16); err == nil {
		return func(videos []*Video) *Video {
			if uint64(len(videos)) <= idx {
				return nil
			}
			return videos[idx]
		}, nil
	}

	return nil, fmt.Errorf("unknown picker description: %s", description)
}
