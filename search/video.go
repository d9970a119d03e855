// Package search dispatches search queries to the external extractor and parses the
// resulting metadata rows.
package search

import (
	"fmt"

	"github.com/spf13/viper"
	"github.com/ytui-cli/ytui/key"
)

// Video is one search result row: the input type for playback orchestration.
type Video struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	ChannelName string `json:"channel_name"`
	Duration    string `json:"duration"`
	IsLive      bool   `json:"is_live"`
}

func (v *Video) String() string {
	label := v.Title
	if v.IsLive {
		label += " [LIVE]"
	} else if v.Duration != "" {
		label += fmt.Sprintf(" (%s)", v.Duration)
	}
	if v.ChannelName != "" {
		label += " - " + v.ChannelName
	}
	if viper.GetBool(key.TUIShowURLs) {
		label += "\n  " + v.URL
	}
	return label
}
