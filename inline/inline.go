// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"github.com/ytui-cli/ytui/constant"
	"github.com/ytui-cli/ytui/key"
	"github.com/ytui-cli/ytui/log"
	"github.com/ytui-cli/ytui/playback"
	"github.com/ytui-cli/ytui/player"
	"github.com/ytui-cli/ytui/query"
	"github.com/ytui-cli/ytui/resolver"
	"github.com/ytui-cli/ytui/search"
	"github.com/ytui-cli/ytui/tool"
	"github.com/ytui-cli/ytui/where"
)

func Run(options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	extractor, ok := tool.Extractor().Get()
	if !ok {
		return fmt.Errorf("%s not found, install it with: %s", constant.ExtractorName, tool.InstallHint(constant.ExtractorName))
	}

	found, err := search.NewClient(extractor).Search(options.Query, viper.GetInt(key.SearchLimit))
	if err != nil {
		return err
	}

	if err := query.Remember(options.Query, 1); err != nil {
		log.Warnf("remember query: %v", err)
	}

	videos := make([]*Video, len(found))
	for i, v := range found {
		videos[i] = &Video{Video: v}
	}

	selected := videos
	if options.Picker.IsPresent() {
		picker := options.Picker.MustGet()
		if choice := picker(videos); choice != nil {
			selected = []*Video{choice}
		} else {
			selected = nil
		}
	}

	if len(selected) == 0 {
		if options.Json {
			return writeJson(options.Out, options.Query, nil)
		}
		return nil
	}

	if options.Play {
		return play(extractor, selected, options)
	}

	if options.Resolve {
		res := resolver.New(extractor)
		for _, v := range selected {
			result := res.Resolve(v.URL)
			if stream, ok := result.URL.Get(); ok {
				v.StreamURL = stream
			} else {
				log.Warnf("resolve %s: every strategy failed, last attempt %s", v.URL, result.AttemptName)
			}
		}
	}

	if options.Json {
		return writeJson(options.Out, options.Query, selected)
	}

	for _, v := range selected {
		if v.StreamURL != "" {
			fmt.Fprintln(options.Out, v.StreamURL)
		} else {
			fmt.Fprintln(options.Out, v.URL)
		}
	}

	return nil
}

func play(extractor string, selected []*Video, options *Options) error {
	if len(selected) != 1 {
		return errors.New("playback requires a picker that selects exactly one video")
	}

	playerPath, ok := tool.Player().Get()
	if !ok {
		return fmt.Errorf("%s not found, install it with: %s", constant.PlayerName, tool.InstallHint(constant.PlayerName))
	}

	session := player.NewVLC(playerPath)
	orchestrator := playback.New(resolver.New(extractor), session, where.ResolverJournal())
	orchestrator.Play(selected[0].Video, options.Enqueue)
	return nil
}
