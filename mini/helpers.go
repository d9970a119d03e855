// Package mini implements a lightweight, minimalist interface for video search and playback.
package mini

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/muesli/reflow/truncate"
	"github.com/spf13/viper"
	"github.com/ytui-cli/ytui/color"
	"github.com/ytui-cli/ytui/icon"
	"github.com/ytui-cli/ytui/key"
	"github.com/ytui-cli/ytui/query"
	"github.com/ytui-cli/ytui/style"
	"github.com/ytui-cli/ytui/util"
)

// bind is a non-item menu entry, compared by identity.
type bind struct {
	label string
}

func (b *bind) String() string {
	return b.label
}

func (b *bind) eq(other *bind) bool {
	return b == other
}

var (
	quit          = &bind{"Quit"}
	back          = &bind{"Back"}
	searchAgain   = &bind{"New Search"}
	playNow       = &bind{"Play Now"}
	playEnqueue   = &bind{"Enqueue in Player"}
	addToQueue    = &bind{"Add to Queue"}
	saveBookmark  = &bind{"Bookmark"}
	openBrowser   = &bind{"Open in Browser"}
	viewQueue     = &bind{"View Queue"}
	viewBookmarks = &bind{"View Bookmarks"}
	viewRecent    = &bind{"Recently Played"}
	clearAll      = &bind{"Clear All"}
)

// menu renders a selection prompt over the items followed by the binds; quit is always
// the final entry. The returned bind is nil when a regular item was chosen.
func menu[T fmt.Stringer](items []T, binds ...*bind) (*bind, T, error) {
	var zero T

	binds = append(binds, quit)

	options := make([]string, 0, len(items)+len(binds))
	for _, item := range items {
		options = append(options, truncate.StringWithTail(item.String(), uint(truncateAt), ".."))
	}
	for _, b := range binds {
		options = append(options, b.String())
	}

	var index int
	prompt := &survey.Select{
		Options:  options,
		PageSize: 15,
	}
	if err := survey.AskOne(prompt, &index); err != nil {
		return nil, zero, err
	}

	if index < len(items) {
		return nil, items[index], nil
	}
	return binds[index-len(items)], zero, nil
}

type input struct {
	value string
}

func getInput(validate func(string) bool) (*input, error) {
	prompt := &survey.Input{
		Message: viper.GetString(key.TUISearchPromptString),
		Suggest: query.SuggestMany,
	}

	var value string
	err := survey.AskOne(prompt, &value, survey.WithValidator(func(answer interface{}) error {
		s, _ := answer.(string)
		if !validate(s) {
			return errors.New("invalid input")
		}
		return nil
	}))
	if err != nil {
		return nil, err
	}

	return &input{value: value}, nil
}

func title(s string) {
	fmt.Println(style.Title(s))
}

func progress(msg string) (eraser func()) {
	return util.PrintErasable(fmt.Sprintf("%s %s", icon.Get(icon.Progress), msg))
}

func fail(msg string) {
	fmt.Printf("%s %s\n", icon.Get(icon.Fail), style.Fg(color.Red)(msg))
}
