package search

import (
	"errors"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/ytui-cli/ytui/filesystem"
	"github.com/ytui-cli/ytui/key"
)

func init() {
	filesystem.SetMemMapFs()
}

type fakeRunner struct {
	lines []string
	err   error
	calls [][]string
}

func (f *fakeRunner) Run(name string, args ...string) ([]string, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	return f.lines, f.err
}

func newTestClient(runner Runner) *Client {
	return &Client{extractor: "yt-dlp", runner: runner}
}

func TestSearch(t *testing.T) {
	viper.Set(key.SearchSource, "ytsearch")
	viper.Set(key.SearchCacheResults, false) // exercise the extractor path

	Convey("Given well-formed metadata rows", t, func() {
		runner := &fakeRunner{lines: []string{
			"Some Video|https://example.com/watch?v=1|not_live|False|10:23|Some Channel",
			"Live Now|https://example.com/watch?v=2|is_live|True|NA|Live Channel",
		}}
		c := newTestClient(runner)

		Convey("When searching", func() {
			videos, err := c.Search("some query", 5)
			So(err, ShouldBeNil)

			Convey("Then each row maps to a video", func() {
				So(len(videos), ShouldEqual, 2)
				So(videos[0].Title, ShouldEqual, "Some Video")
				So(videos[0].URL, ShouldEqual, "https://example.com/watch?v=1")
				So(videos[0].Duration, ShouldEqual, "10:23")
				So(videos[0].ChannelName, ShouldEqual, "Some Channel")
				So(videos[0].IsLive, ShouldBeFalse)
				So(videos[1].IsLive, ShouldBeTrue)
				So(videos[1].Duration, ShouldEqual, "")
			})

			Convey("And the invocation embeds source, limit and query", func() {
				call := strings.Join(runner.calls[0], " ")
				So(call, ShouldContainSubstring, "ytsearch5:some query")
				So(call, ShouldContainSubstring, "--flat-playlist")
			})
		})
	})

	Convey("Given a title containing the field separator", t, func() {
		runner := &fakeRunner{lines: []string{
			"Tricky | Title|https://example.com/watch?v=3|not_live|False|1:00|Chan",
		}}
		c := newTestClient(runner)

		Convey("The extra fields are glued back into the title", func() {
			videos, err := c.Search("q", 5)
			So(err, ShouldBeNil)
			So(len(videos), ShouldEqual, 1)
			So(videos[0].Title, ShouldEqual, "Tricky | Title")
			So(videos[0].URL, ShouldEqual, "https://example.com/watch?v=3")
		})
	})

	Convey("Given malformed rows", t, func() {
		runner := &fakeRunner{lines: []string{
			"not enough fields",
			"|https://example.com/v|not_live|False|1:00|Chan",
			"Good|https://example.com/ok|not_live|False|1:00|Chan",
		}}
		c := newTestClient(runner)

		Convey("They are skipped, not fatal", func() {
			videos, err := c.Search("q", 5)
			So(err, ShouldBeNil)
			So(len(videos), ShouldEqual, 1)
			So(videos[0].Title, ShouldEqual, "Good")
		})
	})

	Convey("Given a failing extractor", t, func() {
		c := newTestClient(&fakeRunner{err: errors.New("exit status 1")})

		Convey("The error is surfaced", func() {
			_, err := c.Search("q", 5)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestSearchCache(t *testing.T) {
	Convey("Given a populated metadata cache", t, func() {
		filesystem.SetMemMapFs()
		viper.Set(key.SearchCacheResults, true)

		runner := &fakeRunner{lines: []string{
			"Cached Video|https://example.com/c|not_live|False|2:00|Chan",
		}}
		c := newTestClient(runner)

		first, err := c.Search("repeat me", 5)
		So(err, ShouldBeNil)
		So(len(first), ShouldEqual, 1)

		Convey("A repeated query is served without a fresh extractor call", func() {
			second, err := c.Search("repeat me", 5)
			So(err, ShouldBeNil)
			So(len(second), ShouldEqual, 1)
			So(second[0].Title, ShouldEqual, "Cached Video")
			So(len(runner.calls), ShouldEqual, 1)
		})
	})
}
