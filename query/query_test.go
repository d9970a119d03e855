package query

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/ytui-cli/ytui/filesystem"
	"github.com/ytui-cli/ytui/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestQuerySuggestions(t *testing.T) {
	Convey("Given remembered queries", t, func() {
		viper.Set(key.SearchShowQuerySuggestions, true)
		suggestionCache = make(map[string][]*queryRecord)

		So(Remember("lofi beats", 1), ShouldBeNil)
		So(Remember("lofi beats", 1), ShouldBeNil)
		So(Remember("live concert", 1), ShouldBeNil)

		Convey("SuggestMany ranks repeated queries first", func() {
			suggestions := SuggestMany("l")
			So(len(suggestions), ShouldBeGreaterThanOrEqualTo, 2)
			So(suggestions[0], ShouldEqual, "lofi beats")
		})

		Convey("Suggest returns the top suggestion", func() {
			So(Suggest("lofi").MustGet(), ShouldEqual, "lofi beats")
		})

		Convey("Suggest is absent for unmatched input", func() {
			So(Suggest("zzzzz").IsAbsent(), ShouldBeTrue)
		})
	})

	Convey("Given suggestions are disabled", t, func() {
		viper.Set(key.SearchShowQuerySuggestions, false)
		suggestionCache = make(map[string][]*queryRecord)

		Convey("SuggestMany returns nothing", func() {
			So(SuggestMany("lofi"), ShouldBeEmpty)
		})
	})
}
