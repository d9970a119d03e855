package bookmark

import (
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/ytui-cli/ytui/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestBookmarks(t *testing.T) {
	Convey("Given an empty registry", t, func() {
		So(Clear(), ShouldBeNil)

		Convey("When adding entries", func() {
			So(Add(&Entry{Title: "One", URL: "https://a"}), ShouldBeNil)
			So(Add(&Entry{Title: "Two", URL: "https://b"}), ShouldBeNil)

			Convey("Then they come back in insertion order", func() {
				entries := lo.Must(All())
				So(len(entries), ShouldEqual, 2)
				So(entries[0].Title, ShouldEqual, "One")
				So(entries[1].Title, ShouldEqual, "Two")
			})

			Convey("And duplicates by URL are ignored", func() {
				So(Add(&Entry{Title: "One again", URL: "https://a"}), ShouldBeNil)
				So(len(lo.Must(All())), ShouldEqual, 2)
			})

			Convey("And Remove deletes by URL", func() {
				So(Remove("https://a"), ShouldBeNil)
				entries := lo.Must(All())
				So(len(entries), ShouldEqual, 1)
				So(entries[0].URL, ShouldEqual, "https://b")
			})
		})
	})
}
