package inline

import (
	"bytes"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/ytui-cli/ytui/search"
)

func sample() []*Video {
	return []*Video{
		{Video: &search.Video{Title: "Alpha", URL: "https://page/a"}},
		{Video: &search.Video{Title: "Beta", URL: "https://page/b"}},
		{Video: &search.Video{Title: "Gamma", URL: "https://page/c"}},
	}
}

func TestParseVideoPicker(t *testing.T) {
	Convey("Given search results", t, func() {
		videos := sample()

		Convey("first picks the first result", func() {
			picker, err := ParseVideoPicker("first")
			So(err, ShouldBeNil)
			So(picker(videos).Title, ShouldEqual, "Alpha")
		})

		Convey("last picks the last result", func() {
			picker, err := ParseVideoPicker("last")
			So(err, ShouldBeNil)
			So(picker(videos).Title, ShouldEqual, "Gamma")
		})

		Convey("An index picks by position", func() {
			picker, err := ParseVideoPicker("1")
			So(err, ShouldBeNil)
			So(picker(videos).Title, ShouldEqual, "Beta")
		})

		Convey("An out of range index picks nothing", func() {
			picker, err := ParseVideoPicker("9")
			So(err, ShouldBeNil)
			So(picker(videos), ShouldBeNil)
		})

		Convey("A substring matches titles case-insensitively", func() {
			picker, err := ParseVideoPicker("@gam@")
			So(err, ShouldBeNil)
			So(picker(videos).Title, ShouldEqual, "Gamma")
		})

		Convey("An unmatched substring picks nothing", func() {
			picker, err := ParseVideoPicker("@delta@")
			So(err, ShouldBeNil)
			So(picker(videos), ShouldBeNil)
		})

		Convey("Anything else is rejected", func() {
			_, err := ParseVideoPicker("every other")
			So(err, ShouldNotBeNil)
		})

		Convey("Pickers handle empty input", func() {
			for _, description := range []string{"first", "last", "0"} {
				picker, err := ParseVideoPicker(description)
				So(err, ShouldBeNil)
				So(picker(nil), ShouldBeNil)
			}
		})
	})
}

func TestJsonOutput(t *testing.T) {
	Convey("Given selected videos", t, func() {
		var out bytes.Buffer

		Convey("The output carries the query and results", func() {
			videos := sample()
			videos[0].StreamURL = "https://cdn/a"

			So(writeJson(&out, "alpha", videos), ShouldBeNil)
			So(out.String(), ShouldContainSubstring, `"query":"alpha"`)
			So(out.String(), ShouldContainSubstring, `"stream_url":"https://cdn/a"`)
			So(out.String(), ShouldContainSubstring, `"https://page/b"`)
		})

		Convey("No results still yields a well-formed document", func() {
			So(writeJson(&out, "alpha", nil), ShouldBeNil)
			So(out.String(), ShouldContainSubstring, `"result":[]`)
		})
	})
}
