package resolver

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLadder(t *testing.T) {
	Convey("The strategy catalog", t, func() {
		Convey("Should keep its fixed order", func() {
			names := make([]string, 0, len(Ladder()))
			for _, a := range Ladder() {
				names = append(names, a.Name)
			}
			So(names, ShouldResemble, []string{
				"default",
				"dash-fallback",
				"mp4-fallback",
				"client-fallback",
				"cookies-edge",
				"cookies-chrome",
				"cookies-firefox",
			})
		})

		Convey("Should return a copy that callers cannot use to mutate the catalog", func() {
			first := Ladder()
			first[0].Name = "tampered"
			So(Ladder()[0].Name, ShouldEqual, "default")
		})

		Convey("Cookie strategies should come last", func() {
			catalog := Ladder()
			for _, a := range catalog[:4] {
				So(a.Name, ShouldNotContainSubstring, "cookies")
			}
			for _, a := range catalog[4:] {
				So(a.Name, ShouldContainSubstring, "cookies")
			}
		})
	})
}
