package resolver

import (
	"testing"
	"time"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/ytui-cli/ytui/filesystem"
)

func TestJournal(t *testing.T) {
	Convey("Given a journal on an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()
		ts := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
		j := &Journal{path: "/logs/resolver.log", now: func() time.Time { return ts }}

		Convey("When recording an attempt", func() {
			j.Record("default", "https://example.com/v", []string{"line one", "line two"})

			content := string(lo.Must(filesystem.API().ReadFile(j.path)))

			Convey("Then the block carries a tagged header", func() {
				So(content, ShouldContainSubstring, "[2026-03-14 15:09:26] Attempt=default Url=https://example.com/v")
			})

			Convey("And the raw lines are indented, followed by a separator", func() {
				So(content, ShouldContainSubstring, "\tline one\n\tline two\n\n")
			})
		})

		Convey("When recording twice", func() {
			j.Record("default", "https://example.com/v", []string{"a"})
			j.Record("dash-fallback", "https://example.com/v", []string{"b"})

			content := string(lo.Must(filesystem.API().ReadFile(j.path)))

			Convey("Then both blocks are appended in order", func() {
				So(content, ShouldContainSubstring, "Attempt=default")
				So(content, ShouldContainSubstring, "Attempt=dash-fallback")
			})
		})

		Convey("A journal pointing at an unwritable path must stay silent", func() {
			filesystem.SetMemMapFs()
			lo.Must0(filesystem.API().WriteFile("/blocked", []byte{}, 0644))
			broken := &Journal{path: "/blocked/resolver.log", now: time.Now}

			So(func() { broken.Record("default", "u", nil) }, ShouldNotPanic)
		})
	})
}
