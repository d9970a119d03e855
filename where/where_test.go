package where

import (
	"strings"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/ytui-cli/ytui/filesystem"
)

func init() {
	// Use in-memory filesystem for tests to avoid creating real directories
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Cache()", func() {
			path := Cache()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Logs()", func() {
			path := Logs()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("ResolverJournal() lives under Logs()", func() {
			So(strings.HasPrefix(ResolverJournal(), Logs()), ShouldBeTrue)
		})

		Convey("Queue() and Bookmarks() live under Config()", func() {
			So(strings.HasPrefix(Queue(), Config()), ShouldBeTrue)
			So(strings.HasPrefix(Bookmarks(), Config()), ShouldBeTrue)
		})
	})
}
