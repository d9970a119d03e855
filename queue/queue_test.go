package queue

import (
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/ytui-cli/ytui/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestQueue(t *testing.T) {
	Convey("Given an empty queue", t, func() {
		q := lo.Must(Load())
		So(q.Clear(), ShouldBeNil)

		Convey("Head should report absence", func() {
			_, ok := q.Head()
			So(ok, ShouldBeFalse)
		})

		Convey("When adding items", func() {
			So(q.Add(&Item{Title: "First", URL: "https://a"}), ShouldBeNil)
			So(q.Add(&Item{Title: "Second", URL: "https://b"}), ShouldBeNil)
			So(q.Add(&Item{Title: "Third", URL: "https://c"}), ShouldBeNil)

			Convey("Then order is FIFO", func() {
				head, ok := q.Head()
				So(ok, ShouldBeTrue)
				So(head.Title, ShouldEqual, "First")
				So(q.Len(), ShouldEqual, 3)
			})

			Convey("And PopHead removes exactly the head", func() {
				popped, err := q.PopHead()
				So(err, ShouldBeNil)
				So(popped.Title, ShouldEqual, "First")

				head, _ := q.Head()
				So(head.Title, ShouldEqual, "Second")
				So(q.Len(), ShouldEqual, 2)
			})

			Convey("And mutations persist across loads", func() {
				lo.Must(q.PopHead())

				reloaded := lo.Must(Load())
				So(reloaded.Len(), ShouldEqual, 2)
				head, _ := reloaded.Head()
				So(head.Title, ShouldEqual, "Second")
			})

			Convey("And Remove deletes by position", func() {
				So(q.Remove(1), ShouldBeNil)
				So(q.Len(), ShouldEqual, 2)
				So(q.Items()[0].Title, ShouldEqual, "First")
				So(q.Items()[1].Title, ShouldEqual, "Third")
			})

			Convey("And Remove rejects out-of-range positions", func() {
				So(q.Remove(7), ShouldNotBeNil)
				So(q.Remove(-1), ShouldNotBeNil)
			})
		})
	})
}
