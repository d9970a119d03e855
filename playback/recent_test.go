package playback

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRecent(t *testing.T) {
	Convey("Given a sequence of played labels", t, func() {
		var r Recent
		for _, label := range []string{"A", "B", "A", "C", "D", "E", "F"} {
			r.Push(label)
		}

		Convey("The list is most-recent-first, deduplicated and capped", func() {
			So(r.Items(), ShouldResemble, []string{"F", "E", "D", "C", "B"})
		})
	})

	Convey("Pushing an existing label moves it to the front", t, func() {
		var r Recent
		r.Push("A")
		r.Push("B")
		r.Push("A")

		So(r.Items(), ShouldResemble, []string{"A", "B"})
	})
}
