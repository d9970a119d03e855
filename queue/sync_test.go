package queue

import (
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/ytui-cli/ytui/filesystem"
)

type fakeProbe struct {
	running bool
	title   string
}

func (f fakeProbe) IsRunning() bool   { return f.running }
func (f fakeProbe) LiveTitle() string { return f.title }

func newSyncQueue(titles ...string) *Queue {
	filesystem.SetMemMapFs()
	q := lo.Must(Load())
	lo.Must0(q.Clear())
	for _, title := range titles {
		lo.Must0(q.Add(&Item{Title: title, URL: "https://example.com/" + title}))
	}
	return q
}

func TestSyncOnTick(t *testing.T) {
	Convey("Given a queue with head title Foo", t, func() {
		Convey("When the live title contains Foo as a substring", func() {
			q := newSyncQueue("Foo", "Bar")
			s := NewSynchronizer(q, fakeProbe{running: true, title: "Foo (Official Video)"})

			s.SyncOnTick()

			Convey("Then exactly the head is removed and order is preserved", func() {
				So(q.Len(), ShouldEqual, 1)
				head, _ := q.Head()
				So(head.Title, ShouldEqual, "Bar")
			})
		})

		Convey("When the live title does not contain Foo", func() {
			q := newSyncQueue("Foo", "Bar")
			s := NewSynchronizer(q, fakeProbe{running: true, title: "Something Else"})

			s.SyncOnTick()

			Convey("Then the queue is unchanged", func() {
				So(q.Len(), ShouldEqual, 2)
			})
		})

		Convey("When the live title is blank", func() {
			q := newSyncQueue("Foo")
			s := NewSynchronizer(q, fakeProbe{running: true, title: ""})

			s.SyncOnTick()
			So(q.Len(), ShouldEqual, 1)
		})

		Convey("When no session is running", func() {
			q := newSyncQueue("Foo")
			s := NewSynchronizer(q, fakeProbe{running: false, title: "Foo"})

			s.SyncOnTick()
			So(q.Len(), ShouldEqual, 1)
		})
	})

	Convey("Given an empty queue", t, func() {
		q := newSyncQueue()
		s := NewSynchronizer(q, fakeProbe{running: true, title: "Foo"})

		Convey("SyncOnTick is a no-op", func() {
			So(func() { s.SyncOnTick() }, ShouldNotPanic)
			So(q.Len(), ShouldEqual, 0)
		})
	})
}

func TestTitleMatches(t *testing.T) {
	Convey("titleMatches", t, func() {
		Convey("Is case-insensitive", func() {
			So(titleMatches("FOO - some suffix", "foo"), ShouldBeTrue)
		})

		Convey("Collapses whitespace on both sides", func() {
			So(titleMatches("My   Great\tVideo - player", "My Great Video"), ShouldBeTrue)
		})

		Convey("Treats wildcard metacharacters literally", func() {
			So(titleMatches("Video [*] live", "Video [*]"), ShouldBeTrue)
			So(titleMatches("Video anything live", "Video [*]"), ShouldBeFalse)
		})

		Convey("Never matches an empty queued title", func() {
			So(titleMatches("anything", ""), ShouldBeFalse)
		})
	})
}
