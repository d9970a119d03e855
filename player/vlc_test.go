package player

import (
	"errors"
	"strings"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

// fakeSpawner records every spawn and scripts the liveness of each spawned handle.
type fakeSpawner struct {
	calls [][]string
	alive []bool // per call, whether the handle survives the grace period
	err   error
}

type fakeHandle struct{ alive bool }

func (h fakeHandle) Alive() bool { return h.alive }

func (f *fakeSpawner) Spawn(name string, args ...string) (handle, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	if f.err != nil {
		return nil, f.err
	}
	alive := true
	if len(f.alive) >= len(f.calls) {
		alive = f.alive[len(f.calls)-1]
	}
	return fakeHandle{alive: alive}, nil
}

// fakeInspector scripts the process table.
type fakeInspector struct {
	running bool
	title   string
}

func (f fakeInspector) FindByName(string) (int32, bool) {
	if f.running {
		return 4242, true
	}
	return 0, false
}

func (f fakeInspector) WindowTitle(int32) string { return f.title }

func newTestVLC(spawn *fakeSpawner, procs Inspector) *VLC {
	return &VLC{binPath: "/usr/bin/vlc", spawn: spawn, procs: procs, grace: time.Millisecond}
}

func TestEnsureLaunchedOrUpdated(t *testing.T) {
	Convey("Given no running session", t, func() {
		Convey("When the launch survives the grace period", func() {
			spawn := &fakeSpawner{}
			v := newTestVLC(spawn, fakeInspector{running: false})

			v.EnsureLaunchedOrUpdated("https://cdn/stream", "https://page/url", false)

			Convey("Then exactly one process is spawned with geometry and buffering flags", func() {
				So(len(spawn.calls), ShouldEqual, 1)
				call := strings.Join(spawn.calls[0], " ")
				So(call, ShouldContainSubstring, "--width=")
				So(call, ShouldContainSubstring, "--height=")
				So(call, ShouldContainSubstring, "--network-caching=")
				So(call, ShouldContainSubstring, "https://cdn/stream")
			})
		})

		Convey("When the launch exits within the grace period", func() {
			spawn := &fakeSpawner{alive: []bool{false, true}}
			v := newTestVLC(spawn, fakeInspector{running: false})

			v.EnsureLaunchedOrUpdated("https://cdn/stream", "https://page/url", false)

			Convey("Then exactly one degraded relaunch follows", func() {
				So(len(spawn.calls), ShouldEqual, 2)
			})

			Convey("And the relaunch uses the fallback URL with a minimal argument set", func() {
				So(spawn.calls[1], ShouldResemble, []string{"/usr/bin/vlc", "https://page/url"})
			})
		})

		Convey("When spawning fails outright", func() {
			spawn := &fakeSpawner{err: errors.New("exec format error")}
			v := newTestVLC(spawn, fakeInspector{running: false})

			Convey("Then the failure stays silent at this layer", func() {
				So(func() {
					v.EnsureLaunchedOrUpdated("https://cdn/stream", "https://page/url", false)
				}, ShouldNotPanic)
			})
		})
	})

	Convey("Given a running session", t, func() {
		Convey("When replacing playback", func() {
			spawn := &fakeSpawner{}
			v := newTestVLC(spawn, fakeInspector{running: true})

			v.EnsureLaunchedOrUpdated("https://cdn/stream", "https://page/url", false)

			Convey("Then a single-instance control invocation is issued", func() {
				So(len(spawn.calls), ShouldEqual, 1)
				So(spawn.calls[0], ShouldResemble, []string{"/usr/bin/vlc", "--one-instance", "https://cdn/stream"})
			})
		})

		Convey("When enqueueing", func() {
			spawn := &fakeSpawner{}
			v := newTestVLC(spawn, fakeInspector{running: true})

			v.EnsureLaunchedOrUpdated("https://cdn/stream", "https://page/url", true)

			Convey("Then the playlist-enqueue flag is added", func() {
				So(spawn.calls[0], ShouldResemble, []string{"/usr/bin/vlc", "--one-instance", "--playlist-enqueue", "https://cdn/stream"})
			})
		})
	})
}

func TestLiveTitle(t *testing.T) {
	Convey("LiveTitle", t, func() {
		Convey("Strips the player's window decoration", func() {
			v := newTestVLC(&fakeSpawner{}, fakeInspector{running: true, title: "Some Video - VLC media player"})
			So(v.LiveTitle(), ShouldEqual, "Some Video")
		})

		Convey("Reports blank for an idle player window", func() {
			v := newTestVLC(&fakeSpawner{}, fakeInspector{running: true, title: "VLC media player"})
			So(v.LiveTitle(), ShouldEqual, "")
		})

		Convey("Reports blank when no session is running", func() {
			v := newTestVLC(&fakeSpawner{}, fakeInspector{running: false, title: "ghost"})
			So(v.LiveTitle(), ShouldEqual, "")
		})
	})
}
