package player

import (
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

// Inspector queries the live OS process table. Results are never cached: the external
// player can appear or vanish between any two calls.
type Inspector interface {
	// FindByName returns the pid of the first process whose executable name matches.
	FindByName(name string) (int32, bool)

	// WindowTitle returns the window title of the given process, or an empty string
	// when the platform cannot expose it.
	WindowTitle(pid int32) string
}

type systemInspector struct{}

func (systemInspector) FindByName(name string) (int32, bool) {
	procs, err := process.Processes()
	if err != nil {
		return 0, false
	}

	for _, p := range procs {
		pname, err := p.Name()
		if err != nil {
			continue
		}
		if strings.EqualFold(strings.TrimSuffix(pname, ".exe"), name) {
			return p.Pid, true
		}
	}
	return 0, false
}

func (systemInspector) WindowTitle(pid int32) string {
	return windowTitle(pid)
}
