//go:build !windows

package player

import (
	"os/exec"
	"strconv"
	"strings"
)

// windowTitle reads the window title through wmctrl, matching on the owning pid.
// An empty string is returned when wmctrl is unavailable or no window matches;
// the queue synchronizer treats a blank title as "nothing observable" and no-ops.
func windowTitle(pid int32) string {
	out, err := exec.Command("wmctrl", "-l", "-p").Output()
	if err != nil {
		return ""
	}

	want := strconv.Itoa(int(pid))
	for _, line := range strings.Split(string(out), "\n") {
		// Format: <window id> <desktop> <pid> <host> <title...>
		fields := strings.Fields(line)
		if len(fields) < 5 {
			continue
		}
		if fields[2] == want {
			return strings.Join(fields[4:], " ")
		}
	}
	return ""
}
