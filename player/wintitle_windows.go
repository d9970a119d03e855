//go:build windows

package player

import (
	"encoding/csv"
	"fmt"
	"os/exec"
	"strings"
)

// windowTitle reads the process's main window title from the verbose tasklist output.
// The last CSV column is the window title; "N/A" means no visible window.
func windowTitle(pid int32) string {
	out, err := exec.Command("tasklist", "/v", "/fo", "csv", "/nh", "/fi", fmt.Sprintf("PID eq %d", pid)).Output()
	if err != nil {
		return ""
	}

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	if err != nil || len(records) == 0 {
		return ""
	}

	row := records[0]
	title := row[len(row)-1]
	if title == "N/A" {
		return ""
	}
	return title
}
