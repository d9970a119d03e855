package resolver

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ytui-cli/ytui/filesystem"
	"github.com/ytui-cli/ytui/log"
	"github.com/ytui-cli/ytui/util"
	"github.com/ytui-cli/ytui/where"
)

// Journal appends one diagnostic block per resolution attempt to a debug log file.
// Writing is strictly best-effort: a journal that cannot be written must never
// interrupt a resolution in progress, so every failure here is swallowed.
type Journal struct {
	path string
	now  func() time.Time
}

// NewJournal creates a Journal writing to the default resolver journal path.
func NewJournal() *Journal {
	return &Journal{path: where.ResolverJournal(), now: time.Now}
}

// Path returns the journal's file location for user-facing diagnostics.
func (j *Journal) Path() string {
	return j.path
}

// Record appends one attempt block: a header with timestamp, strategy name and URL,
// the raw output lines indented, then a blank separator line.
// The file is created on demand.
func (j *Journal) Record(attemptName, pageURL string, lines []string) {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] Attempt=%s Url=%s\n", j.now().Format("2006-01-02 15:04:05"), attemptName, pageURL)
	for _, line := range lines {
		b.WriteString("\t")
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	f, err := filesystem.API().OpenFile(j.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		log.Debugf("resolver journal: %v", err)
		return
	}
	defer util.Ignore(f.Close)

	if _, err := f.WriteString(b.String()); err != nil {
		log.Debugf("resolver journal: %v", err)
	}
}
