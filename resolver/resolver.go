package resolver

import (
	"os/exec"
	"regexp"
	"strings"

	"github.com/samber/mo"
	"github.com/ytui-cli/ytui/log"
)

// errorPreviewLimit caps how many diagnostic lines are kept per failed attempt.
const errorPreviewLimit = 5

// urlPattern matches output lines that carry a direct stream URL.
var urlPattern = regexp.MustCompile(`^https?://`)

// errorTokens are scanned case-insensitively to pick the most telling output lines.
var errorTokens = []string{"error", "forbidden", "sign in", "bot"}

// Result is the outcome of one resolution call.
// AttemptName always names the last strategy tried, so a failed resolution can tell
// the user how far down the ladder it got.
type Result struct {
	URL          mo.Option[string]
	AttemptName  string
	ErrorPreview []string
}

// Runner abstracts external command execution so tests can inject fakes.
// Run returns the combined output split into lines, plus the command's exit error.
type Runner interface {
	Run(name string, args ...string) ([]string, error)
}

type execRunner struct{}

func (execRunner) Run(name string, args ...string) ([]string, error) {
	out, err := exec.Command(name, args...).CombinedOutput()
	return splitLines(string(out)), err
}

// Resolver walks the strategy ladder against a single extractor binary.
type Resolver struct {
	extractor string
	runner    Runner
	journal   *Journal
}

// New creates a Resolver for the given extractor path, journaling attempts to the
// default resolver journal.
func New(extractorPath string) *Resolver {
	return &Resolver{
		extractor: extractorPath,
		runner:    execRunner{},
		journal:   NewJournal(),
	}
}

// Resolve tries each strategy in ladder order until one produces a playable URL.
// The first success short-circuits the walk; exhaustion yields an absent URL together
// with the last attempt's name and error preview.
func (r *Resolver) Resolve(pageURL string) Result {
	result := Result{URL: mo.None[string]()}

	for _, attempt := range Ladder() {
		lines, err := r.runner.Run(r.extractor, attempt.commandLine(pageURL)...)
		r.journal.Record(attempt.Name, pageURL, lines)

		result.AttemptName = attempt.Name

		if err == nil {
			if url, ok := firstURLLine(lines); ok {
				result.URL = mo.Some(url)
				result.ErrorPreview = nil
				return result
			}
		}

		result.ErrorPreview = errorPreview(lines)
		log.Debugf("resolve %s: attempt %s failed", pageURL, attempt.Name)
	}

	return result
}

// firstURLLine returns the first output line that looks like a direct stream URL.
func firstURLLine(lines []string) (string, bool) {
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if urlPattern.MatchString(trimmed) {
			return trimmed, true
		}
	}
	return "", false
}

// errorPreview picks up to errorPreviewLimit lines that look like error or warning
// signals; when nothing matches, the first raw lines are kept instead so the user
// always sees something actionable.
func errorPreview(lines []string) []string {
	var preview []string

	for _, line := range lines {
		lower := strings.ToLower(line)
		for _, token := range errorTokens {
			if strings.Contains(lower, token) {
				preview = append(preview, line)
				break
			}
		}
		if len(preview) == errorPreviewLimit {
			return preview
		}
	}

	if len(preview) > 0 {
		return preview
	}

	for _, line := range lines {
		preview = append(preview, line)
		if len(preview) == errorPreviewLimit {
			break
		}
	}
	return preview
}

func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.Trim(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
