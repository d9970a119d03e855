// Package resolver turns a video page URL into a direct playable stream URL by walking
// an ordered ladder of extraction strategies against the external extractor tool.
package resolver

// Attempt is one named combination of extractor arguments in the resolution ladder.
type Attempt struct {
	Name string
	Args []string
}

// ladder is the fixed catalog of extraction strategies, ordered as a reliability
// ladder: cheap, fast formats first; identity spoofing and browser-cookie access last,
// since those are slower and depend on the local environment. The order is a contract.
var ladder = []Attempt{
	{Name: "default", Args: []string{"-f", "b"}},
	{Name: "dash-fallback", Args: []string{"-f", "bv*+ba/b"}},
	{Name: "mp4-fallback", Args: []string{"-f", "b[ext=mp4]/bv*[ext=mp4]+ba[ext=m4a]"}},
	{Name: "client-fallback", Args: []string{"-f", "b", "--extractor-args", "youtube:player_client=android"}},
	{Name: "cookies-edge", Args: []string{"-f", "b", "--cookies-from-browser", "edge"}},
	{Name: "cookies-chrome", Args: []string{"-f", "b", "--cookies-from-browser", "chrome"}},
	{Name: "cookies-firefox", Args: []string{"-f", "b", "--cookies-from-browser", "firefox"}},
}

// commonArgs are appended to every attempt: bounded retries and timeouts so a single
// extractor call can never hang indefinitely, and no playlist expansion.
var commonArgs = []string{
	"--no-playlist",
	"--no-warnings",
	"--socket-timeout", "20",
	"--extractor-retries", "3",
	"--fragment-retries", "3",
	"--retries", "3",
}

// Ladder returns a copy of the strategy catalog so callers can enumerate it
// without being able to mutate the canonical order.
func Ladder() []Attempt {
	out := make([]Attempt, len(ladder))
	copy(out, ladder)
	return out
}

// commandLine builds the full argument vector for one attempt against a page URL.
func (a Attempt) commandLine(pageURL string) []string {
	args := make([]string, 0, len(a.Args)+2+len(commonArgs))
	args = append(args, a.Args...)
	args = append(args, "-g", pageURL)
	args = append(args, commonArgs...)
	return args
}
