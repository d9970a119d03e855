package search

import (
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/metafates/gache"
	"github.com/spf13/viper"
	"github.com/ytui-cli/ytui/filesystem"
	"github.com/ytui-cli/ytui/key"
	"github.com/ytui-cli/ytui/log"
	"github.com/ytui-cli/ytui/where"
)

// fieldSep joins the metadata fields in the extractor's print template.
const fieldSep = "|"

// printTemplate asks the extractor for pipe-delimited metadata rows:
// title, page URL, live status, is-live flag, duration string, uploader.
const printTemplate = "%(title)s|%(webpage_url)s|%(live_status)s|%(is_live)s|%(duration_string)s|%(channel)s"

// Runner abstracts the extractor invocation so tests can inject fakes.
type Runner interface {
	Run(name string, args ...string) ([]string, error)
}

type execRunner struct{}

func (execRunner) Run(name string, args ...string) ([]string, error) {
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		return nil, err
	}
	return strings.Split(strings.Trim(strings.ReplaceAll(string(out), "\r\n", "\n"), "\n"), "\n"), nil
}

// cacher holds recent search results keyed by query, so repeating a search within the
// cache lifetime does not re-invoke the extractor.
var cacher = gache.New[map[string][]*Video](
	&gache.Options{
		Path:       where.Searches(),
		Lifetime:   time.Hour * 6,
		FileSystem: &filesystem.GacheFs{},
	},
)

// Client performs searches against a located extractor binary.
type Client struct {
	extractor string
	runner    Runner
}

// NewClient creates a search client for the given extractor path.
func NewClient(extractorPath string) *Client {
	return &Client{extractor: extractorPath, runner: execRunner{}}
}

// Search returns up to limit results for the query, consulting the metadata cache
// first. Cache failures only cost a fresh extractor call, never the search itself.
func (c *Client) Search(query string, limit int) ([]*Video, error) {
	if videos, ok := c.cached(query); ok {
		return videos, nil
	}

	source := viper.GetString(key.SearchSource)
	target := fmt.Sprintf("%s%d:%s", source, limit, query)

	lines, err := c.runner.Run(c.extractor,
		target,
		"--flat-playlist",
		"--no-warnings",
		"--print", printTemplate,
	)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	videos := parseRows(lines)
	c.remember(query, videos)
	return videos, nil
}

func (c *Client) cached(query string) ([]*Video, bool) {
	if !viper.GetBool(key.SearchCacheResults) {
		return nil, false
	}

	cached, expired, err := cacher.Get()
	if err != nil || expired || cached == nil {
		return nil, false
	}

	videos, ok := cached[cacheKey(query)]
	return videos, ok && len(videos) > 0
}

func (c *Client) remember(query string, videos []*Video) {
	cached, expired, err := cacher.Get()
	if err != nil || expired || cached == nil {
		cached = make(map[string][]*Video)
	}
	cached[cacheKey(query)] = videos

	if err := cacher.Set(cached); err != nil {
		log.Debugf("search cache: %v", err)
	}
}

func cacheKey(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// parseRows converts pipe-delimited metadata rows into Videos, skipping malformed
// lines rather than failing the whole search.
func parseRows(lines []string) []*Video {
	var videos []*Video

	for _, line := range lines {
		fields := strings.Split(line, fieldSep)
		if len(fields) < 6 {
			continue
		}

		// A title containing the separator spills into extra fields; glue them back.
		if len(fields) > 6 {
			cut := len(fields) - 5
			glued := strings.Join(fields[:cut], fieldSep)
			fields = append([]string{glued}, fields[cut:]...)
		}

		title := strings.TrimSpace(fields[0])
		url := strings.TrimSpace(fields[1])
		if title == "" || url == "" || url == "NA" {
			continue
		}

		videos = append(videos, &Video{
			Title:       title,
			URL:         url,
			IsLive:      fields[2] == "is_live" || fields[3] == "True",
			Duration:    naBlank(fields[4]),
			ChannelName: naBlank(fields[5]),
		})
	}

	return videos
}

func naBlank(s string) string {
	s = strings.TrimSpace(s)
	if s == "NA" {
		return ""
	}
	return s
}
