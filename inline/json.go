// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"encoding/json"
	"io"

	"github.com/invopop/jsonschema"
	"github.com/ytui-cli/ytui/search"
)

// Video is a search result enriched with its resolved stream URL when requested.
type Video struct {
	*search.Video
	StreamURL string `json:"stream_url,omitempty"`
}

type Output struct {
	Query  string   `json:"query"`
	Result []*Video `json:"result"`
}

func writeJson(out io.Writer, query string, videos []*Video) error {
	if videos == nil {
		videos = []*Video{}
	}

	data, err := json.Marshal(&Output{
		Query:  query,
		Result: videos,
	})
	if err != nil {
		return err
	}

	_, err = out.Write(data)
	return err
}

// Schema returns the JSON schema of the inline output format, for consumers that
// script against it.
func Schema() ([]byte, error) {
	return json.MarshalIndent(jsonschema.Reflect(&Output{}), "", "  ")
}
