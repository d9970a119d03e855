// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"encoding/json"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/ytui-cli/ytui/color"
	"github.com/ytui-cli/ytui/constant"
	"github.com/ytui-cli/ytui/key"
	"github.com/ytui-cli/ytui/style"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Ytui + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

// typeName returns the string representation of the field's underlying value type.
func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	default:
		return "unknown"
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	// register validates and adds a new configuration field to the global registry.
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		f := Field{Key: k, Value: v, Description: desc}
		Default[k] = f
		EnvExposed = append(EnvExposed, k)
	}

	register(key.SearchLimit, 20, "Maximum number of search results to request")
	register(key.SearchSource, "ytsearch", "Search source prefix passed to the extractor.\nUse \"ytsearch\" for YouTube")
	register(key.SearchShowQuerySuggestions, true, "Show query suggestions when searching")
	register(key.SearchCacheResults, true, "Cache search result metadata so repeated queries\ndo not re-invoke the extractor")
	register(key.PlayerWindowWidth, 1280, "Window width hint passed to the player on a fresh launch")
	register(key.PlayerWindowHeight, 720, "Window height hint passed to the player on a fresh launch")
	register(key.PlayerNetworkCaching, 3000, "Network caching buffer in milliseconds passed to the player")
	register(key.PlayerEnqueue, false, "Append to the running player's playlist instead of replacing the current item")
	register(key.TUISearchPromptString, "> ", "Search prompt string to use")
	register(key.TUIShowURLs, true, "Show page URLs next to search results")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, plain, nerd (nerd-font required)")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, true, "Enable automatic version check")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":  style.Faint,
	"bold":   style.Bold,
	"purple": style.Fg(color.Purple),
	"yellow": style.Fg(color.Yellow),
	"value": func(k string) string {
		return style.Fg(color.Green)(viper.GetString(k))
	},
}).Parse(`{{ purple .Key }}
{{ faint .Description }}
{{ bold "Value:" }} {{ value .Key }}
{{ bold "Env:" }} {{ yellow .Env }}`))
