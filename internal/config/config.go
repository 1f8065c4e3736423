package config

import (
	"bytes"
	"fmt"
	"os"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings configures the brew command.
type Settings struct {
	LogLevel  string   `yaml:"log_level"`
	LogFormat string   `yaml:"log_format"`
	Engine    string   `yaml:"engine"`
	Channel   string   `yaml:"channel"`
	Group     *bool    `yaml:"group"`
	Rules     []string `yaml:"rules"`
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	group := true
	return Settings{
		LogLevel:  "info",
		LogFormat: "console",
		Engine:    "expr",
		Channel:   "brew",
		Group:     &group,
	}
}

// Load decodes a YAML settings file. Unknown keys are rejected.
func Load(path string) (Settings, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Decode(payload)
}

// Decode parses YAML settings. An empty document yields zero settings.
func Decode(payload []byte) (Settings, error) {
	var settings Settings
	if len(bytes.TrimSpace(payload)) == 0 {
		return settings, nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(payload))
	dec.KnownFields(true)
	if err := dec.Decode(&settings); err != nil {
		return Settings{}, fmt.Errorf("config: decode: %w", err)
	}
	return settings, nil
}

// Validate reports settings the command cannot honour.
func (s Settings) Validate() error {
	switch strings.ToLower(s.LogFormat) {
	case "console", "json":
	default:
		return fmt.Errorf("config: log_format %q must be console or json", s.LogFormat)
	}
	switch strings.ToLower(s.Engine) {
	case "expr", "cel", "js":
	default:
		return fmt.Errorf("config: engine %q must be expr, cel or js", s.Engine)
	}
	return nil
}

// GroupEnabled reports whether descriptions should be grouped.
func (s Settings) GroupEnabled() bool {
	return s.Group != nil && *s.Group
}

// Merge composes layers ordered from strongest to weakest. A zero field in a
// stronger layer falls through to the next layer; slices are taken whole from
// the strongest layer that sets them.
func Merge(layers ...Settings) Settings {
	var merged Settings
	out := reflect.ValueOf(&merged).Elem()
	for i := len(layers) - 1; i >= 0; i-- {
		layer := reflect.ValueOf(layers[i])
		for f := 0; f < layer.NumField(); f++ {
			value := layer.Field(f)
			if value.IsZero() {
				continue
			}
			out.Field(f).Set(cloneValue(value))
		}
	}
	return merged
}

func cloneValue(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Pointer:
		clone := reflect.New(v.Type().Elem())
		clone.Elem().Set(v.Elem())
		return clone
	case reflect.Slice:
		clone := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		reflect.Copy(clone, v)
		return clone
	default:
		return v
	}
}
