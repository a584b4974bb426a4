// Package template turns classified plan data into report documents.
package template

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ovsds/tf-plan-format/internal/diff"
	"github.com/ovsds/tf-plan-format/internal/plan"
)

// Engine selects an output format.
type Engine string

const (
	// EngineMarkdown renders through a text template and is the only
	// engine that honors custom template text.
	EngineMarkdown Engine = "markdown"
	EngineJSON     Engine = "json"
	EngineYAML     Engine = "yaml"
)

// ParseEngine validates an engine name from the CLI.
func ParseEngine(s string) (Engine, error) {
	switch Engine(s) {
	case EngineMarkdown, EngineJSON, EngineYAML:
		return Engine(s), nil
	default:
		return "", fmt.Errorf("unsupported engine: %s", s)
	}
}

// Render formats data with the given engine. For the markdown engine an
// empty templateText selects the built-in Github template; the json and
// yaml engines marshal the data directly and ignore templateText.
func Render(engine Engine, data *plan.Data, templateText string, opts diff.Options) (string, error) {
	switch engine {
	case EngineMarkdown:
		return renderMarkdown(data, templateText, opts)
	case EngineJSON:
		return renderJSON(data)
	case EngineYAML:
		return renderYAML(data)
	default:
		return "", fmt.Errorf("unsupported engine: %s", engine)
	}
}

func renderJSON(data *plan.Data) (string, error) {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal plans to JSON: %w", err)
	}
	return string(out) + "\n", nil
}

func renderYAML(data *plan.Data) (string, error) {
	out, err := yaml.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to marshal plans to YAML: %w", err)
	}
	return string(out), nil
}
