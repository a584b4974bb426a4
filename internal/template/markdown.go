package template

import (
	"bytes"
	"fmt"
	texttemplate "text/template"

	"github.com/ovsds/tf-plan-format/internal/diff"
	"github.com/ovsds/tf-plan-format/internal/plan"
)

// GithubMarkdownTemplate is the built-in report layout: one collapsible
// block per plan file, summarized by its unique-action glyphs, with one
// nested block per resource change holding the fenced diff.
const GithubMarkdownTemplate = `{{ range $path, $plan := .Plans }}<details>
<summary>{{ $path }}{{ range $plan.UniqueActions }} {{ glyph . }}{{ end }}</summary>
{{ range $plan.Changes }}<details>
<summary>{{ glyph .Action }} {{ .Address }}</summary>

` + "```" + `
{{ renderChanges .Before .After }}` + "\n```" + `

</details>
{{ end }}</details>
{{ end }}`

// renderMarkdown executes templateText (or the Github default) against the
// data. Map iteration in text/template is sorted by key, which keeps
// multi-plan output deterministic.
func renderMarkdown(data *plan.Data, templateText string, opts diff.Options) (string, error) {
	if templateText == "" {
		templateText = GithubMarkdownTemplate
	}
	tmpl, err := texttemplate.New("report").Funcs(funcMap(opts)).Parse(templateText)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}
	return buf.String(), nil
}

func funcMap(opts diff.Options) texttemplate.FuncMap {
	return texttemplate.FuncMap{
		"renderChanges": func(before, after plan.ValueMap) string {
			return diff.Render(before, after, opts)
		},
		"glyph": glyph,
	}
}

// glyph maps a classified action to its summary emoji.
func glyph(action plan.ResultAction) string {
	switch action {
	case plan.ResultActionCreate:
		return "✅"
	case plan.ResultActionDelete:
		return "❌"
	case plan.ResultActionDeleteCreate:
		return "♻️"
	case plan.ResultActionUpdate:
		return "🔄"
	case plan.ResultActionRead:
		return "📖"
	case plan.ResultActionNoOp:
		return "🤷"
	default:
		return "❓"
	}
}
