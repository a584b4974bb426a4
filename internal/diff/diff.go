// Package diff renders the line-oriented difference between the before and
// after attribute maps of a resource change. Keys are always walked in
// lexicographic order so output is byte-identical across runs.
package diff

import (
	"sort"
	"strings"

	"github.com/ovsds/tf-plan-format/internal/plan"
)

const indentUnit = "  "

// Options controls diff rendering.
type Options struct {
	// ShowChangedValues keeps leaf lines whose value is identical on both
	// sides. Lines for changed values are always rendered.
	ShowChangedValues bool
}

// DefaultOptions returns the rendering defaults.
func DefaultOptions() Options {
	return Options{ShowChangedValues: true}
}

// Render produces the diff between two attribute maps, one line per leaf,
// nested objects indented one level per depth. A nil map means that side
// is absent: with only one side present its contents are listed as-is, and
// with neither present the output is empty. Lines are joined with newlines
// and carry no trailing newline.
func Render(before, after plan.ValueMap, opts Options) string {
	var lines []string
	switch {
	case before == nil && after == nil:
	case before == nil:
		lines = appendListing(lines, after, 0)
	case after == nil:
		lines = appendListing(lines, before, 0)
	default:
		lines = appendDiff(lines, before, after, 0, opts)
	}
	return strings.Join(lines, "\n")
}

func appendDiff(lines []string, before, after map[string]plan.Value, depth int, opts Options) []string {
	for _, key := range unionKeys(before, after) {
		b, ok := before[key]
		if !ok {
			b = plan.NullVal()
		}
		a, ok := after[key]
		if !ok {
			a = plan.NullVal()
		}
		lines = appendKeyDiff(lines, key, b, a, depth, opts)
	}
	return lines
}

func appendKeyDiff(lines []string, key string, before, after plan.Value, depth int, opts Options) []string {
	prefix := strings.Repeat(indentUnit, depth)
	switch {
	case before.Kind() == plan.KindObject && after.Kind() == plan.KindObject:
		children := appendDiff(nil, before.Fields(), after.Fields(), depth+1, opts)
		if len(children) == 0 && !opts.ShowChangedValues {
			return lines
		}
		lines = append(lines, prefix+key+":")
		return append(lines, children...)
	case before.Kind() == plan.KindObject && after.Kind() == plan.KindNull:
		lines = append(lines, prefix+key+":")
		return appendListing(lines, before.Fields(), depth+1)
	case before.Kind() == plan.KindNull && after.Kind() == plan.KindObject:
		lines = append(lines, prefix+key+":")
		return appendListing(lines, after.Fields(), depth+1)
	case before.Equal(after):
		if opts.ShowChangedValues {
			lines = append(lines, prefix+key+": "+before.String())
		}
		return lines
	default:
		return append(lines, prefix+key+": "+before.String()+" -> "+after.String())
	}
}

// appendListing renders a map without comparison, every key as "key: value"
// with nested objects expanded one level deeper.
func appendListing(lines []string, m map[string]plan.Value, depth int) []string {
	prefix := strings.Repeat(indentUnit, depth)
	for _, key := range sortedKeys(m) {
		v := m[key]
		if v.Kind() == plan.KindObject {
			lines = append(lines, prefix+key+":")
			lines = appendListing(lines, v.Fields(), depth+1)
			continue
		}
		lines = append(lines, prefix+key+": "+v.String())
	}
	return lines
}

func unionKeys(before, after map[string]plan.Value) []string {
	seen := make(map[string]struct{}, len(before)+len(after))
	keys := make([]string, 0, len(before)+len(after))
	for key := range before {
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	for key := range after {
		if _, ok := seen[key]; !ok {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

func sortedKeys(m map[string]plan.Value) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
