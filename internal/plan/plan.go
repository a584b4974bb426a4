package plan

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	tfjson "github.com/hashicorp/terraform-json"
)

// Change is one resource's classified view of a plan: its identity, the
// consolidated action, and the masked before/after attribute maps.
type Change struct {
	Address string       `json:"address" yaml:"address"`
	Name    string       `json:"name" yaml:"name"`
	Action  ResultAction `json:"action" yaml:"action"`
	Before  ValueMap     `json:"before" yaml:"before"`
	After   ValueMap     `json:"after" yaml:"after"`
}

// Plan is one parsed plan file: its resource changes in file order plus
// the deduplicated sorted set of actions appearing across them.
type Plan struct {
	Changes       []Change       `json:"changes" yaml:"changes"`
	UniqueActions []ResultAction `json:"unique_actions" yaml:"unique_actions"`
}

// Data maps source file paths to their parsed plans.
type Data struct {
	Plans map[string]*Plan `json:"plans" yaml:"plans"`
}

// New derives a classified plan from a parsed terraform plan. Sensitivity
// trees are applied before anything else sees the attribute values.
func New(parsed *tfjson.Plan) *Plan {
	p := &Plan{}
	for _, rc := range parsed.ResourceChanges {
		if rc.Change == nil {
			continue
		}
		p.Changes = append(p.Changes, Change{
			Address: rc.Address,
			Name:    rc.Name,
			Action:  ResultActionFromActions(rc.Change.Actions),
			Before:  MaskMap(rc.Change.Before, rc.Change.BeforeSensitive),
			After:   MaskMap(rc.Change.After, rc.Change.AfterSensitive),
		})
	}
	p.UniqueActions = UniqueActions(p.Changes)
	return p
}

// UniqueActions collects the distinct classified actions of the given
// changes, sorted by the fixed ResultAction order.
func UniqueActions(changes []Change) []ResultAction {
	seen := make(map[ResultAction]struct{}, len(changes))
	var actions []ResultAction
	for _, c := range changes {
		if _, ok := seen[c.Action]; ok {
			continue
		}
		seen[c.Action] = struct{}{}
		actions = append(actions, c.Action)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })
	return actions
}

// Parse decodes terraform plan JSON into a classified plan.
func Parse(data []byte) (*Plan, error) {
	var parsed tfjson.Plan
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse plan: %w", err)
	}
	return New(&parsed), nil
}

// FromFile reads and parses one plan file.
func FromFile(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return p, nil
}

// FromFiles resolves each pattern (plain path or doublestar glob) and
// parses every matched file. A pattern that matches nothing is an error so
// that typos do not silently produce empty reports.
func FromFiles(patterns []string) (*Data, error) {
	plans := make(map[string]*Plan)
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files found for %q", pattern)
		}
		for _, path := range matches {
			p, err := FromFile(path)
			if err != nil {
				return nil, err
			}
			plans[path] = p
		}
	}
	return &Data{Plans: plans}, nil
}
