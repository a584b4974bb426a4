package plan

import (
	tfjson "github.com/hashicorp/terraform-json"
)

// ResultAction is the consolidated verdict for one resource change. The
// declaration order doubles as the sort order used by summaries and must
// stay stable.
type ResultAction int

const (
	ResultActionCreate ResultAction = iota
	ResultActionDeleteCreate
	ResultActionRead
	ResultActionUpdate
	ResultActionDelete
	ResultActionNoOp
	ResultActionUnknown
)

// String returns the terraform-style verb for the action.
func (a ResultAction) String() string {
	switch a {
	case ResultActionCreate:
		return "create"
	case ResultActionDeleteCreate:
		return "delete-create"
	case ResultActionRead:
		return "read"
	case ResultActionUpdate:
		return "update"
	case ResultActionDelete:
		return "delete"
	case ResultActionNoOp:
		return "no-op"
	default:
		return "unknown"
	}
}

func (a ResultAction) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}

func (a ResultAction) MarshalYAML() (interface{}, error) {
	return a.String(), nil
}

// ResultActionFromActions collapses a raw action list into one verdict.
// Terraform encodes a replacement as the delete and create pair, in either
// order; any other combination of zero or multiple actions is unknown.
func ResultActionFromActions(actions tfjson.Actions) ResultAction {
	if actions.Replace() {
		return ResultActionDeleteCreate
	}
	if len(actions) != 1 {
		return ResultActionUnknown
	}
	switch actions[0] {
	case tfjson.ActionCreate:
		return ResultActionCreate
	case tfjson.ActionRead:
		return ResultActionRead
	case tfjson.ActionUpdate:
		return ResultActionUpdate
	case tfjson.ActionDelete:
		return ResultActionDelete
	case tfjson.ActionNoop:
		return ResultActionNoOp
	default:
		return ResultActionUnknown
	}
}
