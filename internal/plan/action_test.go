package plan_test

import (
	"testing"

	tfjson "github.com/hashicorp/terraform-json"
	"github.com/stretchr/testify/assert"

	"github.com/ovsds/tf-plan-format/internal/plan"
)

func TestResultActionFromActions(t *testing.T) {
	tests := []struct {
		name    string
		actions tfjson.Actions
		want    plan.ResultAction
	}{
		{
			name:    "create",
			actions: tfjson.Actions{tfjson.ActionCreate},
			want:    plan.ResultActionCreate,
		},
		{
			name:    "read",
			actions: tfjson.Actions{tfjson.ActionRead},
			want:    plan.ResultActionRead,
		},
		{
			name:    "update",
			actions: tfjson.Actions{tfjson.ActionUpdate},
			want:    plan.ResultActionUpdate,
		},
		{
			name:    "delete",
			actions: tfjson.Actions{tfjson.ActionDelete},
			want:    plan.ResultActionDelete,
		},
		{
			name:    "no-op",
			actions: tfjson.Actions{tfjson.ActionNoop},
			want:    plan.ResultActionNoOp,
		},
		{
			name:    "delete then create",
			actions: tfjson.Actions{tfjson.ActionDelete, tfjson.ActionCreate},
			want:    plan.ResultActionDeleteCreate,
		},
		{
			name:    "create then delete",
			actions: tfjson.Actions{tfjson.ActionCreate, tfjson.ActionDelete},
			want:    plan.ResultActionDeleteCreate,
		},
		{
			name:    "empty",
			actions: tfjson.Actions{},
			want:    plan.ResultActionUnknown,
		},
		{
			name:    "unexpected pair",
			actions: tfjson.Actions{tfjson.ActionCreate, tfjson.ActionUpdate},
			want:    plan.ResultActionUnknown,
		},
		{
			name:    "more than two actions",
			actions: tfjson.Actions{tfjson.ActionCreate, tfjson.ActionDelete, tfjson.ActionCreate},
			want:    plan.ResultActionUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, plan.ResultActionFromActions(tt.actions))
		})
	}
}

func TestResultActionString(t *testing.T) {
	tests := []struct {
		action plan.ResultAction
		want   string
	}{
		{plan.ResultActionCreate, "create"},
		{plan.ResultActionDeleteCreate, "delete-create"},
		{plan.ResultActionRead, "read"},
		{plan.ResultActionUpdate, "update"},
		{plan.ResultActionDelete, "delete"},
		{plan.ResultActionNoOp, "no-op"},
		{plan.ResultActionUnknown, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.action.String())
		})
	}
}

// The sort order of result actions is an arbitrary but fixed convention;
// summaries depend on it staying stable.
func TestResultActionOrder(t *testing.T) {
	assert.True(t, plan.ResultActionCreate < plan.ResultActionDeleteCreate)
	assert.True(t, plan.ResultActionDeleteCreate < plan.ResultActionRead)
	assert.True(t, plan.ResultActionRead < plan.ResultActionUpdate)
	assert.True(t, plan.ResultActionUpdate < plan.ResultActionDelete)
	assert.True(t, plan.ResultActionDelete < plan.ResultActionNoOp)
	assert.True(t, plan.ResultActionNoOp < plan.ResultActionUnknown)
}
