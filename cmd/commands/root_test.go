package cmd_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cmd "github.com/ovsds/tf-plan-format/cmd/commands"
)

const updatePlanJSON = `{
  "format_version": "1.2",
  "terraform_version": "1.7.5",
  "resource_changes": [
    {
      "address": "aws_s3_bucket.assets",
      "mode": "managed",
      "type": "aws_s3_bucket",
      "name": "assets",
      "provider_name": "registry.terraform.io/hashicorp/aws",
      "change": {
        "actions": ["update"],
        "before": {"bucket": "assets", "acl": "private"},
        "after": {"bucket": "assets", "acl": "public-read"},
        "after_unknown": {},
        "before_sensitive": {},
        "after_sensitive": {}
      }
    }
  ]
}`

func writePlanFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "terraform.tfplan.json")
	require.NoError(t, os.WriteFile(path, []byte(updatePlanJSON), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := cmd.NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestGithubCmd(t *testing.T) {
	t.Run("renders markdown", func(t *testing.T) {
		path := writePlanFile(t)

		out, err := execute(t, "github", "--file", path)
		require.NoError(t, err)

		assert.Contains(t, out, "<summary>"+path+" 🔄</summary>")
		assert.Contains(t, out, "🔄 aws_s3_bucket.assets")
		assert.Contains(t, out, `acl: "private" -> "public-read"`)
		// Unchanged values stay hidden unless requested.
		assert.NotContains(t, out, `bucket: "assets"`)
	})

	t.Run("changed values flag lists unchanged values", func(t *testing.T) {
		path := writePlanFile(t)

		out, err := execute(t, "github", "--file", path, "--changed-values")
		require.NoError(t, err)
		assert.Contains(t, out, `bucket: "assets"`)
	})

	t.Run("missing file flag", func(t *testing.T) {
		_, err := execute(t, "github")
		require.Error(t, err)
	})

	t.Run("unreadable file reports data error", func(t *testing.T) {
		_, err := execute(t, "github", "--file", "does-not-exist.json")
		require.Error(t, err)

		var exitErr *cmd.ExitError
		require.True(t, errors.As(err, &exitErr))
		assert.Equal(t, 65, exitErr.Code)
	})
}

func TestCustomCmd(t *testing.T) {
	t.Run("json engine", func(t *testing.T) {
		path := writePlanFile(t)

		out, err := execute(t, "custom", "--engine", "json", "--file", path)
		require.NoError(t, err)
		assert.Contains(t, out, `"plans"`)
		assert.Contains(t, out, `"action": "update"`)
	})

	t.Run("custom template", func(t *testing.T) {
		path := writePlanFile(t)

		out, err := execute(t, "custom", "--file", path,
			"--template", `{{ range $path, $plan := .Plans }}{{ len $plan.Changes }} change(s){{ end }}`)
		require.NoError(t, err)
		assert.Equal(t, "1 change(s)", out)
	})

	t.Run("invalid engine reports usage error", func(t *testing.T) {
		path := writePlanFile(t)

		_, err := execute(t, "custom", "--engine", "tera", "--file", path)
		require.Error(t, err)

		var exitErr *cmd.ExitError
		require.True(t, errors.As(err, &exitErr))
		assert.Equal(t, 64, exitErr.Code)
	})
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "tf-plan-format version")
}
