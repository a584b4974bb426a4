package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ovsds/tf-plan-format/internal/diff"
	"github.com/ovsds/tf-plan-format/internal/plan"
	"github.com/ovsds/tf-plan-format/internal/template"
)

// NewGithubCmd creates the github command, which renders plans with the
// built-in Github Markdown template.
func NewGithubCmd() *cobra.Command {
	var (
		files         []string
		changedValues bool
	)

	cmd := &cobra.Command{
		Use:   "github",
		Short: "Render plans into Github markdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGithub(cmd, files, changedValues)
		},
	}

	cmd.Flags().StringArrayVarP(&files, "file", "f", nil, "Plan file path or glob, can be used multiple times")
	cmd.Flags().BoolVar(&changedValues, "changed-values", false, "Also render values that did not change")
	cmd.MarkFlagRequired("file")

	return cmd
}

func runGithub(cmd *cobra.Command, files []string, changedValues bool) error {
	log.Debugf("loading plans from %d pattern(s)", len(files))

	data, err := plan.FromFiles(files)
	if err != nil {
		return dataError(fmt.Errorf("failed to load plans: %w", err))
	}

	opts := diff.Options{ShowChangedValues: changedValues}
	result, err := template.Render(template.EngineMarkdown, data, "", opts)
	if err != nil {
		return dataError(err)
	}

	fmt.Fprint(cmd.OutOrStdout(), result)
	return nil
}
