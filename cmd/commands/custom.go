package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ovsds/tf-plan-format/internal/diff"
	"github.com/ovsds/tf-plan-format/internal/plan"
	"github.com/ovsds/tf-plan-format/internal/template"
)

// NewCustomCmd creates the custom command, which renders plans with a
// caller-chosen engine and template.
func NewCustomCmd() *cobra.Command {
	var (
		engineName   string
		files        []string
		templateText string
	)

	cmd := &cobra.Command{
		Use:   "custom",
		Short: "Render plans with a custom engine or template",
		Long: `Render plans with a chosen output engine. The markdown engine accepts a
custom template via --template and falls back to the built-in Github
template; the json and yaml engines emit the classified plan data directly.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCustom(cmd, engineName, files, templateText)
		},
	}

	cmd.Flags().StringVarP(&engineName, "engine", "e", string(template.EngineMarkdown), "Output engine (markdown, json, yaml)")
	cmd.Flags().StringArrayVarP(&files, "file", "f", nil, "Plan file path or glob, can be used multiple times")
	cmd.Flags().StringVarP(&templateText, "template", "t", "", "Template string for the markdown engine")
	cmd.MarkFlagRequired("file")

	return cmd
}

func runCustom(cmd *cobra.Command, engineName string, files []string, templateText string) error {
	engine, err := template.ParseEngine(engineName)
	if err != nil {
		return usageError(err)
	}

	data, err := plan.FromFiles(files)
	if err != nil {
		return dataError(fmt.Errorf("failed to load plans: %w", err))
	}

	result, err := template.Render(engine, data, templateText, diff.DefaultOptions())
	if err != nil {
		return dataError(err)
	}

	fmt.Fprint(cmd.OutOrStdout(), result)
	return nil
}
