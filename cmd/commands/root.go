package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ovsds/tf-plan-format/internal/logger"
)

var log = logger.New()

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tf-plan-format",
		Short: "Render Terraform plan JSON files into readable reports",
		Long: `tf-plan-format reads terraform plan JSON files (terraform show -json)
and renders them into human-readable diff reports, primarily Github-flavored
Markdown. Sensitive values are masked before anything is rendered.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetLevel(viper.GetString("log-level"))
		},
	}

	cmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")

	viper.SetEnvPrefix("TF_PLAN_FORMAT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	viper.BindPFlag("log-level", cmd.PersistentFlags().Lookup("log-level"))

	cmd.AddCommand(NewGithubCmd())
	cmd.AddCommand(NewCustomCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}
