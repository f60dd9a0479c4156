package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/secforge/secforge/internal/cli/wizard"
	"github.com/secforge/secforge/internal/config"
)

var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Build a project step by step in an interactive wizard",
	Long: `Wizard asks for the project details, tech stack, security features,
compliance frameworks and deployment targets, shows a review, and then
generates and exports the project like the generate command.

The wizard needs a terminal. In scripts use "secforge generate".`,
	Args: cobra.NoArgs,
	RunE: runWizard,
}

func init() {
	rootCmd.AddCommand(wizardCmd)

	addExportFlags(wizardCmd)
}

func runWizard(cmd *cobra.Command, _ []string) error {
	if deps == nil {
		return fmt.Errorf("dependencies not initialized")
	}
	if deps.Headless.IsHeadless() {
		return fmt.Errorf("%w; use \"secforge generate\" with flags or --config instead", wizard.ErrHeadless)
	}

	cfg, err := wizard.Run(deps.Theme.Form(), deps.RunForm)
	if err != nil {
		if errors.Is(err, wizard.ErrCancelled) {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), deps.Theme.Muted("Wizard cancelled."))
			return nil
		}
		return err
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}
	return generateAndExport(cmd, cfg)
}
