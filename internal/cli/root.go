package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/secforge/secforge/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "secforge",
	Short: "Generate security-hardened service skeletons",
	Long: `secforge renders a ready-to-commit project skeleton for Go, Node.js,
Python, Java or .NET services, with optional SAST, dependency scanning,
Kubernetes manifests, GitHub Actions pipelines and Prometheus monitoring.

Projects can be described by a YAML or JSON file, by flags, with the quick
preset, or through the interactive wizard.`,
	Version:      version.GetVersion(),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if deps == nil {
			if err := InitDependencies(); err != nil {
				return err
			}
		}
		deps.SetVerbose(getBoolFlag(cmd, "verbose"))
		return nil
	},
}

// Execute runs the root command. An interrupt cancels the command context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("secforge %s\n", version.GetFullVersion()))
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging on stderr")
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// getStringSliceFlag retrieves a string slice flag value from the command.
func getStringSliceFlag(cmd *cobra.Command, name string) []string {
	val, err := cmd.Flags().GetStringSlice(name)
	if err != nil {
		return nil
	}
	return val
}
