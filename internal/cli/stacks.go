package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/secforge/secforge/internal/stack"
	"github.com/secforge/secforge/pkg/models"
)

var stacksCmd = &cobra.Command{
	Use:   "stacks",
	Short: "List the supported tech stacks and their base files",
	Args:  cobra.NoArgs,
	RunE:  runStacks,
}

func init() {
	rootCmd.AddCommand(stacksCmd)
}

func runStacks(cmd *cobra.Command, _ []string) error {
	if deps == nil {
		return fmt.Errorf("dependencies not initialized")
	}

	out := cmd.OutOrStdout()
	sample := &models.Configuration{ProjectName: "<name>"}
	for i, id := range deps.Stacks.IDs() {
		s, err := deps.Stacks.Lookup(id)
		if err != nil {
			return err
		}
		if i > 0 {
			_, _ = fmt.Fprintln(out)
		}
		_, _ = fmt.Fprintf(out, "%s  %s\n", deps.Theme.Title(string(id)), s.Label())
		if desc := stack.DefaultDescription(s); desc != "" {
			_, _ = fmt.Fprintf(out, "  %s\n", deps.Theme.Muted(desc))
		}
		sample.TechStack = id
		_, _ = fmt.Fprintf(out, "  files: %s\n", strings.Join(s.BasePaths(sample), ", "))
	}
	return nil
}
