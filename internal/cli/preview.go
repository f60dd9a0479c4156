package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/secforge/secforge/internal/export"
	"github.com/secforge/secforge/internal/preview"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show the files a configuration would generate",
	Long: `Preview generates the project in memory and prints its file tree, or
the content of a single file with --file. Nothing is written to disk.

Examples:
  secforge preview --quick --name api --stack python --deploy docker --cicd github
  secforge preview -c secforge.yaml --file README.md`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	addConfigFlags(previewCmd)
	previewCmd.Flags().String("file", "", "Print only this generated file")
}

func runPreview(cmd *cobra.Command, _ []string) error {
	if deps == nil {
		return fmt.Errorf("dependencies not initialized")
	}

	cfg, err := configFromFlags(cmd)
	if err != nil {
		return err
	}

	p, err := deps.Assembler().Generate(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if path := strings.TrimSpace(getStringFlag(cmd, "file")); path != "" {
		f, ok := p.Lookup(path)
		if !ok {
			return fmt.Errorf("no generated file %q", path)
		}
		styled := !deps.Headless.IsHeadless() && !deps.Theme.NoColor
		return preview.RenderFile(out, f, styled)
	}

	title := fmt.Sprintf("%s (%s, %d files)", p.Name, p.TechStack.Label(), len(export.Resolve(p.Files)))
	return preview.Render(out, title, preview.BuildTree(p.Files))
}
