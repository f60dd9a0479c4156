package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/secforge/secforge/internal/export"
	"github.com/secforge/secforge/internal/project"
	"github.com/secforge/secforge/internal/ui"
	"github.com/secforge/secforge/pkg/models"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a project from a configuration file or flags",
	Long: `Generate renders the project described by --config and/or flags and
exports it.

Without --out, --zip or --upload the files are written to ./<name>.

Examples:
  secforge generate --quick --name payments-api --stack go --deploy kubernetes --cicd github
  secforge generate -c secforge.yaml --out ./payments-api
  secforge generate -c secforge.yaml --zip --upload --upload-prefix releases`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	addConfigFlags(generateCmd)
	addExportFlags(generateCmd)
}

// addExportFlags registers the flags shared by generate and wizard.
func addExportFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("out", "o", "", "Directory to write the project into (with --zip: where the archive goes)")
	f.Bool("zip", false, "Write <name>.zip instead of a directory tree")
	f.Bool("upload", false, "Upload <name>.zip to the object storage configured in SECFORGE_S3_*")
	f.String("upload-prefix", "", "Object key prefix for --upload")
	f.String("collision", "keep", "Duplicate path policy: keep, warn or reject")
	f.Bool("strict", false, "Fail on duplicate output paths (same as --collision reject)")
	f.Duration("delay", 0, "Wait this long before generating")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := configFromFlags(cmd)
	if err != nil {
		return err
	}
	return generateAndExport(cmd, cfg)
}

// generateAndExport assembles cfg, exports the result as the export flags
// ask, and prints the summary card.
func generateAndExport(cmd *cobra.Command, cfg *models.Configuration) error {
	if deps == nil {
		return fmt.Errorf("dependencies not initialized")
	}

	opts, err := assemblerOptions(cmd)
	if err != nil {
		return err
	}

	spin := ui.NewSpinner(deps.Theme, deps.Headless, cmd.ErrOrStderr(), "Generating "+cfg.ProjectName+"...")
	p, err := deps.Assembler(opts...).Generate(cmd.Context(), cfg)
	spin.Stop()
	if err != nil {
		return err
	}

	outputs, err := exportProject(cmd.Context(), cmd, p)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), ui.Summary(deps.Theme, p, outputs))
	return nil
}

func assemblerOptions(cmd *cobra.Command) ([]project.Option, error) {
	policy, err := project.ParseCollisionPolicy(getStringFlag(cmd, "collision"))
	if err != nil {
		return nil, err
	}
	if getBoolFlag(cmd, "strict") {
		policy = project.CollisionReject
	}

	delay, err := cmd.Flags().GetDuration("delay")
	if err != nil {
		return nil, err
	}

	return []project.Option{
		project.WithCollisionPolicy(policy),
		project.WithDelay(delay),
	}, nil
}

// exportProject writes p to every destination the flags name and returns
// a description of each.
func exportProject(ctx context.Context, cmd *cobra.Command, p *models.Project) ([]string, error) {
	out := getStringFlag(cmd, "out")
	zipped := getBoolFlag(cmd, "zip")
	upload := getBoolFlag(cmd, "upload")

	var outputs []string

	switch {
	case zipped:
		dir := out
		if dir == "" {
			dir = "."
		}
		name, err := writeArchive(dir, p)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, name)
	case out != "" || !upload:
		dir := out
		if dir == "" {
			dir = p.Name
		}
		written, err := export.WriteTree(osfs.New(dir), p)
		if err != nil {
			return nil, err
		}
		deps.Logger.Debug("project written", "dir", dir, "files", len(written))
		outputs = append(outputs, fmt.Sprintf("%s (%d files)", dir, len(written)))
	}

	if upload {
		u, err := deps.EnsureUploader()
		if err != nil {
			return nil, err
		}
		uploadCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
		defer cancel()
		location, err := export.Publish(uploadCtx, u, getStringFlag(cmd, "upload-prefix"), p)
		if err != nil {
			return nil, fmt.Errorf("upload: %w", err)
		}
		outputs = append(outputs, location)
	}

	return outputs, nil
}

func writeArchive(dir string, p *models.Project) (string, error) {
	fs := osfs.New(dir)
	name := export.ArchiveName(p)
	f, err := fs.Create(name)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", name, err)
	}
	if err := export.WriteZip(f, p); err != nil {
		_ = f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", name, err)
	}
	return filepath.Join(dir, name), nil
}
