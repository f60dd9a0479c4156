package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/secforge/secforge/internal/config"
	"github.com/secforge/secforge/pkg/models"
)

// errQuickWithConfig rejects --quick combined with --config.
var errQuickWithConfig = errors.New("--quick cannot be combined with --config")

// addConfigFlags registers the flags that describe a project.
func addConfigFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("config", "c", "", "Project configuration file (.yaml, .yml or .json)")
	f.String("name", "", "Project name")
	f.String("description", "", "Project description (default: stack description)")
	f.String("stack", "", "Tech stack: go, nodejs, python, java or dotnet")
	f.String("deploy", "", "Deployment platform: kubernetes, aws, gcp, azure or docker")
	f.String("cicd", "", "CI/CD platform: github, gitlab, jenkins or azure-devops")
	f.StringSlice("security", nil, "Security features (repeatable or comma separated)")
	f.StringSlice("compliance", nil, "Compliance frameworks (repeatable or comma separated)")
	f.StringSlice("monitoring", nil, "Monitoring tools (repeatable or comma separated)")
	f.StringArray("custom-file", nil, "Extra file as path=localfile (repeatable)")
	f.Bool("quick", false, "Use the quick preset: recommended security, compliance and monitoring")
}

// configFromFlags builds, normalizes and validates the configuration
// described by the command's flags. Flags that were set override the
// values read from --config.
func configFromFlags(cmd *cobra.Command) (*models.Configuration, error) {
	path := getStringFlag(cmd, "config")
	quick := getBoolFlag(cmd, "quick")

	var cfg *models.Configuration
	switch {
	case quick && path != "":
		return nil, errQuickWithConfig
	case quick:
		cfg = config.QuickPreset(
			getStringFlag(cmd, "name"),
			getStringFlag(cmd, "description"),
			models.TechStack(getStringFlag(cmd, "stack")),
			models.DeploymentPlatform(getStringFlag(cmd, "deploy")),
			models.CICDPlatform(getStringFlag(cmd, "cicd")),
		)
	case path != "":
		loaded, err := config.LoadFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	default:
		cfg = &models.Configuration{Mode: models.ModeCustom}
	}

	if err := applyFlagOverrides(cmd, cfg); err != nil {
		return nil, err
	}

	config.Normalize(cfg)
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyFlagOverrides(cmd *cobra.Command, cfg *models.Configuration) error {
	f := cmd.Flags()
	if f.Changed("name") {
		cfg.ProjectName = getStringFlag(cmd, "name")
	}
	if f.Changed("description") {
		cfg.Description = getStringFlag(cmd, "description")
	}
	if f.Changed("stack") {
		cfg.TechStack = models.TechStack(getStringFlag(cmd, "stack"))
	}
	if f.Changed("deploy") {
		cfg.DeploymentPlatform = models.DeploymentPlatform(getStringFlag(cmd, "deploy"))
	}
	if f.Changed("cicd") {
		cfg.CICDPlatform = models.CICDPlatform(getStringFlag(cmd, "cicd"))
	}
	if f.Changed("security") {
		cfg.SecurityFeatures = nil
		for _, s := range getStringSliceFlag(cmd, "security") {
			cfg.SecurityFeatures = append(cfg.SecurityFeatures, models.SecurityFeature(s))
		}
	}
	if f.Changed("compliance") {
		cfg.ComplianceFrameworks = getStringSliceFlag(cmd, "compliance")
	}
	if f.Changed("monitoring") {
		cfg.MonitoringTools = getStringSliceFlag(cmd, "monitoring")
	}

	specs, err := f.GetStringArray("custom-file")
	if err != nil {
		return err
	}
	for _, spec := range specs {
		cf, err := readCustomFile(spec)
		if err != nil {
			return err
		}
		cfg.CustomFiles = append(cfg.CustomFiles, cf)
	}
	return nil
}

// readCustomFile parses "path=localfile" and reads the local file.
func readCustomFile(spec string) (models.CustomFile, error) {
	target, local, ok := strings.Cut(spec, "=")
	if !ok || strings.TrimSpace(target) == "" || strings.TrimSpace(local) == "" {
		return models.CustomFile{}, fmt.Errorf("invalid --custom-file %q: want path=localfile", spec)
	}
	data, err := os.ReadFile(strings.TrimSpace(local))
	if err != nil {
		return models.CustomFile{}, fmt.Errorf("read custom file: %w", err)
	}
	return models.CustomFile{Path: target, Content: string(data)}, nil
}
