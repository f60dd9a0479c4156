package config

import (
	"path"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/secforge/secforge/pkg/models"
)

// Normalize trims every field, lower-cases enumerated values (free-form
// compliance and monitoring tags keep their case),
// rewrites custom file paths to NFC slash form, and defaults Mode to custom.
// It never rejects anything; Validate does that.
func Normalize(cfg *models.Configuration) {
	cfg.ProjectName = strings.TrimSpace(cfg.ProjectName)
	cfg.Description = strings.TrimSpace(cfg.Description)
	cfg.TechStack = models.TechStack(lowerTrim(string(cfg.TechStack)))
	cfg.DeploymentPlatform = models.DeploymentPlatform(lowerTrim(string(cfg.DeploymentPlatform)))
	cfg.CICDPlatform = models.CICDPlatform(lowerTrim(string(cfg.CICDPlatform)))

	for i, f := range cfg.SecurityFeatures {
		cfg.SecurityFeatures[i] = models.SecurityFeature(lowerTrim(string(f)))
	}
	for i, c := range cfg.ComplianceFrameworks {
		cfg.ComplianceFrameworks[i] = strings.TrimSpace(c)
	}
	for i, m := range cfg.MonitoringTools {
		cfg.MonitoringTools[i] = strings.TrimSpace(m)
	}

	for i := range cfg.CustomFiles {
		cfg.CustomFiles[i].Path = NormalizePath(cfg.CustomFiles[i].Path)
	}
	for i := range cfg.EnvironmentVariables {
		cfg.EnvironmentVariables[i].Key = strings.TrimSpace(cfg.EnvironmentVariables[i].Key)
	}

	cfg.Mode = models.Mode(lowerTrim(string(cfg.Mode)))
	if cfg.Mode == "" {
		cfg.Mode = models.ModeCustom
	}
}

// NormalizePath converts p to NFC and forward slashes and cleans it with
// path.Clean, so "./a", "a//b" and "a/./b" all name the same file. A
// trailing slash is kept so directory paths are still rejected by Validate.
func NormalizePath(p string) string {
	p = norm.NFC.String(strings.TrimSpace(p))
	p = strings.ReplaceAll(p, `\`, "/")
	if p == "" {
		return ""
	}
	dir := strings.HasSuffix(p, "/")
	p = path.Clean(p)
	if dir && p != "/" {
		p += "/"
	}
	return p
}

func lowerTrim(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
