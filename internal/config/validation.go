package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/secforge/secforge/pkg/models"
)

// projectNamePattern keeps names usable as a Go module, artifact id, C#
// namespace, Kubernetes label and zip file name.
var projectNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9._-]*$`)

// Dynamic token patterns that must not appear in values interpolated into
// generated files.
var dynamicTokenPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$\{[^}]+\}`),        // ${VAR}
	regexp.MustCompile(`\{\{[^}]+\}\}`),      // {{VAR}}
	regexp.MustCompile(`\$[A-Z_][A-Z0-9_]*`), // $VAR
}

// Validate checks cfg for correctness and returns *ValidationErrors listing
// every problem found. An unrecognized tech stack is not reported here: the
// assembler rejects it with stack.ErrStackNotFound.
func Validate(cfg *models.Configuration) error {
	var errs []ValidationError

	errs = append(errs, validateProjectName(cfg.ProjectName)...)
	errs = append(errs, validateEnums(cfg)...)
	errs = append(errs, validateCustomFiles(cfg.CustomFiles)...)
	errs = append(errs, validateEnvironment(cfg.EnvironmentVariables)...)
	errs = append(errs, validateDynamicTokens(cfg)...)

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

// ValidateProjectName reports whether name is usable as a project name.
func ValidateProjectName(name string) error {
	if errs := validateProjectName(name); len(errs) > 0 {
		return &errs[0]
	}
	return nil
}

func validateProjectName(name string) []ValidationError {
	if name == "" {
		return []ValidationError{{
			Field:   "project_name",
			Message: "required field is empty",
			Wrapped: ErrInvalidConfig,
		}}
	}
	if !projectNamePattern.MatchString(name) {
		return []ValidationError{{
			Field:   "project_name",
			Message: "must start with a letter and contain only letters, digits, '.', '_' or '-'",
			Value:   name,
			Wrapped: ErrInvalidConfig,
		}}
	}
	return nil
}

func validateEnums(cfg *models.Configuration) []ValidationError {
	var errs []ValidationError

	if cfg.TechStack == "" {
		errs = append(errs, ValidationError{
			Field:   "tech_stack",
			Message: "required field is empty; one of: " + joinValues(models.ValidTechStacks()),
			Wrapped: ErrInvalidConfig,
		})
	}

	if cfg.DeploymentPlatform != "" && !cfg.DeploymentPlatform.IsValid() {
		errs = append(errs, ValidationError{
			Field:   "deployment_platform",
			Message: "must be one of: " + joinValues(models.ValidDeploymentPlatforms()),
			Value:   string(cfg.DeploymentPlatform),
			Wrapped: ErrInvalidConfig,
		})
	}

	if cfg.CICDPlatform != "" && !cfg.CICDPlatform.IsValid() {
		errs = append(errs, ValidationError{
			Field:   "cicd_platform",
			Message: "must be one of: " + joinValues(models.ValidCICDPlatforms()),
			Value:   string(cfg.CICDPlatform),
			Wrapped: ErrInvalidConfig,
		})
	}

	for i, f := range cfg.SecurityFeatures {
		if !f.IsValid() {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("security_features[%d]", i),
				Message: "must be one of: " + joinValues(models.ValidSecurityFeatures()),
				Value:   string(f),
				Wrapped: ErrInvalidConfig,
			})
		}
	}

	if !cfg.Mode.IsValid() {
		errs = append(errs, ValidationError{
			Field:   "mode",
			Message: "must be one of: " + joinValues(models.ValidModes()),
			Value:   string(cfg.Mode),
			Wrapped: ErrInvalidConfig,
		})
	}

	return errs
}

func validateCustomFiles(files []models.CustomFile) []ValidationError {
	var errs []ValidationError
	for i, f := range files {
		field := fmt.Sprintf("custom_files[%d].path", i)
		if f.Path == "" {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: "required field is empty",
				Wrapped: ErrInvalidConfig,
			})
			continue
		}
		if msg := unsafePathReason(f.Path); msg != "" {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: msg,
				Value:   f.Path,
				Wrapped: ErrUnsafePath,
			})
		}
	}
	return errs
}

// unsafePathReason explains why p cannot be written inside the project root,
// or returns "" when it can. p is expected in normalized slash form.
func unsafePathReason(p string) string {
	switch {
	case strings.HasPrefix(p, "/"):
		return "must be relative to the project root"
	case len(p) >= 2 && p[1] == ':':
		return "must not carry a drive letter"
	case strings.HasSuffix(p, "/"):
		return "must name a file, not a directory"
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			return "must not contain '..' segments"
		}
		if seg == "." {
			return "must not contain '.' segments"
		}
		if seg == "" {
			return "must not contain empty segments"
		}
	}
	return ""
}

func validateEnvironment(vars []models.EnvironmentVariable) []ValidationError {
	var errs []ValidationError
	for i, v := range vars {
		if v.Key == "" {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("environment_variables[%d].key", i),
				Message: "required field is empty",
				Wrapped: ErrInvalidConfig,
			})
		}
	}
	return errs
}

// validateDynamicTokens rejects template syntax in the project name, which
// ends up in paths and identifiers. The description is free text and is
// not checked.
func validateDynamicTokens(cfg *models.Configuration) []ValidationError {
	var errs []ValidationError
	fields := []struct {
		name  string
		value string
	}{
		{"project_name", cfg.ProjectName},
	}
	for _, f := range fields {
		for _, pat := range dynamicTokenPatterns {
			if tok := pat.FindString(f.value); tok != "" {
				errs = append(errs, ValidationError{
					Field:   f.name,
					Message: "contains unexpanded dynamic token " + tok,
					Value:   f.value,
					Wrapped: ErrDynamicToken,
				})
				break
			}
		}
	}
	return errs
}

func joinValues[T ~string](values []T) string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = string(v)
	}
	return strings.Join(s, ", ")
}
