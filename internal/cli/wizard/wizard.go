package wizard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/secforge/secforge/internal/config"
	"github.com/secforge/secforge/pkg/models"
)

// Run walks the user through every step and returns a configuration in
// wizard mode.
func Run(theme *huh.Theme, run FormRunner) (*models.Configuration, error) {
	a := NewAnswers()
	if err := Collect(a, theme, run); err != nil {
		return nil, err
	}
	if !a.Confirmed {
		return nil, ErrCancelled
	}
	return a.Configuration(), nil
}

// Collect shows each step as its own form, one page at a time, binding the
// fields to a.
func Collect(a *Answers, theme *huh.Theme, run FormRunner) error {
	for _, step := range Steps() {
		form := huh.NewForm(step.Build(a)).
			WithTheme(theme).
			WithAccessible(false)

		if err := run(form); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return ErrCancelled
			}
			return fmt.Errorf("wizard step %q: %w", step.Title, err)
		}
	}
	return nil
}

// NewAnswers returns the initial field values: the first stack, the first
// deployment and CI/CD platforms, and nothing else selected.
func NewAnswers() *Answers {
	return &Answers{
		TechStack:          string(models.StackGo),
		DeploymentPlatform: string(models.DeployKubernetes),
		CICDPlatform:       string(models.CICDGitHub),
	}
}

// Configuration converts the answers into a normalized wizard-mode configuration.
func (a *Answers) Configuration() *models.Configuration {
	cfg := &models.Configuration{
		ProjectName:          a.ProjectName,
		Description:          a.Description,
		TechStack:            models.TechStack(a.TechStack),
		DeploymentPlatform:   models.DeploymentPlatform(a.DeploymentPlatform),
		CICDPlatform:         models.CICDPlatform(a.CICDPlatform),
		ComplianceFrameworks: append([]string(nil), a.ComplianceFrameworks...),
		MonitoringTools:      append([]string(nil), a.MonitoringTools...),
		Mode:                 models.ModeWizard,
	}
	for _, f := range a.SecurityFeatures {
		cfg.SecurityFeatures = append(cfg.SecurityFeatures, models.SecurityFeature(f))
	}
	config.Normalize(cfg)
	return cfg
}

// Steps returns the wizard pages in display order.
func Steps() []Step {
	return []Step{
		{Title: "Project Details", Build: projectDetails},
		{Title: "Technology Stack", Build: technologyStack},
		{Title: "Security Features", Build: securityFeatures},
		{Title: "Compliance", Build: compliance},
		{Title: "Deployment", Build: deployment},
		{Title: "Review & Generate", Build: review},
	}
}

func projectDetails(a *Answers) *huh.Group {
	return huh.NewGroup(
		huh.NewInput().
			Title("Project name").
			Placeholder("my-secure-service").
			Value(&a.ProjectName).
			Validate(func(s string) error {
				return config.ValidateProjectName(strings.TrimSpace(s))
			}),
		huh.NewText().
			Title("Description").
			Description("Leave empty to use the stack default.").
			Value(&a.Description),
	).Title("Project Details")
}

func technologyStack(a *Answers) *huh.Group {
	opts := make([]huh.Option[string], 0, len(models.ValidTechStacks()))
	for _, s := range models.ValidTechStacks() {
		opts = append(opts, huh.NewOption(s.Label()+" - "+s.Description(), string(s)))
	}
	return huh.NewGroup(
		huh.NewSelect[string]().
			Title("Technology stack").
			Options(opts...).
			Value(&a.TechStack),
	).Title("Technology Stack")
}

func securityFeatures(a *Answers) *huh.Group {
	opts := make([]huh.Option[string], 0, len(models.ValidSecurityFeatures()))
	for _, f := range models.ValidSecurityFeatures() {
		opts = append(opts, huh.NewOption(f.Label()+" - "+f.Description(), string(f)))
	}
	return huh.NewGroup(
		huh.NewMultiSelect[string]().
			Title("Security features").
			Description("SAST applies to Go projects; dependency scanning to every stack.").
			Options(opts...).
			Value(&a.SecurityFeatures),
	).Title("Security Features")
}

func compliance(a *Answers) *huh.Group {
	return huh.NewGroup(
		huh.NewMultiSelect[string]().
			Title("Compliance frameworks").
			Options(choiceOptions(config.ComplianceChoices())...).
			Value(&a.ComplianceFrameworks),
	).Title("Compliance")
}

func deployment(a *Answers) *huh.Group {
	deploy := make([]huh.Option[string], 0, len(models.ValidDeploymentPlatforms()))
	for _, d := range models.ValidDeploymentPlatforms() {
		deploy = append(deploy, huh.NewOption(d.Label()+" - "+d.Description(), string(d)))
	}
	cicd := make([]huh.Option[string], 0, len(models.ValidCICDPlatforms()))
	for _, c := range models.ValidCICDPlatforms() {
		cicd = append(cicd, huh.NewOption(c.Label(), string(c)))
	}
	return huh.NewGroup(
		huh.NewSelect[string]().
			Title("Deployment platform").
			Options(deploy...).
			Value(&a.DeploymentPlatform),
		huh.NewSelect[string]().
			Title("CI/CD platform").
			Options(cicd...).
			Value(&a.CICDPlatform),
		huh.NewMultiSelect[string]().
			Title("Monitoring").
			Options(choiceOptions(config.MonitoringChoices())...).
			Value(&a.MonitoringTools),
	).Title("Deployment")
}

func review(a *Answers) *huh.Group {
	return huh.NewGroup(
		huh.NewNote().
			Title("Review").
			Description(a.Review()),
		huh.NewConfirm().
			Title("Generate project?").
			Affirmative("Generate").
			Negative("Cancel").
			Value(&a.Confirmed),
	).Title("Review & Generate")
}

func choiceOptions(choices []config.Choice) []huh.Option[string] {
	opts := make([]huh.Option[string], len(choices))
	for i, c := range choices {
		opts[i] = huh.NewOption(c.Label+" - "+c.Description, c.Value)
	}
	return opts
}

// Review summarizes the answers for the final page.
func (a *Answers) Review() string {
	var b strings.Builder
	line := func(label, value string) {
		if value == "" {
			value = "none"
		}
		fmt.Fprintf(&b, "%-13s %s\n", label+":", value)
	}

	line("Project", strings.TrimSpace(a.ProjectName))
	line("Stack", models.TechStack(a.TechStack).Label())
	line("Security", strings.Join(a.SecurityFeatures, ", "))
	line("Compliance", strings.Join(a.ComplianceFrameworks, ", "))
	line("Deployment", models.DeploymentPlatform(a.DeploymentPlatform).Label())
	line("CI/CD", models.CICDPlatform(a.CICDPlatform).Label())
	line("Monitoring", strings.Join(a.MonitoringTools, ", "))

	return strings.TrimSuffix(b.String(), "\n")
}
