package stack

import (
	"github.com/secforge/secforge/internal/template"
	"github.com/secforge/secforge/pkg/models"
)

// DependabotEcosystem returns the dependabot package-ecosystem for a stack.
func DependabotEcosystem(s models.TechStack) string {
	switch s {
	case models.StackNodeJS:
		return "npm"
	case models.StackPython:
		return "pip"
	case models.StackJava:
		return "maven"
	case models.StackDotNet:
		return "nuget"
	default:
		return "gomod"
	}
}

// SetupAction returns the GitHub Actions setup step for a stack.
func SetupAction(s models.TechStack) string {
	switch s {
	case models.StackNodeJS:
		return "actions/setup-node@v3"
	case models.StackPython:
		return "actions/setup-python@v3"
	case models.StackJava:
		return "actions/setup-java@v3"
	case models.StackDotNet:
		return "actions/setup-dotnet@v3"
	default:
		return "actions/setup-go@v3"
	}
}

// SetupActionConfig returns the single "with:" line passed to SetupAction.
func SetupActionConfig(s models.TechStack) string {
	switch s {
	case models.StackNodeJS:
		return "node-version: 18"
	case models.StackPython:
		return "python-version: 3.11"
	case models.StackJava:
		return "java-version: 17"
	case models.StackDotNet:
		return "dotnet-version: 7.0"
	default:
		return "go-version: 1.21"
	}
}

// InstallCommand returns the dependency install command for a stack.
func InstallCommand(s models.TechStack) string {
	switch s {
	case models.StackNodeJS:
		return "npm ci"
	case models.StackPython:
		return "pip install -r requirements.txt"
	case models.StackJava:
		return "mvn dependency:resolve"
	case models.StackDotNet:
		return "dotnet restore"
	default:
		return "go mod download"
	}
}

// TestCommand returns the test command for a stack.
func TestCommand(s models.TechStack) string {
	switch s {
	case models.StackNodeJS:
		return "npm test"
	case models.StackPython:
		return "pytest"
	case models.StackJava:
		return "mvn test"
	case models.StackDotNet:
		return "dotnet test"
	default:
		return "go test ./..."
	}
}

// SecurityScanCommand returns the dependency or source scan command for a stack.
func SecurityScanCommand(s models.TechStack) string {
	switch s {
	case models.StackNodeJS:
		return "npm audit"
	case models.StackPython:
		return "safety check"
	case models.StackJava:
		return "mvn org.owasp:dependency-check-maven:check"
	case models.StackDotNet:
		return "dotnet list package --vulnerable"
	default:
		return "go run github.com/securecodewarrior/gosec/v2/cmd/gosec@latest ./..."
	}
}

// BuildCommand returns the build command for a stack.
func BuildCommand(s models.TechStack) string {
	switch s {
	case models.StackNodeJS:
		return "npm run build"
	case models.StackPython:
		return "python -m build"
	case models.StackJava:
		return "mvn package"
	case models.StackDotNet:
		return "dotnet build"
	default:
		return "go build -o bin/app ./cmd/server"
	}
}

// Toolchain bundles every capability value of one stack.
type Toolchain struct {
	Ecosystem           string
	SetupAction         string
	SetupActionConfig   string
	InstallCommand      string
	TestCommand         string
	SecurityScanCommand string
	BuildCommand        string
}

// ToolchainFor resolves all capability tables for s. Unknown stacks get the go values.
func ToolchainFor(s models.TechStack) Toolchain {
	return Toolchain{
		Ecosystem:           DependabotEcosystem(s),
		SetupAction:         SetupAction(s),
		SetupActionConfig:   SetupActionConfig(s),
		InstallCommand:      InstallCommand(s),
		TestCommand:         TestCommand(s),
		SecurityScanCommand: SecurityScanCommand(s),
		BuildCommand:        BuildCommand(s),
	}
}

// ContextOption copies the toolchain into a template context.
func (t Toolchain) ContextOption() template.ContextOption {
	return func(c *template.TemplateContext) {
		c.Ecosystem = t.Ecosystem
		c.SetupAction = t.SetupAction
		c.SetupActionConfig = t.SetupActionConfig
		c.InstallCommand = t.InstallCommand
		c.TestCommand = t.TestCommand
		c.SecurityScanCommand = t.SecurityScanCommand
		c.BuildCommand = t.BuildCommand
	}
}

// NewContext builds the template context shared by base files and fragments:
// project identity, the stack's default description, and its toolchain.
func NewContext(cfg *models.Configuration, defaultDescription string) *template.TemplateContext {
	return template.NewTemplateContext(
		template.WithProject(cfg.ProjectName, cfg.Description),
		template.WithDefaultDescription(defaultDescription),
		template.WithTechStack(string(cfg.TechStack)),
		ToolchainFor(cfg.TechStack).ContextOption(),
	)
}
