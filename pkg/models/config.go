package models

import (
	"slices"
	"strings"
)

// TechStack identifies the language ecosystem a project skeleton is generated for.
type TechStack string

const (
	StackGo     TechStack = "go"
	StackNodeJS TechStack = "nodejs"
	StackPython TechStack = "python"
	StackJava   TechStack = "java"
	StackDotNet TechStack = "dotnet"
)

// ValidTechStacks returns all valid tech stack values in canonical order.
func ValidTechStacks() []TechStack {
	return []TechStack{StackGo, StackNodeJS, StackPython, StackJava, StackDotNet}
}

// IsValid checks if the tech stack is a valid value.
func (s TechStack) IsValid() bool {
	switch s {
	case StackGo, StackNodeJS, StackPython, StackJava, StackDotNet:
		return true
	}
	return false
}

// Label returns the display name of the stack.
func (s TechStack) Label() string {
	switch s {
	case StackGo:
		return "Go (Golang)"
	case StackNodeJS:
		return "Node.js/TypeScript"
	case StackPython:
		return "Python"
	case StackJava:
		return "Java/Spring Boot"
	case StackDotNet:
		return ".NET Core"
	}
	return string(s)
}

// Description returns a one-line summary of the stack.
func (s TechStack) Description() string {
	switch s {
	case StackGo:
		return "High-performance microservices"
	case StackNodeJS:
		return "JavaScript/TypeScript backend"
	case StackPython:
		return "Django/FastAPI applications"
	case StackJava:
		return "Enterprise Java applications"
	case StackDotNet:
		return "Microsoft .NET applications"
	}
	return ""
}

// DeploymentPlatform identifies where the generated project is deployed.
type DeploymentPlatform string

const (
	DeployKubernetes DeploymentPlatform = "kubernetes"
	DeployAWS        DeploymentPlatform = "aws"
	DeployGCP        DeploymentPlatform = "gcp"
	DeployAzure      DeploymentPlatform = "azure"
	DeployDocker     DeploymentPlatform = "docker"
)

// ValidDeploymentPlatforms returns all valid deployment platform values.
func ValidDeploymentPlatforms() []DeploymentPlatform {
	return []DeploymentPlatform{DeployKubernetes, DeployAWS, DeployGCP, DeployAzure, DeployDocker}
}

// IsValid checks if the deployment platform is a valid value.
func (d DeploymentPlatform) IsValid() bool {
	return slices.Contains(ValidDeploymentPlatforms(), d)
}

// Label returns the display name of the platform.
func (d DeploymentPlatform) Label() string {
	switch d {
	case DeployKubernetes:
		return "Kubernetes"
	case DeployAWS:
		return "AWS"
	case DeployGCP:
		return "Google Cloud"
	case DeployAzure:
		return "Microsoft Azure"
	case DeployDocker:
		return "Docker Compose"
	}
	return string(d)
}

// Description returns a one-line summary of the platform.
func (d DeploymentPlatform) Description() string {
	switch d {
	case DeployKubernetes:
		return "Container orchestration"
	case DeployAWS:
		return "Amazon Web Services"
	case DeployGCP:
		return "Google Cloud Platform"
	case DeployAzure:
		return "Azure cloud services"
	case DeployDocker:
		return "Local development"
	}
	return ""
}

// CICDPlatform identifies the CI/CD system pipelines are generated for.
type CICDPlatform string

const (
	CICDGitHub      CICDPlatform = "github"
	CICDGitLab      CICDPlatform = "gitlab"
	CICDJenkins     CICDPlatform = "jenkins"
	CICDAzureDevOps CICDPlatform = "azure-devops"
)

// ValidCICDPlatforms returns all valid CI/CD platform values.
func ValidCICDPlatforms() []CICDPlatform {
	return []CICDPlatform{CICDGitHub, CICDGitLab, CICDJenkins, CICDAzureDevOps}
}

// IsValid checks if the CI/CD platform is a valid value.
func (c CICDPlatform) IsValid() bool {
	return slices.Contains(ValidCICDPlatforms(), c)
}

// Label returns the display name of the CI/CD platform.
func (c CICDPlatform) Label() string {
	switch c {
	case CICDGitHub:
		return "GitHub Actions"
	case CICDGitLab:
		return "GitLab CI"
	case CICDJenkins:
		return "Jenkins"
	case CICDAzureDevOps:
		return "Azure DevOps"
	}
	return string(c)
}

// Description returns a one-line summary of the CI/CD platform.
func (c CICDPlatform) Description() string {
	switch c {
	case CICDGitHub:
		return "GitHub integrated CI/CD"
	case CICDGitLab:
		return "GitLab integrated CI/CD"
	case CICDJenkins:
		return "Self-hosted automation"
	case CICDAzureDevOps:
		return "Microsoft DevOps platform"
	}
	return ""
}

// SecurityFeature is a security capability tag. Tags without a dedicated
// fragment generator are recorded on the project but produce no files.
type SecurityFeature string

const (
	SecuritySAST           SecurityFeature = "sast"
	SecurityDAST           SecurityFeature = "dast"
	SecurityDependencyScan SecurityFeature = "dependency-scan"
	SecuritySecretsScan    SecurityFeature = "secrets-scan"
	SecurityContainerScan  SecurityFeature = "container-scan"
	SecurityIaCScan        SecurityFeature = "iac-scan"
)

// ValidSecurityFeatures returns all valid security feature tags.
func ValidSecurityFeatures() []SecurityFeature {
	return []SecurityFeature{
		SecuritySAST,
		SecurityDAST,
		SecurityDependencyScan,
		SecuritySecretsScan,
		SecurityContainerScan,
		SecurityIaCScan,
	}
}

// IsValid checks if the security feature is a valid tag.
func (f SecurityFeature) IsValid() bool {
	return slices.Contains(ValidSecurityFeatures(), f)
}

// Label returns the display name of the security feature.
func (f SecurityFeature) Label() string {
	switch f {
	case SecuritySAST:
		return "SAST Scanning"
	case SecurityDAST:
		return "DAST Scanning"
	case SecurityDependencyScan:
		return "Dependency Scanning"
	case SecuritySecretsScan:
		return "Secrets Scanning"
	case SecurityContainerScan:
		return "Container Scanning"
	case SecurityIaCScan:
		return "Infrastructure Scanning"
	}
	return string(f)
}

// Description returns a one-line summary of the security feature.
func (f SecurityFeature) Description() string {
	switch f {
	case SecuritySAST:
		return "Code security scanning"
	case SecurityDAST:
		return "Runtime security testing"
	case SecurityDependencyScan:
		return "Vulnerability detection in dependencies"
	case SecuritySecretsScan:
		return "Detect hardcoded secrets"
	case SecurityContainerScan:
		return "Docker image security"
	case SecurityIaCScan:
		return "Terraform/CloudFormation security"
	}
	return ""
}

// Mode records how a configuration was produced. It never changes generation.
type Mode string

const (
	ModeQuick  Mode = "quick"
	ModeWizard Mode = "wizard"
	ModeCustom Mode = "custom"
)

// ValidModes returns all valid mode values.
func ValidModes() []Mode {
	return []Mode{ModeQuick, ModeWizard, ModeCustom}
}

// IsValid checks if the mode is a valid value.
func (m Mode) IsValid() bool {
	switch m {
	case ModeQuick, ModeWizard, ModeCustom:
		return true
	}
	return false
}

// CustomFile is a user-supplied file appended verbatim to the generated set.
// Description is for editor display only and is not emitted.
type CustomFile struct {
	Path        string `yaml:"path" json:"path"`
	Content     string `yaml:"content" json:"content"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// EnvironmentVariable is accepted for display purposes and ignored by generation.
type EnvironmentVariable struct {
	Key         string `yaml:"key" json:"key"`
	Value       string `yaml:"value" json:"value"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Configuration is the sole input to project generation.
type Configuration struct {
	ProjectName          string                `yaml:"project_name" json:"projectName"`
	Description          string                `yaml:"description,omitempty" json:"description,omitempty"`
	TechStack            TechStack             `yaml:"tech_stack" json:"techStack"`
	DeploymentPlatform   DeploymentPlatform    `yaml:"deployment_platform,omitempty" json:"deploymentPlatform,omitempty"`
	CICDPlatform         CICDPlatform          `yaml:"cicd_platform,omitempty" json:"cicdPlatform,omitempty"`
	SecurityFeatures     []SecurityFeature     `yaml:"security_features,omitempty" json:"securityFeatures,omitempty"`
	ComplianceFrameworks []string              `yaml:"compliance_frameworks,omitempty" json:"complianceFrameworks,omitempty"`
	MonitoringTools      []string              `yaml:"monitoring_tools,omitempty" json:"monitoringTools,omitempty"`
	CustomFiles          []CustomFile          `yaml:"custom_files,omitempty" json:"customFiles,omitempty"`
	EnvironmentVariables []EnvironmentVariable `yaml:"environment_variables,omitempty" json:"environmentVariables,omitempty"`
	Mode                 Mode                  `yaml:"mode,omitempty" json:"mode,omitempty"`
}

// HasSecurityFeature reports whether the feature tag is enabled.
func (c *Configuration) HasSecurityFeature(f SecurityFeature) bool {
	return slices.Contains(c.SecurityFeatures, f)
}

// HasMonitoringTool reports whether the monitoring tool tag is enabled.
// Tags keep the case the user typed, so the match ignores case.
func (c *Configuration) HasMonitoringTool(tool string) bool {
	return slices.ContainsFunc(c.MonitoringTools, func(t string) bool {
		return strings.EqualFold(t, tool)
	})
}
