package config

import (
	"slices"

	"github.com/secforge/secforge/pkg/models"
)

// Quick setup defaults applied on top of the user's four choices.
var (
	quickSecurityFeatures = []models.SecurityFeature{
		models.SecuritySAST,
		models.SecurityDAST,
		models.SecurityDependencyScan,
		models.SecuritySecretsScan,
	}
	quickComplianceFrameworks = []string{"iso27001"}
	quickMonitoringTools      = []string{"prometheus", "grafana"}
)

// QuickPreset returns the configuration produced by quick setup: the given
// identity and platforms plus the recommended security, compliance and
// monitoring defaults. The slices are fresh copies.
func QuickPreset(name, description string, stack models.TechStack, deploy models.DeploymentPlatform, cicd models.CICDPlatform) *models.Configuration {
	cfg := &models.Configuration{
		ProjectName:          name,
		Description:          description,
		TechStack:            stack,
		DeploymentPlatform:   deploy,
		CICDPlatform:         cicd,
		SecurityFeatures:     slices.Clone(quickSecurityFeatures),
		ComplianceFrameworks: slices.Clone(quickComplianceFrameworks),
		MonitoringTools:      slices.Clone(quickMonitoringTools),
		Mode:                 models.ModeQuick,
	}
	Normalize(cfg)
	return cfg
}

// Choice is a selectable tag with its display text.
type Choice struct {
	Value       string
	Label       string
	Description string
}

// ComplianceChoices lists the compliance frameworks offered by the wizard.
// Frameworks are recorded on the project and produce no files.
func ComplianceChoices() []Choice {
	return []Choice{
		{"iso27001", "ISO 27001", "Information security management"},
		{"soc2", "SOC 2", "Service organization controls"},
		{"gdpr", "GDPR", "General Data Protection Regulation"},
		{"hipaa", "HIPAA", "Health Insurance Portability"},
		{"pci", "PCI DSS", "Payment card industry standards"},
	}
}

// MonitoringChoices lists the monitoring tools offered by the wizard.
// Only prometheus currently emits files.
func MonitoringChoices() []Choice {
	return []Choice{
		{"prometheus", "Prometheus", "Metrics scraping and alerting"},
		{"grafana", "Grafana", "Dashboards"},
	}
}
