// Package wizard runs the interactive huh-based project wizard and turns
// its answers into a generation Configuration.
package wizard

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user aborts a form or declines the review.
	ErrCancelled = errors.New("wizard: cancelled by user")

	// ErrHeadless is returned when the wizard is started without a terminal.
	ErrHeadless = errors.New("wizard: requires an interactive terminal")
)

// Answers holds the values bound to the wizard fields.
type Answers struct {
	ProjectName          string
	Description          string
	TechStack            string
	SecurityFeatures     []string
	ComplianceFrameworks []string
	DeploymentPlatform   string
	CICDPlatform         string
	MonitoringTools      []string
	Confirmed            bool
}

// Step is one wizard page. Build is called right before the page is shown,
// so it sees the answers given on earlier pages.
type Step struct {
	Title string
	Build func(a *Answers) *huh.Group
}

// FormRunner runs a single form until it is submitted or aborted.
type FormRunner func(*huh.Form) error

// RunForm is the FormRunner used outside tests.
func RunForm(f *huh.Form) error {
	return f.Run()
}
