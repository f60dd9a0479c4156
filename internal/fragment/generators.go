package fragment

import (
	"fmt"

	"github.com/secforge/secforge/internal/stack"
	"github.com/secforge/secforge/internal/template"
	"github.com/secforge/secforge/pkg/models"
)

// output pairs an emitted path with its fragment template or JSON builder.
type output struct {
	path     string
	template string
	build    func(ctx *template.TemplateContext) (string, error)
}

// templated is a Generator whose files are rendered from fragments/ templates.
// Every .yml, .yaml and .json output is linted before it is returned.
type templated struct {
	name     string
	trigger  func(cfg *models.Configuration) bool
	outputs  []output
	renderer template.Renderer
}

func (g *templated) Name() string { return g.name }

func (g *templated) Triggered(cfg *models.Configuration) bool { return g.trigger(cfg) }

func (g *templated) Generate(cfg *models.Configuration) ([]models.File, error) {
	ctx := stack.NewContext(cfg, "")

	files := make([]models.File, 0, len(g.outputs))
	for _, o := range g.outputs {
		var content []byte
		if o.build != nil {
			s, err := o.build(ctx)
			if err != nil {
				return nil, fmt.Errorf("build %s: %w", o.path, err)
			}
			content = []byte(s)
		} else {
			rendered, err := g.renderer.Render("fragments/"+o.template, ctx)
			if err != nil {
				return nil, err
			}
			content = rendered
		}

		if err := template.Lint(o.path, content); err != nil {
			return nil, err
		}
		files = append(files, models.File{Path: o.path, Content: string(content)})
	}
	return files, nil
}

// NewSAST emits the gosec workflow. Only Go projects get one.
func NewSAST(r template.Renderer) Generator {
	return &templated{
		name: "sast",
		trigger: func(cfg *models.Configuration) bool {
			return cfg.HasSecurityFeature(models.SecuritySAST) && cfg.TechStack == models.StackGo
		},
		outputs: []output{
			{path: ".github/workflows/security.yml", template: "github/security.yml.tmpl"},
		},
		renderer: r,
	}
}

// NewDependencyScan emits a weekly dependabot config for the stack's ecosystem.
func NewDependencyScan(r template.Renderer) Generator {
	return &templated{
		name: "dependency-scan",
		trigger: func(cfg *models.Configuration) bool {
			return cfg.HasSecurityFeature(models.SecurityDependencyScan)
		},
		outputs: []output{
			{path: ".github/dependabot.yml", template: "github/dependabot.yml.tmpl"},
		},
		renderer: r,
	}
}

// NewKubernetes emits a hardened Deployment and a ClusterIP Service.
func NewKubernetes(r template.Renderer) Generator {
	return &templated{
		name: "kubernetes",
		trigger: func(cfg *models.Configuration) bool {
			return cfg.DeploymentPlatform == models.DeployKubernetes
		},
		outputs: []output{
			{path: "deployments/k8s/base/deployment.yaml", template: "k8s/deployment.yaml.tmpl"},
			{path: "deployments/k8s/base/service.yaml", template: "k8s/service.yaml.tmpl"},
		},
		renderer: r,
	}
}

// NewGitHubActions emits the CI workflow using the stack's toolchain commands.
func NewGitHubActions(r template.Renderer) Generator {
	return &templated{
		name: "github-actions",
		trigger: func(cfg *models.Configuration) bool {
			return cfg.CICDPlatform == models.CICDGitHub
		},
		outputs: []output{
			{path: ".github/workflows/ci.yml", template: "github/ci.yml.tmpl"},
		},
		renderer: r,
	}
}

// NewPrometheus emits a scrape config and a Grafana dashboard.
func NewPrometheus(r template.Renderer) Generator {
	return &templated{
		name: "prometheus",
		trigger: func(cfg *models.Configuration) bool {
			return cfg.HasMonitoringTool("prometheus")
		},
		outputs: []output{
			{path: "monitoring/prometheus/prometheus.yml", template: "prometheus/prometheus.yml.tmpl"},
			{path: "monitoring/grafana/dashboards/service-dashboard.json", build: buildDashboard},
		},
		renderer: r,
	}
}
