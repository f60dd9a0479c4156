package stack

import (
	"fmt"
	"path"

	"github.com/secforge/secforge/internal/template"
	"github.com/secforge/secforge/pkg/models"
)

// Stack produces the base files of one language ecosystem.
type Stack interface {
	// ID returns the tech stack identifier.
	ID() models.TechStack

	// Label returns the display name.
	Label() string

	// BasePaths returns the paths BaseFiles emits for cfg, in emission order.
	BasePaths(cfg *models.Configuration) []string

	// BaseFiles renders the base files for cfg.
	BaseFiles(cfg *models.Configuration) ([]models.File, error)
}

// artifact is one base file. Content comes from a template under
// stacks/<id>/ or, for JSON documents, from build.
type artifact struct {
	output   func(cfg *models.Configuration) string
	template string
	build    func(ctx *template.TemplateContext) (string, error)
}

// at returns an output func for a fixed path.
func at(p string) func(*models.Configuration) string {
	return func(*models.Configuration) string { return p }
}

// templateStack is the Stack implementation shared by all registered stacks.
type templateStack struct {
	id                 models.TechStack
	defaultDescription string
	artifacts          []artifact
	renderer           template.Renderer
}

func (s *templateStack) ID() models.TechStack { return s.id }

func (s *templateStack) Label() string { return s.id.Label() }

func (s *templateStack) BasePaths(cfg *models.Configuration) []string {
	paths := make([]string, len(s.artifacts))
	for i, a := range s.artifacts {
		paths[i] = a.output(cfg)
	}
	return paths
}

func (s *templateStack) BaseFiles(cfg *models.Configuration) ([]models.File, error) {
	ctx := NewContext(cfg, s.defaultDescription)

	files := make([]models.File, 0, len(s.artifacts))
	for _, a := range s.artifacts {
		out := a.output(cfg)

		var content string
		if a.build != nil {
			built, err := a.build(ctx)
			if err != nil {
				return nil, fmt.Errorf("%s: build %s: %w", s.id, out, err)
			}
			content = built
		} else {
			rendered, err := s.renderer.Render(path.Join("stacks", string(s.id), a.template), ctx)
			if err != nil {
				return nil, fmt.Errorf("%s: render %s: %w", s.id, out, err)
			}
			content = string(rendered)
		}

		files = append(files, models.File{Path: out, Content: content})
	}
	return files, nil
}

// DefaultDescription returns the phrase used when a configuration has no
// description. It is empty for stacks whose files never mention one.
func DefaultDescription(s Stack) string {
	if ts, ok := s.(*templateStack); ok {
		return ts.defaultDescription
	}
	return ""
}
