// Package fragment contains the feature generators that add files to a
// project when a configuration toggle is present.
package fragment

import (
	"fmt"
	"log/slog"

	"github.com/secforge/secforge/internal/template"
	"github.com/secforge/secforge/pkg/models"
)

// Generator emits the files of one feature.
type Generator interface {
	// Name identifies the generator in reports and logs.
	Name() string

	// Triggered reports whether cfg enables this feature.
	Triggered(cfg *models.Configuration) bool

	// Generate returns the feature's files. It is only called when Triggered is true.
	Generate(cfg *models.Configuration) ([]models.File, error)
}

// Result is the outcome of running one generator.
// A failed generator has Err set and contributes no files.
type Result struct {
	Name      string
	Triggered bool
	Files     []models.File
	Err       error
}

// Outcome converts r to its report form.
func (r Result) Outcome() models.FragmentOutcome {
	o := models.FragmentOutcome{Name: r.Name, Triggered: r.Triggered, Files: len(r.Files)}
	if r.Err != nil {
		o.Err = r.Err.Error()
	}
	return o
}

// Run evaluates g against cfg. Errors and panics from g are recovered and
// logged at warn level; they never reach the caller.
func Run(g Generator, cfg *models.Configuration, logger *slog.Logger) (res Result) {
	if logger == nil {
		logger = slog.Default()
	}
	res.Name = g.Name()

	defer func() {
		if p := recover(); p != nil {
			res.Files = nil
			res.Err = fmt.Errorf("%w: %s: %v", ErrGeneratorPanic, res.Name, p)
		}
		if res.Err != nil {
			logger.Warn("fragment generation failed",
				"fragment", res.Name,
				"error", res.Err,
			)
		}
	}()

	res.Triggered = g.Triggered(cfg)
	if !res.Triggered {
		return res
	}

	files, err := g.Generate(cfg)
	if err != nil {
		res.Err = fmt.Errorf("%s: %w", res.Name, err)
		return res
	}
	res.Files = files
	logger.Debug("fragment generated", "fragment", res.Name, "files", len(files))
	return res
}

// Default returns the built-in generators in evaluation order.
func Default(r template.Renderer) []Generator {
	return []Generator{
		NewSAST(r),
		NewDependencyScan(r),
		NewKubernetes(r),
		NewGitHubActions(r),
		NewPrometheus(r),
	}
}
