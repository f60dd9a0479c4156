// Package cli provides the Cobra command tree for secforge. This file
// defines the Dependencies struct (Composition Root) that wires the
// template, stack, fragment, export and UI packages together.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/secforge/secforge/internal/cli/wizard"
	"github.com/secforge/secforge/internal/config"
	"github.com/secforge/secforge/internal/export"
	"github.com/secforge/secforge/internal/fragment"
	"github.com/secforge/secforge/internal/project"
	"github.com/secforge/secforge/internal/stack"
	"github.com/secforge/secforge/internal/template"
	"github.com/secforge/secforge/internal/ui"
)

// Dependencies holds the services used by CLI commands. It is the only
// place where concrete types are instantiated.
type Dependencies struct {
	Renderer  template.Renderer
	Stacks    *stack.Registry
	Fragments []fragment.Generator
	Theme     *ui.Theme
	Headless  *ui.HeadlessManager
	Logger    *slog.Logger

	// RunForm runs wizard pages; tests replace it.
	RunForm wizard.FormRunner

	// NewUploader builds the archive uploader on first use.
	NewUploader func() (export.Uploader, error)

	level        *slog.LevelVar
	uploaderOnce sync.Once
	uploader     export.Uploader
	uploaderErr  error
}

// deps is the global dependencies instance, initialized by InitDependencies.
var deps *Dependencies

// InitDependencies creates and wires all dependencies. Logs go to stderr
// as text at warn level until SetVerbose raises them to debug.
func InitDependencies() error {
	fsys, err := template.EmbeddedTemplates()
	if err != nil {
		return err
	}

	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	renderer := template.NewRenderer(fsys)
	deps = &Dependencies{
		Renderer:    renderer,
		Stacks:      stack.NewRegistry(renderer),
		Fragments:   fragment.Default(renderer),
		Theme:       ui.ThemeFromEnv(),
		Headless:    ui.NewHeadlessManager(),
		Logger:      logger,
		RunForm:     wizard.RunForm,
		NewUploader: newObjectStoreFromEnv,
		level:       level,
	}
	return nil
}

// GetDeps returns the current Dependencies instance.
// Returns nil if InitDependencies has not been called.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}

// SetVerbose switches logging between debug and warn level.
func (d *Dependencies) SetVerbose(verbose bool) {
	if d.level == nil {
		return
	}
	if verbose {
		d.level.Set(slog.LevelDebug)
		return
	}
	d.level.Set(slog.LevelWarn)
}

// Assembler returns a project assembler over the registered stacks and
// fragment generators.
func (d *Dependencies) Assembler(opts ...project.Option) *project.Assembler {
	opts = append([]project.Option{project.WithLogger(d.Logger)}, opts...)
	return project.NewAssembler(d.Stacks, d.Fragments, opts...)
}

// EnsureUploader lazily builds the uploader. The first result, success or
// failure, is reused.
func (d *Dependencies) EnsureUploader() (export.Uploader, error) {
	d.uploaderOnce.Do(func() {
		if d.NewUploader == nil {
			d.uploaderErr = fmt.Errorf("%w: no uploader configured", config.ErrStorageNotConfigured)
			return
		}
		d.uploader, d.uploaderErr = d.NewUploader()
	})
	return d.uploader, d.uploaderErr
}

func newObjectStoreFromEnv() (export.Uploader, error) {
	cfg, err := config.LoadStorage()
	if err != nil {
		return nil, err
	}
	store, err := export.NewObjectStore(cfg)
	if err != nil {
		return nil, err
	}
	return store, nil
}
