package project

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/secforge/secforge/internal/fragment"
	"github.com/secforge/secforge/internal/stack"
	"github.com/secforge/secforge/pkg/models"
)

// StackResolver looks up a Stack by identifier. *stack.Registry satisfies it.
type StackResolver interface {
	Lookup(id models.TechStack) (stack.Stack, error)
}

// Generator produces a Project from a Configuration.
type Generator interface {
	Generate(ctx context.Context, cfg *models.Configuration) (*models.Project, error)
}

// Assembler is the default Generator. It holds no per-call state, so
// concurrent Generate calls are independent.
type Assembler struct {
	stacks    StackResolver
	fragments []fragment.Generator
	logger    *slog.Logger
	delay     time.Duration
	policy    CollisionPolicy
}

// Compile-time interface compliance check.
var _ Generator = (*Assembler)(nil)

// Option configures an Assembler.
type Option func(*Assembler)

// WithLogger sets the logger used for fragment failures and collisions.
func WithLogger(l *slog.Logger) Option {
	return func(a *Assembler) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithDelay makes Generate wait d before producing anything.
// The wait is cosmetic and ends early if the context is cancelled.
func WithDelay(d time.Duration) Option {
	return func(a *Assembler) {
		a.delay = d
	}
}

// WithCollisionPolicy sets how duplicate output paths are handled.
func WithCollisionPolicy(p CollisionPolicy) Option {
	return func(a *Assembler) {
		a.policy = p
	}
}

// NewAssembler creates an Assembler that resolves stacks from stacks and
// runs generators in the given order.
func NewAssembler(stacks StackResolver, generators []fragment.Generator, opts ...Option) *Assembler {
	a := &Assembler{
		stacks:    stacks,
		fragments: generators,
		logger:    slog.Default().With("module", "project"),
		policy:    CollisionKeep,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Generate assembles the project for cfg. It fails only when the stack is
// unknown, its base files cannot be rendered, the context ends, or a path
// collision occurs under CollisionReject. Fragment failures are reported in
// Project.Report and never fail the call.
//
// Generate does not validate cfg. A project name that config.Validate would
// reject, such as "a: b", can break the YAML a fragment renders; that
// fragment then fails its lint, its files are dropped, and the error shows
// up only in Report.Fragments. Callers taking untrusted input should run
// config.Validate first.
func (a *Assembler) Generate(ctx context.Context, cfg *models.Configuration) (*models.Project, error) {
	if err := a.wait(ctx); err != nil {
		return nil, err
	}

	s, err := a.stacks.Lookup(cfg.TechStack)
	if err != nil {
		return nil, err
	}

	base, err := s.BaseFiles(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBaseFiles, err)
	}

	files := append([]models.File(nil), base...)
	outcomes := make([]models.FragmentOutcome, 0, len(a.fragments))
	for _, g := range a.fragments {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res := fragment.Run(g, cfg, a.logger)
		files = append(files, res.Files...)
		outcomes = append(outcomes, res.Outcome())
	}

	for _, cf := range cfg.CustomFiles {
		files = append(files, models.File{Path: cf.Path, Content: cf.Content})
	}

	collisions := findCollisions(files)
	if len(collisions) > 0 {
		switch a.policy {
		case CollisionReject:
			return nil, fmt.Errorf("%w: %s", ErrPathCollision, collisions[0].Path)
		case CollisionWarn:
			for _, c := range collisions {
				a.logger.Warn("duplicate output path", "path", c.Path, "count", c.Count)
			}
		}
	}

	a.logger.Debug("project generated",
		"name", cfg.ProjectName,
		"stack", cfg.TechStack,
		"files", len(files),
	)

	return &models.Project{
		Name:                 cfg.ProjectName,
		TechStack:            cfg.TechStack,
		DeploymentPlatform:   cfg.DeploymentPlatform,
		SecurityFeatures:     cfg.SecurityFeatures,
		ComplianceFrameworks: cfg.ComplianceFrameworks,
		MonitoringTools:      cfg.MonitoringTools,
		Files:                files,
		Report: models.Report{
			Fragments:  outcomes,
			Collisions: collisions,
		},
	}, nil
}

func (a *Assembler) wait(ctx context.Context) error {
	if a.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(a.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
