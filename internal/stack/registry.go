package stack

import (
	"fmt"

	"github.com/secforge/secforge/internal/template"
	"github.com/secforge/secforge/pkg/models"
)

// Registry maps tech stack identifiers to their Stack.
// It is immutable after construction and safe for concurrent use.
type Registry struct {
	stacks map[models.TechStack]Stack
	order  []models.TechStack
}

// NewRegistry registers the built-in stacks, rendering templates with r.
func NewRegistry(r template.Renderer) *Registry {
	return newRegistry(
		newGoStack(r),
		newNodeStack(r),
		newPythonStack(r),
		newJavaStack(r),
		newDotNetStack(r),
	)
}

func newRegistry(stacks ...Stack) *Registry {
	reg := &Registry{stacks: make(map[models.TechStack]Stack, len(stacks))}
	for _, s := range stacks {
		reg.stacks[s.ID()] = s
		reg.order = append(reg.order, s.ID())
	}
	return reg
}

// Lookup returns the stack registered for id.
func (r *Registry) Lookup(id models.TechStack) (Stack, error) {
	s, ok := r.stacks[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrStackNotFound, id)
	}
	return s, nil
}

// IDs returns the registered stack identifiers in registration order.
func (r *Registry) IDs() []models.TechStack {
	return append([]models.TechStack(nil), r.order...)
}
