// Package project assembles a generated project from a configuration: the
// stack's base files, every triggered feature fragment, and the user's
// custom files, in that order.
package project

import (
	"errors"

	"github.com/secforge/secforge/internal/stack"
)

// Sentinel errors for the project package.
var (
	// ErrStackNotFound indicates the configuration names an unsupported tech stack.
	ErrStackNotFound = stack.ErrStackNotFound

	// ErrBaseFiles indicates the stack's base files could not be rendered.
	ErrBaseFiles = errors.New("project: base file generation failed")

	// ErrPathCollision indicates duplicate output paths under CollisionReject.
	ErrPathCollision = errors.New("project: duplicate output path")
)
