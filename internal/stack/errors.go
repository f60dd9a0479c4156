package stack

import "errors"

// ErrStackNotFound indicates the requested tech stack is not registered.
var ErrStackNotFound = errors.New("stack: stack not found")
