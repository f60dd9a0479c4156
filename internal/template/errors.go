package template

import "errors"

// Sentinel errors for template operations.
var (
	// ErrTemplateNotFound indicates the named template does not exist in the FS.
	ErrTemplateNotFound = errors.New("template: not found")

	// ErrMissingTemplateKey indicates a template referenced a key absent from its data.
	ErrMissingTemplateKey = errors.New("template: missing key")

	// ErrUnexpandedToken indicates rendered output still contains a dynamic token.
	ErrUnexpandedToken = errors.New("template: unexpanded token in output")

	// ErrInvalidArtifact indicates a rendered YAML or JSON artifact does not parse.
	ErrInvalidArtifact = errors.New("template: rendered artifact is not well-formed")
)
