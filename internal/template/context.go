package template

// TemplateContext provides data for rendering stack and fragment templates.
// All fields are exported for use with Go's text/template package.
type TemplateContext struct {
	// Project
	ProjectName string
	Description string // already resolved to the stack default when empty
	TechStack   string

	// Toolchain values embedded into CI templates
	Ecosystem           string // dependabot package-ecosystem
	SetupAction         string // e.g., "actions/setup-go@v3"
	SetupActionConfig   string // e.g., "go-version: 1.21"
	InstallCommand      string
	TestCommand         string
	SecurityScanCommand string
	BuildCommand        string
}

// UserValues returns the user-supplied project name and description.
func (c *TemplateContext) UserValues() []string {
	return []string{c.ProjectName, c.Description}
}

// ContextOption configures a TemplateContext.
type ContextOption func(*TemplateContext)

// NewTemplateContext creates an empty TemplateContext and applies the options.
func NewTemplateContext(opts ...ContextOption) *TemplateContext {
	ctx := &TemplateContext{}
	for _, opt := range opts {
		opt(ctx)
	}
	return ctx
}

// WithProject sets the project name and description.
func WithProject(name, description string) ContextOption {
	return func(c *TemplateContext) {
		c.ProjectName = name
		c.Description = description
	}
}

// WithDefaultDescription sets the description only when it is still empty.
func WithDefaultDescription(description string) ContextOption {
	return func(c *TemplateContext) {
		if c.Description == "" {
			c.Description = description
		}
	}
}

// WithTechStack sets the stack identifier.
func WithTechStack(stack string) ContextOption {
	return func(c *TemplateContext) {
		c.TechStack = stack
	}
}
