package template

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed all:templates
var templatesFS embed.FS

// EmbeddedTemplates returns the template tree rooted at templates/.
func EmbeddedTemplates() (fs.FS, error) {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("embedded templates: %w", err)
	}
	return sub, nil
}
