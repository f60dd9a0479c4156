package preview

import (
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/secforge/secforge/pkg/models"
)

// extensionLanguages maps lower-cased file extensions to highlight languages.
var extensionLanguages = map[string]string{
	"go":     "go",
	"js":     "javascript",
	"ts":     "typescript",
	"py":     "python",
	"java":   "java",
	"cs":     "csharp",
	"yml":    "yaml",
	"yaml":   "yaml",
	"json":   "json",
	"md":     "markdown",
	"xml":    "xml",
	"csproj": "xml",
	"tf":     "hcl",
	"sh":     "bash",
}

// Language returns the highlight language for a file path, or "text".
func Language(p string) string {
	base := path.Base(p)
	if strings.EqualFold(base, "Dockerfile") {
		return "docker"
	}
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(base), "."))
	if lang, ok := extensionLanguages[ext]; ok {
		return lang
	}
	return "text"
}

// RenderFile writes one file for reading in a terminal. With styled set,
// Markdown goes through glamour; everything else is printed in a fenced
// block tagged with its language.
func RenderFile(w io.Writer, f models.File, styled bool) error {
	lang := Language(f.Path)

	if styled && lang == "markdown" {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err != nil {
			return fmt.Errorf("markdown renderer: %w", err)
		}
		out, err := r.Render(f.Content)
		if err != nil {
			return fmt.Errorf("render %s: %w", f.Path, err)
		}
		_, err = io.WriteString(w, out)
		return err
	}

	content := f.Content
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	_, err := fmt.Fprintf(w, "── %s ──\n```%s\n%s```\n", f.Path, lang, content)
	return err
}
