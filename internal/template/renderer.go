package template

import (
	"bytes"
	"fmt"
	"io/fs"
	"regexp"
	"strings"
	"text/template"

	lru "github.com/hashicorp/golang-lru/v2"
)

// templateCacheSize bounds the number of parsed templates kept in memory.
// The embedded tree holds fewer than this, so in practice nothing is evicted.
const templateCacheSize = 128

// unexpandedTokenPattern detects leftover dynamic tokens in rendered output.
// Matches ${VAR}, {{VAR}}, and $VAR patterns.
var unexpandedTokenPattern = regexp.MustCompile(`\$\{[A-Za-z_][A-Za-z0-9_]*\}|\{\{\.?[A-Za-z_][A-Za-z0-9_.]*\}\}|\$[A-Z_][A-Z0-9_]*`)

// generatedPassthroughTokens belong to the generated sources themselves
// (resolved by the target runtime, not by us) and must not be flagged.
var generatedPassthroughTokens = []string{
	"${{ github.sha }}",
	"${ADMIN_PASSWORD:changeme}",
	"${PORT}",
}

// UserValues is implemented by render data that carries free text typed by
// the user. Those values are removed from the output before the
// unexpanded-token check, so only tokens left by the template are flagged.
type UserValues interface {
	UserValues() []string
}

// Renderer renders Go text/template files with strict mode enabled.
type Renderer interface {
	// Render parses the named template from the backing FS and executes
	// it with the given data. Returns ErrMissingTemplateKey if a key is
	// missing and ErrUnexpandedToken if the template leaves tokens behind.
	Render(templateName string, data any) ([]byte, error)
}

// renderer is the concrete implementation of Renderer.
type renderer struct {
	fsys  fs.FS
	cache *lru.Cache[string, *template.Template]
}

// NewRenderer creates a Renderer backed by the given filesystem.
// Parsed templates are cached by name; the cache is safe for concurrent use.
func NewRenderer(fsys fs.FS) Renderer {
	cache, err := lru.New[string, *template.Template](templateCacheSize)
	if err != nil {
		// Only returned for a non-positive size.
		panic(fmt.Sprintf("template cache: %v", err))
	}
	return &renderer{fsys: fsys, cache: cache}
}

// Render parses and executes a template with strict mode (missingkey=error).
func (r *renderer) Render(templateName string, data any) ([]byte, error) {
	tmpl, err := r.parse(templateName)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingTemplateKey, err)
	}

	result := buf.Bytes()

	masked := string(result)
	if uv, ok := data.(UserValues); ok {
		for _, v := range uv.UserValues() {
			if v != "" {
				masked = strings.ReplaceAll(masked, v, "")
			}
		}
	}
	for _, tok := range generatedPassthroughTokens {
		masked = strings.ReplaceAll(masked, tok, "")
	}
	if loc := unexpandedTokenPattern.FindString(masked); loc != "" {
		return nil, fmt.Errorf("%w: found %q in %s", ErrUnexpandedToken, loc, templateName)
	}

	return result, nil
}

// parse returns the cached template for templateName, parsing it on first use.
func (r *renderer) parse(templateName string) (*template.Template, error) {
	if tmpl, ok := r.cache.Get(templateName); ok {
		return tmpl, nil
	}

	content, err := fs.ReadFile(r.fsys, templateName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, templateName)
	}

	tmpl, err := template.New(templateName).
		Option("missingkey=error").
		Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("template parse %q: %w", templateName, err)
	}

	r.cache.Add(templateName, tmpl)
	return tmpl, nil
}
