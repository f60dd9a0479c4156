package template

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

func TestRendererRender(t *testing.T) {
	t.Run("successful_render", func(t *testing.T) {
		fs := fstest.MapFS{
			"README.md.tmpl": &fstest.MapFile{
				Data: []byte("# {{.ProjectName}}\n\n{{.Description}}\n"),
			},
		}
		r := NewRenderer(fs)

		data := map[string]string{
			"ProjectName": "payments",
			"Description": "Card processing",
		}

		result, err := r.Render("README.md.tmpl", data)
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}

		expected := "# payments\n\nCard processing\n"
		if string(result) != expected {
			t.Errorf("Render result = %q, want %q", string(result), expected)
		}
	})

	t.Run("missing_key_strict_mode", func(t *testing.T) {
		fs := fstest.MapFS{
			"test.tmpl": &fstest.MapFile{
				Data: []byte("name: {{.ProjectName}}, stack: {{.TechStack}}"),
			},
		}
		r := NewRenderer(fs)

		_, err := r.Render("test.tmpl", map[string]string{"ProjectName": "svc"})
		if err == nil {
			t.Fatal("expected error for missing key")
		}
		if !errors.Is(err, ErrMissingTemplateKey) {
			t.Errorf("expected ErrMissingTemplateKey, got: %v", err)
		}
	})

	t.Run("nonexistent_template", func(t *testing.T) {
		r := NewRenderer(fstest.MapFS{})

		_, err := r.Render("nonexistent.tmpl", nil)
		if !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("expected ErrTemplateNotFound, got: %v", err)
		}
	})

	t.Run("unexpanded_token_detected", func(t *testing.T) {
		fs := fstest.MapFS{
			"leak.tmpl": &fstest.MapFile{
				Data: []byte("image: {{.ProjectName}}:${TAG}\n"),
			},
		}
		r := NewRenderer(fs)

		_, err := r.Render("leak.tmpl", map[string]string{"ProjectName": "svc"})
		if !errors.Is(err, ErrUnexpandedToken) {
			t.Errorf("expected ErrUnexpandedToken, got: %v", err)
		}
	})

	t.Run("user_text_with_token_syntax_allowed", func(t *testing.T) {
		fs := fstest.MapFS{
			"README.md.tmpl": &fstest.MapFile{
				Data: []byte("# {{.ProjectName}}\n\n{{.Description}}\n"),
			},
		}
		r := NewRenderer(fs)

		for _, desc := range []string{"Bills in $USD", "Reads ${HOME} paths", "Uses {{Name}} placeholders"} {
			data := NewTemplateContext(WithProject("svc", desc))
			result, err := r.Render("README.md.tmpl", data)
			if err != nil {
				t.Fatalf("Render(%q) error: %v", desc, err)
			}
			if !strings.Contains(string(result), desc) {
				t.Errorf("description %q missing from %q", desc, result)
			}
		}
	})

	t.Run("template_token_flagged_beside_user_text", func(t *testing.T) {
		fs := fstest.MapFS{
			"leak.tmpl": &fstest.MapFile{
				Data: []byte("{{.Description}} ${TAG}\n"),
			},
		}
		r := NewRenderer(fs)

		_, err := r.Render("leak.tmpl", NewTemplateContext(WithProject("svc", "costs $USD")))
		if !errors.Is(err, ErrUnexpandedToken) {
			t.Errorf("expected ErrUnexpandedToken, got: %v", err)
		}
	})

	t.Run("passthrough_tokens_allowed", func(t *testing.T) {
		fs := fstest.MapFS{
			"ci.tmpl": &fstest.MapFile{
				Data: []byte(`run: docker build -t {{.ProjectName}}:{{"${{ github.sha }}"}} .` + "\n" +
					"password: ${ADMIN_PASSWORD:changeme}\n" +
					"logger.info(`port ${PORT}`)\n"),
			},
		}
		r := NewRenderer(fs)

		result, err := r.Render("ci.tmpl", map[string]string{"ProjectName": "svc"})
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}
		if !strings.Contains(string(result), "svc:${{ github.sha }}") {
			t.Errorf("GitHub expression not preserved: %s", result)
		}
	})

	t.Run("empty_template", func(t *testing.T) {
		fs := fstest.MapFS{
			"empty.tmpl": &fstest.MapFile{Data: []byte("")},
		}
		r := NewRenderer(fs)

		result, err := r.Render("empty.tmpl", nil)
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}
		if len(result) != 0 {
			t.Errorf("result = %q, want empty", result)
		}
	})

	t.Run("parse_error", func(t *testing.T) {
		fs := fstest.MapFS{
			"broken.tmpl": &fstest.MapFile{Data: []byte("{{if .X}")},
		}
		r := NewRenderer(fs)

		if _, err := r.Render("broken.tmpl", nil); err == nil {
			t.Fatal("expected parse error")
		}
	})
}

func TestRendererCachesParsedTemplates(t *testing.T) {
	fs := fstest.MapFS{
		"name.tmpl": &fstest.MapFile{Data: []byte("{{.ProjectName}}")},
	}
	r := NewRenderer(fs)

	first, err := r.Render("name.tmpl", map[string]string{"ProjectName": "a"})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}

	// Swapping the backing file must not affect an already parsed template.
	fs["name.tmpl"] = &fstest.MapFile{Data: []byte("changed")}

	second, err := r.Render("name.tmpl", map[string]string{"ProjectName": "b"})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if string(first) != "a" || string(second) != "b" {
		t.Errorf("got %q then %q, want %q then %q", first, second, "a", "b")
	}
}

func TestEmbeddedTemplatesRender(t *testing.T) {
	t.Parallel()

	fsys, err := EmbeddedTemplates()
	if err != nil {
		t.Fatalf("EmbeddedTemplates: %v", err)
	}
	r := NewRenderer(fsys)

	ctx := NewTemplateContext(
		WithProject("demo-svc", ""),
		WithDefaultDescription("A scalable Go service"),
		WithTechStack("go"),
		func(c *TemplateContext) {
			c.Ecosystem = "gomod"
			c.SetupAction = "actions/setup-go@v3"
			c.SetupActionConfig = "go-version: 1.21"
			c.InstallCommand = "go mod download"
			c.TestCommand = "go test ./..."
			c.SecurityScanCommand = "go vet ./..."
			c.BuildCommand = "go build ./..."
		},
	)

	names := []string{
		"stacks/go/go.mod.tmpl",
		"stacks/go/main.go.tmpl",
		"stacks/go/Dockerfile.tmpl",
		"stacks/go/README.md.tmpl",
		"stacks/nodejs/index.js.tmpl",
		"stacks/nodejs/Dockerfile.tmpl",
		"stacks/nodejs/healthcheck.js.tmpl",
		"stacks/python/requirements.txt.tmpl",
		"stacks/python/main.py.tmpl",
		"stacks/python/Dockerfile.tmpl",
		"stacks/java/pom.xml.tmpl",
		"stacks/java/Application.java.tmpl",
		"stacks/java/StatusController.java.tmpl",
		"stacks/java/application.yml.tmpl",
		"stacks/java/Dockerfile.tmpl",
		"stacks/dotnet/project.csproj.tmpl",
		"stacks/dotnet/Program.cs.tmpl",
		"stacks/dotnet/StatusController.cs.tmpl",
		"stacks/dotnet/Dockerfile.tmpl",
		"fragments/github/security.yml.tmpl",
		"fragments/github/dependabot.yml.tmpl",
		"fragments/github/ci.yml.tmpl",
		"fragments/k8s/deployment.yaml.tmpl",
		"fragments/k8s/service.yaml.tmpl",
		"fragments/prometheus/prometheus.yml.tmpl",
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			out, err := r.Render(name, ctx)
			if err != nil {
				t.Fatalf("Render(%s): %v", name, err)
			}
			if len(out) == 0 || out[len(out)-1] != '\n' {
				t.Errorf("Render(%s) must end with a newline", name)
			}
			if strings.Contains(string(out), "{{") {
				t.Errorf("Render(%s) left template actions in output", name)
			}
			if err := Lint(strings.TrimSuffix(name, ".tmpl"), out); err != nil {
				t.Errorf("Lint(%s): %v", name, err)
			}
		})
	}
}
