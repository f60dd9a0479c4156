package stack

import (
	"slices"
	"strings"
	"testing"

	"github.com/secforge/secforge/pkg/models"
)

func TestBaseFilePaths(t *testing.T) {
	t.Parallel()
	reg := newTestRegistry(t)

	tests := []struct {
		stack models.TechStack
		want  []string
	}{
		{models.StackGo, []string{"go.mod", "cmd/server/main.go", "Dockerfile", "README.md"}},
		{models.StackNodeJS, []string{"package.json", "src/index.js", "Dockerfile", "healthcheck.js"}},
		{models.StackPython, []string{"requirements.txt", "src/main.py", "Dockerfile"}},
		{models.StackJava, []string{
			"pom.xml",
			"src/main/java/com/example/Application.java",
			"src/main/java/com/example/controller/StatusController.java",
			"src/main/resources/application.yml",
			"Dockerfile",
		}},
		{models.StackDotNet, []string{"svc.csproj", "Program.cs", "Controllers/StatusController.cs", "appsettings.json", "Dockerfile"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.stack), func(t *testing.T) {
			t.Parallel()
			s, err := reg.Lookup(tt.stack)
			if err != nil {
				t.Fatalf("Lookup: %v", err)
			}
			cfg := &models.Configuration{ProjectName: "svc", TechStack: tt.stack}

			if got := s.BasePaths(cfg); !slices.Equal(got, tt.want) {
				t.Errorf("BasePaths() = %v, want %v", got, tt.want)
			}

			files, err := s.BaseFiles(cfg)
			if err != nil {
				t.Fatalf("BaseFiles: %v", err)
			}
			got := make([]string, len(files))
			for i, f := range files {
				got[i] = f.Path
				if f.Content == "" {
					t.Errorf("%s has empty content", f.Path)
				}
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("BaseFiles() paths = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBaseFilesDeterministic(t *testing.T) {
	t.Parallel()
	reg := newTestRegistry(t)

	for _, id := range reg.IDs() {
		s, _ := reg.Lookup(id)
		cfg := &models.Configuration{ProjectName: "twice", Description: "same", TechStack: id}

		a, err := s.BaseFiles(cfg)
		if err != nil {
			t.Fatalf("%s: %v", id, err)
		}
		b, err := s.BaseFiles(cfg)
		if err != nil {
			t.Fatalf("%s: %v", id, err)
		}
		if !slices.Equal(a, b) {
			t.Errorf("%s: BaseFiles not deterministic", id)
		}
	}
}

func TestGoStackContent(t *testing.T) {
	t.Parallel()
	reg := newTestRegistry(t)
	s, _ := reg.Lookup(models.StackGo)

	files, err := s.BaseFiles(&models.Configuration{ProjectName: "my-service", TechStack: models.StackGo})
	if err != nil {
		t.Fatalf("BaseFiles: %v", err)
	}

	if !strings.HasPrefix(files[0].Content, "module my-service\n\ngo 1.21\n") {
		t.Errorf("go.mod = %q", files[0].Content)
	}
	if !strings.Contains(files[1].Content, `"service": "my-service"`) {
		t.Errorf("main.go does not embed the project name:\n%s", files[1].Content)
	}
	readme := files[3].Content
	if !strings.HasPrefix(readme, "# my-service\n\nA scalable Go service\n") {
		t.Errorf("README.md missing default description:\n%s", readme)
	}
}

func TestDescriptionDefaults(t *testing.T) {
	t.Parallel()
	reg := newTestRegistry(t)

	tests := []struct {
		stack models.TechStack
		want  string
	}{
		{models.StackGo, "A scalable Go service"},
		{models.StackNodeJS, "A scalable Node.js service"},
		{models.StackPython, "A scalable Python service"},
		{models.StackJava, "A scalable Java service"},
		{models.StackDotNet, ""},
	}
	for _, tt := range tests {
		s, _ := reg.Lookup(tt.stack)
		if got := DefaultDescription(s); got != tt.want {
			t.Errorf("DefaultDescription(%s) = %q, want %q", tt.stack, got, tt.want)
		}
	}
}

func TestNodePackageJSON(t *testing.T) {
	t.Parallel()
	reg := newTestRegistry(t)
	s, _ := reg.Lookup(models.StackNodeJS)

	files, err := s.BaseFiles(&models.Configuration{ProjectName: "api", Description: "Edge <api> & co", TechStack: models.StackNodeJS})
	if err != nil {
		t.Fatalf("BaseFiles: %v", err)
	}

	want := `{
  "name": "api",
  "version": "1.0.0",
  "description": "Edge <api> & co",
  "main": "src/index.js",
  "scripts": {
    "start": "node src/index.js",
    "dev": "nodemon src/index.js",
    "test": "jest",
    "test:coverage": "jest --coverage",
    "lint": "eslint src/",
    "lint:fix": "eslint src/ --fix",
    "security:audit": "npm audit",
    "security:check": "npm audit --audit-level moderate"
  },
  "dependencies": {
    "express": "^4.18.2",
    "helmet": "^7.0.0",
    "cors": "^2.8.5",
    "express-rate-limit": "^6.8.1",
    "prom-client": "^14.2.0",
    "winston": "^3.10.0",
    "dotenv": "^16.3.1"
  },
  "devDependencies": {
    "nodemon": "^3.0.1",
    "jest": "^29.6.2",
    "supertest": "^6.3.3",
    "eslint": "^8.45.0",
    "@eslint/js": "^8.45.0"
  },
  "engines": {
    "node": ">=18.0.0"
  }
}`
	if files[0].Content != want {
		t.Errorf("package.json =\n%s\nwant\n%s", files[0].Content, want)
	}
	if !strings.Contains(files[1].Content, "service: 'api',") {
		t.Error("src/index.js does not embed the project name")
	}
	if !strings.Contains(files[1].Content, "`Server running on port ${PORT}`") {
		t.Error("src/index.js lost its runtime template literal")
	}
}

func TestDotNetStack(t *testing.T) {
	t.Parallel()
	reg := newTestRegistry(t)
	s, _ := reg.Lookup(models.StackDotNet)

	files, err := s.BaseFiles(&models.Configuration{ProjectName: "Billing", TechStack: models.StackDotNet})
	if err != nil {
		t.Fatalf("BaseFiles: %v", err)
	}

	if files[0].Path != "Billing.csproj" {
		t.Errorf("csproj path = %q", files[0].Path)
	}
	if !strings.Contains(files[2].Content, "namespace Billing.Controllers;") {
		t.Error("StatusController.cs has wrong namespace")
	}
	if !strings.Contains(files[4].Content, `ENTRYPOINT ["dotnet", "Billing.dll"]`) {
		t.Error("Dockerfile has wrong entrypoint")
	}

	wantSettings := `{
  "Logging": {
    "LogLevel": {
      "Default": "Information",
      "Microsoft.AspNetCore": "Warning"
    }
  },
  "AllowedHosts": "*",
  "Serilog": {
    "Using": [
      "Serilog.Sinks.Console"
    ],
    "MinimumLevel": "Information",
    "WriteTo": [
      {
        "Name": "Console",
        "Args": {
          "outputTemplate": "{Timestamp:yyyy-MM-dd HH:mm:ss.fff zzz} [{Level:u3}] {Message:lj}{NewLine}{Exception}"
        }
      }
    ]
  }
}`
	if files[3].Content != wantSettings {
		t.Errorf("appsettings.json =\n%s\nwant\n%s", files[3].Content, wantSettings)
	}
}

func TestJavaStackPassthroughPlaceholder(t *testing.T) {
	t.Parallel()
	reg := newTestRegistry(t)
	s, _ := reg.Lookup(models.StackJava)

	files, err := s.BaseFiles(&models.Configuration{ProjectName: "inventory", TechStack: models.StackJava})
	if err != nil {
		t.Fatalf("BaseFiles: %v", err)
	}
	yml := files[3].Content
	if !strings.Contains(yml, "password: ${ADMIN_PASSWORD:changeme}") {
		t.Errorf("application.yml lost the Spring placeholder:\n%s", yml)
	}
	if !strings.Contains(files[0].Content, "<description>A scalable Java service</description>") {
		t.Error("pom.xml missing default description")
	}
}
