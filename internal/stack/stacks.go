package stack

import (
	"github.com/secforge/secforge/internal/template"
	"github.com/secforge/secforge/pkg/models"
)

func newGoStack(r template.Renderer) Stack {
	return &templateStack{
		id:                 models.StackGo,
		defaultDescription: "A scalable Go service",
		renderer:           r,
		artifacts: []artifact{
			{output: at("go.mod"), template: "go.mod.tmpl"},
			{output: at("cmd/server/main.go"), template: "main.go.tmpl"},
			{output: at("Dockerfile"), template: "Dockerfile.tmpl"},
			{output: at("README.md"), template: "README.md.tmpl"},
		},
	}
}

func newNodeStack(r template.Renderer) Stack {
	return &templateStack{
		id:                 models.StackNodeJS,
		defaultDescription: "A scalable Node.js service",
		renderer:           r,
		artifacts: []artifact{
			{output: at("package.json"), build: buildPackageJSON},
			{output: at("src/index.js"), template: "index.js.tmpl"},
			{output: at("Dockerfile"), template: "Dockerfile.tmpl"},
			{output: at("healthcheck.js"), template: "healthcheck.js.tmpl"},
		},
	}
}

func newPythonStack(r template.Renderer) Stack {
	return &templateStack{
		id:                 models.StackPython,
		defaultDescription: "A scalable Python service",
		renderer:           r,
		artifacts: []artifact{
			{output: at("requirements.txt"), template: "requirements.txt.tmpl"},
			{output: at("src/main.py"), template: "main.py.tmpl"},
			{output: at("Dockerfile"), template: "Dockerfile.tmpl"},
		},
	}
}

func newJavaStack(r template.Renderer) Stack {
	return &templateStack{
		id:                 models.StackJava,
		defaultDescription: "A scalable Java service",
		renderer:           r,
		artifacts: []artifact{
			{output: at("pom.xml"), template: "pom.xml.tmpl"},
			{output: at("src/main/java/com/example/Application.java"), template: "Application.java.tmpl"},
			{output: at("src/main/java/com/example/controller/StatusController.java"), template: "StatusController.java.tmpl"},
			{output: at("src/main/resources/application.yml"), template: "application.yml.tmpl"},
			{output: at("Dockerfile"), template: "Dockerfile.tmpl"},
		},
	}
}

func newDotNetStack(r template.Renderer) Stack {
	return &templateStack{
		id:       models.StackDotNet,
		renderer: r,
		artifacts: []artifact{
			{output: csprojPath, template: "project.csproj.tmpl"},
			{output: at("Program.cs"), template: "Program.cs.tmpl"},
			{output: at("Controllers/StatusController.cs"), template: "StatusController.cs.tmpl"},
			{output: at("appsettings.json"), build: buildAppSettings},
			{output: at("Dockerfile"), template: "Dockerfile.tmpl"},
		},
	}
}

func csprojPath(cfg *models.Configuration) string {
	return cfg.ProjectName + ".csproj"
}
