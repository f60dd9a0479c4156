package stack

import "github.com/secforge/secforge/internal/template"

// Struct field order is the emitted key order.

type packageJSON struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Description     string            `json:"description"`
	Main            string            `json:"main"`
	Scripts         packageScripts    `json:"scripts"`
	Dependencies    packageDeps       `json:"dependencies"`
	DevDependencies packageDevDeps    `json:"devDependencies"`
	Engines         map[string]string `json:"engines"`
}

type packageScripts struct {
	Start         string `json:"start"`
	Dev           string `json:"dev"`
	Test          string `json:"test"`
	TestCoverage  string `json:"test:coverage"`
	Lint          string `json:"lint"`
	LintFix       string `json:"lint:fix"`
	SecurityAudit string `json:"security:audit"`
	SecurityCheck string `json:"security:check"`
}

type packageDeps struct {
	Express          string `json:"express"`
	Helmet           string `json:"helmet"`
	Cors             string `json:"cors"`
	ExpressRateLimit string `json:"express-rate-limit"`
	PromClient       string `json:"prom-client"`
	Winston          string `json:"winston"`
	Dotenv           string `json:"dotenv"`
}

type packageDevDeps struct {
	Nodemon   string `json:"nodemon"`
	Jest      string `json:"jest"`
	Supertest string `json:"supertest"`
	ESLint    string `json:"eslint"`
	ESLintJS  string `json:"@eslint/js"`
}

func buildPackageJSON(ctx *template.TemplateContext) (string, error) {
	return template.MarshalJSON(packageJSON{
		Name:        ctx.ProjectName,
		Version:     "1.0.0",
		Description: ctx.Description,
		Main:        "src/index.js",
		Scripts: packageScripts{
			Start:         "node src/index.js",
			Dev:           "nodemon src/index.js",
			Test:          "jest",
			TestCoverage:  "jest --coverage",
			Lint:          "eslint src/",
			LintFix:       "eslint src/ --fix",
			SecurityAudit: "npm audit",
			SecurityCheck: "npm audit --audit-level moderate",
		},
		Dependencies: packageDeps{
			Express:          "^4.18.2",
			Helmet:           "^7.0.0",
			Cors:             "^2.8.5",
			ExpressRateLimit: "^6.8.1",
			PromClient:       "^14.2.0",
			Winston:          "^3.10.0",
			Dotenv:           "^16.3.1",
		},
		DevDependencies: packageDevDeps{
			Nodemon:   "^3.0.1",
			Jest:      "^29.6.2",
			Supertest: "^6.3.3",
			ESLint:    "^8.45.0",
			ESLintJS:  "^8.45.0",
		},
		Engines: map[string]string{"node": ">=18.0.0"},
	})
}

type appSettings struct {
	Logging      appLogging `json:"Logging"`
	AllowedHosts string     `json:"AllowedHosts"`
	Serilog      appSerilog `json:"Serilog"`
}

type appLogging struct {
	LogLevel appLogLevel `json:"LogLevel"`
}

type appLogLevel struct {
	Default             string `json:"Default"`
	MicrosoftAspNetCore string `json:"Microsoft.AspNetCore"`
}

type appSerilog struct {
	Using        []string      `json:"Using"`
	MinimumLevel string        `json:"MinimumLevel"`
	WriteTo      []serilogSink `json:"WriteTo"`
}

type serilogSink struct {
	Name string            `json:"Name"`
	Args map[string]string `json:"Args"`
}

func buildAppSettings(*template.TemplateContext) (string, error) {
	return template.MarshalJSON(appSettings{
		Logging: appLogging{LogLevel: appLogLevel{
			Default:             "Information",
			MicrosoftAspNetCore: "Warning",
		}},
		AllowedHosts: "*",
		Serilog: appSerilog{
			Using:        []string{"Serilog.Sinks.Console"},
			MinimumLevel: "Information",
			WriteTo: []serilogSink{{
				Name: "Console",
				Args: map[string]string{
					"outputTemplate": "{Timestamp:yyyy-MM-dd HH:mm:ss.fff zzz} [{Level:u3}] {Message:lj}{NewLine}{Exception}",
				},
			}},
		},
	})
}
