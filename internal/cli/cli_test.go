package cli

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/secforge/secforge/internal/cli/wizard"
	"github.com/secforge/secforge/internal/config"
	"github.com/secforge/secforge/internal/export"
	"github.com/secforge/secforge/internal/project"
	"github.com/secforge/secforge/internal/ui"
)

var quickArgs = []string{
	"--quick", "--name", "payments-api", "--stack", "go",
	"--deploy", "kubernetes", "--cicd", "github",
}

// setupDeps installs fresh dependencies with a plain, headless UI.
func setupDeps(t *testing.T) *Dependencies {
	t.Helper()
	if err := InitDependencies(); err != nil {
		t.Fatalf("InitDependencies() error = %v", err)
	}
	d := GetDeps()
	d.Theme = ui.NewTheme(true)
	d.Headless.ForceHeadless(true)
	t.Cleanup(func() { SetDeps(nil) })
	return d
}

// resetFlags restores every flag of cmd and its subcommands to its default,
// since the command tree is shared between tests.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the root command with args and returns combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

type fakeUploader struct {
	keys []string
	data [][]byte
}

func (u *fakeUploader) Upload(_ context.Context, key string, data []byte) (string, error) {
	u.keys = append(u.keys, key)
	u.data = append(u.data, data)
	return "artifacts/" + key, nil
}

func TestRootCmd_Subcommands(t *testing.T) {
	for _, name := range []string{"generate", "preview", "stacks", "wizard"} {
		found := false
		for _, cmd := range rootCmd.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("%s should be registered as a subcommand of root", name)
		}
	}
}

func TestGenerateCmd_HasFlags(t *testing.T) {
	flags := []string{
		"config", "name", "description", "stack", "deploy", "cicd",
		"security", "compliance", "monitoring", "custom-file", "quick",
		"out", "zip", "upload", "upload-prefix", "collision", "strict", "delay",
	}
	for _, name := range flags {
		if generateCmd.Flags().Lookup(name) == nil {
			t.Errorf("generate command should have --%s flag", name)
		}
	}
}

func TestGenerate_QuickWritesTree(t *testing.T) {
	setupDeps(t)
	out := filepath.Join(t.TempDir(), "payments-api")

	stdout, err := execute(t, append([]string{"generate", "--out", out}, quickArgs...)...)
	if err != nil {
		t.Fatalf("generate error = %v\n%s", err, stdout)
	}

	for _, p := range []string{
		"go.mod",
		"cmd/server/main.go",
		"Dockerfile",
		"README.md",
		".github/workflows/security.yml",
		".github/dependabot.yml",
		".github/workflows/ci.yml",
		"deployments/k8s/base/deployment.yaml",
		"deployments/k8s/base/service.yaml",
		"monitoring/prometheus/prometheus.yml",
		"monitoring/grafana/dashboards/service-dashboard.json",
	} {
		if _, err := os.Stat(filepath.Join(out, filepath.FromSlash(p))); err != nil {
			t.Errorf("expected %s to be written: %v", p, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(out, "go.mod"))
	if err != nil {
		t.Fatalf("read go.mod: %v", err)
	}
	if !strings.HasPrefix(string(data), "module payments-api") {
		t.Errorf("go.mod = %q, want module payments-api", data)
	}

	for _, want := range []string{"Generated payments-api", "Files      11", "5 of 5 triggered"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output missing %q:\n%s", want, stdout)
		}
	}
}

func TestGenerate_Zip(t *testing.T) {
	setupDeps(t)
	dir := t.TempDir()

	stdout, err := execute(t, append([]string{"generate", "--zip", "--out", dir}, quickArgs...)...)
	if err != nil {
		t.Fatalf("generate error = %v\n%s", err, stdout)
	}

	zr, err := zip.OpenReader(filepath.Join(dir, "payments-api.zip"))
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	defer func() { _ = zr.Close() }()

	if len(zr.File) != 11 {
		t.Errorf("archive entries = %d, want 11", len(zr.File))
	}
	if _, err := os.Stat(filepath.Join(dir, "go.mod")); !os.IsNotExist(err) {
		t.Error("--zip should not write a directory tree")
	}
}

func TestGenerate_Upload(t *testing.T) {
	d := setupDeps(t)
	up := &fakeUploader{}
	d.NewUploader = func() (export.Uploader, error) { return up, nil }

	stdout, err := execute(t, append([]string{"generate", "--upload", "--upload-prefix", "/releases/"}, quickArgs...)...)
	if err != nil {
		t.Fatalf("generate error = %v\n%s", err, stdout)
	}

	if len(up.keys) != 1 || up.keys[0] != "releases/payments-api.zip" {
		t.Fatalf("uploaded keys = %v, want [releases/payments-api.zip]", up.keys)
	}
	if !strings.Contains(stdout, "artifacts/releases/payments-api.zip") {
		t.Errorf("output should name the upload location:\n%s", stdout)
	}
	if _, err := os.Stat("payments-api"); !os.IsNotExist(err) {
		t.Error("--upload alone should not write a directory tree")
	}
}

func TestGenerate_UploadNotConfigured(t *testing.T) {
	d := setupDeps(t)
	d.NewUploader = func() (export.Uploader, error) {
		return nil, config.ErrStorageNotConfigured
	}

	_, err := execute(t, append([]string{"generate", "--upload"}, quickArgs...)...)
	if !errors.Is(err, config.ErrStorageNotConfigured) {
		t.Fatalf("error = %v, want ErrStorageNotConfigured", err)
	}
}

func TestGenerate_ConfigFileWithOverrides(t *testing.T) {
	setupDeps(t)
	dir := t.TempDir()

	cfgPath := filepath.Join(dir, "secforge.yaml")
	cfgYAML := "project_name: from-file\ntech_stack: python\nsecurity_features: [dependency-scan]\n"
	if err := os.WriteFile(cfgPath, []byte(cfgYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	local := filepath.Join(dir, "policy.md")
	if err := os.WriteFile(local, []byte("# Security policy\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "out")
	stdout, err := execute(t,
		"generate", "-c", cfgPath, "--name", "override",
		"--custom-file", "docs/SECURITY.md="+local,
		"--out", out,
	)
	if err != nil {
		t.Fatalf("generate error = %v\n%s", err, stdout)
	}

	if !strings.Contains(stdout, "Generated override") {
		t.Errorf("--name should override the file:\n%s", stdout)
	}
	for _, p := range []string{"requirements.txt", "src/main.py", ".github/dependabot.yml", "docs/SECURITY.md"} {
		if _, err := os.Stat(filepath.Join(out, filepath.FromSlash(p))); err != nil {
			t.Errorf("expected %s: %v", p, err)
		}
	}
	got, err := os.ReadFile(filepath.Join(out, "docs", "SECURITY.md"))
	if err != nil || string(got) != "# Security policy\n" {
		t.Errorf("custom file content = %q, %v", got, err)
	}
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
		wantMsg string
	}{
		{
			name:    "missing stack",
			args:    []string{"generate", "--name", "x"},
			wantErr: config.ErrInvalidConfig,
		},
		{
			name:    "quick with config",
			args:    []string{"generate", "--quick", "-c", "x.yaml"},
			wantErr: errQuickWithConfig,
		},
		{
			name:    "bad custom file value",
			args:    []string{"generate", "--name", "x", "--stack", "go", "--custom-file", "nolocal"},
			wantMsg: "want path=localfile",
		},
		{
			name:    "unknown collision policy",
			args:    []string{"generate", "--name", "x", "--stack", "go", "--collision", "merge"},
			wantMsg: "unknown collision policy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupDeps(t)
			_, err := execute(t, tt.args...)
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %v, want it to mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestGenerate_StrictRejectsCollision(t *testing.T) {
	setupDeps(t)
	dir := t.TempDir()
	local := filepath.Join(dir, "Dockerfile")
	if err := os.WriteFile(local, []byte("FROM scratch\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := execute(t,
		"generate", "--name", "x", "--stack", "go", "--strict",
		"--custom-file", "Dockerfile="+local, "--out", filepath.Join(dir, "out"),
	)
	if !errors.Is(err, project.ErrPathCollision) {
		t.Fatalf("error = %v, want ErrPathCollision", err)
	}
}

func TestPreview_Tree(t *testing.T) {
	setupDeps(t)

	stdout, err := execute(t, append([]string{"preview"}, quickArgs...)...)
	if err != nil {
		t.Fatalf("preview error = %v", err)
	}
	for _, want := range []string{"payments-api (Go (Golang), 11 files)", "main.go", "deployments/", "└── "} {
		if !strings.Contains(stdout, want) {
			t.Errorf("preview missing %q:\n%s", want, stdout)
		}
	}
}

func TestPreview_File(t *testing.T) {
	setupDeps(t)

	stdout, err := execute(t, append([]string{"preview", "--file", "go.mod"}, quickArgs...)...)
	if err != nil {
		t.Fatalf("preview error = %v", err)
	}
	if !strings.Contains(stdout, "module payments-api") {
		t.Errorf("preview --file go.mod:\n%s", stdout)
	}

	_, err = execute(t, append([]string{"preview", "--file", "nope.txt"}, quickArgs...)...)
	if err == nil || !strings.Contains(err.Error(), "nope.txt") {
		t.Errorf("missing file error = %v", err)
	}
}

func TestStacks(t *testing.T) {
	setupDeps(t)

	stdout, err := execute(t, "stacks")
	if err != nil {
		t.Fatalf("stacks error = %v", err)
	}
	for _, want := range []string{
		"go  Go (Golang)",
		"nodejs  Node.js/TypeScript",
		"python  Python",
		"java  Java/Spring Boot",
		"dotnet  .NET Core",
		"<name>.csproj",
		"package.json",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stacks output missing %q:\n%s", want, stdout)
		}
	}
}

func TestWizard_RefusesHeadless(t *testing.T) {
	setupDeps(t)

	_, err := execute(t, "wizard")
	if !errors.Is(err, wizard.ErrHeadless) {
		t.Fatalf("error = %v, want ErrHeadless", err)
	}
}

func TestWizard_Cancelled(t *testing.T) {
	d := setupDeps(t)
	d.Headless.ForceHeadless(false)
	d.RunForm = func(*huh.Form) error { return huh.ErrUserAborted }

	stdout, err := execute(t, "wizard")
	if err != nil {
		t.Fatalf("cancel should not be an error, got %v", err)
	}
	if !strings.Contains(stdout, "Wizard cancelled.") {
		t.Errorf("output = %q", stdout)
	}
}

func TestDependencies_SetVerbose(t *testing.T) {
	d := setupDeps(t)
	ctx := context.Background()

	if d.Logger.Enabled(ctx, slog.LevelDebug) {
		t.Error("debug logging should be off by default")
	}
	d.SetVerbose(true)
	if !d.Logger.Enabled(ctx, slog.LevelDebug) {
		t.Error("SetVerbose(true) should enable debug logging")
	}
	d.SetVerbose(false)
	if d.Logger.Enabled(ctx, slog.LevelDebug) {
		t.Error("SetVerbose(false) should restore warn level")
	}
}

func TestDependencies_EnsureUploaderOnce(t *testing.T) {
	d := setupDeps(t)
	calls := 0
	d.NewUploader = func() (export.Uploader, error) {
		calls++
		return &fakeUploader{}, nil
	}

	for range 3 {
		if _, err := d.EnsureUploader(); err != nil {
			t.Fatalf("EnsureUploader() error = %v", err)
		}
	}
	if calls != 1 {
		t.Errorf("NewUploader called %d times, want 1", calls)
	}
}
