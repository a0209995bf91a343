//go:build integration

package integration_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/buildpin-labs/buildpin/internal/config"
	"github.com/buildpin-labs/buildpin/internal/configure"
	"github.com/buildpin-labs/buildpin/internal/override"
	"github.com/buildpin-labs/buildpin/internal/report"
	"github.com/buildpin-labs/buildpin/internal/task"
	"github.com/buildpin-labs/buildpin/internal/workspace"
)

// runPass loads env's workspace with settings resolved from user config.
func runPass(t *testing.T, env *testEnv) *configure.Result {
	t.Helper()

	config.Load()
	settings, err := config.Current()
	if err != nil {
		t.Fatalf("config.Current: %v", err)
	}
	ws, err := workspace.Load(env.WorkspacePath)
	if err != nil {
		t.Fatalf("workspace.Load: %v", err)
	}
	res, err := configure.Run(ws, configure.Options{Settings: settings})
	if err != nil {
		t.Fatalf("configure.Run: %v", err)
	}
	return res
}

// TestFullFlowConfigureBuildClean tests the complete flow:
// configure -> simulate build outputs -> report -> clean -> clean again.
func TestFullFlowConfigureBuildClean(t *testing.T) {
	env := setupTestEnv(t)
	writeWorkspace(t, env, flutterWorkspace)

	// Step 1: Configure.
	res := runPass(t, env)
	if res.SharedRoot != env.sharedRoot() {
		t.Fatalf("SharedRoot = %q, want %q", res.SharedRoot, env.sharedRoot())
	}

	// Step 2: Every subproject writes under <shared>/<name>.
	for _, p := range res.Build.Projects {
		if want := filepath.Join(env.sharedRoot(), p.Name); p.OutputDir != want {
			t.Errorf("%s OutputDir = %q, want %q", p.Name, p.OutputDir, want)
		}
	}

	// Step 3: Outcomes per subproject.
	want := map[string]override.Outcome{
		"app":                        override.Applied,
		"camera_android":             override.Applied,
		"shared_preferences_android": override.Applied,
		"old_sensor":                 override.Failed,
		"platform_interface":         override.Skipped,
		"asset_delivery":             override.Unsupported,
	}
	for name, outcome := range want {
		r, ok := res.Override(name)
		if !ok {
			t.Errorf("no result for %s", name)
			continue
		}
		if r.Outcome != outcome {
			t.Errorf("%s outcome = %v (%v), want %v", name, r.Outcome, r.Reason, outcome)
		}
		if r.Outcome == override.Applied && res.Build.Project(name).CompileVersion("android") != 36 {
			t.Errorf("%s compile version = %d, want 36", name, res.Build.Project(name).CompileVersion("android"))
		}
	}
	if got := res.Build.Project("old_sensor").CompileVersion("android"); got != 29 {
		t.Errorf("old_sensor compile version = %d, want untouched 29", got)
	}

	// Step 4: app is evaluated last.
	order := res.Build.Order()
	if order[len(order)-1] != "app" {
		t.Errorf("evaluation order = %v, want app last", order)
	}

	// Step 5: Simulate build outputs and write the report.
	for _, p := range res.Build.Projects {
		writeFile(t, filepath.Join(p.OutputDir, "outputs", "aar", p.Name+".aar"), "artifact")
	}
	reportPath := filepath.Join(res.SharedRoot, report.FileName)
	if err := report.WriteFile(reportPath, report.New(res)); err != nil {
		t.Fatalf("report.WriteFile: %v", err)
	}
	assertFileContains(t, reportPath, `"outcome": "unsupported"`)
	assertDirExists(t, filepath.Join(env.sharedRoot(), "camera_android", "outputs"))

	// Step 6: Clean twice.
	ctx := context.Background()
	if err := res.Tasks.Run(ctx, task.CleanName); err != nil {
		t.Fatalf("clean: %v", err)
	}
	assertNotExists(t, env.sharedRoot())
	if err := res.Tasks.Run(ctx, task.CleanName); err != nil {
		t.Fatalf("second clean: %v", err)
	}

	// The workspace itself is untouched by clean.
	if _, err := os.Stat(env.WorkspacePath); err != nil {
		t.Errorf("workspace descriptor removed: %v", err)
	}
}

// TestUserConfigChangesPass checks that ~/.buildpin/config.yaml feeds the pass.
func TestUserConfigChangesPass(t *testing.T) {
	env := setupTestEnv(t)
	writeWorkspace(t, env, flutterWorkspace)
	writeFile(t, filepath.Join(env.HomeDir, "config.yaml"), "compile_sdk: 30\noutput_offset: ../out\n")

	res := runPass(t, env)

	if want := filepath.Join(env.Root, "android", "out"); res.SharedRoot != want {
		t.Errorf("SharedRoot = %q, want %q", res.SharedRoot, want)
	}
	if r, _ := res.Override("old_sensor"); r.Outcome != override.Applied {
		t.Errorf("old_sensor outcome = %v, want applied at level 30", r.Outcome)
	}
}

// TestRerunIsDeterministic runs the pass twice and compares reports.
func TestRerunIsDeterministic(t *testing.T) {
	env := setupTestEnv(t)
	writeWorkspace(t, env, flutterWorkspace)

	first := report.New(runPass(t, env))
	second := report.New(runPass(t, env))

	if len(first.Projects) != len(second.Projects) {
		t.Fatalf("project counts differ: %d vs %d", len(first.Projects), len(second.Projects))
	}
	for i := range first.Projects {
		a, b := first.Projects[i], second.Projects[i]
		if a.Name != b.Name || a.OutputDir != b.OutputDir || a.Outcome != b.Outcome || a.CompileVersion != b.CompileVersion {
			t.Errorf("project %d differs: %+v vs %+v", i, a, b)
		}
	}
}
