//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv holds paths to an isolated Flutter-style checkout:
//
//	<Root>/android/workspace.yaml
//	<Root>/plugins/<name>/android
//	<Root>/build             (shared output root)
type testEnv struct {
	HomeDir       string // BUILDPIN_HOME
	Root          string
	WorkspacePath string
}

// setupTestEnv creates isolated temp directories and points BUILDPIN_HOME at
// one of them so user settings never leak into the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir: t.TempDir(),
		Root:    filepath.Join(t.TempDir(), "myapp"),
	}
	env.WorkspacePath = filepath.Join(env.Root, "android", "workspace.yaml")
	t.Setenv("BUILDPIN_HOME", env.HomeDir)

	for _, sub := range []string{"android/app", "plugins"} {
		if err := os.MkdirAll(filepath.Join(env.Root, sub), 0o755); err != nil {
			t.Fatalf("creating %s: %v", sub, err)
		}
	}
	return env
}

// writeWorkspace writes the descriptor for env.
func writeWorkspace(t *testing.T, env *testEnv, content string) {
	t.Helper()
	writeFile(t, env.WorkspacePath, content)
}

// sharedRoot is where every subproject's output should land.
func (e *testEnv) sharedRoot() string {
	return filepath.Join(e.Root, "build")
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s", path)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory", path)
	}
}

func assertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected %s to not exist (err=%v)", path, err)
	}
}

func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("expected %s to contain %q", path, substr)
	}
}

const flutterWorkspace = `name: android
repositories: [google, mavenCentral]
subprojects:
  - name: app
    path: app
    plugins:
      - id: com.android.application
        version: 8.7.0
      - id: org.jetbrains.kotlin.android
        version: 2.1.0
      - id: dev.flutter.flutter-gradle-plugin
        extension: flutter
    extensions:
      android:
        compile_sdk: 34
        min_sdk: 21
        namespace: com.example.myapp
      kotlin:
        jvm_target: "17"
      flutter:
        source: ../..
  - name: camera_android
    path: ../plugins/camera_android/android
    plugins:
      - id: com.android.library
        version: 8.1.0
    extensions:
      android:
        compile_sdk: 33
  - name: shared_preferences_android
    path: ../plugins/shared_preferences_android/android
    depends_on: [camera_android]
    plugins:
      - id: com.android.library
        version: 8.5.0
    extensions:
      android:
        compile_sdk: 35
  - name: old_sensor
    path: ../plugins/old_sensor/android
    plugins:
      - id: com.android.library
        version: 4.1.0
    extensions:
      android:
        compile_sdk: 29
  - name: platform_interface
    path: ../plugins/platform_interface/android
    plugins:
      - id: org.jetbrains.kotlin.android
  - name: asset_delivery
    path: ../plugins/asset_delivery/android
    plugins:
      - id: com.android.asset-pack
        extension: android
`
