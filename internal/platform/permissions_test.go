package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestChmod_WritableDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "intermediates")
	if err := os.Mkdir(dir, 0o555); err != nil {
		t.Fatal(err)
	}

	if err := Chmod(dir, DirPermWritable); err != nil {
		t.Fatalf("Chmod() error = %v", err)
	}

	if runtime.GOOS == "windows" {
		return
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != DirPermWritable {
		t.Errorf("permissions = %o, want %o", perm, DirPermWritable)
	}
}

func TestChmod_Missing(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Chmod is a no-op on Windows")
	}
	if err := Chmod(filepath.Join(t.TempDir(), "nope"), 0o700); err == nil {
		t.Error("Chmod on a missing path should fail")
	}
}
