package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("BUILDPIN_HOME", t.TempDir())
	Load()

	s, err := Current()
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}
	want := Settings{
		CompileSDK:   DefaultCompileSDK,
		OutputOffset: DefaultOutputOffset,
		Aggregator:   DefaultAggregator,
		Extension:    DefaultExtension,
	}
	if s != want {
		t.Errorf("Current() = %+v, want %+v", s, want)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("BUILDPIN_HOME", home)
	content := "compile_sdk: 35\naggregator: runner\n"
	if err := os.WriteFile(filepath.Join(home, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	Load()

	s, err := Current()
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}
	if s.CompileSDK != 35 {
		t.Errorf("CompileSDK = %d, want 35", s.CompileSDK)
	}
	if s.Aggregator != "runner" {
		t.Errorf("Aggregator = %q, want %q", s.Aggregator, "runner")
	}
	if s.OutputOffset != DefaultOutputOffset {
		t.Errorf("OutputOffset = %q, want default", s.OutputOffset)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("BUILDPIN_HOME", home)
	if err := os.WriteFile(filepath.Join(home, "config.yaml"), []byte("compile_sdk: 35\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("BUILDPIN_COMPILE_SDK", "34")
	Load()

	s, err := Current()
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}
	if s.CompileSDK != 34 {
		t.Errorf("CompileSDK = %d, want 34", s.CompileSDK)
	}
}

func TestSetAndGet(t *testing.T) {
	home := t.TempDir()
	t.Setenv("BUILDPIN_HOME", home)
	Load()

	if err := Set(KeyOutputOffset, "../out"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if got := Get(KeyOutputOffset); got != "../out" {
		t.Errorf("Get() = %q, want %q", got, "../out")
	}

	// A fresh load reads the value back from disk.
	Load()
	if got := Get(KeyOutputOffset); got != "../out" {
		t.Errorf("Get() after reload = %q, want %q", got, "../out")
	}
	if _, err := os.Stat(FilePath()); err != nil {
		t.Errorf("config file not written: %v", err)
	}
}

func TestSet_UnknownKey(t *testing.T) {
	t.Setenv("BUILDPIN_HOME", t.TempDir())
	Load()

	err := Set("mirror", "x")
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "unknown config key") {
		t.Errorf("error = %v, want unknown config key", err)
	}
}

func TestSettingsValidate(t *testing.T) {
	base := Settings{CompileSDK: 36, OutputOffset: "../../build", Aggregator: "app", Extension: "android"}

	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr bool
	}{
		{"valid", func(*Settings) {}, false},
		{"zero sdk", func(s *Settings) { s.CompileSDK = 0 }, true},
		{"empty extension", func(s *Settings) { s.Extension = "" }, true},
		{"absolute offset", func(s *Settings) { s.OutputOffset = "/tmp/build" }, true},
		{"empty aggregator allowed", func(s *Settings) { s.Aggregator = "" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := base
			tt.mutate(&s)
			err := s.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSet_InvalidCompileSDK(t *testing.T) {
	t.Setenv("BUILDPIN_HOME", t.TempDir())
	Load()

	for _, v := range []string{"abc", "0", "-3"} {
		if err := Set(KeyCompileSDK, v); err == nil {
			t.Errorf("Set(compile_sdk, %q) succeeded, want error", v)
		}
	}
	if _, err := os.Stat(FilePath()); !os.IsNotExist(err) {
		t.Error("config file written for rejected value")
	}
}

func TestSet_InvalidValues(t *testing.T) {
	t.Setenv("BUILDPIN_HOME", t.TempDir())
	Load()

	tests := []struct {
		key, value string
	}{
		{KeyOutputOffset, "/abs/build"},
		{KeyExtension, ""},
	}
	for _, tt := range tests {
		if err := Set(tt.key, tt.value); err == nil {
			t.Errorf("Set(%s, %q) succeeded, want error", tt.key, tt.value)
		}
	}
	if _, err := os.Stat(FilePath()); !os.IsNotExist(err) {
		t.Error("config file written for rejected value")
	}
	if _, err := Current(); err != nil {
		t.Errorf("Current() error = %v after rejected writes", err)
	}
}
