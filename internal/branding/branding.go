// Package branding provides compile-time identity values for the CLI.
//
// branding.yaml is embedded with //go:embed and overlaid on hard defaults,
// so a fork only has to edit the YAML file to rename the tool.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName       string `yaml:"cli_name"`
	DisplayName   string `yaml:"display_name"`
	Description   string `yaml:"description"`
	HomeDir       string `yaml:"home_dir"`
	EnvPrefix     string `yaml:"env_prefix"`
	WorkspaceFile string `yaml:"workspace_file"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:       "buildpin",
			DisplayName:   "Buildpin",
			Description:   "Reproducible configuration pass for multi-project native builds",
			HomeDir:       ".buildpin",
			EnvPrefix:     "BUILDPIN",
			WorkspaceFile: "workspace.yaml",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "buildpin").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".buildpin").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "BUILDPIN").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// WorkspaceFile returns the default workspace descriptor file name.
func WorkspaceFile() string { load(); return defaults.WorkspaceFile }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("home") → "BUILDPIN_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
