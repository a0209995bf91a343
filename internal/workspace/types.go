package workspace

import "path/filepath"

// DefaultRepositories is used when a descriptor lists none.
var DefaultRepositories = []string{"google", "mavenCentral"}

// Workspace is the decoded workspace.yaml.
type Workspace struct {
	Name         string           `yaml:"name" json:"name"`
	BuildDir     string           `yaml:"build_dir,omitempty" json:"build_dir,omitempty"`
	Repositories []string         `yaml:"repositories,omitempty" json:"repositories,omitempty"`
	Subprojects  []SubprojectSpec `yaml:"subprojects" json:"subprojects"`

	// Dir is the absolute directory containing the descriptor. Set by Load.
	Dir string `yaml:"-" json:"-"`
}

// SubprojectSpec declares one subproject.
type SubprojectSpec struct {
	Name       string                            `yaml:"name" json:"name"`
	Path       string                            `yaml:"path,omitempty" json:"path,omitempty"`
	Plugins    []PluginSpec                      `yaml:"plugins,omitempty" json:"plugins,omitempty"`
	DependsOn  []string                          `yaml:"depends_on,omitempty" json:"depends_on,omitempty"`
	Extensions map[string]map[string]interface{} `yaml:"extensions,omitempty" json:"extensions,omitempty"`
}

// PluginSpec references a plugin applied to a subproject. Extension names
// the extension registered by plugins the catalog does not know.
type PluginSpec struct {
	ID        string `yaml:"id" json:"id"`
	Version   string `yaml:"version,omitempty" json:"version,omitempty"`
	Extension string `yaml:"extension,omitempty" json:"extension,omitempty"`
}

// RootOutputDir returns the root project's own output directory, defaulting
// to <Dir>/build.
func (w *Workspace) RootOutputDir() string {
	dir := w.BuildDir
	if dir == "" {
		dir = "build"
	}
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	return filepath.Join(w.Dir, dir)
}

// RepositoryList returns the declared repositories or DefaultRepositories.
func (w *Workspace) RepositoryList() []string {
	if len(w.Repositories) == 0 {
		return append([]string(nil), DefaultRepositories...)
	}
	return append([]string(nil), w.Repositories...)
}

// ProjectDir returns the absolute directory of a subproject. Path defaults
// to the subproject name.
func (w *Workspace) ProjectDir(s SubprojectSpec) string {
	p := s.Path
	if p == "" {
		p = s.Name
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(w.Dir, p)
}

// Find returns the subproject spec with the given name, or nil.
func (w *Workspace) Find(name string) *SubprojectSpec {
	for i := range w.Subprojects {
		if w.Subprojects[i].Name == name {
			return &w.Subprojects[i]
		}
	}
	return nil
}

// Names returns subproject names in declaration order.
func (w *Workspace) Names() []string {
	names := make([]string, len(w.Subprojects))
	for i, s := range w.Subprojects {
		names[i] = s.Name
	}
	return names
}
