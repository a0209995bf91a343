package plugin

import (
	"fmt"
	"sort"

	"github.com/Masterminds/semver/v3"
	"github.com/buildpin-labs/buildpin/internal/project"
	"github.com/buildpin-labs/buildpin/internal/workspace"
)

// Well-known plugin ids.
const (
	AndroidApplication = "com.android.application"
	AndroidLibrary     = "com.android.library"
	KotlinAndroid      = "org.jetbrains.kotlin.android"
)

// Configurable is an extension that accepts settings from workspace.yaml.
type Configurable interface {
	project.Extension
	Configure(settings map[string]interface{}) error
}

// Factory creates the extension a plugin registers.
type Factory func(spec workspace.PluginSpec) Configurable

type variant struct {
	raw        string
	constraint *semver.Constraints // nil matches any version
	factory    Factory
}

// Catalog maps plugin ids to version-dependent extension factories.
type Catalog struct {
	plugins map[string][]variant
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{plugins: make(map[string][]variant)}
}

// Default returns a catalog with the Android and Kotlin plugins.
func Default() *Catalog {
	c := NewCatalog()
	for _, id := range []string{AndroidApplication, AndroidLibrary} {
		mustRegister(c, id, ">= 7.0.0-0", func(workspace.PluginSpec) Configurable {
			return &AndroidExtension{}
		})
		mustRegister(c, id, "< 7.0.0-0", func(spec workspace.PluginSpec) Configurable {
			return &LegacyAndroidExtension{PluginVersion: spec.Version}
		})
	}
	mustRegister(c, KotlinAndroid, "", func(workspace.PluginSpec) Configurable {
		return &KotlinExtension{}
	})
	return c
}

func mustRegister(c *Catalog, id, constraint string, f Factory) {
	if err := c.Register(id, constraint, f); err != nil {
		panic(err)
	}
}

// Register adds a factory for plugin id, used when the applied version
// satisfies constraint. An empty constraint matches every version.
// Variants are tried in registration order; the first one registered also
// serves plugins applied without a version.
func (c *Catalog) Register(id, constraint string, f Factory) error {
	v := variant{raw: constraint, factory: f}
	if constraint != "" {
		cs, err := semver.NewConstraint(constraint)
		if err != nil {
			return fmt.Errorf("plugin %s: invalid constraint %q: %w", id, constraint, err)
		}
		v.constraint = cs
	}
	c.plugins[id] = append(c.plugins[id], v)
	return nil
}

// Known reports whether id has at least one registered variant.
func (c *Catalog) Known(id string) bool {
	return len(c.plugins[id]) > 0
}

// Resolve returns the extension spec's plugin registers. Unknown plugins
// get an OpaqueExtension when spec.Extension names one, and nil otherwise.
func (c *Catalog) Resolve(spec workspace.PluginSpec) (Configurable, error) {
	variants := c.plugins[spec.ID]
	if len(variants) == 0 {
		if spec.Extension == "" {
			return nil, nil
		}
		return &OpaqueExtension{Name: spec.Extension, PluginID: spec.ID}, nil
	}

	if spec.Version == "" {
		return variants[0].factory(spec), nil
	}

	version, err := semver.NewVersion(spec.Version)
	if err != nil {
		return nil, fmt.Errorf("plugin %s: invalid version %q: %w", spec.ID, spec.Version, err)
	}
	for _, v := range variants {
		if v.constraint == nil || v.constraint.Check(version) {
			return v.factory(spec), nil
		}
	}
	return nil, fmt.Errorf("plugin %s: no variant supports version %s", spec.ID, spec.Version)
}

// Apply registers the extensions of every plugin on p, then hands each
// extension its settings block.
func (c *Catalog) Apply(p *project.Subproject, plugins []workspace.PluginSpec, settings map[string]map[string]interface{}) error {
	for _, spec := range plugins {
		ext, err := c.Resolve(spec)
		if err != nil {
			return err
		}
		if ext == nil {
			continue
		}
		if existing := p.Extensions().FindByName(ext.ExtensionName()); existing != nil {
			// The first plugin to register a name owns it.
			continue
		}
		if err := p.Extensions().Add(ext); err != nil {
			return fmt.Errorf("applying plugin %s: %w", spec.ID, err)
		}
	}

	names := make([]string, 0, len(settings))
	for name := range settings {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		block := settings[name]
		ext, ok := p.Extensions().FindByName(name).(Configurable)
		if !ok {
			return fmt.Errorf("extension %q is configured but no applied plugin registers it", name)
		}
		if err := ext.Configure(block); err != nil {
			return fmt.Errorf("configuring extension %q: %w", name, err)
		}
	}
	return nil
}
