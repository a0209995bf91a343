package project

import (
	"fmt"
	"sort"
)

// Extension is a named configuration object attached to a subproject by a
// plugin. Its concrete type is opaque to the override pass.
type Extension interface {
	ExtensionName() string
}

// VersionConfigurable is implemented by extensions whose compile target
// version can be overridden.
type VersionConfigurable interface {
	SetCompileVersion(level int) error
}

// VersionReporter is implemented by extensions that expose their current
// compile target version.
type VersionReporter interface {
	CompileVersion() int
}

// ExtensionContainer holds the extensions registered on a subproject, keyed
// by name. The zero value is ready to use.
type ExtensionContainer struct {
	byName map[string]Extension
}

// Add registers ext under its name. Names are unique per container.
func (c *ExtensionContainer) Add(ext Extension) error {
	name := ext.ExtensionName()
	if name == "" {
		return fmt.Errorf("extension of type %T has no name", ext)
	}
	if c.byName == nil {
		c.byName = make(map[string]Extension)
	}
	if _, ok := c.byName[name]; ok {
		return fmt.Errorf("extension %q already registered", name)
	}
	c.byName[name] = ext
	return nil
}

// FindByName returns the extension registered under name, or nil.
func (c *ExtensionContainer) FindByName(name string) Extension {
	if c.byName == nil {
		return nil
	}
	return c.byName[name]
}

// Names returns the registered extension names in sorted order.
func (c *ExtensionContainer) Names() []string {
	names := make([]string, 0, len(c.byName))
	for name := range c.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered extensions.
func (c *ExtensionContainer) Len() int { return len(c.byName) }
