// Package project models the subprojects of a build workspace: a name, an
// output directory, and a registry of named extensions contributed by
// plugins. Extensions opt in to a compile version override by implementing
// VersionConfigurable.
package project
