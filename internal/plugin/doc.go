// Package plugin is the catalog of build plugins a subproject may apply.
// Applying a plugin registers its extension on the subproject; which
// extension type is registered can depend on the plugin version, matched
// with semver constraints.
package plugin
