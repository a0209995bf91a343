// Package lifecycle drives the configuration phase of a workspace. It
// orders subprojects dependencies-first with the aggregating subproject
// last, evaluates each one (plugins, extension settings, default output
// directory) and then runs the registered post-evaluation hooks against it.
package lifecycle
