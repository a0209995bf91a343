// Package workspace handles parsing and validation of workspace.yaml, the
// descriptor that lists a build's subprojects, the plugins each one applies
// and the extension settings those plugins receive. Descriptors are checked
// against an embedded JSON schema before they are decoded.
package workspace
