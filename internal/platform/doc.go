// Package platform provides cross-platform filesystem operations used by
// build tasks: permission changes and recursive tree removal that copes
// with read-only entries left behind by build tools.
package platform
