// Package configure runs a complete configuration pass: it loads nothing
// itself, but given a decoded workspace and resolved settings it evaluates
// every subproject, applies the compile version override after each one and
// registers the workspace tasks.
package configure
