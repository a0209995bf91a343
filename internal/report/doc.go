// Package report renders the outcome of a configuration pass as JSON, for
// people and for tools that want to check what was overridden.
package report
