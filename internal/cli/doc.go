// Package cli defines the Cobra command tree for the buildpin CLI. Each file
// in this package registers one top-level command (configure, clean, tasks,
// and so on) with the root command. Commands delegate the pass to
// internal/configure and only handle flags and output formatting.
package cli
