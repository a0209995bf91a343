// Package task holds the named tasks a workspace exposes to its users. The
// configuration pass registers exactly one, "clean", which deletes the
// shared output tree.
package task
