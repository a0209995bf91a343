// Package override applies a fixed compile version to every subproject of a
// build and redirects each subproject's output directory to a shared root.
//
// The override is advisory. A subproject without the target extension, or
// whose extension cannot take the version, is left as it was and the pass
// carries on; the reason is kept in the Result so callers can inspect it.
package override
