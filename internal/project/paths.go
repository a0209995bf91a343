package project

import "path/filepath"

// BuildDirName is the conventional per-project output directory name.
const BuildDirName = "build"

// DefaultOutputDir returns the per-project output directory used before any
// redirect.
func DefaultOutputDir(projectDir string) string {
	return filepath.Join(projectDir, BuildDirName)
}

// SharedRoot resolves the shared output root from the root project's own
// output directory and a relative offset ("../../build" for a Flutter
// android/ tree). The result is cleaned.
func SharedRoot(rootOutputDir, offset string) string {
	return filepath.Clean(filepath.Join(rootOutputDir, offset))
}

// OutputDirFor returns <sharedRoot>/<name>.
func OutputDirFor(sharedRoot, name string) string {
	return filepath.Join(sharedRoot, name)
}
