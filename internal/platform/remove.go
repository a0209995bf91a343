package platform

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// RemoveTree deletes path and everything below it. A missing path is not an
// error. When the first attempt fails on permissions, directories are made
// writable and the removal is retried once.
func RemoveTree(path string) error {
	if path == "" || path == string(filepath.Separator) {
		return fmt.Errorf("refusing to remove %q", path)
	}

	err := os.RemoveAll(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrPermission) {
		return fmt.Errorf("removing %s: %w", path, err)
	}

	if werr := makeWritable(path); werr != nil {
		return fmt.Errorf("removing %s: %w", path, err)
	}
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("removing %s: %w", path, err)
	}
	return nil
}

// makeWritable grants the owner write permission on every directory below
// root so their entries can be unlinked.
func makeWritable(root string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			// Unreadable directory: fix it and keep walking.
			if errors.Is(err, fs.ErrPermission) && d != nil && d.IsDir() {
				return Chmod(p, DirPermWritable)
			}
			return err
		}
		if d.IsDir() {
			return Chmod(p, DirPermWritable)
		}
		return nil
	})
}
