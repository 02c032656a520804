package util

import (
	"fmt"
	"os"
	"path/filepath"
)

// Canonicalize resolves symlinks and relative segments and returns an
// absolute path. Every path stored in the catalog goes through this first;
// uniqueness of directories and tracks is defined on the canonical form.
func Canonicalize(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	abs, err := filepath.Abs(resolved)
	if err != nil {
		return "", fmt.Errorf("failed to absolutize %s: %w", resolved, err)
	}
	return abs, nil
}

// IsDir reports whether path exists and is a directory
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsRegularFile reports whether path exists and is a regular file
func IsRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// BareName returns the final path element with its extension stripped.
// Used as the title fallback for files without an embedded title tag.
func BareName(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}
