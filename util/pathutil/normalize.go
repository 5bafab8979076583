package pathutil

import (
	"path/filepath"
	"runtime"
	"strings"
)

// NormalizeForLookup returns an absolute, symlink-free path suitable for
// comparisons. On case-insensitive filesystems (macOS, Windows) it is also
// lower-cased. A path that does not exist yet is only made absolute.
func NormalizeForLookup(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	canonical, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		canonical = absPath
	}

	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		return strings.ToLower(canonical), nil
	}
	return canonical, nil
}

// SamePath reports whether two paths refer to the same location. Paths that
// cannot be normalized are never the same.
func SamePath(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	na, err := NormalizeForLookup(a)
	if err != nil {
		return false
	}
	nb, err := NormalizeForLookup(b)
	if err != nil {
		return false
	}
	return na == nb
}
