package configloader

import (
	"os"
	"path/filepath"
)

// configFileNames are the recognized project config file names, in
// precedence order.
//
//nolint:gochecknoglobals // Fixed lookup table
var configFileNames = []string{
	".gohighlight.yaml",
	".gohighlight.yml",
}

// Discover walks from dir toward the filesystem root and returns the
// first project config file found, or the empty string.
func Discover(dir string) string {
	for {
		for _, name := range configFileNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
