// Package config resolves user-supplied configuration values.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath resolves the shell conventions a configured path may carry:
// a leading ~ for the home directory and $VAR environment references.
// Parts that cannot be resolved are left untouched.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	} else if rest, ok := strings.CutPrefix(path, "~/"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, rest)
		}
	}

	return os.ExpandEnv(path)
}
