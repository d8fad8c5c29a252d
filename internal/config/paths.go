package config

import (
	"os"
	"path/filepath"
)

// ExecutableDir locates the directory holding the running binary, following
// symlinks. Falls back to the working directory so tests and `go run` behave.
func ExecutableDir() string {
	if exe, err := os.Executable(); err == nil && exe != "" {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil && resolved != "" {
			exe = resolved
		}
		return filepath.Dir(exe)
	}
	if wd, err := os.Getwd(); err == nil && wd != "" {
		return wd
	}
	return "."
}

// ResolveRuntimePath turns a configured path into an absolute one. Relative
// paths (or an empty value with a fallback subdirectory, such as the default
// upload area) anchor to the executable directory so the server can run from
// any working directory.
func ResolveRuntimePath(raw, fallbackSubdir string) string {
	target := raw
	if target == "" {
		if fallbackSubdir == "" {
			return ExecutableDir()
		}
		target = fallbackSubdir
	}
	if filepath.IsAbs(target) {
		return filepath.Clean(target)
	}
	return filepath.Clean(filepath.Join(ExecutableDir(), target))
}
