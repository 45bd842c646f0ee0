// Package util provides the file helpers shared by the cli-helpers packages.
package util

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// AppFs is an afero filesystem. It is stored in a variable so that we can
// replace it with in-memory filesystems for unit tests.
var AppFs = afero.NewOsFs()

// Open opens a new afero file.
func Open(path string) (afero.File, error) {
	return AppFs.Open(path)
}

// ReadFile returns the contents of `filename`.
func ReadFile(filename string) (string, error) {
	a := afero.Afero{
		Fs: AppFs,
	}
	fileBytes, err := a.ReadFile(filename)
	if err != nil {
		return "", err
	}
	return string(fileBytes), nil
}

// WriteFile writes 'data' to the file 'filename' with the given permissions.
func WriteFile(filename string, data []byte, perm os.FileMode) error {
	a := afero.Afero{
		Fs: AppFs,
	}
	return a.WriteFile(filename, data, perm)
}

// FileExists checks if the given path corresponds to an existing file in the
// afero file system.
func FileExists(path string) (bool, error) {
	a := afero.Afero{
		Fs: AppFs,
	}
	return a.Exists(path)
}

// ExpandHome replaces a leading ~ in path with the current home directory.
// Paths without a home prefix, and paths whose home directory cannot be
// resolved, are returned unchanged.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// ReadArgsFile reads command line arguments from a response file: one
// argument per line, with blank lines and #-comments ignored.
func ReadArgsFile(path string) ([]string, error) {
	contents, err := ReadFile(ExpandHome(path))
	if err != nil {
		return nil, err
	}

	var args []string
	for _, line := range strings.Split(contents, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		args = append(args, line)
	}
	return args, nil
}
