package greeter

import (
	"os"
	"strings"

	"github.com/spf13/afero"
)

// readLines splits a file into lines that keep their terminators, so an
// untouched line is written back byte for byte.
func readLines(fs afero.Fs, name string) ([]string, os.FileMode, error) {
	info, err := fs.Stat(name)
	if err != nil {
		return nil, 0, err
	}
	data, err := afero.ReadFile(fs, name)
	if err != nil {
		return nil, 0, err
	}

	lines := strings.SplitAfter(string(data), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines, info.Mode().Perm(), nil
}

// writeLines overwrites name in place. A crash mid-write leaves a partial
// file; the installer treats that as a failed install anyway.
func writeLines(fs afero.Fs, name string, lines []string, perm os.FileMode) error {
	return afero.WriteFile(fs, name, []byte(strings.Join(lines, "")), perm)
}

// isRegularFile reports whether name exists and is not a directory or device.
func isRegularFile(fs afero.Fs, name string) bool {
	info, err := fs.Stat(name)
	return err == nil && info.Mode().IsRegular()
}
