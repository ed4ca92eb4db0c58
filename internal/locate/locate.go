// Package locate decides which directory holds the art board files.
package locate

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// bundledDir is the conventional root inside the embedded file set.
const bundledDir = "static_files"

// candidateDirs is the fixed priority order searched beside the executable
// when running unpackaged.
var candidateDirs = []string{"build", "dist", "public", "www", "out", "static", "static_files"}

// Bundled returns the part of the embedded tree to serve: the static_files
// subdirectory when present, otherwise the embedded root itself.
func Bundled(efs fs.FS) fs.FS {
	if info, err := fs.Stat(efs, bundledDir); err == nil && info.IsDir() {
		if sub, err := fs.Sub(efs, bundledDir); err == nil {
			return sub
		}
	}
	return efs
}

// Beside returns the directory to serve when running from disk: the first
// existing candidate under baseDir, or baseDir itself when none exist.
func Beside(fsys afero.Fs, baseDir string) string {
	for _, name := range candidateDirs {
		dir := filepath.Join(baseDir, name)
		if ok, err := afero.DirExists(fsys, dir); err == nil && ok {
			return dir
		}
	}
	return baseDir
}

// ExecutableDir returns the directory containing the running binary, falling
// back to the working directory when the executable path cannot be resolved.
func ExecutableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}
