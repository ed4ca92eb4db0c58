//go:build embed
// +build embed

package assets

import (
	"embed"
	"io/fs"
)

//go:embed all:static_files
var bundledFS embed.FS

// Packaged reports whether the art board files are compiled into the binary.
func Packaged() bool { return true }

// FS returns the embedded file tree.
func FS() fs.FS { return bundledFS }
