//go:build !embed
// +build !embed

package assets

import "io/fs"

// Packaged reports whether the art board files are compiled into the binary.
// Default builds serve from disk; build with -tags embed to bundle them.
func Packaged() bool { return false }

// FS returns nil in unpackaged builds; callers must check Packaged() first.
func FS() fs.FS { return nil }
