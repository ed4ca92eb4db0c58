// Package stage prepares the directory actually served over HTTP. Unpackaged
// runs serve the located directory in place; packaged runs extract the
// embedded files into a temporary directory first.
package stage

import (
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
)

// Root is the serve root plus ownership of its backing temp directory, if
// any. The bootstrap releases it on every exit path.
type Root struct {
	Path string

	fs      afero.Fs
	temp    bool
	release sync.Once
}

// Temporary reports whether Path is a staged temp directory owned by this Root.
func (r *Root) Temporary() bool { return r.temp }

// Release removes the staged temp directory. Best-effort: failures are
// swallowed, repeat calls are no-ops, and pass-through roots are untouched.
func (r *Root) Release() {
	r.release.Do(func() {
		if r.temp {
			_ = r.fs.RemoveAll(r.Path)
		}
	})
}

// Passthrough wraps an on-disk directory that needs no staging.
func Passthrough(dir string) *Root {
	return &Root{Path: dir}
}

// Extract copies every file in src into a fresh uniquely-named temp directory
// on dest and returns a Root owning it.
func Extract(src fs.FS, dest afero.Fs) (*Root, error) {
	tmpDir, err := afero.TempDir(dest, "", "artboard_")
	if err != nil {
		return nil, fmt.Errorf("failed to create staging directory: %w", err)
	}

	root := &Root{Path: tmpDir, fs: dest, temp: true}
	if err := copyTree(src, dest, tmpDir); err != nil {
		root.Release()
		return nil, err
	}
	return root, nil
}

func copyTree(src fs.FS, dest afero.Fs, dstDir string) error {
	return fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		target := filepath.Join(dstDir, filepath.FromSlash(path))
		if d.IsDir() {
			if err := dest.MkdirAll(target, 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", target, err)
			}
			return nil
		}

		in, err := src.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open bundled file %s: %w", path, err)
		}
		defer func() { _ = in.Close() }()

		out, err := dest.Create(target)
		if err != nil {
			return fmt.Errorf("failed to create staged file %s: %w", target, err)
		}
		defer func() { _ = out.Close() }()

		if _, err := io.Copy(out, in); err != nil {
			return fmt.Errorf("failed to copy %s: %w", path, err)
		}
		return nil
	})
}
