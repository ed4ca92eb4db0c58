package stage

import (
	"bytes"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/spf13/afero"
)

func TestExtract_CopiesTreeByteForByte(t *testing.T) {
	src := fstest.MapFS{
		"index.html":      {Data: []byte("<html>board</html>")},
		"js/board.js":     {Data: []byte("const x = 1;")},
		"img/brush.png":   {Data: []byte{0x89, 0x50, 0x4e, 0x47}},
		"fonts/mono.woff": {Data: []byte("woff-bytes")},
	}
	dest := afero.NewMemMapFs()

	root, err := Extract(src, dest)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	defer root.Release()

	if !root.Temporary() {
		t.Error("Temporary() = false, want true for extracted root")
	}

	for name, file := range src {
		staged := filepath.Join(root.Path, filepath.FromSlash(name))
		data, err := afero.ReadFile(dest, staged)
		if err != nil {
			t.Errorf("staged file %s missing: %v", staged, err)
			continue
		}
		if !bytes.Equal(data, file.Data) {
			t.Errorf("staged %s = %q, want %q", name, data, file.Data)
		}
	}
}

func TestExtract_ReleaseRemovesTempDir(t *testing.T) {
	src := fstest.MapFS{
		"index.html": {Data: []byte("x")},
	}
	dest := afero.NewMemMapFs()

	root, err := Extract(src, dest)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	root.Release()
	if ok, _ := afero.DirExists(dest, root.Path); ok {
		t.Errorf("temp dir %s still exists after Release", root.Path)
	}

	// Repeat calls must stay silent no-ops.
	root.Release()
}

func TestPassthrough_NoStagingNoCleanup(t *testing.T) {
	root := Passthrough("/srv/board")

	if root.Path != "/srv/board" {
		t.Errorf("Path = %q, want %q", root.Path, "/srv/board")
	}
	if root.Temporary() {
		t.Error("Temporary() = true, want false for pass-through root")
	}

	// Release on a pass-through root must not panic or touch anything.
	root.Release()
}
