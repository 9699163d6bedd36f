package testsupport

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// WriteFile writes content to path on fsys, creating parent directories.
func WriteFile(t testing.TB, fsys afero.Fs, path, content string) {
	t.Helper()

	if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := afero.WriteFile(fsys, path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteSizedFile fills path on fsys with the requested number of bytes using a
// repeating pattern. A size <= 0 writes a single byte.
func WriteSizedFile(t testing.TB, fsys afero.Fs, path string, size int64) {
	t.Helper()

	if size <= 0 {
		size = 1
	}
	WriteFile(t, fsys, path, string(bytes.Repeat([]byte{0x42}, int(size))))
}
