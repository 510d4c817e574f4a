package gltfimport

import (
	"path/filepath"
	"testing"
)

func TestLoadRejectsMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "does-not-exist.gltf")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func TestReadFloat32DecodesLittleEndian(t *testing.T) {
	// 1.5f little-endian.
	b := []byte{0x00, 0x00, 0xc0, 0x3f}
	if got := readFloat32(b); got != 1.5 {
		t.Errorf("readFloat32: got %v, want 1.5", got)
	}
}
