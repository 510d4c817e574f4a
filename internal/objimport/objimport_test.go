package objimport

import (
	"os"
	"path/filepath"
	"testing"
)

const triangleOBJ = `
# a single triangle with normals and UVs
v 0 0 0
v 1 0 0
v 0 1 0
vn 0 0 1
vt 0 0
vt 1 0
vt 0 1
f 1/1/1 2/2/1 3/3/1
`

func writeFixture(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "fixture.obj")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestLoadParsesPositionsNormalsAndUVs(t *testing.T) {
	path := writeFixture(t, triangleOBJ)

	ml, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(ml.Positions) != 3 {
		t.Fatalf("got %d vertices, want 3", len(ml.Positions))
	}
	if ml.Normals == nil {
		t.Fatalf("expected normals to be populated")
	}
	if ml.UV[0].Data == nil {
		t.Fatalf("expected UV channel 0 to be populated")
	}
	if len(ml.SubMeshIndices[0]) != 3 {
		t.Fatalf("got %d indices, want 3", len(ml.SubMeshIndices[0]))
	}
}

func TestLoadDeduplicatesSharedVertices(t *testing.T) {
	const quadOBJ = `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3
f 1 3 4
`
	path := writeFixture(t, quadOBJ)
	ml, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(ml.Positions) != 4 {
		t.Fatalf("expected the shared diagonal vertices to be deduplicated: got %d positions, want 4", len(ml.Positions))
	}
	if len(ml.SubMeshIndices[0]) != 6 {
		t.Fatalf("got %d indices, want 6", len(ml.SubMeshIndices[0]))
	}
}

func TestLoadFanTriangulatesNGonFaces(t *testing.T) {
	const pentagonOBJ = `
v 0 0 0
v 1 0 0
v 1 1 0
v 0.5 1.5 0
v 0 1 0
f 1 2 3 4 5
`
	path := writeFixture(t, pentagonOBJ)
	ml, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := len(ml.SubMeshIndices[0]) / 3; got != 3 {
		t.Fatalf("expected a 5-gon to fan-triangulate into 3 triangles, got %d", got)
	}
}

func TestLoadRejectsMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "does-not-exist.obj")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}
