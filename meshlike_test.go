package meshsimplify

import "testing"

type collectingLogger struct {
	messages []string
}

func (l *collectingLogger) Warnf(format string, args ...any) {
	l.messages = append(l.messages, format)
}

func cubeMeshLike() MeshLike {
	positions := []Vector3D{
		{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1},
		{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1},
	}
	indices := []int{
		0, 2, 1, 0, 3, 2,
		4, 5, 6, 4, 6, 7,
		0, 1, 5, 0, 5, 4,
		3, 7, 6, 3, 6, 2,
		0, 4, 7, 0, 7, 3,
		1, 2, 6, 1, 6, 5,
	}
	return MeshLike{Positions: positions, SubMeshIndices: [][]int{indices}}
}

func TestInitializeRejectsNilPositions(t *testing.T) {
	m := New()
	err := m.Initialize(MeshLike{SubMeshIndices: [][]int{{0, 1, 2}}}, DefaultOptions())
	if _, ok := err.(*InvalidArgumentError); !ok {
		t.Fatalf("expected InvalidArgumentError, got %v", err)
	}
}

func TestInitializePopulatesVertexAndTriangleCounts(t *testing.T) {
	m := New()
	if err := m.Initialize(cubeMeshLike(), DefaultOptions()); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if got := m.VertexCount(); got != 8 {
		t.Errorf("VertexCount: got %d, want 8", got)
	}
	if got := m.TriangleCount(); got != 12 {
		t.Errorf("TriangleCount: got %d, want 12", got)
	}
	if got := m.SubMeshCount(); got != 1 {
		t.Errorf("SubMeshCount: got %d, want 1", got)
	}
}

func TestSetNormalsClearsOnLengthMismatch(t *testing.T) {
	m := New()
	if err := m.Initialize(cubeMeshLike(), DefaultOptions()); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	logger := &collectingLogger{}
	m.SetLogger(logger)

	m.SetNormals([]Vector3D{{X: 0, Y: 0, Z: 1}}) // length 1, vertex count 8
	if m.Normals() != nil {
		t.Errorf("mismatched normals should be cleared, got %v", m.Normals())
	}
	if len(logger.messages) != 1 {
		t.Errorf("expected exactly one warning, got %d", len(logger.messages))
	}
}

func TestAddSubMeshTrianglesRejectsNonMultipleOfThree(t *testing.T) {
	m := New()
	if err := m.Initialize(cubeMeshLike(), DefaultOptions()); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if err := m.AddSubMeshTriangles([]int{0, 1}); err == nil {
		t.Fatalf("expected an error for a non-multiple-of-3 index list")
	}
}

func TestGetSubMeshTrianglesRoundTrips(t *testing.T) {
	m := New()
	ml := cubeMeshLike()
	if err := m.Initialize(ml, DefaultOptions()); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	got, err := m.GetSubMeshTriangles(0)
	if err != nil {
		t.Fatalf("GetSubMeshTriangles: %v", err)
	}
	if len(got) != len(ml.SubMeshIndices[0]) {
		t.Fatalf("got %d indices, want %d", len(got), len(ml.SubMeshIndices[0]))
	}
}

func TestGetSubMeshTrianglesOutOfRange(t *testing.T) {
	m := New()
	if err := m.Initialize(cubeMeshLike(), DefaultOptions()); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if _, err := m.GetSubMeshTriangles(1); err == nil {
		t.Fatalf("expected OutOfRangeError for an unknown sub-mesh index")
	}
}
