package meshgen

import "testing"

func TestSphereIndicesInRange(t *testing.T) {
	ml := Sphere(2, 8, 12)
	if len(ml.Positions) == 0 {
		t.Fatalf("Sphere produced no vertices")
	}
	if len(ml.Normals) != len(ml.Positions) {
		t.Fatalf("Normals length %d does not match Positions length %d", len(ml.Normals), len(ml.Positions))
	}
	for _, idx := range ml.SubMeshIndices[0] {
		if idx < 0 || idx >= len(ml.Positions) {
			t.Fatalf("index %d out of range for %d vertices", idx, len(ml.Positions))
		}
	}
	if len(ml.SubMeshIndices[0])%3 != 0 {
		t.Fatalf("triangle index list length %d is not a multiple of 3", len(ml.SubMeshIndices[0]))
	}
}

func TestTorusIndicesInRange(t *testing.T) {
	ml := Torus(3, 1, 16, 8)
	for _, idx := range ml.SubMeshIndices[0] {
		if idx < 0 || idx >= len(ml.Positions) {
			t.Fatalf("index %d out of range for %d vertices", idx, len(ml.Positions))
		}
	}
}

func TestCubeHasEightVerticesAndTwelveTriangles(t *testing.T) {
	ml := Cube(1)
	if len(ml.Positions) != 8 {
		t.Errorf("Cube: got %d vertices, want 8", len(ml.Positions))
	}
	if got := len(ml.SubMeshIndices[0]) / 3; got != 12 {
		t.Errorf("Cube: got %d triangles, want 12", got)
	}
}

func TestPlaneNormalsPointUp(t *testing.T) {
	ml := Plane(4, 4)
	for i, n := range ml.Normals {
		if n.Y != 1 || n.X != 0 || n.Z != 0 {
			t.Fatalf("Plane normal %d: got %v, want (0,1,0)", i, n)
		}
	}
}
