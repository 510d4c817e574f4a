package meshsimplify

import (
	"math"
	"testing"
)

func TestPlaneQuadricZeroOnThePlane(t *testing.T) {
	// Plane z = 0, i.e. 0x + 0y + 1z + 0 = 0.
	q := newPlaneQuadric(0, 0, 1, 0)

	cases := []struct{ x, y, z float64 }{
		{0, 0, 0},
		{5, -3, 0},
		{100, 100, 0},
	}
	for _, c := range cases {
		if err := q.VertexError(c.x, c.y, c.z); math.Abs(err) > 1e-9 {
			t.Errorf("point (%v,%v,%v) on the plane: expected ~0 error, got %v", c.x, c.y, c.z, err)
		}
	}

	off := q.VertexError(0, 0, 10)
	if off <= 0 {
		t.Errorf("point off the plane should have positive error, got %v", off)
	}
}

func TestSymmetricMatrixAddIsCommutative(t *testing.T) {
	a := newPlaneQuadric(1, 0, 0, -2)
	b := newPlaneQuadric(0, 1, 0, -3)

	if a.Add(b) != b.Add(a) {
		t.Errorf("quadric addition should commute")
	}
}

func TestOptimalPositionSolvesThreeIntersectingPlanes(t *testing.T) {
	// Three mutually perpendicular planes x=1, y=2, z=3 intersect at (1,2,3);
	// their summed quadric should have (1,2,3) as its unique zero-error
	// minimum.
	q := newPlaneQuadric(1, 0, 0, -1).
		Add(newPlaneQuadric(0, 1, 0, -2)).
		Add(newPlaneQuadric(0, 0, 1, -3))

	pos, ok := q.optimalPosition()
	if !ok {
		t.Fatalf("expected a non-singular system")
	}
	want := Vector3D{X: 1, Y: 2, Z: 3}
	if absDiff(pos.X, want.X) > 1e-9 || absDiff(pos.Y, want.Y) > 1e-9 || absDiff(pos.Z, want.Z) > 1e-9 {
		t.Errorf("optimalPosition: got %v, want %v", pos, want)
	}
	if err := q.VertexError(pos.X, pos.Y, pos.Z); math.Abs(err) > 1e-9 {
		t.Errorf("optimal position should have ~zero error, got %v", err)
	}
}

func TestOptimalPositionSingularWhenUnconstrained(t *testing.T) {
	// A single plane quadric leaves two degrees of freedom unconstrained:
	// the 3x3 block is singular.
	q := newPlaneQuadric(1, 0, 0, -1)
	if _, ok := q.optimalPosition(); ok {
		t.Errorf("expected a singular system for a single plane constraint")
	}
}
