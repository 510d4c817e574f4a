package meshsimplify

import "testing"

func TestVector3DArithmetic(t *testing.T) {
	a := Vector3D{X: 1, Y: 2, Z: 3}
	b := Vector3D{X: 4, Y: -1, Z: 0.5}

	if got := a.Add(b); got != (Vector3D{X: 5, Y: 1, Z: 3.5}) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Sub(b); got != (Vector3D{X: -3, Y: 3, Z: 2.5}) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Scale(2); got != (Vector3D{X: 2, Y: 4, Z: 6}) {
		t.Errorf("Scale: got %v", got)
	}
	if got := a.Dot(b); absDiff(got, 4-2+1.5) > 1e-12 {
		t.Errorf("Dot: got %v", got)
	}
}

func TestVector3DCrossIsPerpendicular(t *testing.T) {
	a := Vector3D{X: 1, Y: 0, Z: 0}
	b := Vector3D{X: 0, Y: 1, Z: 0}
	c := a.Cross(b)
	if absDiff(c.Dot(a), 0) > 1e-12 || absDiff(c.Dot(b), 0) > 1e-12 {
		t.Fatalf("cross product not perpendicular to operands: %v", c)
	}
	if c != (Vector3D{X: 0, Y: 0, Z: 1}) {
		t.Errorf("unexpected cross product: %v", c)
	}
}

func TestVector3DNormalizeDegenerate(t *testing.T) {
	zero := Vector3D{}
	if got := zero.Normalize(); got != (Vector3D{}) {
		t.Errorf("Normalize of zero vector should be zero, got %v", got)
	}

	unit := Vector3D{X: 3, Y: 0, Z: 4}.Normalize()
	if absDiff(unit.Length(), 1) > 1e-12 {
		t.Errorf("expected unit length, got %v", unit.Length())
	}
}

func TestVector3DLerpEndpoints(t *testing.T) {
	a := Vector3D{X: 0, Y: 0, Z: 0}
	b := Vector3D{X: 10, Y: 20, Z: -10}

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) should equal a, got %v", got)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) should equal b, got %v", got)
	}
	mid := a.Lerp(b, 0.5)
	if mid != (Vector3D{X: 5, Y: 10, Z: -5}) {
		t.Errorf("Lerp(0.5): got %v", mid)
	}
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
