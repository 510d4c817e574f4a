package asciiview

import (
	"math"
	"testing"
)

func TestVec3CrossAndDot(t *testing.T) {
	x := Vec3{X: 1}
	y := Vec3{Y: 1}
	z := x.Cross(y)
	if z != (Vec3{Z: 1}) {
		t.Errorf("Cross: got %v, want (0,0,1)", z)
	}
	if got := x.Dot(y); got != 0 {
		t.Errorf("Dot of perpendicular unit vectors: got %v, want 0", got)
	}
}

func TestVec3NormalizeDegenerate(t *testing.T) {
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("Normalize of zero vector: got %v, want zero", got)
	}
	n := Vec3{X: 3, Y: 4}.Normalize()
	if math.Abs(n.Length()-1) > 1e-9 {
		t.Errorf("expected unit length, got %v", n.Length())
	}
}

func TestHeatColorEndpoints(t *testing.T) {
	if got := heatColor(0); got != colorLow {
		t.Errorf("heatColor(0): got %v, want colorLow", got)
	}
	if got := heatColor(1); got != colorHigh {
		t.Errorf("heatColor(1): got %v, want colorHigh", got)
	}
}

func TestColorLerpClampsT(t *testing.T) {
	a := Color{R: 0, G: 0, B: 0}
	b := Color{R: 100, G: 100, B: 100}
	if got := a.Lerp(b, -1); got != a {
		t.Errorf("Lerp(-1): got %v, want a", got)
	}
	if got := a.Lerp(b, 2); got != b {
		t.Errorf("Lerp(2): got %v, want b", got)
	}
}

func TestOrbitCameraProjectsPointInFrontAsVisible(t *testing.T) {
	cam := NewOrbitCamera(Vec3{}, 10)
	cam.Yaw, cam.Pitch = 0, 0

	_, _, depth, visible := cam.Project(Vec3{}, 80, 40)
	if !visible {
		t.Fatalf("expected the orbit target to be visible")
	}
	if depth <= cam.Near {
		t.Errorf("expected depth beyond Near, got %v", depth)
	}
}

func TestCanvasFillTriangleWritesDepthTestedCells(t *testing.T) {
	cv := newCanvas(10, 10)
	red := Color{R: 255}
	cv.fillTriangle(1, 1, 1.0, 8, 1, 1.0, 4, 8, 1.0, red)

	if !cv.filled[5*10+4] {
		t.Errorf("expected a cell inside the triangle to be filled")
	}
	if cv.filled[0] {
		t.Errorf("expected the top-left corner to be outside the triangle")
	}

	// A farther triangle covering the same cells must not overwrite nearer
	// color already written.
	blue := Color{B: 255}
	cv.fillTriangle(1, 1, 5.0, 8, 1, 5.0, 4, 8, 5.0, blue)
	if cv.color[5*10+4] != red {
		t.Errorf("nearer triangle's color should survive a farther overdraw")
	}
}
