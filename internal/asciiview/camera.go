package asciiview

import "math"

// OrbitCamera looks at a fixed target from a point on a sphere of radius
// Distance, parameterized by yaw/pitch — the one motion a mesh preview
// needs: orbiting around the subject.
type OrbitCamera struct {
	Target   Vec3
	Distance float64
	Yaw      float64 // radians, around world Y
	Pitch    float64 // radians, elevation

	FOV  float64 // projection scale factor
	Near float64
}

// NewOrbitCamera returns a camera framing target from distance, looking
// down the -Z axis at zero yaw/pitch.
func NewOrbitCamera(target Vec3, distance float64) *OrbitCamera {
	return &OrbitCamera{Target: target, Distance: distance, FOV: 1.6, Near: 0.05}
}

// Position computes the camera's world-space eye point from its spherical
// coordinates around Target.
func (c *OrbitCamera) Position() Vec3 {
	cp, sp := math.Cos(c.Pitch), math.Sin(c.Pitch)
	cy, sy := math.Cos(c.Yaw), math.Sin(c.Yaw)
	return Vec3{
		X: c.Target.X + c.Distance*cp*sy,
		Y: c.Target.Y + c.Distance*sp,
		Z: c.Target.Z + c.Distance*cp*cy,
	}
}

// viewBasis returns the camera's right/up/forward unit vectors.
func (c *OrbitCamera) viewBasis() (right, up, forward Vec3) {
	eye := c.Position()
	forward = c.Target.Sub(eye).Normalize()
	worldUp := Vec3{Y: 1}
	right = forward.Cross(worldUp).Normalize()
	up = right.Cross(forward).Normalize()
	return right, up, forward
}

// Project maps a world-space point to (screenX, screenY, depth) within a
// canvas of the given dimensions; depth <= Near signals the point is
// behind the camera and must not be rasterized.
func (c *OrbitCamera) Project(p Vec3, width, height int) (x, y int, depth float64, visible bool) {
	eye := c.Position()
	right, up, forward := c.viewBasis()

	rel := p.Sub(eye)
	vx := rel.Dot(right)
	vy := rel.Dot(up)
	vz := rel.Dot(forward)

	if vz <= c.Near {
		return 0, 0, 0, false
	}

	aspect := float64(width) / float64(height) / 2
	projX := (vx * c.FOV) / vz
	projY := (vy * c.FOV) / vz

	x = int((projX*aspect + 0.5) * float64(width))
	y = int((0.5 - projY*0.5) * float64(height))
	return x, y, vz, true
}
