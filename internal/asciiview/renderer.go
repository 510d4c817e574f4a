package asciiview

import (
	meshsimplify "github.com/mirstar13/meshsimplify"
)

// Scene is the renderable snapshot the demo CLI passes to Render each
// frame: a mesh's current geometry plus the viewpoint to render it from.
type Scene struct {
	Positions      []meshsimplify.Vector3D
	SubMeshIndices [][]int
	Camera         *OrbitCamera
}

// FromMeshLike builds a Scene from a MeshLike, ignoring everything but
// positions and triangle indices — the one thing this demo viewer draws.
func FromMeshLike(ml meshsimplify.MeshLike, cam *OrbitCamera) Scene {
	return Scene{Positions: ml.Positions, SubMeshIndices: ml.SubMeshIndices, Camera: cam}
}

// Render draws Scene into a width x height ANSI truecolor frame. Each
// triangle's color is shaded by its worldspace facet normal against a
// single fixed key light, with no materials and no ambient occlusion.
// Every triangle is projected with the camera, back-faces are culled,
// survivors are rasterized into the shared canvas, and the result is
// flattened to a string.
func Render(scene Scene, width, height int) string {
	cv := newCanvas(width, height)
	cam := scene.Camera
	keyLight := Vec3{X: -0.4, Y: 0.6, Z: -0.7}.Normalize()

	for _, tris := range scene.SubMeshIndices {
		for i := 0; i+2 < len(tris); i += 3 {
			ia, ib, ic := tris[i], tris[i+1], tris[i+2]
			if ia < 0 || ib < 0 || ic < 0 || ic >= len(scene.Positions) {
				continue
			}
			pa := toVec3(scene.Positions[ia])
			pb := toVec3(scene.Positions[ib])
			pc := toVec3(scene.Positions[ic])

			normal := pb.Sub(pa).Cross(pc.Sub(pa)).Normalize()

			eye := cam.Position()
			toCam := eye.Sub(pa).Normalize()
			if normal.Dot(toCam) < 0 {
				continue // back-facing, cull
			}

			xa, ya, za, visA := cam.Project(pa, width, height)
			xb, yb, zb, visB := cam.Project(pb, width, height)
			xc, yc, zc, visC := cam.Project(pc, width, height)
			if !visA || !visB || !visC {
				continue
			}

			intensity := normal.Dot(keyLight)
			if intensity < 0.1 {
				intensity = 0.1
			}
			col := shade(intensity)

			cv.fillTriangle(xa, ya, za, xb, yb, zb, xc, yc, zc, col)
		}
	}

	return cv.Render()
}

func toVec3(v meshsimplify.Vector3D) Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

// shade maps a [0,1] key-light dot-product intensity to a neutral gray so
// the mesh's silhouette reads clearly; HighlightErrors below overrides this
// with the heat gradient when per-triangle error is available.
func shade(intensity float64) Color {
	v := uint8(intensity * 200)
	return Color{R: v, G: v, B: v}
}

// HighlightErrors is like Render but colors each triangle by its collapse
// error (errs, parallel to the flattened triangle list) instead of by
// lighting, using the blue-yellow-red heatColor gradient.
func HighlightErrors(scene Scene, errs []float64, width, height int) string {
	cv := newCanvas(width, height)
	cam := scene.Camera

	maxErr := 0.0
	for _, e := range errs {
		if e > maxErr {
			maxErr = e
		}
	}
	if maxErr <= 0 {
		maxErr = 1
	}

	triIdx := 0
	for _, tris := range scene.SubMeshIndices {
		for i := 0; i+2 < len(tris); i += 3 {
			ia, ib, ic := tris[i], tris[i+1], tris[i+2]
			var t float64
			if triIdx < len(errs) {
				t = errs[triIdx] / maxErr
			}
			triIdx++

			if ia < 0 || ib < 0 || ic < 0 || ic >= len(scene.Positions) {
				continue
			}
			pa := toVec3(scene.Positions[ia])
			pb := toVec3(scene.Positions[ib])
			pc := toVec3(scene.Positions[ic])

			normal := pb.Sub(pa).Cross(pc.Sub(pa)).Normalize()
			eye := cam.Position()
			toCam := eye.Sub(pa).Normalize()
			if normal.Dot(toCam) < 0 {
				continue
			}

			xa, ya, za, visA := cam.Project(pa, width, height)
			xb, yb, zb, visB := cam.Project(pb, width, height)
			xc, yc, zc, visC := cam.Project(pc, width, height)
			if !visA || !visB || !visC {
				continue
			}

			cv.fillTriangle(xa, ya, za, xb, yb, zb, xc, yc, zc, heatColor(t))
		}
	}

	return cv.Render()
}
