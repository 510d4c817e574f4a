// Package meshgen builds small parametric meshes used by the demo CLI and
// by tests that need a fixture with known topology rather than a loaded
// asset.
//
// Sphere and torus are built by cutting a latitude/longitude grid into
// triangles, writing directly into a meshsimplify.MeshLike. Cube and
// Plane round out the set with a closed seam-free solid and an open,
// bordered grid, for scenarios that need topology sphere/torus don't
// cover.
package meshgen

import (
	"math"

	meshsimplify "github.com/mirstar13/meshsimplify"
)

// Sphere generates a UV sphere of the given radius with rings latitude
// bands and sectors longitude bands.
func Sphere(radius float64, rings, sectors int) meshsimplify.MeshLike {
	var positions []meshsimplify.Vector3D
	var normals []meshsimplify.Vector3D
	var uv [][4]float64

	for r := 0; r <= rings; r++ {
		v := float64(r) / float64(rings)
		latAngle := -math.Pi/2 + math.Pi*v
		y := math.Sin(latAngle) * radius
		ringRadius := math.Cos(latAngle) * radius

		for s := 0; s <= sectors; s++ {
			u := float64(s) / float64(sectors)
			lonAngle := 2 * math.Pi * u

			x := math.Cos(lonAngle) * ringRadius
			z := math.Sin(lonAngle) * ringRadius

			positions = append(positions, meshsimplify.Vector3D{X: x, Y: y, Z: z})
			normals = append(normals, meshsimplify.Vector3D{X: x / radius, Y: y / radius, Z: z / radius})
			uv = append(uv, [4]float64{u, 1.0 - v, 0, 0})
		}
	}

	stride := sectors + 1
	var indices []int
	for r := 0; r < rings; r++ {
		for s := 0; s < sectors; s++ {
			curr := r*stride + s
			next := r*stride + (s + 1)
			bottom := (r+1)*stride + s
			bottomNext := (r+1)*stride + (s + 1)

			indices = append(indices, curr, next, bottom)
			indices = append(indices, next, bottomNext, bottom)
		}
	}

	ml := meshsimplify.MeshLike{
		Positions:      positions,
		Normals:        normals,
		SubMeshIndices: [][]int{indices},
	}
	ml.UV[0] = meshsimplify.UVInput{Data: uv}
	return ml
}

// Torus generates a torus of the given major/minor radii and segment
// counts.
func Torus(majorRadius, minorRadius float64, majorSegments, minorSegments int) meshsimplify.MeshLike {
	var positions []meshsimplify.Vector3D
	var normals []meshsimplify.Vector3D
	var uv [][4]float64

	for i := 0; i <= majorSegments; i++ {
		u := float64(i) / float64(majorSegments)
		theta := u * 2.0 * math.Pi
		cosTheta, sinTheta := math.Cos(theta), math.Sin(theta)

		for j := 0; j <= minorSegments; j++ {
			v := float64(j) / float64(minorSegments)
			phi := v * 2.0 * math.Pi
			cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)

			x := (majorRadius + minorRadius*cosPhi) * cosTheta
			y := minorRadius * sinPhi
			z := (majorRadius + minorRadius*cosPhi) * sinTheta

			positions = append(positions, meshsimplify.Vector3D{X: x, Y: y, Z: z})
			normals = append(normals, meshsimplify.Vector3D{X: cosPhi * cosTheta, Y: sinPhi, Z: cosPhi * sinTheta})
			uv = append(uv, [4]float64{u, v, 0, 0})
		}
	}

	stride := minorSegments + 1
	var indices []int
	for i := 0; i < majorSegments; i++ {
		for j := 0; j < minorSegments; j++ {
			curr := i*stride + j
			next := i*stride + (j + 1)
			bottom := (i+1)*stride + j
			bottomNext := (i+1)*stride + (j + 1)

			indices = append(indices, curr, next, bottom)
			indices = append(indices, next, bottomNext, bottom)
		}
	}

	ml := meshsimplify.MeshLike{
		Positions:      positions,
		Normals:        normals,
		SubMeshIndices: [][]int{indices},
	}
	ml.UV[0] = meshsimplify.UVInput{Data: uv}
	return ml
}

// Cube generates an 8-vertex, 12-triangle cube of the given half-extent.
// Unlike Sphere/Torus, faces share vertices directly (no seams), making
// it a minimal closed-manifold fixture.
func Cube(halfExtent float64) meshsimplify.MeshLike {
	e := halfExtent
	positions := []meshsimplify.Vector3D{
		{X: -e, Y: -e, Z: -e}, {X: e, Y: -e, Z: -e}, {X: e, Y: e, Z: -e}, {X: -e, Y: e, Z: -e},
		{X: -e, Y: -e, Z: e}, {X: e, Y: -e, Z: e}, {X: e, Y: e, Z: e}, {X: -e, Y: e, Z: e},
	}
	indices := []int{
		0, 2, 1, 0, 3, 2, // back
		4, 5, 6, 4, 6, 7, // front
		0, 1, 5, 0, 5, 4, // bottom
		3, 7, 6, 3, 6, 2, // top
		0, 4, 7, 0, 7, 3, // left
		1, 2, 6, 1, 6, 5, // right
	}
	return meshsimplify.MeshLike{
		Positions:      positions,
		SubMeshIndices: [][]int{indices},
	}
}

// Plane generates a flat, open divisions x divisions grid in the XZ
// plane, useful as a fixture with a non-trivial border.
func Plane(size float64, divisions int) meshsimplify.MeshLike {
	var positions []meshsimplify.Vector3D
	var normals []meshsimplify.Vector3D
	var uv [][4]float64

	stride := divisions + 1
	for r := 0; r <= divisions; r++ {
		v := float64(r) / float64(divisions)
		for c := 0; c <= divisions; c++ {
			u := float64(c) / float64(divisions)
			positions = append(positions, meshsimplify.Vector3D{
				X: (u - 0.5) * size,
				Y: 0,
				Z: (v - 0.5) * size,
			})
			normals = append(normals, meshsimplify.Vector3D{X: 0, Y: 1, Z: 0})
			uv = append(uv, [4]float64{u, v, 0, 0})
		}
	}

	var indices []int
	for r := 0; r < divisions; r++ {
		for c := 0; c < divisions; c++ {
			curr := r*stride + c
			next := r*stride + (c + 1)
			bottom := (r+1)*stride + c
			bottomNext := (r+1)*stride + (c + 1)

			indices = append(indices, curr, next, bottom)
			indices = append(indices, next, bottomNext, bottom)
		}
	}

	ml := meshsimplify.MeshLike{
		Positions:      positions,
		Normals:        normals,
		SubMeshIndices: [][]int{indices},
	}
	ml.UV[0] = meshsimplify.UVInput{Data: uv}
	return ml
}
