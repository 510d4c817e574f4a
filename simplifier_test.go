package meshsimplify_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	meshsimplify "github.com/mirstar13/meshsimplify"
	"github.com/mirstar13/meshsimplify/internal/meshgen"
)

func TestSimplifyMeshReducesTriangleCountTowardQuality(t *testing.T) {
	ml := meshgen.Sphere(2, 24, 32)

	m, err := meshsimplify.NewFromMesh(ml, meshsimplify.DefaultOptions())
	require.NoError(t, err)

	original := m.TriangleCount()
	require.NoError(t, m.SimplifyMesh(0.5, meshsimplify.DefaultOptions()))

	require.Less(t, m.TriangleCount(), original, "simplification at quality 0.5 should remove triangles")
	require.LessOrEqual(t, m.TriangleCount(), original, "simplified count must never exceed the input")
}

func TestSimplifyMeshQualityOneKeepsEverything(t *testing.T) {
	ml := meshgen.Cube(1)

	m, err := meshsimplify.NewFromMesh(ml, meshsimplify.DefaultOptions())
	require.NoError(t, err)

	original := m.TriangleCount()
	require.NoError(t, m.SimplifyMesh(1.0, meshsimplify.DefaultOptions()))
	require.Equal(t, original, m.TriangleCount(), "quality 1.0 should collapse nothing")
}

func TestSimplifyMeshRejectsOutOfRangeQuality(t *testing.T) {
	ml := meshgen.Cube(1)
	m, err := meshsimplify.NewFromMesh(ml, meshsimplify.DefaultOptions())
	require.NoError(t, err)

	require.Error(t, m.SimplifyMesh(-0.1, meshsimplify.DefaultOptions()))
	require.Error(t, m.SimplifyMesh(1.1, meshsimplify.DefaultOptions()))
}

func TestSimplifyMeshPreservesBorderVertexPositions(t *testing.T) {
	ml := meshgen.Plane(6, 16)

	opts := meshsimplify.DefaultOptions()
	opts.PreserveBorderEdges = true

	m, err := meshsimplify.NewFromMesh(ml, opts)
	require.NoError(t, err)
	require.NoError(t, m.SimplifyMesh(0.3, opts))

	out := m.ToMesh()

	borderBefore := make(map[meshsimplify.Vector3D]bool)
	half := 6.0 / 2
	for _, p := range ml.Positions {
		if absF(p.X-(-half)) < 1e-9 || absF(p.X-half) < 1e-9 ||
			absF(p.Z-(-half)) < 1e-9 || absF(p.Z-half) < 1e-9 {
			borderBefore[p] = true
		}
	}

	borderAfter := make(map[meshsimplify.Vector3D]bool)
	for _, p := range out.Positions {
		if absF(p.X-(-half)) < 1e-9 || absF(p.X-half) < 1e-9 ||
			absF(p.Z-(-half)) < 1e-9 || absF(p.Z-half) < 1e-9 {
			borderAfter[p] = true
		}
	}

	for p := range borderAfter {
		require.True(t, borderBefore[p], "surviving border vertex %v was not one of the original border positions", p)
	}
}

func TestSimplifyMeshLosslessNeverIncreasesTriangleCount(t *testing.T) {
	ml := meshgen.Torus(3, 1, 32, 16)
	m, err := meshsimplify.NewFromMesh(ml, meshsimplify.DefaultOptions())
	require.NoError(t, err)

	original := m.TriangleCount()
	require.NoError(t, m.SimplifyMeshLossless(meshsimplify.DefaultOptions()))
	require.LessOrEqual(t, m.TriangleCount(), original)
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
