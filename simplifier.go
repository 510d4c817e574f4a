package meshsimplify

import "math"

// losslessErrorThreshold bounds SimplifyMeshLossless's collapses to edges
// whose quadric error is small enough that the result is visually
// indistinguishable from the input on any reasonable model scale.
const losslessErrorThreshold = 1e-3

// SimplifyMesh decimates down toward quality*originalTriangleCount
// surviving triangles, 1.0 keeping everything and 0.0 collapsing as
// aggressively as the options and mesh topology allow. Returns
// InvalidArgument if quality is outside [0,1].
func (m *Mesh) SimplifyMesh(quality float64, opts Options) error {
	if quality < 0 || quality > 1 {
		return &InvalidArgumentError{Name: "quality", Message: "must be in [0,1]"}
	}
	if err := ValidateOptions(opts); err != nil {
		return err
	}
	target := int(float64(m.nonDeletedTriangleCount()) * quality)
	m.run(opts, target, false)
	return nil
}

// SimplifyMeshLossless repeatedly collapses only edges whose quadric error
// stays under losslessErrorThreshold, until a full pass collapses nothing
// further.
func (m *Mesh) SimplifyMeshLossless(opts Options) error {
	if err := ValidateOptions(opts); err != nil {
		return err
	}
	m.run(opts, 0, true)
	return nil
}

// run is the shared simplification loop: every 5th iteration (starting
// with iteration 0) rebuild adjacency and recompute edge errors, iteration
// 0 additionally reclassifying borders and seeding quadrics; then one pass
// over the triangle buffer in index order, trying, for every triangle whose
// errMin is under the iteration's threshold, the first of its edges (in
// corner order) whose error is under the threshold and which tryCollapse
// allows.
func (m *Mesh) run(opts Options, targetTriangleCount int, lossless bool) {
	for i := 0; i < m.triangles.Len(); i++ {
		m.triangles.Ref(i).deleted = false
	}

	remaining := m.nonDeletedTriangleCount()

	for iteration := 0; iteration < opts.MaxIterationCount; iteration++ {
		if !lossless && remaining <= targetTriangleCount {
			break
		}

		if iteration%5 == 0 {
			m.updateMesh(iteration, opts)
		}

		for i := 0; i < m.triangles.Len(); i++ {
			m.triangles.Ref(i).dirty = false
		}

		threshold := losslessErrorThreshold
		if !lossless {
			threshold = 1e-9 * math.Pow(float64(iteration+3), opts.Aggressiveness)
		}

		collapsedAny := false
		nt := m.triangles.Len()
		for i := 0; i < nt; i++ {
			t := m.triangles.At(i)
			if t.deleted || t.dirty || t.errMin > threshold {
				continue
			}

			for j := 0; j < 3; j++ {
				if t.err[j] >= threshold {
					continue
				}

				i0 := t.v[j]
				i1 := t.v[(j+1)%3]
				if m.tryCollapse(i0, i1, opts) {
					src := collapseSource{
						i2:  t.v[(j+2)%3],
						ia0: t.va[j],
						ia1: t.va[(j+1)%3],
						ia2: t.va[(j+2)%3],
					}
					removed := m.collapseEdgeCounted(i0, i1, src, opts)
					remaining -= removed
					if removed > 0 {
						collapsedAny = true
					}
					break
				}
			}

			if !lossless && remaining <= targetTriangleCount {
				break
			}
		}

		if lossless && !collapsedAny {
			break
		}
	}

	m.CompactMesh()
}

// tryCollapse reports whether the edge i0->i1 is eligible under the
// border/seam/foldover flag-mismatch rule and the preservation gates,
// without mutating anything. A flag that disagrees between the two
// endpoints always makes the edge ineligible; a flag the endpoints agree
// on only blocks the collapse when its matching Preserve option is set.
func (m *Mesh) tryCollapse(i0, i1 int, opts Options) bool {
	v0 := m.vertices.At(i0)
	v1 := m.vertices.At(i1)

	if v0.flags.border != v1.flags.border {
		return false
	}
	if v0.flags.uvSeam != v1.flags.uvSeam {
		return false
	}
	if v0.flags.uvFoldover != v1.flags.uvFoldover {
		return false
	}
	if opts.PreserveBorderEdges && (v0.flags.border || v1.flags.border) {
		return false
	}
	if opts.PreserveUVSeamEdges && (v0.flags.uvSeam || v1.flags.uvSeam) {
		return false
	}
	if opts.PreserveUVFoldoverEdges && (v0.flags.uvFoldover || v1.flags.uvFoldover) {
		return false
	}
	return true
}

// collapseEdgeCounted evaluates the edge's collapse position, rejects it on
// a flip, and otherwise performs the collapse, returning how many
// triangles it removed (0 on a flip-rejected attempt).
func (m *Mesh) collapseEdgeCounted(i0, i1 int, src collapseSource, opts Options) int {
	res := m.edgeError(i0, i1, opts)
	if m.flipped(i0, i1, res.pos) {
		return 0
	}
	return m.collapseEdge(i0, i1, res, src)
}

// updateMesh performs periodic maintenance: physically drop already-deleted
// triangles (skipped on iteration 0, since nothing has been deleted yet),
// rebuild adjacency, on iteration 0 only reclassify borders, optionally
// smart-link them and reseed quadrics from scratch, and then recompute every
// triangle's edge errors from the current positions and quadrics.
func (m *Mesh) updateMesh(iteration int, opts Options) {
	if iteration > 0 {
		m.compactDeletedTriangles()
	}
	m.updateReferences()

	if iteration == 0 {
		m.classifyBorders()
		if opts.EnableSmartLink {
			m.smartLinkBorders(opts)
		}
		m.seedQuadrics()
	}
	m.recomputeTriangleErrors(opts)
}

// compactDeletedTriangles rebuilds the triangle buffer in place, keeping
// only non-deleted triangles; vertex ids and positions are untouched,
// unlike CompactMesh's full renumbering.
func (m *Mesh) compactDeletedTriangles() {
	nt := m.triangles.Len()
	dst := 0
	for i := 0; i < nt; i++ {
		t := m.triangles.At(i)
		if t.deleted {
			continue
		}
		if dst != i {
			m.triangles.Set(dst, t)
		}
		dst++
	}
	m.triangles.Resize(dst)
}
