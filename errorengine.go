package meshsimplify

// edgeErrorResult is the verdict for one candidate edge: the collapsed-pair
// quadric error and the proposed merged position.
type edgeErrorResult struct {
	error float64
	pos   Vector3D
}

// edgeError combines the two endpoints' quadrics, solves for the position
// minimizing x^T Q x when
// neither endpoint is a border vertex and the system isn't singular,
// otherwise fall back to evaluating the quadric at both endpoints and
// their midpoint with the midpoint winning ties. When
// PreserveSurfaceCurvature is set, the additive term of applyCurvature is
// added on top.
func (m *Mesh) edgeError(i0, i1 int, opts Options) edgeErrorResult {
	v0 := m.vertices.At(i0)
	v1 := m.vertices.At(i1)
	q := v0.q.Add(v1.q)

	border := v0.flags.border || v1.flags.border

	var res edgeErrorResult
	if !border {
		if pos, ok := q.optimalPosition(); ok {
			res = edgeErrorResult{
				error: q.VertexError(pos.X, pos.Y, pos.Z),
				pos:   pos,
			}
			return m.applyCurvature(res, i0, i1, opts)
		}
	}

	p0, p1 := v0.p, v1.p
	pm := p0.Lerp(p1, 0.5)

	e0 := q.VertexError(p0.X, p0.Y, p0.Z)
	e1 := q.VertexError(p1.X, p1.Y, p1.Z)
	em := q.VertexError(pm.X, pm.Y, pm.Z)

	res = edgeErrorResult{error: em, pos: pm}
	if e0 < res.error {
		res = edgeErrorResult{error: e0, pos: p0}
	}
	if e1 < res.error {
		res = edgeErrorResult{error: e1, pos: p1}
	}

	return m.applyCurvature(res, i0, i1, opts)
}

// applyCurvature implements the optional curvature term: triangles
// incident to exactly one of the two endpoints (S \ B) are compared
// against the triangles incident to both (B, which vanish on the
// collapse); the edge is charged |p0 - p1| times the strongest normal
// agreement found between the two groups. The charge is largest, equal to
// the edge length, when some outer triangle is coplanar with a vanishing
// one (as on a flat patch), and smaller only where no outer triangle lines
// up with any vanishing one.
func (m *Mesh) applyCurvature(res edgeErrorResult, i0, i1 int, opts Options) edgeErrorResult {
	if !opts.PreserveSurfaceCurvature {
		return res
	}
	maxDot, found := m.maxDotOuter(i0, i1)
	if !found {
		return res
	}
	edgeLength := m.vertices.At(i0).p.Sub(m.vertices.At(i1).p).Length()
	res.error += edgeLength * maxDot
	return res
}

// maxDotOuter returns the strongest normal agreement between S (triangles
// adjacent to i0 or i1) restricted to its triangles outside B, and B
// (triangles adjacent to both i0 and i1, which vanish on the collapse).
// found is false when there is no B triangle to compare against.
func (m *Mesh) maxDotOuter(i0, i1 int) (maxDot float64, found bool) {
	m.scratch.curvatureAdjacent.Reset()
	m.scratch.curvatureShared.Reset()

	classify := func(v int) {
		m.forEachIncidentTriangle(v, func(triIdx, _ int) {
			t := m.triangles.At(triIdx)
			if t.deleted {
				return
			}
			if m.scratch.curvatureAdjacent.Has(triIdx) {
				m.scratch.curvatureShared.Add(triIdx)
			} else {
				m.scratch.curvatureAdjacent.Add(triIdx)
			}
		})
	}
	classify(i0)
	classify(i1)

	if m.scratch.curvatureShared.Len() == 0 {
		return 0, false
	}

	m.scratch.curvatureAdjacent.Each(func(id int) {
		if m.scratch.curvatureShared.Has(id) {
			return
		}
		ta := m.triangles.At(id)
		m.scratch.curvatureShared.Each(func(bid int) {
			tb := m.triangles.At(bid)
			d := ta.normal.Dot(tb.normal)
			if !found || d > maxDot {
				maxDot = d
				found = true
			}
		})
	})
	return maxDot, found
}
