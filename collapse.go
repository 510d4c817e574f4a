package meshsimplify

// collapseSource carries the one piece of the collapsing triangle that
// collapseEdge cannot recover from i0/i1 alone: its third corner and the
// three attribute-vertex indices the triangle was using before the
// collapse. The simplifier loop builds this straight from the triangle it
// is about to collapse an edge of.
type collapseSource struct {
	i2  int
	ia0 int
	ia1 int
	ia2 int
}

// collapseEdge merges i1 into i0 at the chosen position. It assumes the
// caller has already run flipped(i0, i1, res.pos) and that it returned
// false — the deleted0/deleted1 scratch bitmaps populated by that call are
// reused here, so no second adjacency pass over i0/i1's incident triangles
// is needed to know which of them die with the edge. Returns the number of
// triangles newly marked deleted, for the simplifier loop's running
// triangle-count tally.
func (m *Mesh) collapseEdge(i0, i1 int, res edgeErrorResult, src collapseSource) int {
	v0 := m.vertices.Ref(i0)
	v1 := m.vertices.At(i1)

	wasSeam := v0.flags.uvSeam

	w0, w1, w2 := barycentricWeights(res.pos, v0.p, v1.p, m.vertices.At(src.i2).p)
	m.interpolateAttributes(i0, src.ia0, src.ia1, src.ia2, w0, w1, w2)

	v0.p = res.pos
	v0.q = v0.q.Add(v1.q)
	v0.flags.uvSeam = v0.flags.uvSeam || v1.flags.uvSeam
	v0.flags.uvFoldover = v0.flags.uvFoldover || v1.flags.uvFoldover

	// A seam vertex keeps its attribute-vertex id untouched, so its two
	// distinct UV values on either side of the seam survive Compactor;
	// everywhere else the retargeted corners adopt the merged attribute
	// index the collapsing triangle carried for i0.
	mergedVA := src.ia0
	if wasSeam {
		mergedVA = -1
	}

	tstart := m.refs.Len()
	deleted := m.retargetIncident(i0, i0, mergedVA, &m.scratch.deleted0)
	deleted += m.retargetIncident(i1, i0, mergedVA, &m.scratch.deleted1)

	v0.tstart = tstart
	v0.tcount = m.refs.Len() - tstart

	return deleted
}

// retargetIncident walks v's (pre-collapse) incident corners: triangles
// flagged in deleted are marked deleted outright (they degenerate to a
// line once i0 and i1 coincide), everything else has its geometric vertex
// index repointed to newID and is appended to the tail of the refs buffer
// as newID's new adjacency range. The attribute-vertex index (va) is
// repointed to mergedVA too, unless mergedVA is -1 — the signal that i0 is
// itself seam-flagged and its corners' attribute data must stay put so the
// seam's two distinct attribute values keep surviving on either side of
// the now-shared geometric vertex until Compactor splits them back out.
func (m *Mesh) retargetIncident(v, newID, mergedVA int, deleted *scratchBitmap) int {
	newlyDeleted := 0
	vv := m.vertices.At(v)
	for k := 0; k < vv.tcount; k++ {
		r := m.refs.At(vv.tstart + k)
		tri := m.triangles.Ref(r.triangle)
		if tri.deleted {
			continue
		}
		if deleted.Get(k) {
			tri.deleted = true
			newlyDeleted++
			continue
		}
		tri.v[r.corner] = newID
		if mergedVA >= 0 {
			tri.va[r.corner] = mergedVA
		}
		tri.dirty = true
		m.refs.Add(ref{triangle: r.triangle, corner: r.corner})
	}
	return newlyDeleted
}

// barycentricWeights expresses target in the barycentric coordinates of
// triangle (p0, p1, p2): target = w0*p0 + w1*p1 + w2*p2. The denominator is
// floored in magnitude at 1e-8 so a degenerate (near-collinear) triangle
// still returns a finite, sign-consistent result instead of blowing up.
func barycentricWeights(target, p0, p1, p2 Vector3D) (w0, w1, w2 float64) {
	e0 := p1.Sub(p0)
	e1 := p2.Sub(p0)
	e2 := target.Sub(p0)

	d00 := e0.Dot(e0)
	d01 := e0.Dot(e1)
	d11 := e1.Dot(e1)
	d20 := e2.Dot(e0)
	d21 := e2.Dot(e1)

	denom := d00*d11 - d01*d01
	switch {
	case denom >= 0 && denom < 1e-8:
		denom = 1e-8
	case denom < 0 && denom > -1e-8:
		denom = -1e-8
	}

	w1 = (d11*d20 - d01*d21) / denom
	w2 = (d00*d21 - d01*d20) / denom
	w0 = 1 - w1 - w2
	return w0, w1, w2
}

// interpolateAttributes blends the collapsing triangle's three attribute
// sources (ia0, ia1, ia2) by their barycentric weights and writes the
// result into dst's per-vertex attribute slot. Normals and tangents are
// renormalized after blending (tangents keep their blended w, per
// Vector4D.normalizeXYZPreserveW); UV data needs no interpolation here
// since it survives through attribute-index aliasing instead. Bone weights
// and blend shapes are left as dst's own, unblended.
func (m *Mesh) interpolateAttributes(dst, ia0, ia1, ia2 int, w0, w1, w2 float64) {
	a := m.attrs
	if a.normals != nil {
		n := a.normals[ia0].Scale(w0).Add(a.normals[ia1].Scale(w1)).Add(a.normals[ia2].Scale(w2))
		a.normals[dst] = n.Normalize()
	}
	if a.tangents != nil {
		blended := a.tangents[ia0].Scale(w0).Add(a.tangents[ia1].Scale(w1)).Add(a.tangents[ia2].Scale(w2))
		a.tangents[dst] = blended.normalizeXYZPreserveW()
	}
	if a.colors != nil {
		a.colors[dst] = a.colors[ia0].Scale(w0).Add(a.colors[ia1].Scale(w1)).Add(a.colors[ia2].Scale(w2))
	}
}
