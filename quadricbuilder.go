package meshsimplify

// seedQuadrics computes, for every non-deleted triangle, the unit face
// normal and plane quadric, and accumulates it into all three incident
// vertex quadrics. Re-seeding runs only at iteration 0 of each Simplify
// call: later iterations reuse accumulated quadrics, an explicit design
// decision for closed meshes that accepts slightly worse results on open
// meshes to avoid the cost of re-accumulation.
func (m *Mesh) seedQuadrics() {
	nv := m.vertexCount()
	for i := 0; i < nv; i++ {
		m.vertices.Ref(i).q = SymmetricMatrix{}
	}

	nt := m.triangles.Len()
	for i := 0; i < nt; i++ {
		t := m.triangles.Ref(i)
		if t.deleted {
			continue
		}
		p0 := m.vertices.At(t.v[0]).p
		p1 := m.vertices.At(t.v[1]).p
		p2 := m.vertices.At(t.v[2]).p

		n := p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()
		d := -n.Dot(p0)
		pq := newPlaneQuadric(n.X, n.Y, n.Z, d)

		t.normal = n
		for k := 0; k < 3; k++ {
			vert := m.vertices.Ref(t.v[k])
			vert.q = vert.q.Add(pq)
		}
	}
}

// recomputeTriangleErrors evaluates the collapse error for all three edges
// of every non-deleted triangle and stores (err0,err1,err2,errMin).
func (m *Mesh) recomputeTriangleErrors(opts Options) {
	nt := m.triangles.Len()
	for i := 0; i < nt; i++ {
		t := m.triangles.Ref(i)
		if t.deleted {
			continue
		}
		for k := 0; k < 3; k++ {
			i0 := t.v[k]
			i1 := t.v[(k+1)%3]
			res := m.edgeError(i0, i1, opts)
			t.err[k] = res.error
		}
		t.errMin = minFloat(minFloat(t.err[0], t.err[1]), t.err[2])
	}
}
