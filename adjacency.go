package meshsimplify

// updateReferences rebuilds the refs buffer and each vertex's (tstart,
// tcount) slice wholesale from the triangle buffer. Called at the start of
// each compact phase; never incrementally patched outside of a collapse's
// own tail-append (see collapse.go), trading a periodic O(V+T) rebuild for
// collapse-path simplicity.
func (m *Mesh) updateReferences() {
	nv := m.vertexCount()
	for i := 0; i < nv; i++ {
		v := m.vertices.Ref(i)
		v.tcount = 0
	}

	nt := m.triangles.Len()
	for i := 0; i < nt; i++ {
		t := m.triangles.At(i)
		if t.deleted {
			continue
		}
		for k := 0; k < 3; k++ {
			m.vertices.Ref(t.v[k]).tcount++
		}
	}

	tstart := 0
	for i := 0; i < nv; i++ {
		v := m.vertices.Ref(i)
		v.tstart = tstart
		tstart += v.tcount
		v.tcount = 0 // reused below as a fill cursor
	}

	m.refs.Resize(tstart)
	for i := 0; i < nt; i++ {
		t := m.triangles.At(i)
		if t.deleted {
			continue
		}
		for k := 0; k < 3; k++ {
			v := m.vertices.Ref(t.v[k])
			m.refs.Set(v.tstart+v.tcount, ref{triangle: i, corner: k})
			v.tcount++
		}
	}
}

// forEachIncidentTriangle calls f with the triangle index and corner for
// every live corner referencing vertex v.
func (m *Mesh) forEachIncidentTriangle(v int, f func(triIdx, corner int)) {
	vv := m.vertices.At(v)
	for k := 0; k < vv.tcount; k++ {
		r := m.refs.At(vv.tstart + k)
		f(r.triangle, r.corner)
	}
}
