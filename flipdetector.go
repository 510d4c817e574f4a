package meshsimplify

import "math"

// flipped simulates moving i0 and i1 to the proposed merge position p and
// rejects the collapse if doing so would invert or degenerate any triangle
// that survives the collapse.
// Triangles that reference both i0 and i1 are the ones being deleted by
// the collapse itself and are recorded into the scratch bitmaps rather
// than tested, so collapse.go can reuse the same pass to know which of a
// vertex's incident corners go away.
func (m *Mesh) flipped(i0, i1 int, p Vector3D) bool {
	if m.wouldFlip(i0, i1, p, &m.scratch.deleted0) {
		return true
	}
	if m.wouldFlip(i1, i0, p, &m.scratch.deleted1) {
		return true
	}
	return false
}

// wouldFlip walks v's incident corners, testing every triangle that does
// not also touch other (and so survives the collapse) for inversion or
// near-degeneracy at the candidate position p.
func (m *Mesh) wouldFlip(v, other int, p Vector3D, deleted *scratchBitmap) bool {
	vv := m.vertices.At(v)
	deleted.Reset(vv.tcount)

	for k := 0; k < vv.tcount; k++ {
		r := m.refs.At(vv.tstart + k)
		t := m.triangles.At(r.triangle)
		if t.deleted {
			continue
		}

		s := r.corner
		id1 := t.v[(s+1)%3]
		id2 := t.v[(s+2)%3]

		if id1 == other || id2 == other {
			deleted.Set(k)
			continue
		}

		d1 := m.vertices.At(id1).p.Sub(p).Normalize()
		d2 := m.vertices.At(id2).p.Sub(p).Normalize()
		if math.Abs(d1.Dot(d2)) > 0.999 {
			return true
		}

		n := d1.Cross(d2).Normalize()
		if n.Dot(t.normal) < 0.2 {
			return true
		}
	}
	return false
}
