package meshsimplify

import (
	"math"
	"sort"
)

// classifyBorders detects border vertices: for each vertex, count
// occurrences of every vertex id among its incident triangles' corners; an
// id occurring exactly once is the far endpoint of a border edge and gets
// flagged border. Requires refs to already be current (call
// updateReferences first).
func (m *Mesh) classifyBorders() {
	nv := m.vertexCount()
	for i := 0; i < nv; i++ {
		v := m.vertices.Ref(i)
		v.flags.border = false
	}

	counts := make(map[int]int)
	for i := 0; i < nv; i++ {
		clear(counts)
		m.forEachIncidentTriangle(i, func(triIdx, _ int) {
			t := m.triangles.At(triIdx)
			if t.deleted {
				return
			}
			counts[t.v[0]]++
			counts[t.v[1]]++
			counts[t.v[2]]++
		})
		for id, c := range counts {
			if c == 1 {
				m.vertices.Ref(id).flags.border = true
			}
		}
	}
}

// smartLinkBorders merges spatially-coincident border vertex pairs,
// classifying each pair as a UV
// seam or UV foldover depending on whether UV channel 0 agrees, and
// rewires affected triangle corners' geometric vertex id (leaving the
// attribute-vertex id untouched so the two sides of a seam keep distinct
// attribute data through Compactor).
func (m *Mesh) smartLinkBorders(opts Options) {
	type borderVert struct {
		id   int
		hash int64
	}

	var border []int
	for i := 0; i < m.vertexCount(); i++ {
		if m.vertices.At(i).flags.border {
			border = append(border, i)
		}
	}
	if len(border) < 2 {
		return
	}

	minX, maxX := m.vertices.At(border[0]).p.X, m.vertices.At(border[0]).p.X
	for _, id := range border[1:] {
		x := m.vertices.At(id).p.X
		minX = minFloat(minX, x)
		maxX = maxFloat(maxX, x)
	}
	width := maxX - minX

	const int32Max = float64(1<<31 - 1)
	hashOf := func(x float64) int64 {
		if width <= 1e-12 {
			return 0
		}
		return int64(math.Floor(((x-minX)/width*2 - 1) * int32Max))
	}

	var hashMaxDistance int64
	if width <= 1e-12 {
		hashMaxDistance = int64(1<<62 - 1)
	} else {
		hashMaxDistance = int64(math.Floor((opts.VertexLinkDistance / width) * int32Max))
		if hashMaxDistance < 1 {
			hashMaxDistance = 1
		}
	}

	list := make([]borderVert, len(border))
	for i, id := range border {
		list[i] = borderVert{id: id, hash: hashOf(m.vertices.At(id).p.X)}
	}
	sort.Slice(list, func(a, b int) bool { return list[a].hash < list[b].hash })

	linkDistSq := opts.VertexLinkDistance * opts.VertexLinkDistance

	for i := 0; i < len(list); i++ {
		vi := list[i].id
		if m.vertices.At(vi).blank {
			continue
		}
		for j := i + 1; j < len(list); j++ {
			if list[j].hash-list[i].hash > hashMaxDistance {
				break
			}
			vj := list[j].id
			if m.vertices.At(vj).blank || vj == vi {
				continue
			}
			pi := m.vertices.At(vi).p
			pj := m.vertices.At(vj).p
			if pi.DistanceSq(pj) > linkDistSq {
				continue
			}

			foldover := m.uv0Equal(vi, vj)

			vRef := m.vertices.Ref(vi)
			vRef.flags.border = false
			if foldover {
				vRef.flags.uvFoldover = true
			} else {
				vRef.flags.uvSeam = true
			}

			jRef := m.vertices.Ref(vj)
			jRef.flags.border = false
			if foldover {
				jRef.flags.uvFoldover = true
			} else {
				jRef.flags.uvSeam = true
			}

			m.forEachIncidentTriangle(vj, func(triIdx, corner int) {
				t := m.triangles.Ref(triIdx)
				if t.deleted {
					return
				}
				if t.v[corner] == vj {
					t.v[corner] = vi
				}
			})

			jRef.blank = true
		}
	}

	m.updateReferences()
}

// uv0Equal compares UV channel 0's coordinates at two vertices for exact
// equality; vertices with no UV channel 0 data are treated as not equal,
// i.e. the pair is classified as a seam.
func (m *Mesh) uv0Equal(a, b int) bool {
	ch := m.attrs.uv[0]
	if ch.dim == 0 || a >= len(ch.data) || b >= len(ch.data) {
		return false
	}
	va, vb := ch.data[a], ch.data[b]
	for k := 0; k < ch.dim; k++ {
		if va[k] != vb[k] {
			return false
		}
	}
	return true
}
