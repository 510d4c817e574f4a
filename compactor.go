package meshsimplify

// CompactMesh drops every deleted triangle and every vertex slot no longer
// referenced, renumbering both buffers to be contiguous from zero. Two
// (geometric, attribute) corners collapse to the same output vertex only
// when both ids agree; a corner whose attribute-vertex id was aliased away
// from its geometric id by a seam collapse (collapse.go) becomes its own
// output vertex, carrying the geometric vertex's position and surface
// attributes but the attribute vertex's UV data — which is how two
// distinct UV values survive at a seam after collapse.
func (m *Mesh) CompactMesh() {
	type vkey struct{ v, va int }
	remap := make(map[vkey]int)

	oldTriCount := m.triangles.Len()
	compacted := make([]triangle, 0, oldTriCount)

	for i := 0; i < oldTriCount; i++ {
		src := m.triangles.At(i)
		if src.deleted {
			continue
		}
		out := src
		for k := 0; k < 3; k++ {
			kk := vkey{v: src.v[k], va: src.va[k]}
			id, ok := remap[kk]
			if !ok {
				id = len(remap)
				remap[kk] = id
			}
			out.v[k] = id
			out.va[k] = id
		}
		compacted = append(compacted, out)
	}

	newVertexCount := len(remap)

	positions := make([]Vector3D, newVertexCount)
	for kk, id := range remap {
		positions[id] = m.vertices.At(kk.v).p
	}

	remapByGeometric := func(write func(id, src int)) {
		for kk, id := range remap {
			write(id, kk.v)
		}
	}
	remapByAttribute := func(write func(id, src int)) {
		for kk, id := range remap {
			write(id, kk.va)
		}
	}

	newNormals := compactVector3D(m.attrs.normals, newVertexCount, remapByGeometric)
	newTangents := compactVector4D(m.attrs.tangents, newVertexCount, remapByGeometric)
	newColors := compactVector4D(m.attrs.colors, newVertexCount, remapByGeometric)
	newBoneWeights := compactBoneWeights(m.attrs.boneWeights, newVertexCount, remapByGeometric)
	newBindposes := m.attrs.bindposes // pass-through host data, not a per-vertex stream

	var newUV [maxUVChannels]uvChannel
	for c := 0; c < maxUVChannels; c++ {
		ch := m.attrs.uv[c]
		if ch.dim == 0 {
			continue
		}
		data := make([][4]float64, newVertexCount)
		remapByAttribute(func(id, src int) {
			if src < len(ch.data) {
				data[id] = ch.data[src]
			}
		})
		newUV[c] = uvChannel{dim: ch.dim, data: data}
	}

	newBlendShapes := make([]BlendShape, len(m.attrs.blendShapes))
	for si, s := range m.attrs.blendShapes {
		kept := BlendShape{Name: s.Name, Frames: make([]BlendShapeFrame, len(s.Frames))}
		for fi, f := range s.Frames {
			kept.Frames[fi] = BlendShapeFrame{
				Weight:         f.Weight,
				DeltaPositions: compactVector3D(f.DeltaPositions, newVertexCount, remapByGeometric),
				DeltaNormals:   compactVector3D(f.DeltaNormals, newVertexCount, remapByGeometric),
				DeltaTangents:  compactVector3D(f.DeltaTangents, newVertexCount, remapByGeometric),
			}
		}
		newBlendShapes[si] = kept
	}

	m.vertices.Clear()
	for i := 0; i < newVertexCount; i++ {
		m.vertices.Add(vertex{p: positions[i], id: i})
	}

	m.triangles.Clear()
	for _, t := range compacted {
		m.triangles.Add(t)
	}

	m.attrs.normals = newNormals
	m.attrs.tangents = newTangents
	m.attrs.colors = newColors
	m.attrs.boneWeights = newBoneWeights
	m.attrs.bindposes = newBindposes
	m.attrs.uv = newUV
	m.attrs.blendShapes = newBlendShapes

	m.updateReferences()
	m.subMeshStale = true
	m.rebuildSubMeshOffsets()
}

// compactVector3D rebuilds a []Vector3D attribute stream under remap,
// returning nil when src is nil (the stream was never set).
func compactVector3D(src []Vector3D, n int, remap func(write func(id, src int))) []Vector3D {
	if src == nil {
		return nil
	}
	out := make([]Vector3D, n)
	remap(func(id, s int) {
		if s < len(src) {
			out[id] = src[s]
		}
	})
	return out
}

func compactVector4D(src []Vector4D, n int, remap func(write func(id, src int))) []Vector4D {
	if src == nil {
		return nil
	}
	out := make([]Vector4D, n)
	remap(func(id, s int) {
		if s < len(src) {
			out[id] = src[s]
		}
	})
	return out
}

func compactBoneWeights(src []BoneWeight, n int, remap func(write func(id, src int))) []BoneWeight {
	if src == nil {
		return nil
	}
	out := make([]BoneWeight, n)
	remap(func(id, s int) {
		if s < len(src) {
			out[id] = src[s]
		}
	})
	return out
}
