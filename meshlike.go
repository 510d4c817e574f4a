package meshsimplify

// MeshLike is a plain host-supplied mesh container: a bag of parallel
// attribute slices plus sub-mesh index lists, with no inheritance from or
// dependency on any host-runtime mesh type. Every field is optional except
// Positions and SubMeshIndices.
type MeshLike struct {
	Positions      []Vector3D
	SubMeshIndices [][]int // one triangle-index list per sub-mesh

	Normals     []Vector3D
	Tangents    []Vector4D
	Colors      []Vector4D
	BoneWeights []BoneWeight
	Bindposes   []Vector4D
	UV          [maxUVChannels]UVInput
	BlendShapes []BlendShape
}

// UVInput is one UV channel's raw host data. Dimensionality is forced by
// Options.UVComponentCount when Options.ManualUVComponentCount is set;
// otherwise it is auto-detected from Data.
type UVInput struct {
	Data [][4]float64
}

// Initialize populates the mesh's vertex buffer and attribute streams from
// ml: positions first, then optional attributes, then sub-meshes. A
// length-mismatched optional attribute is cleared with a warning, never an
// error.
func (m *Mesh) Initialize(ml MeshLike, opts Options) error {
	if ml.Positions == nil {
		return &InvalidArgumentError{Name: "Positions", Message: "must not be nil"}
	}
	for _, row := range ml.SubMeshIndices {
		if len(row)%3 != 0 {
			return &InvalidArgumentError{Name: "indices", Message: "length must be a multiple of 3"}
		}
	}

	m.vertices.Clear()
	m.triangles.Clear()
	m.refs.Clear()
	m.attrs = attributeSet{}
	m.subMeshCount = 0
	m.subMeshStale = true

	for _, p := range ml.Positions {
		m.vertices.Add(vertex{p: p})
	}

	m.SetNormals(ml.Normals)
	m.SetTangents(ml.Tangents)
	m.SetColors(ml.Colors)
	m.SetBoneWeights(ml.BoneWeights)
	m.SetBindposes(ml.Bindposes)
	m.SetBlendShapes(ml.BlendShapes)

	for c := 0; c < maxUVChannels; c++ {
		data := ml.UV[c].Data
		if data == nil {
			continue
		}
		dim := detectUVDimension(data)
		if opts.ManualUVComponentCount {
			dim = opts.UVComponentCount
		}
		switch dim {
		case 0:
			continue
		case 2:
			uvs := make([][2]float64, len(data))
			for i, v := range data {
				uvs[i] = [2]float64{v[0], v[1]}
			}
			_ = m.SetUV2D(c, uvs)
		case 3:
			uvs := make([][3]float64, len(data))
			for i, v := range data {
				uvs[i] = [3]float64{v[0], v[1], v[2]}
			}
			_ = m.SetUV3D(c, uvs)
		case 4:
			_ = m.SetUV4D(c, data)
		}
	}

	m.ClearSubMeshes()
	if err := m.AddSubMeshTriangleLists(ml.SubMeshIndices); err != nil {
		return err
	}
	return nil
}

// detectUVDimension picks 2/3/4 components based on which trailing
// components of any UV in the channel are non-zero.
func detectUVDimension(data [][4]float64) int {
	dim := 2
	for _, v := range data {
		if v[3] != 0 {
			return 4
		}
		if v[2] != 0 {
			dim = 3
		}
	}
	return dim
}

// AddSubMeshTriangles appends one new sub-mesh whose triangles are
// indices[i*3:i*3+3], i=0..len/3-1. Fails with InvalidArgument if
// len(indices) is not a multiple of 3.
func (m *Mesh) AddSubMeshTriangles(indices []int) error {
	if len(indices)%3 != 0 {
		return &InvalidArgumentError{Name: "indices", Message: "length must be a multiple of 3"}
	}
	id := m.subMeshCount
	m.subMeshCount++
	for i := 0; i+2 < len(indices); i += 3 {
		t := triangle{
			v:       [3]int{indices[i], indices[i+1], indices[i+2]},
			va:      [3]int{indices[i], indices[i+1], indices[i+2]},
			subMesh: id,
		}
		m.triangles.Add(t)
	}
	m.subMeshStale = true
	return nil
}

// AddSubMeshTriangleLists runs AddSubMeshTriangles once per row, in order;
// fails fast on the first invalid row without adding any of the later ones.
func (m *Mesh) AddSubMeshTriangleLists(rows [][]int) error {
	for _, row := range rows {
		if len(row)%3 != 0 {
			return &InvalidArgumentError{Name: "indices", Message: "length must be a multiple of 3"}
		}
	}
	for _, row := range rows {
		if err := m.AddSubMeshTriangles(row); err != nil {
			return err
		}
	}
	return nil
}

// ClearSubMeshes empties the triangle buffer and resets the sub-mesh count.
func (m *Mesh) ClearSubMeshes() {
	m.triangles.Clear()
	m.refs.Clear()
	m.subMeshCount = 0
	m.subMeshStale = true
}

// rebuildSubMeshOffsets computes, for each sub-mesh id, its starting
// triangle index assuming triangles are already grouped by sub-mesh id in
// ascending order — true immediately after Initialize/AddSubMeshTriangles
// and restored by CompactMesh.
func (m *Mesh) rebuildSubMeshOffsets() {
	offsets := make([]int, m.subMeshCount+1)
	for i := 0; i < m.triangles.Len(); i++ {
		t := m.triangles.At(i)
		if t.deleted {
			continue
		}
		offsets[t.subMesh+1]++
	}
	for i := 1; i < len(offsets); i++ {
		offsets[i] += offsets[i-1]
	}
	m.subMeshOffsets = offsets
	m.subMeshStale = false
}

// GetSubMeshTriangles returns sub-mesh k's triangle indices flattened to a
// length-3n array. Fails with OutOfRange on an unknown k.
func (m *Mesh) GetSubMeshTriangles(k int) ([]int, error) {
	if k < 0 || k >= m.subMeshCount {
		return nil, &OutOfRangeError{Name: "sub-mesh", Index: k}
	}
	if m.subMeshStale {
		m.rebuildSubMeshOffsets()
	}
	if len(m.subMeshOffsets) != m.subMeshCount+1 {
		return nil, &InvalidStateError{Message: "sub-mesh offset table size does not match sub-mesh count"}
	}

	out := make([]int, 0, (m.subMeshOffsets[k+1]-m.subMeshOffsets[k])*3)
	seen := 0
	for i := 0; i < m.triangles.Len(); i++ {
		t := m.triangles.At(i)
		if t.deleted || t.subMesh != k {
			continue
		}
		out = append(out, t.v[0], t.v[1], t.v[2])
		seen++
	}
	_ = seen
	return out, nil
}

// SubMeshCount returns the number of sub-meshes currently registered.
func (m *Mesh) SubMeshCount() int { return m.subMeshCount }

// VertexCount returns the live vertex count.
func (m *Mesh) VertexCount() int { return m.vertexCount() }

// TriangleCount returns the live (non-deleted) triangle count.
func (m *Mesh) TriangleCount() int { return m.nonDeletedTriangleCount() }

// ToMesh extracts the simplified result as a MeshLike. Positions, attribute
// streams and sub-mesh index lists all reflect the vertex ids produced by
// the most recent CompactMesh.
func (m *Mesh) ToMesh() MeshLike {
	out := MeshLike{
		Positions:   make([]Vector3D, m.vertexCount()),
		Normals:     cloneSlice(m.attrs.normals),
		Tangents:    cloneSlice(m.attrs.tangents),
		Colors:      cloneSlice(m.attrs.colors),
		BoneWeights: cloneSlice(m.attrs.boneWeights),
		Bindposes:   cloneSlice(m.attrs.bindposes),
		BlendShapes: m.attrs.blendShapes,
	}
	for i := 0; i < m.vertexCount(); i++ {
		out.Positions[i] = m.vertices.At(i).p
	}
	for c := 0; c < maxUVChannels; c++ {
		ch := m.attrs.uv[c]
		if ch.dim == 0 {
			continue
		}
		out.UV[c] = UVInput{Data: append([][4]float64(nil), ch.data...)}
	}

	out.SubMeshIndices = make([][]int, m.subMeshCount)
	for k := 0; k < m.subMeshCount; k++ {
		idx, err := m.GetSubMeshTriangles(k)
		if err != nil {
			idx = nil
		}
		out.SubMeshIndices[k] = idx
	}
	return out
}

// UsesWideIndices reports whether the vertex count requires 32-bit indices
// in a host format that otherwise defaults to 16-bit (threshold 65535).
func (m *Mesh) UsesWideIndices() bool { return m.vertexCount() > 65535 }
