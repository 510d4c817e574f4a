package meshsimplify

// Vector4D is a double-precision 4-component vector used for tangents and
// vertex colors.
type Vector4D struct {
	X, Y, Z, W float64
}

func (v Vector4D) xyz() Vector3D { return Vector3D{v.X, v.Y, v.Z} }

func (v Vector4D) Scale(s float64) Vector4D {
	return Vector4D{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

func (v Vector4D) Add(o Vector4D) Vector4D {
	return Vector4D{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

// normalizeXYZPreserveW renormalizes the xyz part to unit length, keeping W
// as accumulated from the weighted sum.
func (v Vector4D) normalizeXYZPreserveW() Vector4D {
	n := v.xyz().Normalize()
	return Vector4D{n.X, n.Y, n.Z, v.W}
}

// BoneWeight is one vertex's skinning data: up to 4 bone indices and their
// blend weights.
type BoneWeight struct {
	BoneIndex [4]int32
	Weight    [4]float32
}

// BlendShapeFrame is one (weight, delta) keyframe of a blend shape.
type BlendShapeFrame struct {
	Weight         float64
	DeltaPositions []Vector3D
	DeltaNormals   []Vector3D
	DeltaTangents  []Vector3D
}

// BlendShape is a named sequence of frames, parallel to the vertex array
// within each frame's delta slices.
type BlendShape struct {
	Name   string
	Frames []BlendShapeFrame
}

// uvChannel is one UV channel: its component count dim (0 unset, 2, 3, or
// 4) and its per-vertex data.
type uvChannel struct {
	dim  int
	data [][4]float64 // only the first `dim` components are meaningful
}

func (c *uvChannel) clear() {
	c.dim = 0
	c.data = nil
}

// attributeSet holds every optional per-vertex stream this package
// recognizes, each parallel to the vertex array.
type attributeSet struct {
	normals     []Vector3D
	tangents    []Vector4D
	colors      []Vector4D
	boneWeights []BoneWeight
	bindposes   []Vector4D // host transform data, passed through untouched
	uv          [8]uvChannel
	blendShapes []BlendShape
}

const maxUVChannels = 8

// setLengthChecked implements the attribute setters' shared semantics:
// accept an array equal in length to the current vertex count, otherwise
// clear the stream and warn — never an error.
func setLengthChecked[T any](m *Mesh, dst *[]T, src []T, name string) {
	if src == nil {
		*dst = nil
		return
	}
	if len(src) != m.vertexCount() {
		*dst = nil
		m.logger.Warnf("meshsimplify: %s length %d does not match vertex count %d; clearing", name, len(src), m.vertexCount())
		return
	}
	cp := make([]T, len(src))
	copy(cp, src)
	*dst = cp
}

// SetNormals sets the per-vertex normal stream.
func (m *Mesh) SetNormals(normals []Vector3D) {
	setLengthChecked(m, &m.attrs.normals, normals, "normals")
}

// Normals returns a copy of the normal stream, or nil if unset.
func (m *Mesh) Normals() []Vector3D { return cloneSlice(m.attrs.normals) }

// SetTangents sets the per-vertex tangent stream (xyz + handedness in w).
func (m *Mesh) SetTangents(tangents []Vector4D) {
	setLengthChecked(m, &m.attrs.tangents, tangents, "tangents")
}

func (m *Mesh) Tangents() []Vector4D { return cloneSlice(m.attrs.tangents) }

// SetColors sets the per-vertex RGBA color stream (components in [0,1]).
func (m *Mesh) SetColors(colors []Vector4D) {
	setLengthChecked(m, &m.attrs.colors, colors, "colors")
}

func (m *Mesh) Colors() []Vector4D { return cloneSlice(m.attrs.colors) }

// SetBoneWeights sets the per-vertex skinning stream.
func (m *Mesh) SetBoneWeights(weights []BoneWeight) {
	setLengthChecked(m, &m.attrs.boneWeights, weights, "bone weights")
}

func (m *Mesh) BoneWeights() []BoneWeight { return cloneSlice(m.attrs.boneWeights) }

// SetBindposes passes host bind-pose data straight through without
// interpretation.
func (m *Mesh) SetBindposes(bindposes []Vector4D) { m.attrs.bindposes = cloneSlice(bindposes) }

func (m *Mesh) Bindposes() []Vector4D { return cloneSlice(m.attrs.bindposes) }

// SetBlendShapes replaces the blend-shape list wholesale; each frame's
// delta slices must be parallel to the vertex array (DeltaNormals and
// DeltaTangents may be nil) or that frame is dropped with a warning.
func (m *Mesh) SetBlendShapes(shapes []BlendShape) {
	out := make([]BlendShape, 0, len(shapes))
	n := m.vertexCount()
	for _, s := range shapes {
		kept := BlendShape{Name: s.Name}
		for _, f := range s.Frames {
			if len(f.DeltaPositions) != n ||
				(f.DeltaNormals != nil && len(f.DeltaNormals) != n) ||
				(f.DeltaTangents != nil && len(f.DeltaTangents) != n) {
				m.logger.Warnf("meshsimplify: blend shape %q frame delta length mismatch; dropping frame", s.Name)
				continue
			}
			kept.Frames = append(kept.Frames, BlendShapeFrame{
				Weight:         f.Weight,
				DeltaPositions: cloneSlice(f.DeltaPositions),
				DeltaNormals:   cloneSlice(f.DeltaNormals),
				DeltaTangents:  cloneSlice(f.DeltaTangents),
			})
		}
		out = append(out, kept)
	}
	m.attrs.blendShapes = out
}

func (m *Mesh) BlendShapes() []BlendShape { return m.attrs.blendShapes }

// SetUV2D/3D/4D set UV channel c to the given component count, clearing any
// other dimensionality previously set on that channel: setting 2D UV on
// channel c clears 3D and 4D UV for channel c and vice versa.
func (m *Mesh) SetUV2D(channel int, uvs [][2]float64) error {
	return m.setUV(channel, 2, func() [][4]float64 {
		out := make([][4]float64, len(uvs))
		for i, v := range uvs {
			out[i] = [4]float64{v[0], v[1], 0, 0}
		}
		return out
	}())
}

func (m *Mesh) SetUV3D(channel int, uvs [][3]float64) error {
	return m.setUV(channel, 3, func() [][4]float64 {
		out := make([][4]float64, len(uvs))
		for i, v := range uvs {
			out[i] = [4]float64{v[0], v[1], v[2], 0}
		}
		return out
	}())
}

func (m *Mesh) SetUV4D(channel int, uvs [][4]float64) error {
	return m.setUV(channel, 4, uvs)
}

func (m *Mesh) setUV(channel, dim int, data [][4]float64) error {
	if channel < 0 || channel >= maxUVChannels {
		return &InvalidArgumentError{Name: "channel", Message: "UV channel out of range [0,8)"}
	}
	ch := &m.attrs.uv[channel]
	ch.clear()
	if data == nil {
		return nil
	}
	if len(data) != m.vertexCount() {
		m.logger.Warnf("meshsimplify: UV%d channel %d length %d does not match vertex count %d; clearing", dim, channel, len(data), m.vertexCount())
		return nil
	}
	ch.dim = dim
	ch.data = append([][4]float64(nil), data...)
	return nil
}

// UVDimension reports the component count currently set on channel c
// (0 if unset).
func (m *Mesh) UVDimension(channel int) int {
	if channel < 0 || channel >= maxUVChannels {
		return 0
	}
	return m.attrs.uv[channel].dim
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	cp := make([]T, len(s))
	copy(cp, s)
	return cp
}
