// Package gltfimport loads glTF/GLB geometry into a meshsimplify.MeshLike,
// using github.com/qmuntal/gltf to open the document.
//
// Accessors are decoded manually: a buffer-view byte offset/stride walk
// with a per-component-type switch, rather than a richer convenience
// layer, to read POSITION/NORMAL/TEXCOORD_0 and index accessors directly.
// Embedded texture extraction and winding-order correction are out of
// scope for a geometry-only simplifier input. External (non-embedded)
// buffers are unsupported.
package gltfimport

import (
	"fmt"
	"math"

	"github.com/qmuntal/gltf"

	meshsimplify "github.com/mirstar13/meshsimplify"
)

// Load reads the glTF or GLB document at path and flattens every mesh
// primitive's geometry into one MeshLike, one sub-mesh per primitive.
func Load(path string) (meshsimplify.MeshLike, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return meshsimplify.MeshLike{}, fmt.Errorf("gltfimport: open: %w", err)
	}

	var ml meshsimplify.MeshLike
	haveNormals, anyNormals := true, false
	haveUVs, anyUVs := true, false

	for _, m := range doc.Meshes {
		for _, prim := range m.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
				continue
			}

			posIdx, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			positions, err := readVec3Accessor(doc, posIdx)
			if err != nil {
				return meshsimplify.MeshLike{}, fmt.Errorf("gltfimport: read positions: %w", err)
			}

			var normals []meshsimplify.Vector3D
			if normIdx, ok := prim.Attributes[gltf.NORMAL]; ok {
				normals, err = readVec3Accessor(doc, normIdx)
				if err != nil {
					return meshsimplify.MeshLike{}, fmt.Errorf("gltfimport: read normals: %w", err)
				}
				anyNormals = true
			} else {
				haveNormals = false
			}

			var uvs [][4]float64
			if uvIdx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
				raw, err := readVec2Accessor(doc, uvIdx)
				if err != nil {
					return meshsimplify.MeshLike{}, fmt.Errorf("gltfimport: read uvs: %w", err)
				}
				uvs = make([][4]float64, len(raw))
				for i, uv := range raw {
					uvs[i] = [4]float64{uv[0], uv[1], 0, 0}
				}
				anyUVs = true
			} else {
				haveUVs = false
			}

			base := len(ml.Positions)
			ml.Positions = append(ml.Positions, positions...)
			ml.Normals = append(ml.Normals, normals...)
			ml.UV[0].Data = append(ml.UV[0].Data, uvs...)

			var indices []int
			if prim.Indices != nil {
				idx, err := readIndices(doc, *prim.Indices)
				if err != nil {
					return meshsimplify.MeshLike{}, fmt.Errorf("gltfimport: read indices: %w", err)
				}
				indices = idx
			} else {
				indices = make([]int, len(positions))
				for i := range indices {
					indices[i] = i
				}
			}

			triIdx := make([]int, len(indices))
			for i, idx := range indices {
				triIdx[i] = base + idx
			}
			ml.SubMeshIndices = append(ml.SubMeshIndices, triIdx)
		}
	}

	if len(ml.Positions) == 0 {
		return meshsimplify.MeshLike{}, fmt.Errorf("gltfimport: no triangle geometry found in %q", path)
	}
	if !haveNormals || !anyNormals {
		ml.Normals = nil
	}
	if !haveUVs || !anyUVs {
		ml.UV[0] = meshsimplify.UVInput{}
	}
	return ml, nil
}

func readVec3Accessor(doc *gltf.Document, accessorIdx int) ([]meshsimplify.Vector3D, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 {
		return nil, fmt.Errorf("expected VEC3, got %v", accessor.Type)
	}
	data, err := readAccessorBytes(doc, accessor)
	if err != nil {
		return nil, err
	}
	stride := 12
	if bv := doc.BufferViews[*accessor.BufferView]; bv.ByteStride != 0 {
		stride = bv.ByteStride
	}
	out := make([]meshsimplify.Vector3D, accessor.Count)
	for i := 0; i < accessor.Count; i++ {
		off := i * stride
		out[i] = meshsimplify.Vector3D{
			X: float64(readFloat32(data[off:])),
			Y: float64(readFloat32(data[off+4:])),
			Z: float64(readFloat32(data[off+8:])),
		}
	}
	return out, nil
}

func readVec2Accessor(doc *gltf.Document, accessorIdx int) ([][2]float64, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec2 {
		return nil, fmt.Errorf("expected VEC2, got %v", accessor.Type)
	}
	data, err := readAccessorBytes(doc, accessor)
	if err != nil {
		return nil, err
	}
	stride := 8
	if bv := doc.BufferViews[*accessor.BufferView]; bv.ByteStride != 0 {
		stride = bv.ByteStride
	}
	out := make([][2]float64, accessor.Count)
	for i := 0; i < accessor.Count; i++ {
		off := i * stride
		// glTF's UV origin is top-left; flip V to match this package's
		// bottom-left convention.
		out[i] = [2]float64{
			float64(readFloat32(data[off:])),
			1.0 - float64(readFloat32(data[off+4:])),
		}
	}
	return out, nil
}

func readIndices(doc *gltf.Document, accessorIdx int) ([]int, error) {
	accessor := doc.Accessors[accessorIdx]
	data, err := readAccessorBytes(doc, accessor)
	if err != nil {
		return nil, err
	}

	out := make([]int, accessor.Count)
	switch accessor.ComponentType {
	case gltf.ComponentUbyte:
		for i := 0; i < accessor.Count; i++ {
			out[i] = int(data[i])
		}
	case gltf.ComponentUshort:
		for i := 0; i < accessor.Count; i++ {
			off := i * 2
			out[i] = int(uint16(data[off]) | uint16(data[off+1])<<8)
		}
	case gltf.ComponentUint:
		for i := 0; i < accessor.Count; i++ {
			off := i * 4
			out[i] = int(uint32(data[off]) | uint32(data[off+1])<<8 |
				uint32(data[off+2])<<16 | uint32(data[off+3])<<24)
		}
	default:
		return nil, fmt.Errorf("unsupported index component type: %v", accessor.ComponentType)
	}
	return out, nil
}

// readAccessorBytes slices out accessor's raw bytes from its buffer view,
// failing on external (non-embedded) buffers.
func readAccessorBytes(doc *gltf.Document, accessor *gltf.Accessor) ([]byte, error) {
	if accessor.BufferView == nil {
		return nil, fmt.Errorf("accessor has no buffer view")
	}
	bv := doc.BufferViews[*accessor.BufferView]
	buf := doc.Buffers[bv.Buffer]
	if buf.URI != "" && buf.Data == nil {
		return nil, fmt.Errorf("external buffers not supported")
	}
	start := bv.ByteOffset + accessor.ByteOffset
	return buf.Data[start:], nil
}

func readFloat32(b []byte) float32 {
	bits := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	return math.Float32frombits(bits)
}
