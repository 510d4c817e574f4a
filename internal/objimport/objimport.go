// Package objimport loads Wavefront OBJ geometry into a meshsimplify.MeshLike.
//
// A line-oriented bufio.Scanner parses v/vn/vt/f directives, fan-
// triangulating any face with more than three vertices. Materials
// (mtllib/usemtl) are ignored — out of scope for a geometry-only
// simplifier input. Distinct v/vt/vn triplets are deduplicated into
// shared output vertices, rather than duplicating a vertex per face that
// touches it, so normal and UV simplification exercises real shared
// adjacency instead of a disconnected vertex soup.
package objimport

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	meshsimplify "github.com/mirstar13/meshsimplify"
)

// Load reads path and returns its geometry as a MeshLike with a single
// sub-mesh. Normals and UV channel 0 are populated only if the file
// supplied them for every face vertex referencing that stream.
func Load(path string) (meshsimplify.MeshLike, error) {
	file, err := os.Open(path)
	if err != nil {
		return meshsimplify.MeshLike{}, fmt.Errorf("objimport: cannot open file: %w", err)
	}
	defer file.Close()

	var rawPositions []meshsimplify.Vector3D
	var rawNormals []meshsimplify.Vector3D
	var rawUVs [][2]float64

	var positions []meshsimplify.Vector3D
	var normals []meshsimplify.Vector3D
	var uvs [][4]float64
	haveNormals := true
	haveUVs := true

	type vertexKey struct{ v, vt, vn int }
	seen := make(map[vertexKey]int)

	var indices []int

	lineNum := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "v":
			if len(parts) < 4 {
				return meshsimplify.MeshLike{}, fmt.Errorf("objimport: line %d: invalid vertex definition", lineNum)
			}
			x, e1 := strconv.ParseFloat(parts[1], 64)
			y, e2 := strconv.ParseFloat(parts[2], 64)
			z, e3 := strconv.ParseFloat(parts[3], 64)
			if e1 != nil || e2 != nil || e3 != nil {
				return meshsimplify.MeshLike{}, fmt.Errorf("objimport: line %d: invalid vertex coordinates", lineNum)
			}
			rawPositions = append(rawPositions, meshsimplify.Vector3D{X: x, Y: y, Z: z})

		case "vn":
			if len(parts) < 4 {
				return meshsimplify.MeshLike{}, fmt.Errorf("objimport: line %d: invalid normal definition", lineNum)
			}
			x, e1 := strconv.ParseFloat(parts[1], 64)
			y, e2 := strconv.ParseFloat(parts[2], 64)
			z, e3 := strconv.ParseFloat(parts[3], 64)
			if e1 != nil || e2 != nil || e3 != nil {
				return meshsimplify.MeshLike{}, fmt.Errorf("objimport: line %d: invalid normal coordinates", lineNum)
			}
			rawNormals = append(rawNormals, meshsimplify.Vector3D{X: x, Y: y, Z: z})

		case "vt":
			if len(parts) < 3 {
				return meshsimplify.MeshLike{}, fmt.Errorf("objimport: line %d: invalid texture coordinate", lineNum)
			}
			u, e1 := strconv.ParseFloat(parts[1], 64)
			v, e2 := strconv.ParseFloat(parts[2], 64)
			if e1 != nil || e2 != nil {
				return meshsimplify.MeshLike{}, fmt.Errorf("objimport: line %d: invalid UV coordinates", lineNum)
			}
			rawUVs = append(rawUVs, [2]float64{u, v})

		case "f":
			if len(parts) < 4 {
				return meshsimplify.MeshLike{}, fmt.Errorf("objimport: line %d: face must have at least 3 vertices", lineNum)
			}

			faceVerts := make([]int, 0, len(parts)-1)
			for i := 1; i < len(parts); i++ {
				key, err := parseFaceVertex(parts[i])
				if err != nil {
					return meshsimplify.MeshLike{}, fmt.Errorf("objimport: line %d: %w", lineNum, err)
				}

				out, ok := seen[key]
				if !ok {
					vIdx := key.v - 1
					if vIdx < 0 || vIdx >= len(rawPositions) {
						return meshsimplify.MeshLike{}, fmt.Errorf("objimport: line %d: vertex index out of range", lineNum)
					}
					out = len(positions)
					positions = append(positions, rawPositions[vIdx])

					if key.vn > 0 && key.vn-1 < len(rawNormals) {
						normals = append(normals, rawNormals[key.vn-1])
					} else {
						haveNormals = false
						normals = append(normals, meshsimplify.Vector3D{})
					}

					if key.vt > 0 && key.vt-1 < len(rawUVs) {
						uv := rawUVs[key.vt-1]
						uvs = append(uvs, [4]float64{uv[0], uv[1], 0, 0})
					} else {
						haveUVs = false
						uvs = append(uvs, [4]float64{})
					}

					seen[key] = out
				}
				faceVerts = append(faceVerts, out)
			}

			for i := 1; i < len(faceVerts)-1; i++ {
				indices = append(indices, faceVerts[0], faceVerts[i], faceVerts[i+1])
			}

		case "mtllib", "usemtl", "o", "g", "s":
			continue

		default:
			continue
		}
	}
	if err := scanner.Err(); err != nil {
		return meshsimplify.MeshLike{}, fmt.Errorf("objimport: error reading file: %w", err)
	}
	if len(positions) == 0 {
		return meshsimplify.MeshLike{}, fmt.Errorf("objimport: no vertices found in %q", path)
	}

	ml := meshsimplify.MeshLike{
		Positions:      positions,
		SubMeshIndices: [][]int{indices},
	}
	if haveNormals {
		ml.Normals = normals
	}
	if haveUVs {
		ml.UV[0] = meshsimplify.UVInput{Data: uvs}
	}
	return ml, nil
}

// parseFaceVertex parses one face-vertex token in v, v/vt, v/vt/vn, or
// v//vn form into 1-based (v, vt, vn) indices (0 meaning absent).
func parseFaceVertex(s string) (struct{ v, vt, vn int }, error) {
	var key struct{ v, vt, vn int }

	parts := strings.Split(s, "/")
	if len(parts) == 0 || parts[0] == "" {
		return key, fmt.Errorf("invalid face index %q", s)
	}

	v, err := strconv.Atoi(parts[0])
	if err != nil {
		return key, fmt.Errorf("invalid face index %q", s)
	}
	key.v = v

	if len(parts) > 1 && parts[1] != "" {
		if idx, err := strconv.Atoi(parts[1]); err == nil {
			key.vt = idx
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		if idx, err := strconv.Atoi(parts[2]); err == nil {
			key.vn = idx
		}
	}
	return key, nil
}
