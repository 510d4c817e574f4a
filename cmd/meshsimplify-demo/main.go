// Command meshsimplify-demo previews a mesh decimating in a terminal: load
// or generate a mesh, orbit a camera around it with the keyboard, and dial
// a target quality that meshsimplify.SimplifyMesh redraws live.
//
// Configuration is flag-parsed, keypresses are read on a background
// goroutine, and a fixed-FPS ticker drives the render loop.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/charmbracelet/harmonica"

	meshsimplify "github.com/mirstar13/meshsimplify"
	"github.com/mirstar13/meshsimplify/internal/asciiview"
	"github.com/mirstar13/meshsimplify/internal/gltfimport"
	"github.com/mirstar13/meshsimplify/internal/meshgen"
	"github.com/mirstar13/meshsimplify/internal/objimport"
)

func main() {
	width := flag.Int("width", 120, "terminal render width, in characters")
	height := flag.Int("height", 40, "terminal render height, in characters")
	fps := flag.Float64("fps", 30.0, "render loop frame rate")
	input := flag.String("mesh", "", "path to an .obj or .gltf/.glb file to load (default: generated sphere)")
	fixture := flag.String("fixture", "sphere", "built-in fixture when -mesh is unset: sphere, torus, cube, plane")
	flag.Parse()

	ml, err := loadInput(*input, *fixture)
	if err != nil {
		fmt.Fprintln(os.Stderr, "meshsimplify-demo:", err)
		os.Exit(1)
	}

	reader := newKeyReader()
	if err := reader.Start(); err != nil {
		fmt.Fprintln(os.Stderr, "meshsimplify-demo: keyboard unavailable:", err)
		os.Exit(1)
	}
	defer reader.Stop()

	runLoop(ml, *width, *height, *fps, reader)
}

func loadInput(path, fixtureName string) (meshsimplify.MeshLike, error) {
	if path == "" {
		switch fixtureName {
		case "torus":
			return meshgen.Torus(3, 1, 48, 24), nil
		case "cube":
			return meshgen.Cube(2), nil
		case "plane":
			return meshgen.Plane(6, 24), nil
		default:
			return meshgen.Sphere(2, 32, 48), nil
		}
	}
	if isGLTF(path) {
		return gltfimport.Load(path)
	}
	return objimport.Load(path)
}

func isGLTF(path string) bool {
	n := len(path)
	return n >= 5 && (path[n-5:] == ".gltf" || path[n-4:] == ".glb")
}

// runLoop is the demo's render loop: a fixed-tick ticker drives camera
// orbit from keyboard state, eases the live simplification quality toward
// its target with a critically-damped harmonica spring (so +/- feels like
// a dial rather than a snap), re-simplifies the base mesh each frame the
// target moved, and redraws.
func runLoop(base meshsimplify.MeshLike, width, height int, fps float64, reader *keyReader) {
	cam := asciiview.NewOrbitCamera(asciiview.Vec3{}, boundingRadius(base)*2.5)

	quality := 1.0
	targetQuality := 1.0
	qualitySpring := harmonica.NewSpring(harmonica.FPS(int(fps)), 3.0, 1.0)
	qualityVelocity := 0.0

	heatMode := false
	lastQuality := -1.0

	fmt.Print("\033[2J\033[H")
	fmt.Println("meshsimplify demo  —  j/l/i/k orbit, w/s zoom, +/- quality, h heat view, esc quit")

	ticker := time.NewTicker(time.Duration(1000.0/fps) * time.Millisecond)
	defer ticker.Stop()

	var current *meshsimplify.Mesh
	for range ticker.C {
		in := reader.State()
		if in.Quit {
			break
		}

		const orbitSpeed = 0.04
		if in.OrbitLeft {
			cam.Yaw -= orbitSpeed
		}
		if in.OrbitRight {
			cam.Yaw += orbitSpeed
		}
		if in.OrbitUp {
			cam.Pitch += orbitSpeed
		}
		if in.OrbitDown {
			cam.Pitch -= orbitSpeed
		}
		if in.ZoomIn {
			cam.Distance *= 0.97
		}
		if in.ZoomOut {
			cam.Distance *= 1.03
		}
		if in.SimplifyUp {
			targetQuality += 0.01
		}
		if in.SimplifyDn {
			targetQuality -= 0.01
		}
		if targetQuality > 1 {
			targetQuality = 1
		}
		if targetQuality < 0.02 {
			targetQuality = 0.02
		}
		if in.ToggleHeat {
			heatMode = !heatMode
			reader.keys['h'] = false
			reader.keys['H'] = false
		}
		reader.Clear()

		quality, qualityVelocity = qualitySpring.Update(quality, qualityVelocity, targetQuality)

		if current == nil || abs(quality-lastQuality) > 0.002 {
			m, err := meshsimplify.NewFromMesh(base, meshsimplify.DefaultOptions())
			if err != nil {
				fmt.Fprintln(os.Stderr, "meshsimplify-demo:", err)
				break
			}
			if err := m.SimplifyMesh(quality, meshsimplify.DefaultOptions()); err != nil {
				fmt.Fprintln(os.Stderr, "meshsimplify-demo:", err)
				break
			}
			current = m
			lastQuality = quality
		}

		out := current.ToMesh()
		scene := asciiview.FromMeshLike(out, cam)

		var frame string
		if heatMode {
			// Mesh exposes no per-triangle collapse errors, so every
			// triangle gets zero error and the heat view draws the whole
			// mesh in the gradient's lowest color.
			errs := make([]float64, len(out.SubMeshIndices[0])/3)
			frame = asciiview.HighlightErrors(scene, errs, width, height)
		} else {
			frame = asciiview.Render(scene, width, height)
		}

		fmt.Print("\033[H")
		fmt.Print(frame)
		fmt.Printf("quality: %.2f  triangles: %d\n", quality, current.TriangleCount())
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func boundingRadius(ml meshsimplify.MeshLike) float64 {
	r := 1.0
	for _, p := range ml.Positions {
		d := p.X*p.X + p.Y*p.Y + p.Z*p.Z
		if d > r*r {
			r = math.Sqrt(d)
		}
	}
	return r
}
