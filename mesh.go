package meshsimplify

// edgeFlags are the three per-vertex border/seam/foldover classifications
// used to gate which edges a collapse is allowed to touch.
type edgeFlags struct {
	border     bool
	uvSeam     bool
	uvFoldover bool
}

// vertex holds a position, the adjacency slice into the refs buffer, an
// accumulated quadric, edge flags, and a stable id.
type vertex struct {
	p Vector3D
	q SymmetricMatrix

	tstart int
	tcount int

	flags edgeFlags
	id    int

	// blank marks a vertex retired by smart-linking: its slot is skipped by
	// the rest of that sweep but the slot itself isn't physically removed
	// until CompactMesh.
	blank bool
}

type triangle struct {
	v  [3]int // geometric vertex indices
	va [3]int // attribute-vertex indices; equal to v until smart-linking or a collapse separates them

	subMesh int
	normal  Vector3D

	err     [3]float64
	errMin  float64
	deleted bool
	dirty   bool
}

// ref identifies one corner of one triangle.
type ref struct {
	triangle int
	corner   int
}

// Mesh is the decimation engine's owned state: vertices, triangles,
// adjacency refs, attribute streams and sub-mesh partitioning. It is
// constructed via New or NewFromMesh and driven through
// SimplifyMesh / SimplifyMeshLossless to ToMesh.
type Mesh struct {
	vertices  buffer[vertex]
	triangles buffer[triangle]
	refs      buffer[ref]

	attrs attributeSet

	subMeshCount   int
	subMeshOffsets []int // lazily (re)computed; stale after AddSubMeshTriangles
	subMeshStale   bool

	logger Logger

	// scratch state reused across collapse attempts: the two "about to be
	// deleted" bitmaps and the pair of triangle-id sets the curvature term
	// needs.
	scratch simplifyScratch
}

// New returns an empty Mesh with the default logger.
func New() *Mesh {
	return &Mesh{logger: defaultLogger{}}
}

// NewFromMesh constructs a Mesh and immediately Initializes it from ml.
func NewFromMesh(ml MeshLike, opts Options) (*Mesh, error) {
	m := New()
	if err := m.Initialize(ml, opts); err != nil {
		return nil, err
	}
	return m, nil
}

// SetLogger overrides the warning sink used for shape-mismatch warnings.
// Passing nil restores the default (stdlib log).
func (m *Mesh) SetLogger(l Logger) {
	if l == nil {
		l = defaultLogger{}
	}
	m.logger = l
}

func (m *Mesh) vertexCount() int   { return m.vertices.Len() }
func (m *Mesh) triangleCount() int { return m.triangles.Len() }

// nonDeletedTriangleCount scans the triangle buffer; used by the simplifier
// loop's termination predicate.
func (m *Mesh) nonDeletedTriangleCount() int {
	n := 0
	for i := 0; i < m.triangles.Len(); i++ {
		if !m.triangles.At(i).deleted {
			n++
		}
	}
	return n
}
