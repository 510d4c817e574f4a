package meshsimplify

// SymmetricMatrix holds the 10 upper-triangular coefficients of a 4x4
// symmetric quadric matrix, m0..m9 laid out row-major over the upper
// triangle:
//
//	| m0 m1 m2 m3 |
//	| m1 m4 m5 m6 |
//	| m2 m5 m7 m8 |
//	| m3 m6 m8 m9 |
//
// The upper-left 3x3 block and its column-replaced determinants (below)
// let optimalPosition solve for the collapse position minimizing error via
// Cramer's rule.
type SymmetricMatrix struct {
	m0, m1, m2, m3, m4, m5, m6, m7, m8, m9 float64
}

// newPlaneQuadric builds the quadric of the plane a*x+b*y+c*z+d=0, i.e.
// the outer product [a b c d]^T * [a b c d].
func newPlaneQuadric(a, b, c, d float64) SymmetricMatrix {
	return SymmetricMatrix{
		m0: a * a, m1: a * b, m2: a * c, m3: a * d,
		m4: b * b, m5: b * c, m6: b * d,
		m7: c * c, m8: c * d,
		m9: d * d,
	}
}

func (q SymmetricMatrix) Add(o SymmetricMatrix) SymmetricMatrix {
	return SymmetricMatrix{
		m0: q.m0 + o.m0, m1: q.m1 + o.m1, m2: q.m2 + o.m2, m3: q.m3 + o.m3,
		m4: q.m4 + o.m4, m5: q.m5 + o.m5, m6: q.m6 + o.m6,
		m7: q.m7 + o.m7, m8: q.m8 + o.m8,
		m9: q.m9 + o.m9,
	}
}

// VertexError evaluates x^T Q x for the homogeneous point (x,y,z,1).
func (q SymmetricMatrix) VertexError(x, y, z float64) float64 {
	return q.m0*x*x + 2*q.m1*x*y + 2*q.m2*x*z + 2*q.m3*x +
		q.m4*y*y + 2*q.m5*y*z + 2*q.m6*y +
		q.m7*z*z + 2*q.m8*z +
		q.m9
}

// det3x3 is the determinant of the upper-left 3x3 block (the "A" in Ax=b
// for the optimal-position system).
func (q SymmetricMatrix) det3x3() float64 {
	return q.m0*(q.m4*q.m7-q.m5*q.m5) -
		q.m1*(q.m1*q.m7-q.m5*q.m2) +
		q.m2*(q.m1*q.m5-q.m4*q.m2)
}

// The linear system solved for the optimal position is A·x = -b, where A is
// the upper-left 3x3 block of Q and b = (m3, m6, m8). det3x3ReplaceColN is
// the determinant of A with column N replaced by the system's right-hand
// side (-m3, -m6, -m8) — the Cramer's-rule numerator for component N.

func (q SymmetricMatrix) det3x3ReplaceCol1() float64 {
	return -q.m3*(q.m4*q.m7-q.m5*q.m5) +
		q.m1*(q.m6*q.m7-q.m5*q.m8) -
		q.m2*(q.m6*q.m5-q.m4*q.m8)
}

func (q SymmetricMatrix) det3x3ReplaceCol2() float64 {
	return q.m0*(q.m5*q.m8-q.m6*q.m7) +
		q.m3*(q.m1*q.m7-q.m2*q.m5) +
		q.m2*(q.m2*q.m6-q.m1*q.m8)
}

func (q SymmetricMatrix) det3x3ReplaceCol3() float64 {
	return q.m0*(q.m5*q.m6-q.m4*q.m8) +
		q.m1*(q.m1*q.m8-q.m2*q.m6) -
		q.m3*(q.m1*q.m5-q.m2*q.m4)
}

// optimalPosition solves Qx = 0 for the position minimizing x^T Q x,
// returning ok=false when the system's determinant is too close to
// singular to trust.
func (q SymmetricMatrix) optimalPosition() (Vector3D, bool) {
	det := q.det3x3()
	if det > -1e-12 && det < 1e-12 {
		return Vector3D{}, false
	}
	invDet := 1.0 / det
	return Vector3D{
		X: q.det3x3ReplaceCol1() * invDet,
		Y: q.det3x3ReplaceCol2() * invDet,
		Z: q.det3x3ReplaceCol3() * invDet,
	}, true
}
