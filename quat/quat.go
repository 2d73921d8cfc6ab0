package quat

import "github.com/ebinlog/quatcodec/fix"

// Quat is a quaternion (w, x, y, z) stored in scan order. The zero value is
// NOT the identity, use Identity() or New().
type Quat struct {
	W, X, Y, Z fix.Fix
}

// Identity returns the identity quaternion (1, 0, 0, 0).
func Identity() Quat {
	return Quat{W: fix.FromInt(1)}
}

// New builds a quaternion from its four components.
func New(w, x, y, z fix.Fix) Quat {
	return Quat{W: w, X: x, Y: y, Z: z}
}

// FromRVec is the exponential map: it converts a rotation vector to the
// quaternion representing the same rotation. For tiny angles (theta^2 <= 16
// raw Q5.27 units, matched to the peer C++ implementation bit for bit) it
// falls back to the first-order approximation to avoid dividing by a
// near-zero norm.
func FromRVec(v RVec) Quat {
	theta2 := v.X.Mul(v.X).Add(v.Y.Mul(v.Y)).Add(v.Z.Mul(v.Z))
	if theta2.Raw() > 16 {
		theta := theta2.Sqrt()
		halfTheta := theta.Mul(fix.FromFloat32(0.5))
		k := halfTheta.Sin().Div(theta)
		return Quat{
			W: halfTheta.Cos(),
			X: v.X.Mul(k),
			Y: v.Y.Mul(k),
			Z: v.Z.Mul(k),
		}
	}
	k := fix.FromFloat32(0.5)
	return Quat{
		W: fix.FromInt(1),
		X: v.X.Mul(k),
		Y: v.Y.Mul(k),
		Z: v.Z.Mul(k),
	}
}

// ToRVec is the logarithmic map: it recovers the rotation vector for q. For
// a near-zero rotation (s^2 <= 0) it returns the small-angle linear term
// (2x, 2y, 2z) directly.
func (q Quat) ToRVec() RVec {
	s2 := q.X.Mul(q.X).Add(q.Y.Mul(q.Y)).Add(q.Z.Mul(q.Z))
	if s2.Raw() <= 0 {
		two := fix.FromInt(2)
		return RVec{q.X.Mul(two), q.Y.Mul(two), q.Z.Mul(two)}
	}
	s := s2.Sqrt()
	c := q.W
	var twoTheta fix.Fix
	if c.Raw() < 0 {
		twoTheta = s.Neg().Atan2(c.Neg())
	} else {
		twoTheta = s.Atan2(c)
	}
	twoTheta = fix.FromInt(2).Mul(twoTheta)
	k := twoTheta.Div(s)
	return RVec{q.X.Mul(k), q.Y.Mul(k), q.Z.Mul(k)}
}

// Conj returns the conjugate (w, -x, -y, -z).
func (q Quat) Conj() Quat {
	return Quat{W: q.W, X: q.X.Neg(), Y: q.Y.Neg(), Z: q.Z.Neg()}
}

// Norm computes the quaternion's Euclidean norm.
func (q Quat) Norm() fix.Fix {
	sum := q.W.Mul(q.W).Add(q.X.Mul(q.X)).Add(q.Y.Mul(q.Y)).Add(q.Z.Mul(q.Z))
	return sum.Sqrt()
}

// SDiv divides every component by x.
func (q Quat) SDiv(x fix.Fix) Quat {
	return Quat{q.W.Div(x), q.X.Div(x), q.Y.Div(x), q.Z.Div(x)}
}

// SMul scales every component by x.
func (q Quat) SMul(x fix.Fix) Quat {
	return Quat{q.W.Mul(x), q.X.Mul(x), q.Y.Mul(x), q.Z.Mul(x)}
}

// NormalizeSafe divides q by its norm, collapsing to the zero quaternion
// instead of faulting when the norm is zero.
func (q Quat) NormalizeSafe() Quat {
	n := q.Norm()
	if n.Raw() == 0 {
		return Quat{}
	}
	return q.SDiv(n)
}

// Mul is the Hamilton product self*rhs.
func (q Quat) Mul(rhs Quat) Quat {
	return Quat{
		W: q.W.Mul(rhs.W).Sub(q.X.Mul(rhs.X)).Sub(q.Y.Mul(rhs.Y)).Sub(q.Z.Mul(rhs.Z)),
		X: q.W.Mul(rhs.X).Add(q.X.Mul(rhs.W)).Add(q.Y.Mul(rhs.Z)).Sub(q.Z.Mul(rhs.Y)),
		Y: q.W.Mul(rhs.Y).Sub(q.X.Mul(rhs.Z)).Add(q.Y.Mul(rhs.W)).Add(q.Z.Mul(rhs.X)),
		Z: q.W.Mul(rhs.Z).Add(q.X.Mul(rhs.Y)).Sub(q.Y.Mul(rhs.X)).Add(q.Z.Mul(rhs.W)),
	}
}

// Add returns the componentwise sum.
func (q Quat) Add(rhs Quat) Quat {
	return Quat{q.W.Add(rhs.W), q.X.Add(rhs.X), q.Y.Add(rhs.Y), q.Z.Add(rhs.Z)}
}

// RotatePoint rotates the rotation vector p by q, via q*p*conj(q).
func (q Quat) RotatePoint(p RVec) RVec {
	pq := Quat{X: p.X, Y: p.Y, Z: p.Z}
	r := q.Mul(pq).Mul(q.Conj())
	return RVec{r.X, r.Y, r.Z}
}
