// Package quat implements unit quaternions and rotation vectors over the
// fix.Fix (Q5.27) fixed-point type: Hamilton products, the exponential map
// from rotation vector to quaternion, and the logarithmic map back. Input
// handedness and axis conventions are left opaque; callers must simply
// agree on the same convention on both sides of the wire.
package quat

import "github.com/ebinlog/quatcodec/fix"

// RVec is a rotation vector: direction is the rotation axis, magnitude is
// the angle in radians.
type RVec struct {
	X, Y, Z fix.Fix
}

// NewRVec builds a rotation vector from its three components.
func NewRVec(x, y, z fix.Fix) RVec { return RVec{X: x, Y: y, Z: z} }

// Add returns the componentwise sum.
func (v RVec) Add(o RVec) RVec {
	return RVec{v.X.Add(o.X), v.Y.Add(o.Y), v.Z.Add(o.Z)}
}

// Sub returns the componentwise difference.
func (v RVec) Sub(o RVec) RVec {
	return RVec{v.X.Sub(o.X), v.Y.Sub(o.Y), v.Z.Sub(o.Z)}
}

// Neg negates every component.
func (v RVec) Neg() RVec {
	return RVec{v.X.Neg(), v.Y.Neg(), v.Z.Neg()}
}

// SMul scales every component by k.
func (v RVec) SMul(k fix.Fix) RVec {
	return RVec{v.X.Mul(k), v.Y.Mul(k), v.Z.Mul(k)}
}

// SDiv divides every component by k.
func (v RVec) SDiv(k fix.Fix) RVec {
	return RVec{v.X.Div(k), v.Y.Div(k), v.Z.Div(k)}
}

// Norm computes the Euclidean norm of the vector.
func (v RVec) Norm() fix.Fix {
	return v.X.Mul(v.X).Add(v.Y.Mul(v.Y)).Add(v.Z.Mul(v.Z)).Sqrt()
}

// Normalized returns v scaled to unit length.
func (v RVec) Normalized() RVec {
	return v.SDiv(v.Norm())
}
