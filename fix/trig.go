package fix

// Atan2 computes atan2(self, x) via a three-term odd polynomial kernel on the
// first octant, folded out to the full plane by sign flips and the
// |y| > |x| swap identity atan(y/x) = pi/2 - atan(x/y).
func (self Fix) Atan2(x Fix) Fix {
	if x.v == 0 {
		if self.v > 0 {
			return HalfPi()
		}
		return HalfPi().Neg()
	}
	ret := atanDiv(self, x)
	if x.v < 0 {
		if self.v >= 0 {
			return ret.Add(Pi())
		}
		return ret.Sub(Pi())
	}
	return ret
}

// atanS evaluates the odd polynomial kernel ((fa*x^2 + fb)*x^2 + fc) * x,
// valid for x in [0, 1].
func atanS(x Fix) Fix {
	xx := x.Mul(x)
	return atanFa.Mul(xx).Add(atanFb).Mul(xx).Add(atanFc).Mul(x)
}

func atanDiv(y, x Fix) Fix {
	switch {
	case y.v < 0:
		if x.v < 0 {
			return atanDiv(y.Neg(), x.Neg())
		}
		return atanDiv(y.Neg(), x).Neg()
	case x.v < 0:
		return atanDiv(y, x.Neg()).Neg()
	default:
		if y.v > x.v {
			return HalfPi().Sub(atanS(x.Div(y)))
		}
		return atanS(y.Div(x))
	}
}

// Sin computes sine by reducing the argument modulo 2*pi into [0, 1] (in
// units of pi/2) with a sign toggle, then evaluating a closed-form odd
// quintic.
func (self Fix) Sin() Fix {
	x := self.Fmod(TwoPi())
	x = x.Div(HalfPi())
	if x.v < 0 {
		x = x.Add(FromInt(4))
	}
	sign := int32(1)
	if x.Cmp(FromInt(2)) > 0 {
		x = x.Sub(FromInt(2))
		sign = -1
	}
	if x.Cmp(FromInt(1)) > 0 {
		x = FromInt(2).Sub(x)
	}
	x2 := x.Mul(x)
	inner := Pi().Sub(x2.Mul(TwoPi().Sub(FromInt(5)).Sub(x2.Mul(Pi().Sub(FromInt(3))))))
	return FromInt(sign).Mul(x).Mul(inner).Div(FromInt(2))
}

// Cos computes cosine as sin(pi/2 + x).
func (self Fix) Cos() Fix {
	return HalfPi().Add(self).Sin()
}
