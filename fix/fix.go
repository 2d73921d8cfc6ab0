// Package fix implements Q5.27 fixed point arithmetic: a signed 32-bit
// integer whose represented value is v / 2^27. Every operator here is
// defined bit-exactly so that an encoder and a decoder built from this
// package trace identical arithmetic regardless of platform: the codec's
// entropy coder state diverges silently if they don't.
//
// No floating point appears on this path except from_float/to_float and
// the transcendental constants below, which are derived once from fixed
// 64-bit literals rather than computed at runtime.
package fix

// Frac is the number of fractional bits (Q5.27).
const Frac = 27

// Mult is 2^Frac, the fixed-point scale factor.
const Mult int32 = 1 << Frac

// Fix is a Q5.27 signed fixed-point number: v represents v / Mult.
type Fix struct {
	v int32
}

// FromRaw wraps a raw Q5.27 integer.
func FromRaw(x int32) Fix { return Fix{v: x} }

// FromInt scales an integer into Q5.27.
func FromInt(x int32) Fix { return Fix{v: x * Mult} }

// FromFloat32 rounds a float32 to the nearest Q5.27 value, ties away from zero.
func FromFloat32(x float32) Fix {
	f := x * float32(Mult)
	if x >= 0 {
		f += 0.5
	} else {
		f -= 0.5
	}
	return Fix{v: int32(f)}
}

// Raw returns the underlying Q5.27 integer.
func (a Fix) Raw() int32 { return a.v }

// ToFloat32 converts back to a float32 via a float64 intermediate.
func (a Fix) ToFloat32() float32 {
	return float32(float64(a.v) / float64(Mult))
}

// Add, Sub, Neg operate directly on the underlying integer; overflow is the
// caller's responsibility. A -tags=fixdebug build asserts it instead of
// wrapping silently.
func (a Fix) Add(b Fix) Fix {
	sum := a.v + b.v
	checkAddOverflow(a.v, b.v, sum)
	return Fix{v: sum}
}

func (a Fix) Sub(b Fix) Fix {
	diff := a.v - b.v
	checkSubOverflow(a.v, b.v, diff)
	return Fix{v: diff}
}

func (a Fix) Neg() Fix {
	checkNegOverflow(a.v)
	return Fix{v: -a.v}
}

// Mul computes a*b with round-to-nearest, ties away from zero, via a 64-bit
// intermediate.
func (a Fix) Mul(b Fix) Fix {
	val := int64(a.v) * int64(b.v) / int64(Mult/2)
	return Fix{v: int32(val/2 + val%2)}
}

// Div computes a/b with round-to-nearest, ties away from zero, via a 64-bit
// intermediate.
func (a Fix) Div(b Fix) Fix {
	val := int64(a.v) * int64(Mult) * 2 / int64(b.v)
	return Fix{v: int32(val/2 + val%2)}
}

// Cmp reports -1, 0, 1 comparing a to b.
func (a Fix) Cmp(b Fix) int {
	switch {
	case a.v < b.v:
		return -1
	case a.v > b.v:
		return 1
	default:
		return 0
	}
}

// Max returns the larger of a and b.
func (a Fix) Max(b Fix) Fix {
	if a.v >= b.v {
		return a
	}
	return b
}

// Fmod computes a % m; the sign follows the dividend, matching Go's %.
func (a Fix) Fmod(m Fix) Fix { return Fix{v: a.v % m.v} }

// Sqrt computes the integer (digit-by-digit) square root of a non-negative
// value, producing a correctly-rounded Q5.27 result.
func (a Fix) Sqrt() Fix {
	if a.v == 0 {
		return a
	}
	num := int64(a.v) << Frac
	var res int64
	bit := int64(1) << (((highestBit(a.v) + Frac) / 2) * 2)

	for bit != 0 {
		val := res + bit
		res >>= 1
		if num >= val {
			num -= val
			res += bit
		}
		bit >>= 2
	}
	if num > res {
		res++
	}
	return Fix{v: int32(res)}
}

func highestBit(x int32) uint32 {
	var r uint32
	for x != 0 {
		x >>= 1
		r++
	}
	if r == 0 {
		return 0
	}
	return r - 1
}
