// Package rans implements a byte-oriented range Asymmetric Numeral Systems
// coder driven by a pluggable cumulative distribution. The alphabet is
// fixed at [-128, 128] (257 symbols: the extra symbol keeps the CDF
// strictly increasing at the top of the range); the only model in use
// today is LaplaceCdf, but Cdf is an interface so the rANS inner loop
// dispatches through it without the renormalize path itself knowing which
// concrete model it's driving.
package rans

import (
	"math"

	"github.com/ebinlog/quatcodec/internal/numeric"
)

// Cdf is the interface a symbol model must implement to drive rANS.
type Cdf interface {
	// CDF returns the cumulative frequency at symbol x (cdf(-128)=0,
	// cdf(129)=2^Scale()).
	CDF(x int32) uint32
	// ICDF is the inverse of CDF: given a cumulative value in
	// [0, 2^Scale()), it returns the symbol whose [CDF(x), CDF(x+1))
	// interval contains it.
	ICDF(y uint32) int32
	// Scale is the entropy model's precision in bits.
	Scale() int32
}

// LaplaceCdf is a discretized two-sided Laplace distribution over the
// symbol alphabet [-128, 128].
type LaplaceCdf struct {
	varValue float64
	b        float64
	scale    int32
}

// NewLaplaceCdf builds a LaplaceCdf with the given variance and CDF
// precision (the codec uses scale=15 throughout).
func NewLaplaceCdf(variance float64, scale int32) LaplaceCdf {
	return LaplaceCdf{varValue: variance, b: math.Sqrt(variance / 2), scale: scale}
}

// CDF implements Cdf. The "+ (x + 128)" term reserves one count per symbol
// so every symbol has frequency >= 1 and rANS never sees a zero-frequency
// code; the 257 in (2^scale - 257) accounts for the 257-symbol alphabet.
// Both constants are load-bearing for interop with the peer decoder and
// must not be simplified away.
func (c LaplaceCdf) CDF(x int32) uint32 {
	if x <= -128 {
		return 0
	}
	if x > 128 {
		return uint32(1) << uint(c.scale)
	}
	xs := float64(x) - 0.5
	var cum float64
	if xs < 0 {
		cum = math.Exp(xs/c.b) / 2
	} else {
		cum = 1 - math.Exp(-xs/c.b)/2
	}
	return uint32(cum*(float64(uint32(1)<<uint(c.scale))-257)) + uint32(x+128)
}

// ICDF performs a bisection search over the 257-symbol alphabet; with only
// 257 symbols this is cheaper than precomputing and maintaining a lookup
// table.
func (c LaplaceCdf) ICDF(y uint32) int32 {
	return numeric.Bisect(-129, 129, func(mid int32) bool {
		return c.CDF(mid) <= y
	})
}

// Scale implements Cdf.
func (c LaplaceCdf) Scale() int32 { return c.scale }
