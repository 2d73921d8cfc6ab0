package fix

// Transcendental constants, derived by right-shifting fixed 64-bit integer
// literals rather than computed from float64 math.Pi etc. The literals must
// match the C++ firmware peer bit-for-bit; do not "simplify" these to
// math.Pi-derived values.
var (
	e      = Fix{v: int32(int64(6267931151224907085) >> (61 - Frac))}
	pi     = Fix{v: int32(int64(7244019458077122842) >> (61 - Frac))}
	halfPi = Fix{v: int32(int64(7244019458077122842) >> (62 - Frac))}
	twoPi  = Fix{v: int32(int64(7244019458077122842) >> (60 - Frac))}
)

// E returns Euler's number in Q5.27.
func E() Fix { return e }

// Pi returns pi in Q5.27.
func Pi() Fix { return pi }

// HalfPi returns pi/2 in Q5.27.
func HalfPi() Fix { return halfPi }

// TwoPi returns 2*pi in Q5.27.
func TwoPi() Fix { return twoPi }

// atan_s polynomial coefficients, valid for x in [0, 1].
var (
	atanFa = Fix{v: int32(int64(716203666280654660) >> (63 - Frac))}
	atanFb = Fix{v: int32(int64(-2651115102768076601) >> (63 - Frac))}
	atanFc = Fix{v: int32(int64(9178930894564541004) >> (63 - Frac))}
)
