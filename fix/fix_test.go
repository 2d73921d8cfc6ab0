package fix

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	const tol = 1.0 / (1 << 26)
	for i := 0; i < 2000; i++ {
		// FromFloat32 takes a float32, so the round trip is measured against
		// the float32 value actually passed in.
		f := float64(float32((rand.Float64()*2 - 1) * 16))
		got := FromFloat32(float32(f)).ToFloat32()
		if math.Abs(float64(got)-f) >= tol {
			t.Fatalf("round trip %g -> %g, diff %g exceeds %g", f, got, math.Abs(float64(got)-f), tol)
		}
	}
}

func TestMulDivIdentity(t *testing.T) {
	a := FromFloat32(1.5)
	b := FromFloat32(2.0)
	got := a.Mul(b).ToFloat32()
	if math.Abs(float64(got)-3.0) > 1e-5 {
		t.Fatalf("1.5*2 = %g, want ~3", got)
	}
	got = b.Div(a).ToFloat32()
	if math.Abs(float64(got)-4.0/3.0) > 1e-4 {
		t.Fatalf("2/1.5 = %g, want ~1.333", got)
	}
}

func TestSqrt(t *testing.T) {
	cases := []float32{0, 0.25, 1, 2, 4, 9.5, 15.9}
	for _, c := range cases {
		got := FromFloat32(c).Sqrt().ToFloat32()
		want := float32(math.Sqrt(float64(c)))
		if math.Abs(float64(got-want)) > 1e-3 {
			t.Errorf("sqrt(%g) = %g, want ~%g", c, got, want)
		}
	}
}

func TestSinCos(t *testing.T) {
	for i := 0; i < 500; i++ {
		theta := (rand.Float64()*2 - 1) * math.Pi
		fx := FromFloat32(float32(theta))
		gotSin := float64(fx.Sin().ToFloat32())
		gotCos := float64(fx.Cos().ToFloat32())
		wantSin := math.Sin(theta)
		wantCos := math.Cos(theta)
		if math.Abs(gotSin-wantSin) > 5e-4 {
			t.Errorf("sin(%g) = %g, want ~%g", theta, gotSin, wantSin)
		}
		if math.Abs(gotCos-wantCos) > 5e-4 {
			t.Errorf("cos(%g) = %g, want ~%g", theta, gotCos, wantCos)
		}
	}
}

func TestAtan2(t *testing.T) {
	cases := [][2]float64{
		{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
		{0.01, 1}, {1, 0.01}, {-0.5, 2}, {3, -0.2},
	}
	for _, c := range cases {
		y := FromFloat32(float32(c[0]))
		x := FromFloat32(float32(c[1]))
		got := float64(y.Atan2(x).ToFloat32())
		want := math.Atan2(c[0], c[1])
		if math.Abs(got-want) > 2e-3 {
			t.Errorf("atan2(%g, %g) = %g, want ~%g", c[0], c[1], got, want)
		}
	}
}

func TestFmodSignFollowsDividend(t *testing.T) {
	a := FromRaw(-10)
	m := FromRaw(3)
	got := a.Fmod(m).Raw()
	if got != -1 {
		t.Fatalf("fmod(-10, 3) raw = %d, want -1 (sign follows dividend)", got)
	}
}
