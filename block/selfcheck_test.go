package block

import (
	"testing"

	"github.com/ebinlog/quatcodec/fix"
	"github.com/ebinlog/quatcodec/quant"
	"github.com/ebinlog/quatcodec/quat"
)

// TestSelfCheckMatchesRealRoundTrip covers property test 4: SelfCheck's
// measured error from an actual decode must not exceed its own reported
// estimate by more than a small float32-arithmetic slop.
func TestSelfCheckMatchesRealRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		qp   uint8
		n    int
		axis quat.RVec
	}{
		{"low motion", 14, 2000, quat.NewRVec(fix.FromFloat32(0.02), fix.FromFloat32(0.01), fix.FromFloat32(0.001))},
		{"high motion", 6, 2000, quat.NewRVec(fix.FromFloat32(0.6), fix.FromFloat32(0.3), fix.FromFloat32(0.2))},
		{"identity", 14, 256, quat.NewRVec(fix.FromInt(0), fix.FromInt(0), fix.FromInt(0))},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			quats := genTrajectory(tc.n, tc.axis)

			res, err := SelfCheck(quant.New(), quats, tc.qp)
			if err != nil {
				t.Fatalf("SelfCheck: %v", err)
			}
			if res.BytesPut <= 0 {
				t.Fatalf("BytesPut = %d, want > 0", res.BytesPut)
			}
			if res.MeasuredAngErrDeg > res.ReportedAngErrDeg+1e-3 {
				t.Fatalf("measured error %.6f deg exceeds reported estimate %.6f deg",
					res.MeasuredAngErrDeg, res.ReportedAngErrDeg)
			}
		})
	}
}

func TestSelfCheckHandlesEmptyBlock(t *testing.T) {
	if _, err := SelfCheck(quant.New(), nil, 14); err != nil {
		t.Fatalf("SelfCheck(nil): %v", err)
	}
}
