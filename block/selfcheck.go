package block

import (
	"fmt"
	"math"

	"github.com/ebinlog/quatcodec/quant"
	"github.com/ebinlog/quatcodec/quat"
)

// SelfCheckResult reports what a round trip actually cost and how far it
// drifted from the input trajectory.
type SelfCheckResult struct {
	NewState quant.State
	BytesPut int
	// ReportedAngErrDeg is the quantizer's own running estimate
	// (CompressResult.MaxAngErr), converted to degrees.
	ReportedAngErrDeg float64
	// MeasuredAngErrDeg is the actual angular distance between each input
	// quaternion and its reconstruction after a real decode, converted to
	// degrees, maxed over the block.
	MeasuredAngErrDeg float64
}

// SelfCheck compresses quats against state and immediately decompresses the
// result, comparing the quantizer's self-reported error estimate against
// what a real round trip actually produced. It threads state the same way
// CompressBlock/DecompressBlock do, so it can be called once per block of a
// longer trajectory. It is the sanity check a cross-language peer decoder
// is verified against: encode in one implementation, decode in the other,
// and the measured error here is what that comparison should reproduce.
func SelfCheck(state quant.State, quats []quat.Quat, qp uint8) (SelfCheckResult, error) {
	// Fast-moving input can need many saturated continuation triples per
	// quaternion, so the staging buffers grow until the block fits.
	scratchLen := len(quats) * 12
	var (
		data []byte
		cres CompressResult
		err  error
	)
	for {
		scratch := make([]int8, scratchLen)
		data = make([]byte, headerSize+scratchLen+64)
		cres, err = CompressBlock(state, quats, qp, data, scratch)
		if err != ErrOutputOverrun {
			break
		}
		scratchLen = 2*scratchLen + 64
	}
	if err != nil {
		return SelfCheckResult{}, fmt.Errorf("self check compress: %w", err)
	}

	out := make([]quat.Quat, len(quats))
	dres, err := DecompressBlock(state, data[:cres.BytesPut], out)
	if err != nil {
		return SelfCheckResult{}, fmt.Errorf("self check decompress: %w", err)
	}

	measured := 0.0
	for i := 0; i < dres.QuatsPut && i < len(quats); i++ {
		angErr := quats[i].Conj().Mul(out[i]).ToRVec().Norm().ToFloat32()
		if deg := math.Abs(float64(angErr)) * 180 / math.Pi; deg > measured {
			measured = deg
		}
	}

	return SelfCheckResult{
		NewState:          cres.NewState,
		BytesPut:          cres.BytesPut,
		ReportedAngErrDeg: float64(cres.MaxAngErr.ToFloat32()) * 180 / math.Pi,
		MeasuredAngErrDeg: measured,
	}, nil
}
