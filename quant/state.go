// Package quant implements the predictive quantizer at the heart of the
// codec: for each input quaternion it emits one or more signed i8 triples
// representing the angular-acceleration residual against a running
// prediction, handling overflow by saturating continuation triples. State
// is a small value record carried immutably from call to call: callers
// thread the returned state into the next call rather than mutating
// in place, so the same trajectory can be produced by encoding one long
// run or many short ones split across block boundaries.
package quant

import (
	"github.com/ebinlog/quatcodec/fix"
	"github.com/ebinlog/quatcodec/quat"
)

// State holds the decoder-side prediction: Q is the last reconstructed
// orientation, V is the last reconstructed angular-velocity increment.
type State struct {
	Q quat.Quat
	V quat.RVec
}

// New returns the initial state: identity orientation, zero velocity.
func New() State {
	return State{Q: quat.Identity()}
}

// QuantResult is returned by QuantBlock.
type QuantResult struct {
	NewState  State
	BytesPut  int
	MaxAngErr fix.Fix
}

// saturationLimit is the i8 saturation bound used throughout the quantizer.
const saturationLimit = 127

// QuantBlock quantizes quats against the running state, writing the emitted
// i8 symbol triples into out. It returns nil if out fills up before every
// quaternion has been quantized, leaving the input state untouched (the caller's copy of
// State is never mutated; a new State is only returned on success).
func (s State) QuantBlock(quats []quat.Quat, qp uint8, out []int8) *QuantResult {
	bytesPut := 0
	maxAngErr := fix.FromInt(0)
	newState := s

	for _, q := range quats {
		qUpdate := newState.Q.Conj().Mul(q)
		vUpdate := qUpdate.ToRVec().Sub(newState.V)

		var sum quat.RVec
		for {
			updateQuanted := quantUpdate(vUpdate, qp, saturationLimit)
			updateDequanted := dequantUpdate(updateQuanted, qp)

			sum = sum.Add(updateDequanted)
			vUpdate = vUpdate.Sub(updateDequanted)

			if bytesPut+3 > len(out) {
				return nil
			}
			out[bytesPut] = updateQuanted[0]
			out[bytesPut+1] = updateQuanted[1]
			out[bytesPut+2] = updateQuanted[2]
			bytesPut += 3

			if !isSaturated(updateQuanted, saturationLimit) {
				break
			}
		}

		newState.V = newState.V.Add(sum)
		newState.Q = newState.Q.Mul(quat.FromRVec(newState.V)).NormalizeSafe()

		err := newState.Q.Conj().Mul(q).ToRVec().Norm()
		maxAngErr = maxAngErr.Max(err)
	}

	return &QuantResult{NewState: newState, BytesPut: bytesPut, MaxAngErr: maxAngErr}
}

// DequantOne consumes one i8 triple, advancing v. If the triple is not
// saturated it also advances q and returns the newly reconstructed
// quaternion; a saturated (continuation) triple only advances v and
// returns false.
func (s *State) DequantOne(data [3]int8, qp uint8) (quat.Quat, bool) {
	s.V = s.V.Add(dequantUpdate(data, qp))
	if isSaturated(data, saturationLimit) {
		return quat.Quat{}, false
	}
	s.Q = s.Q.Mul(quat.FromRVec(s.V)).NormalizeSafe()
	return s.Q, true
}

// quantUpdate quantizes a rotation-vector residual to an i8 triple by
// arithmetic right shift, saturating to +-lim (with the sign of the
// original value) whenever the shift doesn't losslessly fit an i8.
func quantUpdate(update quat.RVec, scale uint8, lim int8) [3]int8 {
	raw := [3]int32{update.X.Raw(), update.Y.Raw(), update.Z.Raw()}
	var out [3]int8
	for i, r := range raw {
		shifted := r >> scale
		q := int8(shifted)
		if int32(q) == shifted && abs32(int32(q)) <= int32(lim) {
			out[i] = q
		} else if r < 0 {
			out[i] = -lim
		} else {
			out[i] = lim
		}
	}
	return out
}

func abs32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}

// dequantUpdate reconstructs a Q5.27 rotation vector from a quantized
// triple by left-shifting back into place.
func dequantUpdate(update [3]int8, scale uint8) quat.RVec {
	return quat.RVec{
		X: fix.FromRaw(int32(update[0]) << scale),
		Y: fix.FromRaw(int32(update[1]) << scale),
		Z: fix.FromRaw(int32(update[2]) << scale),
	}
}

func isSaturated(v [3]int8, lim int8) bool {
	l := int32(lim)
	return abs32(int32(v[0])) == l || abs32(int32(v[1])) == l || abs32(int32(v[2])) == l
}
