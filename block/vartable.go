package block

import "github.com/ebinlog/quatcodec/internal/numeric"

// VarTable is the fixed 16-entry variance table shared by encoder and
// decoder: powers of two from 2^-6 to 2^9.
var VarTable = [16]float64{
	0.015625, 0.03125, 0.0625, 0.125, 0.25, 0.5, 1.0, 2.0,
	4.0, 8.0, 16.0, 32.0, 64.0, 128.0, 256.0, 512.0,
}

// CDFScale is the entropy model precision, in bits, used for every block.
const CDFScale = 15

// pickVarIndex finds the smallest VarTable entry >= estimate, clamped to
// the last index.
func pickVarIndex(estimate float64) int {
	i := numeric.PartitionPoint(0, len(VarTable), func(i int) bool {
		return VarTable[i] >= estimate
	})
	if i >= len(VarTable) {
		return len(VarTable) - 1
	}
	return i
}
