// Package numeric holds small generic search helpers over integer types:
// Bisect backs the rANS CDF inversion and PartitionPoint backs the block
// framer's variance-table lookup.
package numeric

import "golang.org/x/exp/constraints"

// Bisect finds the boundary L such that leq(x) holds for x <= L and not for
// x > L, assuming leq is monotonic over [lo, hi]. It mirrors the peer
// implementation's narrowing loop exactly, early-exit fast path included,
// so that byte-for-byte interop isn't put at risk by an "equivalent but
// different" search strategy.
func Bisect[T constraints.Integer](lo, hi T, leq func(x T) bool) T {
	l, r := lo, hi
	for l+1 != r {
		mid := (l + r) / 2
		if leq(mid) && !leq(mid+1) {
			return mid
		}
		if leq(mid) {
			l = mid
		} else {
			r = mid
		}
	}
	return l
}

// PartitionPoint returns the smallest index i in [lo, hi) for which pred(i)
// holds, assuming pred is false on a prefix and true on the rest of the
// range (pred(hi) is treated as implicitly true). Returns hi if pred never
// holds within range.
func PartitionPoint[T constraints.Integer](lo, hi T, pred func(i T) bool) T {
	for lo < hi {
		mid := lo + (hi-lo)/2
		if pred(mid) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}
