// Package block glues the predictive quantizer (package quant) to the
// rANS entropy coder (package rans) into the on-wire block format:
//
//	offset 0   (1 byte)  qp
//	offset 1   (1 byte)  low 5 bits i_var, high 3 bits cksum
//	offset 2   (4 bytes) initial rANS state, little-endian
//	offset 6   (...)     rANS byte stream
//
// A block is the unit of compression; decoder State is threaded across
// blocks by the caller. CompressBlock/DecompressBlock never mutate the
// State passed in, they return a new one on success only.
package block

import (
	"github.com/ebinlog/quatcodec/fix"
	"github.com/ebinlog/quatcodec/quant"
	"github.com/ebinlog/quatcodec/quat"
	"github.com/ebinlog/quatcodec/rans"
)

const headerSize = 6

// CompressResult is returned by CompressBlock.
type CompressResult struct {
	NewState quant.State
	BytesPut int
	// MaxAngErr is the quantizer's own running estimate of reconstruction
	// error (quant.QuantResult.MaxAngErr), carried through for callers that
	// want to sanity-check it against a measured round trip (see SelfCheck).
	MaxAngErr fix.Fix
}

// CompressBlock quantizes quats against state, picks a variance bucket by
// estimating the residual symbols' sample variance, rANS-encodes them, and
// writes the 6-byte header plus payload into data. scratch is caller-owned
// staging space between the quantizer and the entropy coder, so the core
// path does zero allocation.
func CompressBlock(state quant.State, quats []quat.Quat, qp uint8, data []byte, scratch []int8) (CompressResult, error) {
	if len(data) < headerSize {
		return CompressResult{}, ErrOutputOverrun
	}

	qr := state.QuantBlock(quats, qp, scratch)
	if qr == nil {
		return CompressResult{}, ErrOutputOverrun
	}
	syms := scratch[:qr.BytesPut]

	estimate := sampleVariance(syms)
	iVar := pickVarIndex(estimate)
	mdl := rans.NewLaplaceCdf(VarTable[iVar], CDFScale)

	n, ok := rans.Encode(syms, data[2:], mdl)
	if !ok {
		return CompressResult{}, ErrOutputOverrun
	}

	cksum := wrappingSum(syms)
	data[0] = qp
	data[1] = byte(iVar) | (cksum << 5)

	return CompressResult{NewState: qr.NewState, BytesPut: n + 2, MaxAngErr: qr.MaxAngErr}, nil
}

// DecompressResult is returned by DecompressBlock.
type DecompressResult struct {
	NewState quant.State
	QuatsPut int
}

// DecompressBlock parses the header, rANS-decodes symbols three at a time,
// and feeds them to the quantizer's inverse until quats is full, verifying
// the 3-bit checksum at the end.
func DecompressBlock(state quant.State, data []byte, quats []quat.Quat) (DecompressResult, error) {
	if len(data) < headerSize {
		return DecompressResult{}, ErrShortHeader
	}

	qp := data[0]
	iVar := int(data[1] & 0x1f)
	cksum := data[1] >> 5
	if iVar >= len(VarTable) {
		iVar = len(VarTable) - 1
	}
	mdl := rans.NewLaplaceCdf(VarTable[iVar], CDFScale)

	payload := data[2:]
	newState := state
	quatsPut := 0
	ownCksum := byte(0)

	dec := rans.NewStreamDecoder(payload, mdl)
	for quatsPut < len(quats) {
		var triple [3]int8
		for i := 0; i < 3; i++ {
			sym, ok := dec.Next()
			if !ok {
				return DecompressResult{}, ErrInputExhausted
			}
			triple[i] = sym
			ownCksum += byte(sym)
		}

		q, emitted := newState.DequantOne(triple, qp)
		if emitted {
			quats[quatsPut] = q
			quatsPut++
		}
	}

	if ownCksum&0x07 != cksum {
		return DecompressResult{}, ErrChecksumMismatch
	}

	return DecompressResult{NewState: newState, QuatsPut: quatsPut}, nil
}

func sampleVariance(syms []int8) float64 {
	if len(syms) == 0 {
		return 0
	}
	var sumSq int64
	for _, s := range syms {
		sumSq += int64(s) * int64(s)
	}
	return float64(sumSq) / float64(len(syms))
}

func wrappingSum(syms []int8) byte {
	var sum byte
	for _, s := range syms {
		sum += byte(s)
	}
	return sum
}
