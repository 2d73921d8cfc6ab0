package block

import "errors"

var (
	// ErrOutputOverrun is returned when the caller's output (or quantizer
	// scratch) buffer is too small to hold what this input produces.
	ErrOutputOverrun = errors.New("block: output buffer too small")

	// ErrInputExhausted is returned when the rANS renormalize loop needs
	// another byte but the compressed data has been fully consumed.
	ErrInputExhausted = errors.New("block: compressed data exhausted before all quaternions decoded")

	// ErrChecksumMismatch is returned when the decoded symbol checksum
	// disagrees with the header's cksum field: corruption or desync.
	ErrChecksumMismatch = errors.New("block: checksum mismatch")

	// ErrShortHeader is returned when data is too small to contain even
	// the 6-byte block header.
	ErrShortHeader = errors.New("block: data shorter than the 6-byte header")
)
