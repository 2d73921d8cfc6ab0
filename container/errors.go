package container

import "errors"

var (
	// ErrBadMagic is returned when a stream's leading bytes don't match
	// the container magic.
	ErrBadMagic = errors.New("container: bad magic")

	// ErrUnsupportedVersion is returned when the stream's version byte is
	// not the one version this reader understands.
	ErrUnsupportedVersion = errors.New("container: unsupported version")

	// ErrTruncated is returned when the stream ends mid-record.
	ErrTruncated = errors.New("container: truncated stream")

	// ErrHeaderHashMismatch is returned when the trailer's siphash
	// integrity tag disagrees with the block-header bytes parsed from the
	// stream.
	ErrHeaderHashMismatch = errors.New("container: block header hash mismatch")

	// ErrUnknownRecordTag is returned when a record tag byte is not one
	// this reader recognizes.
	ErrUnknownRecordTag = errors.New("container: unknown record tag")

	// ErrUnknownOuterCodec is returned by OuterCodecByName for a name not
	// present in the registry.
	ErrUnknownOuterCodec = errors.New("container: unknown outer codec")
)
