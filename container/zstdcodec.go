package container

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// ZstdCodec adapts klauspost/compress/zstd to the OuterCodec interface, for
// Options.OuterCodec. It is not used by default: CompressBlock's rANS
// output is already high-entropy, so this exists for captures long and
// low-motion enough that cross-block structure survives into the
// concatenated payload.
type ZstdCodec struct{}

func (ZstdCodec) Name() string { return "zstd" }

func (ZstdCodec) Compress(src []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("zstd writer: %w", err)
	}
	defer enc.Close()
	return enc.EncodeAll(src, nil), nil
}

func (ZstdCodec) Decompress(src []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("zstd reader: %w", err)
	}
	defer dec.Close()
	return dec.DecodeAll(src, nil)
}
