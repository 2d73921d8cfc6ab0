// Package container implements the on-disk log-container format this
// codec is embedded in: a small tagged-record stream carrying one or more
// compressed blocks (package block) for a single capture, generalized from
// the original firmware's ad hoc "EspLog0" framing into a real,
// independently testable package.
//
// Layout:
//
//	magic     "QuatLog0" (8 bytes)
//	version   1 byte
//	stream id 16 bytes (uuid.UUID)
//	records...
//	trailer   tag 0xff, 8-byte siphash of all block-header bytes
//
// Records:
//
//	tag 0x01  block header: qp (1 byte) + quat count, uint16 LE
//	tag 0x02  delta time: dt, uint32 LE, microseconds between blocks
//	tag 0x03  block data: length uint32 LE + that many bytes (block payload)
package container

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/dchest/siphash"
	"github.com/google/uuid"
)

var magic = [8]byte{'Q', 'u', 'a', 't', 'L', 'o', 'g', '0'}

const version = 1

// Record tag values, exported so callers can switch on Record.Tag.
const (
	TagBlockHeader byte = 0x01
	TagDeltaTime   byte = 0x02
	TagBlockData   byte = 0x03
	tagTrailer     byte = 0xff
)

// siphash key for the container's header integrity tag. This is a
// corruption detector, not a secret, so a fixed key is fine: it only needs
// to keep an accidental byte flip from going unnoticed.
const (
	sipK0 = 0x9e3779b97f4a7c15
	sipK1 = 0xbf58476d1ce4e5b9
)

// OuterCodec optionally wraps the whole record stream in a second
// compression pass (e.g. zstd), for long low-motion captures where the
// rANS payload still has cross-block redundancy. Nil means no outer pass.
type OuterCodec interface {
	Name() string
	Compress(src []byte) ([]byte, error)
	Decompress(src []byte) ([]byte, error)
}

// Options configures a Writer/Reader pair.
type Options struct {
	// OuterCodec, when set, compresses the record stream (everything
	// between the stream id and the trailer) before it is written, and
	// decompresses it before records are parsed back out. The trailer is
	// always written uncompressed.
	OuterCodec OuterCodec
}

// Writer accumulates records for one capture and emits a container on
// Finish.
type Writer struct {
	streamID    uuid.UUID
	opts        Options
	body        bytes.Buffer
	headerBytes bytes.Buffer
}

// NewWriter starts a new container with a fresh random stream id.
func NewWriter(opts Options) *Writer {
	return &Writer{streamID: uuid.New(), opts: opts}
}

// StreamID returns the UUID assigned to this capture.
func (w *Writer) StreamID() uuid.UUID { return w.streamID }

// PutBlockHeader records a block-header record (qp and quat count); its
// bytes are folded into the trailer's integrity hash.
func (w *Writer) PutBlockHeader(qp uint8, quatCount uint16) {
	var hdr [3]byte
	hdr[0] = qp
	binary.LittleEndian.PutUint16(hdr[1:], quatCount)

	w.body.WriteByte(TagBlockHeader)
	w.body.Write(hdr[:])
	w.headerBytes.Write(hdr[:])
}

// PutDeltaTime records the elapsed microseconds since the previous block.
func (w *Writer) PutDeltaTime(dtMicros uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], dtMicros)
	w.body.WriteByte(TagDeltaTime)
	w.body.Write(buf[:])
}

// PutBlockData records a compressed block's payload bytes as produced by
// block.CompressBlock.
func (w *Writer) PutBlockData(payload []byte) {
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(payload)))
	w.body.WriteByte(TagBlockData)
	w.body.Write(lenBuf[:])
	w.body.Write(payload)
}

// Finish writes the full container (magic, version, stream id, records,
// trailer) to out.
func (w *Writer) Finish(out io.Writer) error {
	tag := siphash.Hash(sipK0, sipK1, w.headerBytes.Bytes())

	body := w.body.Bytes()
	if w.opts.OuterCodec != nil {
		compressed, err := w.opts.OuterCodec.Compress(body)
		if err != nil {
			return fmt.Errorf("container: outer codec compress: %w", err)
		}
		body = compressed
	}

	if _, err := out.Write(magic[:]); err != nil {
		return err
	}
	if _, err := out.Write([]byte{version}); err != nil {
		return err
	}
	idBytes, err := w.streamID.MarshalBinary()
	if err != nil {
		return fmt.Errorf("container: marshal stream id: %w", err)
	}
	if _, err := out.Write(idBytes); err != nil {
		return err
	}
	if _, err := out.Write(body); err != nil {
		return err
	}

	var trailer [9]byte
	trailer[0] = tagTrailer
	binary.LittleEndian.PutUint64(trailer[1:], tag)
	_, err = out.Write(trailer[:])
	return err
}

// BlockHeaderRecord is a decoded tag 0x01 record.
type BlockHeaderRecord struct {
	QP        uint8
	QuatCount uint16
}

// Record is one decoded container record.
type Record struct {
	Tag        byte
	BlockHdr   BlockHeaderRecord
	DeltaMicro uint32
	BlockData  []byte
}

// Reader parses a container produced by Writer.
type Reader struct {
	StreamID uuid.UUID
	records  []Record
}

// Parse reads and validates a full container from buf.
func Parse(buf []byte, opts Options) (*Reader, error) {
	if len(buf) < 8+1+16 {
		return nil, ErrTruncated
	}
	if !bytes.Equal(buf[:8], magic[:]) {
		return nil, ErrBadMagic
	}
	if buf[8] != version {
		return nil, ErrUnsupportedVersion
	}
	var id uuid.UUID
	if err := id.UnmarshalBinary(buf[9:25]); err != nil {
		return nil, fmt.Errorf("container: stream id: %w", err)
	}

	rest := buf[25:]
	if len(rest) < 9 {
		return nil, ErrTruncated
	}
	body := rest[:len(rest)-9]
	trailer := rest[len(rest)-9:]
	if trailer[0] != tagTrailer {
		return nil, ErrTruncated
	}
	wantTag := binary.LittleEndian.Uint64(trailer[1:])

	if opts.OuterCodec != nil {
		decompressed, err := opts.OuterCodec.Decompress(body)
		if err != nil {
			return nil, fmt.Errorf("container: outer codec decompress: %w", err)
		}
		body = decompressed
	}

	r := &Reader{StreamID: id}
	var headerBytes bytes.Buffer
	pos := 0
	for pos < len(body) {
		tag := body[pos]
		pos++
		switch tag {
		case TagBlockHeader:
			if pos+3 > len(body) {
				return nil, ErrTruncated
			}
			hdr := body[pos : pos+3]
			headerBytes.Write(hdr)
			r.records = append(r.records, Record{Tag: tag, BlockHdr: BlockHeaderRecord{
				QP:        hdr[0],
				QuatCount: binary.LittleEndian.Uint16(hdr[1:3]),
			}})
			pos += 3
		case TagDeltaTime:
			if pos+4 > len(body) {
				return nil, ErrTruncated
			}
			dt := binary.LittleEndian.Uint32(body[pos : pos+4])
			r.records = append(r.records, Record{Tag: tag, DeltaMicro: dt})
			pos += 4
		case TagBlockData:
			if pos+4 > len(body) {
				return nil, ErrTruncated
			}
			n := int(binary.LittleEndian.Uint32(body[pos : pos+4]))
			pos += 4
			if pos+n > len(body) {
				return nil, ErrTruncated
			}
			payload := make([]byte, n)
			copy(payload, body[pos:pos+n])
			r.records = append(r.records, Record{Tag: tag, BlockData: payload})
			pos += n
		default:
			return nil, ErrUnknownRecordTag
		}
	}

	gotTag := siphash.Hash(sipK0, sipK1, headerBytes.Bytes())
	if gotTag != wantTag {
		return nil, ErrHeaderHashMismatch
	}

	return r, nil
}

// Records returns the decoded records in stream order.
func (r *Reader) Records() []Record { return r.records }
