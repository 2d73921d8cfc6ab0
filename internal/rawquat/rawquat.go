// Package rawquat reads and writes the ".rawquat" file format: a
// trajectory of quaternions dumped as raw memory, four little-endian
// int32 fixed-point components (w, x, y, z) back to back with no header.
// It mirrors the byte-for-byte reinterpret-cast the original tooling used
// to snapshot a trajectory to disk.
package rawquat

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ebinlog/quatcodec/fix"
	"github.com/ebinlog/quatcodec/quat"
)

const quatBytes = 16

// Write serializes quats to w as packed little-endian (w,x,y,z) int32
// quadruples.
func Write(w io.Writer, quats []quat.Quat) error {
	buf := make([]byte, quatBytes*len(quats))
	for i, q := range quats {
		off := i * quatBytes
		binary.LittleEndian.PutUint32(buf[off+0:], uint32(q.W.Raw()))
		binary.LittleEndian.PutUint32(buf[off+4:], uint32(q.X.Raw()))
		binary.LittleEndian.PutUint32(buf[off+8:], uint32(q.Y.Raw()))
		binary.LittleEndian.PutUint32(buf[off+12:], uint32(q.Z.Raw()))
	}
	_, err := w.Write(buf)
	return err
}

// Read parses a .rawquat stream into a trajectory. It returns an error if
// the stream length is not a multiple of 16 bytes.
func Read(r io.Reader) ([]quat.Quat, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("rawquat: %w", err)
	}
	if len(buf)%quatBytes != 0 {
		return nil, fmt.Errorf("rawquat: length %d is not a multiple of %d", len(buf), quatBytes)
	}
	out := make([]quat.Quat, len(buf)/quatBytes)
	for i := range out {
		off := i * quatBytes
		out[i] = quat.Quat{
			W: fix.FromRaw(int32(binary.LittleEndian.Uint32(buf[off+0:]))),
			X: fix.FromRaw(int32(binary.LittleEndian.Uint32(buf[off+4:]))),
			Y: fix.FromRaw(int32(binary.LittleEndian.Uint32(buf[off+8:]))),
			Z: fix.FromRaw(int32(binary.LittleEndian.Uint32(buf[off+12:]))),
		}
	}
	return out, nil
}
