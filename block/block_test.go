package block

import (
	"math"
	"testing"

	"github.com/ebinlog/quatcodec/fix"
	"github.com/ebinlog/quatcodec/quant"
	"github.com/ebinlog/quatcodec/quat"
)

func genTrajectory(n int, axis quat.RVec) []quat.Quat {
	step := quat.FromRVec(axis)
	out := make([]quat.Quat, n)
	cur := quat.Identity()
	for i := range out {
		cur = cur.Mul(step).NormalizeSafe()
		out[i] = cur
	}
	return out
}

func compressAll(t *testing.T, quats []quat.Quat, qp uint8) []byte {
	t.Helper()
	state := quant.New()
	data := make([]byte, headerSize+len(quats)*12+64)
	scratch := make([]int8, len(quats)*12)
	res, err := CompressBlock(state, quats, qp, data, scratch)
	if err != nil {
		t.Fatalf("CompressBlock: %v", err)
	}
	return data[:res.BytesPut]
}

func TestS1LowMotionTrajectory(t *testing.T) {
	const qp = 14
	quats := genTrajectory(10000, quat.NewRVec(fix.FromFloat32(0.02), fix.FromFloat32(0.01), fix.FromFloat32(0.001)))
	compressed := compressAll(t, quats, qp)

	out := make([]quat.Quat, len(quats))
	res, err := DecompressBlock(quant.New(), compressed, out)
	if err != nil {
		t.Fatalf("DecompressBlock: %v", err)
	}
	if res.QuatsPut != len(quats) {
		t.Fatalf("decoded %d quats, want %d", res.QuatsPut, len(quats))
	}

	maxErrDeg := 0.0
	for i, want := range quats {
		errv := out[i].Conj().Mul(want).ToRVec().Norm().ToFloat32()
		if d := math.Abs(float64(errv)) * 180 / math.Pi; d > maxErrDeg {
			maxErrDeg = d
		}
	}
	if maxErrDeg >= 0.01 {
		t.Fatalf("max angular error %.5f deg, want < 0.01 deg", maxErrDeg)
	}
}

func TestS2AllIdentityCompressesSmall(t *testing.T) {
	const qp = 14
	quats := make([]quat.Quat, 256)
	for i := range quats {
		quats[i] = quat.Identity()
	}
	compressed := compressAll(t, quats, qp)
	if len(compressed) > 20 {
		t.Fatalf("compressed size %d bytes, want <= 20", len(compressed))
	}

	out := make([]quat.Quat, len(quats))
	res, err := DecompressBlock(quant.New(), compressed, out)
	if err != nil {
		t.Fatalf("DecompressBlock: %v", err)
	}
	if res.QuatsPut != len(quats) {
		t.Fatalf("decoded %d quats, want %d", res.QuatsPut, len(quats))
	}
	for i, want := range quats {
		if out[i].W.Raw() != want.W.Raw() || out[i].X.Raw() != want.X.Raw() ||
			out[i].Y.Raw() != want.Y.Raw() || out[i].Z.Raw() != want.Z.Raw() {
			t.Fatalf("quat %d: got %#v, want %#v", i, out[i], want)
		}
	}
}

func TestS3StepInput(t *testing.T) {
	const qp = 14
	quats := make([]quat.Quat, 512)
	for i := 0; i < 256; i++ {
		quats[i] = quat.Identity()
	}
	step := quat.FromRVec(quat.NewRVec(fix.FromFloat32(float32(math.Pi/2)), fix.FromRaw(0), fix.FromRaw(0)))
	for i := 256; i < 512; i++ {
		quats[i] = step
	}

	state := quant.New()
	data := make([]byte, headerSize+len(quats)*12+64)
	scratch := make([]int8, len(quats)*12)
	res, err := CompressBlock(state, quats, qp, data, scratch)
	if err != nil {
		t.Fatalf("CompressBlock: %v", err)
	}

	out := make([]quat.Quat, len(quats))
	dres, err := DecompressBlock(quant.New(), data[:res.BytesPut], out)
	if err != nil {
		t.Fatalf("DecompressBlock: %v", err)
	}
	if dres.QuatsPut != len(quats) {
		t.Fatalf("decoded %d quats, want %d", dres.QuatsPut, len(quats))
	}
}

func TestS4CompressOutputOverrun(t *testing.T) {
	quats := genTrajectory(100, quat.NewRVec(fix.FromFloat32(0.02), fix.FromFloat32(0), fix.FromFloat32(0)))
	state := quant.New()
	tiny := make([]byte, 10)
	scratch := make([]int8, len(quats)*12)
	_, err := CompressBlock(state, quats, 14, tiny, scratch)
	if err == nil {
		t.Fatal("CompressBlock should fail with a 10-byte output buffer")
	}
}

func TestS5ChecksumBitFlipFailsDecode(t *testing.T) {
	quats := genTrajectory(300, quat.NewRVec(fix.FromFloat32(0.02), fix.FromFloat32(0.01), fix.FromFloat32(0)))
	compressed := compressAll(t, quats, 14)
	compressed[1] ^= 0x80 // flip bit 7 of the header byte (part of cksum)

	out := make([]quat.Quat, len(quats))
	if _, err := DecompressBlock(quant.New(), compressed, out); err == nil {
		t.Fatal("DecompressBlock should fail after a header bit flip")
	}
}

func TestVarTableSearch(t *testing.T) {
	cases := []struct {
		estimate float64
		want     int
	}{
		{0, 0},
		{0.015625, 0},
		{0.02, 1},
		{1.0, 6},
		{511, 15},
		{1000, 15},
	}
	for _, c := range cases {
		if got := pickVarIndex(c.estimate); got != c.want {
			t.Errorf("pickVarIndex(%g) = %d, want %d", c.estimate, got, c.want)
		}
	}
}
