package rawquat

import (
	"bytes"
	"testing"

	"github.com/ebinlog/quatcodec/fix"
	"github.com/ebinlog/quatcodec/quat"
)

func TestWriteReadRoundTrip(t *testing.T) {
	quats := []quat.Quat{
		quat.Identity(),
		quat.New(fix.FromFloat32(0.1), fix.FromFloat32(0.2), fix.FromFloat32(-0.3), fix.FromFloat32(0.9)),
	}

	var buf bytes.Buffer
	if err := Write(&buf, quats); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if buf.Len() != quatBytes*len(quats) {
		t.Fatalf("wrote %d bytes, want %d", buf.Len(), quatBytes*len(quats))
	}

	got, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got) != len(quats) {
		t.Fatalf("read %d quats, want %d", len(got), len(quats))
	}
	for i, want := range quats {
		if got[i] != want {
			t.Errorf("quat %d: got %#v, want %#v", i, got[i], want)
		}
	}
}

func TestReadRejectsTruncatedStream(t *testing.T) {
	if _, err := Read(bytes.NewReader(make([]byte, 15))); err == nil {
		t.Fatal("expected an error for a non-multiple-of-16 stream")
	}
}
