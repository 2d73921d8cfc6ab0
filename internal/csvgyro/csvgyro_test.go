package csvgyro

import (
	"strings"
	"testing"
)

func TestParseRVecsSkipsHeader(t *testing.T) {
	csv := "t,gx,gy,gz,temp\n" +
		"0,100,200,300,25\n" +
		"1,-100,0,0,25\n"
	rvecs, err := ParseRVecs(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParseRVecs: %v", err)
	}
	if len(rvecs) != 2 {
		t.Fatalf("got %d rows, want 2", len(rvecs))
	}
	if rvecs[0].X.Raw() == 0 {
		t.Fatal("expected non-zero X component after scaling")
	}
}

func TestParseRVecsRejectsShortRow(t *testing.T) {
	if _, err := ParseRVecs(strings.NewReader("0,1,2\n")); err == nil {
		t.Fatal("expected an error for a row with too few columns")
	}
}

func TestIntegrateProducesUnitQuats(t *testing.T) {
	csv := "t,gx,gy,gz\n0,50,0,0\n1,50,0,0\n2,50,0,0\n"
	quats, err := ParseQuats(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParseQuats: %v", err)
	}
	if len(quats) != 3 {
		t.Fatalf("got %d quats, want 3", len(quats))
	}
	for i, q := range quats {
		n := q.Norm().ToFloat32()
		if n < 0.999 || n > 1.001 {
			t.Errorf("quat %d norm = %f, want ~1", i, n)
		}
	}
}
