//go:build fixdebug

package fix

import (
	"math"
	"testing"
)

func TestAddOverflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Add did not panic on overflow")
		}
	}()
	FromRaw(math.MaxInt32).Add(FromRaw(1))
}

func TestSubOverflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Sub did not panic on overflow")
		}
	}()
	FromRaw(math.MinInt32).Sub(FromRaw(1))
}

func TestNegOverflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Neg did not panic on math.MinInt32")
		}
	}()
	FromRaw(math.MinInt32).Neg()
}
