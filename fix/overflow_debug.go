//go:build fixdebug

package fix

import "fmt"

// checkAddOverflow panics if a+b overflowed int32, built only with
// -tags=fixdebug. Off by default: the hot path never pays for this check.
func checkAddOverflow(a, b, sum int32) {
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		panic(fmt.Sprintf("fix: Add overflow: %d + %d", a, b))
	}
}

// checkSubOverflow panics if a-b overflowed int32, built only with
// -tags=fixdebug.
func checkSubOverflow(a, b, diff int32) {
	if (b < 0 && diff < a) || (b > 0 && diff > a) {
		panic(fmt.Sprintf("fix: Sub overflow: %d - %d", a, b))
	}
}

// checkNegOverflow panics on negating the one value with no positive
// counterpart in int32, built only with -tags=fixdebug.
func checkNegOverflow(a int32) {
	if a == -1<<31 {
		panic("fix: Neg overflow: math.MinInt32")
	}
}
