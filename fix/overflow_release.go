//go:build !fixdebug

package fix

func checkAddOverflow(a, b, sum int32) {}
func checkSubOverflow(a, b, diff int32) {}
func checkNegOverflow(a int32)          {}
