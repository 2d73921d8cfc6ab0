package fix

import "fmt"

// String renders the represented real value, for diagnostics only: never
// used on the hot path.
func (a Fix) String() string {
	return fmt.Sprintf("%g", a.ToFloat32())
}

// GoString matches the %#v convention the rest of the pack's value types use.
func (a Fix) GoString() string {
	return fmt.Sprintf("fix.Fix{raw:%d}", a.v)
}
