package assert

import "github.com/oomph-ac/fpsim/oerror"

// IsTrue panics with a formatted SimError if ok is false. It is reserved for programmer errors,
// such as ticking with a non-positive delta.
func IsTrue(ok bool, message string, args ...any) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}
