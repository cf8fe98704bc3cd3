//go:build !wideint_debug

package arith

// assertf is a no-op in release builds: the preconditions it guards are,
// per spec, undefined behaviour rather than recovered errors, so release
// builds pay nothing for them.
func assertf(cond bool, format string, args ...interface{}) {}
