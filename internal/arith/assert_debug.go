//go:build wideint_debug

package arith

import "fmt"

// assertf panics if cond is false. Only compiled in with -tags wideint_debug;
// see assert.go for the release no-op.
func assertf(cond bool, format string, args ...interface{}) {
	if !cond {
		panic("arith: " + fmt.Sprintf(format, args...))
	}
}
