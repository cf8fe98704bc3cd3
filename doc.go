/*
Package wideint provides fixed-width unsigned extended-precision integer
types: Uint128, Uint256 and Uint512. Each is built the same way as the
others (a flat little-endian array of uint64 words, with Hi/Lo views onto
its halves), and all three share their arithmetic kernels through the
internal/arith package, so shift, multiply and division are written and
verified exactly once regardless of width.

Uint256 is the type most callers want; Uint128 and Uint512 exist to make the
construction honest: a 2N-bit type built from two N-bit halves, all the way
down to two uint64 words.

All operations are value-returning and wrap silently on overflow, exactly
like the built-in unsigned integer types. There is no error-returning
division, but unlike uint64, dividing by zero is a precondition the core
does not check in release builds; the caller must ensure a nonzero
divisor. Build with -tags wideint_debug during development to turn that
and the package's other documented preconditions into panics.

Simple example:

	a := wideint.Uint256From64(1)
	b, _ := wideint.Uint256FromString("340282366920938463463374607431768211456")
	fmt.Println(a.Add(b))

Uint128, Uint256 and Uint512 support the following formatting and
marshalling interfaces:

	- fmt.Stringer
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

*/
package wideint
