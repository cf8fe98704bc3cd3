// Package arith implements the word-level and word-slice primitives shared
// by every fixed-width unsigned integer in wideint. Everything here treats
// a value as a slice of uint64 words in little-endian order (index 0 is
// least significant) so the same code serves Uint256 (4 words) and Uint512
// (8 words) without duplication.
package arith

import "math/bits"

// Pair is an ordered (Hi, Lo) pair of words, used as a 128-bit value: the
// product of two words, or the running remainder of a 2-word division.
type Pair struct {
	Hi, Lo uint64
}

// Cmp orders p against q as 128-bit values.
func (p Pair) Cmp(q Pair) int {
	switch {
	case p.Hi != q.Hi:
		if p.Hi > q.Hi {
			return 1
		}
		return -1
	case p.Lo != q.Lo:
		if p.Lo > q.Lo {
			return 1
		}
		return -1
	default:
		return 0
	}
}

// AddWithCarry returns a+b+carryIn mod 2^64 and the carry out of bit 63.
// carryIn must be 0 or 1.
func AddWithCarry(a, b, carryIn uint64) (sum, carryOut uint64) {
	return bits.Add64(a, b, carryIn)
}

// SubWithCarry returns a-b-borrowIn mod 2^64 and the borrow out of bit 63.
// borrowIn must be 0 or 1.
func SubWithCarry(a, b, borrowIn uint64) (diff, borrowOut uint64) {
	return bits.Sub64(a, b, borrowIn)
}

// MulWW returns the exact 128-bit product of a and b.
func MulWW(a, b uint64) Pair {
	hi, lo := bits.Mul64(a, b)
	return Pair{Hi: hi, Lo: lo}
}

// Clz returns the number of leading zero bits in x. x must be nonzero; in
// debug builds (-tags wideint_debug) this is asserted, in release builds
// the precondition is the caller's responsibility, per spec.
func Clz(x uint64) int {
	assertf(x != 0, "arith: Clz(0) is undefined")
	return bits.LeadingZeros64(x)
}

// Bswap64 reverses the byte order of a word.
func Bswap64(x uint64) uint64 {
	return bits.ReverseBytes64(x)
}
