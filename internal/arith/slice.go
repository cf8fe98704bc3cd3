package arith

// This file implements the flat word-slice view of a fixed-width integer:
// every function takes same-length little-endian []uint64 operands and
// writes its result into z, which may alias x or y. This is the natural
// vantage point for bitwise ops, ripple carry, and shifts (see spec §9).

// Add computes z = x+y across len(x) words and returns the carry out of the
// top word.
func Add(z, x, y []uint64) uint64 {
	var carry uint64
	for i := range x {
		z[i], carry = AddWithCarry(x[i], y[i], carry)
	}
	return carry
}

// Sub computes z = x-y across len(x) words and returns the borrow out of the
// top word.
func Sub(z, x, y []uint64) uint64 {
	var borrow uint64
	for i := range x {
		z[i], borrow = SubWithCarry(x[i], y[i], borrow)
	}
	return borrow
}

// SubMul computes z -= y*m across len(y) words (z must be at least as long)
// and returns the borrow/carry out of the top word, exactly as intx's
// internal::submul and its Go ports (demigunkan-mm/int256.go, Fantom-foundation
// Tosca u256.go) do it.
func SubMul(z, y []uint64, m uint64) uint64 {
	var borrow uint64
	for i := range y {
		s, c1 := SubWithCarry(z[i], borrow, 0)
		p := MulWW(y[i], m)
		t, c2 := SubWithCarry(s, p.Lo, 0)
		z[i] = t
		borrow = p.Hi + c1 + c2
	}
	return borrow
}

// Not computes z = ^x (bitwise complement) across len(x) words.
func Not(z, x []uint64) {
	for i := range x {
		z[i] = ^x[i]
	}
}

// Neg computes z = -x (two's complement negation, ~x+1) across len(x) words.
func Neg(z, x []uint64) {
	Not(z, x)
	carry := uint64(1)
	for i := range z {
		z[i], carry = AddWithCarry(z[i], 0, carry)
	}
}

// And, Or and Xor are the elementwise bitwise operators.
func And(z, x, y []uint64) {
	for i := range x {
		z[i] = x[i] & y[i]
	}
}

func Or(z, x, y []uint64) {
	for i := range x {
		z[i] = x[i] | y[i]
	}
}

func Xor(z, x, y []uint64) {
	for i := range x {
		z[i] = x[i] ^ y[i]
	}
}

// IsZero reports whether every word of x is zero.
func IsZero(x []uint64) bool {
	for _, w := range x {
		if w != 0 {
			return false
		}
	}
	return true
}

// Cmp orders x against y as unsigned integers of equal word length.
func Cmp(x, y []uint64) int {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] > y[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// SignificantWords returns the number of words from the least significant
// up to and including the highest nonzero word. Returns 0 for an all-zero x.
func SignificantWords(x []uint64) int {
	for i := len(x); i > 0; i-- {
		if x[i-1] != 0 {
			return i
		}
	}
	return 0
}

// LeadingZeros returns the number of leading zero bits of x interpreted as
// one len(x)*64-bit integer.
func LeadingZeros(x []uint64) int {
	n := SignificantWords(x)
	if n == 0 {
		return len(x) * 64
	}
	return (len(x)-n)*64 + Clz(x[n-1])
}

// Lsh computes z = x<<shift across len(x) words, discarding bits shifted
// past the top. It is the "loop" strategy from spec §4.2/§9: split the
// shift into a whole-word skip and a sub-word residual s, and avoid ever
// shifting a uint64 by 64 by folding the residual-zero case into the skip
// (the chained-(width-1)-then-1 trick collapses to "no residual shift" when
// s==0, handled by the branch below).
func Lsh(z, x []uint64, shift uint) {
	n := len(x)
	const wordBits = 64
	skip := int(shift / wordBits)
	s := shift % wordBits

	if skip >= n {
		for i := range z {
			z[i] = 0
		}
		return
	}

	if s == 0 {
		for i := n - 1; i >= skip; i-- {
			z[i] = x[i-skip]
		}
	} else {
		for i := n - 1; i >= skip; i-- {
			w := x[i-skip] << s
			if i-skip-1 >= 0 {
				w |= x[i-skip-1] >> (wordBits - s)
			}
			z[i] = w
		}
	}
	for i := 0; i < skip; i++ {
		z[i] = 0
	}
}

// Rsh computes z = x>>shift across len(x) words, the mirror of Lsh.
func Rsh(z, x []uint64, shift uint) {
	n := len(x)
	const wordBits = 64
	skip := int(shift / wordBits)
	s := shift % wordBits

	if skip >= n {
		for i := range z {
			z[i] = 0
		}
		return
	}

	if s == 0 {
		for i := 0; i < n-skip; i++ {
			z[i] = x[i+skip]
		}
	} else {
		for i := 0; i < n-skip; i++ {
			w := x[i+skip] >> s
			if i+skip+1 < n {
				w |= x[i+skip+1] << (wordBits - s)
			}
			z[i] = w
		}
	}
	for i := n - skip; i < n; i++ {
		z[i] = 0
	}
}
