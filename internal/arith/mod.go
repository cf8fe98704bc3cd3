package arith

// AddMod computes z = (x+y) mod m across n-word operands using a carry-
// extended (n+1)-word sum and a single division by the zero-extended
// modulus, ported from intx's addmod (original_source intx.hpp).
func AddMod(z, x, y, m []uint64) {
	n := len(x)
	sum := make([]uint64, n+1)
	sum[n] = Add(sum[:n], x, y)

	mExt := make([]uint64, n+1)
	copy(mExt, m)

	q := make([]uint64, n+1)
	r := make([]uint64, n+1)
	Udivrem(q, r, sum, mExt)
	copy(z, r[:n])
}

// MulMod computes z = (x*y) mod m across n-word operands using the full
// 2n-word product and a single division by the zero-extended modulus,
// ported from intx's mulmod.
func MulMod(z, x, y, m []uint64) {
	n := len(x)
	prod := make([]uint64, 2*n)
	Mul(prod, x, y)

	mExt := make([]uint64, 2*n)
	copy(mExt, m)

	q := make([]uint64, 2*n)
	r := make([]uint64, 2*n)
	Udivrem(q, r, prod, mExt)
	copy(z, r[:n])
}

// Exp computes z = base^exp truncated to n words by repeated squaring,
// ported from intx's exp, including its base==2 fast path (there reduced to
// a shift rather than a full multiply ladder).
func Exp(z, base, exp []uint64) {
	n := len(z)

	if SignificantWords(base) == 1 && base[0] == 2 {
		width := uint64(n) * 64
		e := width
		if SignificantWords(exp) <= 1 {
			e = exp[0]
		}
		for i := range z {
			z[i] = 0
		}
		if e < width {
			z[0] = 1
			Lsh(z, z, uint(e))
		}
		return
	}

	result := make([]uint64, n)
	result[0] = 1
	b := make([]uint64, n)
	copy(b, base)
	tmp := make([]uint64, n)

	bits := SignificantWords(exp) * 64
	for i := 0; i < bits; i++ {
		word, bit := i/64, uint(i%64)
		if exp[word]&(1<<bit) != 0 {
			MulTrunc(tmp, result, b)
			copy(result, tmp)
		}
		MulTrunc(tmp, b, b)
		copy(b, tmp)
	}
	copy(z, result)
}
