package arith

// MulTrunc computes the N-bit truncated product z = x*y mod 2^(64*len(x)),
// discarding any word that would land at or past index len(x). This is the
// word-indexed double loop from spec §4.4: outer index j accumulates the
// column for y[j], inner index i runs the full 128-bit partial products
// with a running carry k, and the final column folds in the low half of
// the last partial product plus k while discarding its high half. z must
// not alias x or y.
func MulTrunc(z, x, y []uint64) {
	n := len(x)
	for i := range z {
		z[i] = 0
	}
	for j := 0; j < n; j++ {
		if y[j] == 0 {
			continue
		}
		var k uint64
		for i := 0; i < n-j-1; i++ {
			p := MulWW(x[i], y[j])
			lo, c1 := AddWithCarry(p.Lo, z[i+j], 0)
			lo, c2 := AddWithCarry(lo, k, 0)
			z[i+j] = lo
			k = p.Hi + c1 + c2
		}
		z[n-1] += x[n-j-1]*y[j] + k
	}
}

// Mul computes the full 2*len(x)-word product z = x*y using the flat
// word-indexed double loop (intx's umul_loop): for each column j, every
// partial product x[i]*y[j] is accumulated with carry propagation into
// z[i+j]. len(z) must be 2*len(x); z must not alias x or y.
func Mul(z, x, y []uint64) {
	n := len(x)
	for i := range z {
		z[i] = 0
	}
	for j := 0; j < n; j++ {
		var k uint64
		for i := 0; i < n; i++ {
			p := MulWW(x[i], y[j])
			lo, c1 := AddWithCarry(p.Lo, z[i+j], 0)
			lo, c2 := AddWithCarry(lo, k, 0)
			z[i+j] = lo
			k = p.Hi + c1 + c2
		}
		z[j+n] = k
	}
}
