package arith

import (
	"math/rand"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestLoadStoreLE(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(13))

	for i := 0; i < 500; i++ {
		n := 1 + rng.Intn(8)
		x := make([]uint64, n)
		for j := range x {
			x[j] = rng.Uint64()
		}

		b := make([]byte, n*8)
		StoreLE(b, x)

		z := make([]uint64, n)
		LoadLE(z, b)
		tt.MustEqual(x, z)
	}
}

func TestLoadStoreBE(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(14))

	for i := 0; i < 500; i++ {
		n := 1 + rng.Intn(8)
		x := make([]uint64, n)
		for j := range x {
			x[j] = rng.Uint64()
		}

		b := make([]byte, n*8)
		StoreBE(b, x)

		z := make([]uint64, n)
		LoadBE(z, b)
		tt.MustEqual(x, z)
	}
}

// TestStoreBELiteralSpecVector is the spec's literal serialization scenario:
// a BE store of 0x0123456789ABCDEF as a 256-bit value yields 32 bytes whose
// last eight bytes are the pattern and whose first 24 are zero.
func TestStoreBELiteralSpecVector(t *testing.T) {
	tt := assert.WrapTB(t)

	x := []uint64{0x0123456789ABCDEF, 0, 0, 0}
	b := make([]byte, 32)
	StoreBE(b, x)

	want := []byte{
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF,
	}
	tt.MustEqual(want, b)
}

func TestStoreBETrunc(t *testing.T) {
	tt := assert.WrapTB(t)

	x := []uint64{0x0123456789ABCDEF, 0, 0, 0}

	// Buffer wider than the value: zero-padded on the left.
	wide := make([]byte, 40)
	StoreBETrunc(wide, x)
	tt.MustEqual(make([]byte, 8), wide[:8])
	tt.MustEqual([]byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF}, wide[32:])

	// Buffer exactly the natural width.
	exact := make([]byte, 32)
	StoreBETrunc(exact, x)
	full := make([]byte, 32)
	StoreBE(full, x)
	tt.MustEqual(full, exact)

	// Buffer narrower than the full width: truncates from the top (caller's
	// responsibility to size it to the value's actual bit length).
	narrow := make([]byte, 4)
	StoreBETrunc(narrow, x)
	tt.MustEqual([]byte{0x89, 0xAB, 0xCD, 0xEF}, narrow)
}

// TestLoadBEShort checks the short-buffer contract: a big-endian buffer
// narrower than the full 8*len(z) width zero-extends into the most
// significant words, the mirror of StoreBETrunc.
func TestLoadBEShort(t *testing.T) {
	tt := assert.WrapTB(t)

	z := make([]uint64, 4)
	LoadBE(z, []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF})
	tt.MustEqual([]uint64{0x0123456789ABCDEF, 0, 0, 0}, z)

	z2 := make([]uint64, 4)
	LoadBE(z2, []byte{0x7F})
	tt.MustEqual([]uint64{0x7F, 0, 0, 0}, z2)

	rng := rand.New(rand.NewSource(17))
	for i := 0; i < 500; i++ {
		n := 1 + rng.Intn(8)
		full := n * 8
		byteLen := 1 + rng.Intn(full)

		b := make([]byte, byteLen)
		rng.Read(b)

		got := make([]uint64, n)
		LoadBE(got, b)

		padded := make([]byte, full)
		copy(padded[full-byteLen:], b)
		want := make([]uint64, n)
		LoadBE(want, padded)

		tt.MustEqual(want, got)
	}
}

func TestBswap(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(15))

	for i := 0; i < 500; i++ {
		n := 1 + rng.Intn(8)
		x := make([]uint64, n)
		for j := range x {
			x[j] = rng.Uint64()
		}

		z := make([]uint64, n)
		Bswap(z, x)

		back := make([]uint64, n)
		Bswap(back, z)
		tt.MustEqual(x, back)
	}
}
