package arith

// This file implements the byte-slice bridges described in spec §6: a
// little-endian form that is a direct word-for-word copy, and a big-endian
// form that reverses both word and byte order, ported from intx's
// as_bytes/to_big_endian/to_little_endian free functions (original_source
// intx.hpp) in a portable, non-pointer-cast style.

// LoadLE decodes the little-endian byte slice b into z: b[0] is the least
// significant byte of the least significant word. len(b) must equal
// 8*len(z).
func LoadLE(z []uint64, b []byte) {
	for i := range z {
		base := i * 8
		var w uint64
		for k := 0; k < 8; k++ {
			w |= uint64(b[base+k]) << (8 * uint(k))
		}
		z[i] = w
	}
}

// StoreLE encodes x into the little-endian byte slice b. len(b) must equal
// 8*len(x).
func StoreLE(b []byte, x []uint64) {
	for i, w := range x {
		base := i * 8
		for k := 0; k < 8; k++ {
			b[base+k] = byte(w >> (8 * uint(k)))
		}
	}
}

// LoadBE decodes the big-endian byte slice b into z: b[0] is the most
// significant byte of the most significant word. len(b) must be at most
// 8*len(z); a buffer shorter than the full width zero-extends into the
// most significant end, the mirror image of StoreBETrunc.
func LoadBE(z []uint64, b []byte) {
	n := len(z)
	full := n * 8
	if len(b) == full {
		decodeBE(z, b)
		return
	}

	padded := make([]byte, full)
	copy(padded[full-len(b):], b)
	decodeBE(z, padded)
}

// decodeBE is the exact-width big-endian decode loop shared by LoadBE's two
// paths.
func decodeBE(z []uint64, b []byte) {
	n := len(z)
	for i := 0; i < n; i++ {
		base := (n - 1 - i) * 8
		var w uint64
		for k := 0; k < 8; k++ {
			w = w<<8 | uint64(b[base+k])
		}
		z[i] = w
	}
}

// StoreBE encodes x into the big-endian byte slice b. len(b) must equal
// 8*len(x).
func StoreBE(b []byte, x []uint64) {
	n := len(x)
	for i, w := range x {
		base := (n - 1 - i) * 8
		for k := 0; k < 8; k++ {
			b[base+7-k] = byte(w >> (8 * uint(k)))
		}
	}
}

// StoreBETrunc encodes x into b as a big-endian byte string sized to
// len(b) rather than the full 8*len(x) width: bytes beyond len(b) (from the
// most significant end) are discarded, and if b is longer than the value's
// natural width it is zero-padded on the left. This is the form a
// math/big-style Bytes()/FillBytes() bridge needs, where the caller sizes
// the buffer to the value's bit length instead of the fixed word width.
func StoreBETrunc(b []byte, x []uint64) {
	full := make([]byte, len(x)*8)
	StoreBE(full, x)
	if len(b) >= len(full) {
		off := len(b) - len(full)
		for i := 0; i < off; i++ {
			b[i] = 0
		}
		copy(b[off:], full)
		return
	}
	copy(b, full[len(full)-len(b):])
}

// Bswap reverses both the word order and the byte order of x into z,
// turning a little-endian word slice into its big-endian twin (and back).
// z must not alias x.
func Bswap(z, x []uint64) {
	n := len(x)
	for i := 0; i < n; i++ {
		z[i] = Bswap64(x[n-1-i])
	}
}
