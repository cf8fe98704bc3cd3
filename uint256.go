package wideint

import (
	"github.com/wideint/wideint/internal/arith"
)

// Uint256 is a 256-bit unsigned integer, stored as four little-endian
// uint64 words (w[0] is least significant). Values are comparable with ==
// and are safe for use as map keys.
type Uint256 struct {
	w [4]uint64
}

// Uint256FromWords builds a Uint256 from its words, most significant first,
// mirroring Uint128FromRaw's (hi, lo) argument order one level up.
func Uint256FromWords(w3, w2, w1, w0 uint64) Uint256 {
	return Uint256{w: [4]uint64{w0, w1, w2, w3}}
}

// Uint256FromHalves builds a Uint256 from its two 128-bit halves.
func Uint256FromHalves(hi, lo Uint128) Uint256 {
	return Uint256{w: [4]uint64{lo.w[0], lo.w[1], hi.w[0], hi.w[1]}}
}

// Uint256From64 widens a uint64 to a Uint256.
func Uint256From64(v uint64) Uint256 { return Uint256{w: [4]uint64{v, 0, 0, 0}} }

func (u Uint256) Words() [4]uint64 { return u.w }

// Hi returns the upper 128 bits of u.
func (u Uint256) Hi() Uint128 { return Uint128{w: [2]uint64{u.w[2], u.w[3]}} }

// Lo returns the lower 128 bits of u.
func (u Uint256) Lo() Uint128 { return Uint128{w: [2]uint64{u.w[0], u.w[1]}} }

func (u Uint256) IsZero() bool { return u == Uint256{} }

// BitLen returns the number of bits required to represent u; BitLen(0) is 0.
func (u Uint256) BitLen() int { return 256 - arith.LeadingZeros(u.w[:]) }

func (u Uint256) LeadingZeros() int { return arith.LeadingZeros(u.w[:]) }

func (u Uint256) Cmp(n Uint256) int { return arith.Cmp(u.w[:], n.w[:]) }

func (u Uint256) Equal(n Uint256) bool { return u == n }

func (u Uint256) GreaterThan(n Uint256) bool      { return u.Cmp(n) > 0 }
func (u Uint256) GreaterOrEqualTo(n Uint256) bool { return u.Cmp(n) >= 0 }
func (u Uint256) LessThan(n Uint256) bool         { return u.Cmp(n) < 0 }
func (u Uint256) LessOrEqualTo(n Uint256) bool    { return u.Cmp(n) <= 0 }

func (u Uint256) Add(n Uint256) (v Uint256) {
	arith.Add(v.w[:], u.w[:], n.w[:])
	return v
}

func (u Uint256) Sub(n Uint256) (v Uint256) {
	arith.Sub(v.w[:], u.w[:], n.w[:])
	return v
}

func (u Uint256) Neg() (v Uint256) {
	arith.Neg(v.w[:], u.w[:])
	return v
}

func (u Uint256) Not() (v Uint256) {
	arith.Not(v.w[:], u.w[:])
	return v
}

func (u Uint256) And(n Uint256) (v Uint256) {
	arith.And(v.w[:], u.w[:], n.w[:])
	return v
}

func (u Uint256) Or(n Uint256) (v Uint256) {
	arith.Or(v.w[:], u.w[:], n.w[:])
	return v
}

func (u Uint256) Xor(n Uint256) (v Uint256) {
	arith.Xor(v.w[:], u.w[:], n.w[:])
	return v
}

func (u Uint256) Lsh(n uint) (v Uint256) {
	arith.Lsh(v.w[:], u.w[:], n)
	return v
}

func (u Uint256) Rsh(n uint) (v Uint256) {
	arith.Rsh(v.w[:], u.w[:], n)
	return v
}

// Mul returns the low 256 bits of u*n, truncating like the built-in
// unsigned integer types (spec's truncated multiply, the word-indexed loop
// in internal/arith.MulTrunc).
func (u Uint256) Mul(n Uint256) (v Uint256) {
	arith.MulTrunc(v.w[:], u.w[:], n.w[:])
	return v
}

// Umul returns the full, untruncated 512-bit product of u and n, split into
// its high and low halves.
func (u Uint256) Umul(n Uint256) (hi, lo Uint256) {
	var wide [8]uint64
	arith.Mul(wide[:], u.w[:], n.w[:])
	copy(lo.w[:], wide[:4])
	copy(hi.w[:], wide[4:])
	return hi, lo
}

// QuoRem returns the quotient and remainder of u/by. by must be nonzero;
// a zero divisor is a precondition violation (see package doc), not a
// guaranteed panic in release builds.
func (u Uint256) QuoRem(by Uint256) (q, r Uint256) {
	arith.Udivrem(q.w[:], r.w[:], u.w[:], by.w[:])
	return q, r
}

func (u Uint256) Quo(by Uint256) (q Uint256) {
	q, _ = u.QuoRem(by)
	return q
}

func (u Uint256) Rem(by Uint256) (r Uint256) {
	_, r = u.QuoRem(by)
	return r
}

// AddMod returns (u+n) mod m.
func (u Uint256) AddMod(n, m Uint256) (v Uint256) {
	arith.AddMod(v.w[:], u.w[:], n.w[:], m.w[:])
	return v
}

// MulMod returns (u*n) mod m.
func (u Uint256) MulMod(n, m Uint256) (v Uint256) {
	arith.MulMod(v.w[:], u.w[:], n.w[:], m.w[:])
	return v
}

// Exp returns u**n, truncated to 256 bits.
func (u Uint256) Exp(n Uint256) (v Uint256) {
	arith.Exp(v.w[:], u.w[:], n.w[:])
	return v
}

// Bswap reverses the byte order of u, treating it as a single 256-bit
// big-endian word.
func (u Uint256) Bswap() (v Uint256) {
	arith.Bswap(v.w[:], u.w[:])
	return v
}

// PutLittleEndian encodes u into b, which must be 32 bytes long.
func (u Uint256) PutLittleEndian(b []byte) { arith.StoreLE(b, u.w[:]) }

// PutBigEndian encodes u into b, which must be 32 bytes long.
func (u Uint256) PutBigEndian(b []byte) { arith.StoreBE(b, u.w[:]) }

// PutBigEndianTrunc encodes u into b as a big-endian byte string sized to
// len(b): see arith.StoreBETrunc.
func (u Uint256) PutBigEndianTrunc(b []byte) { arith.StoreBETrunc(b, u.w[:]) }

// Uint256FromLittleEndian decodes a 32-byte little-endian buffer into a
// Uint256.
func Uint256FromLittleEndian(b []byte) (out Uint256) {
	arith.LoadLE(out.w[:], b)
	return out
}

// Uint256FromBigEndian decodes a big-endian buffer of at most 32 bytes into
// a Uint256. A buffer shorter than 32 bytes zero-extends into the most
// significant end.
func Uint256FromBigEndian(b []byte) (out Uint256) {
	arith.LoadBE(out.w[:], b)
	return out
}

// SQuoRem divides u by by as two's-complement signed integers, rounding
// toward zero: the quotient is negated if exactly one of u, by is negative,
// and the remainder takes the sign of u. Both operands are read by their top
// bit, not by any separate signed type, since only this thin wrapper over
// the unsigned core is exposed as signed.
func (u Uint256) SQuoRem(by Uint256) (q, r Uint256) {
	arith.Sdivrem(q.w[:], r.w[:], u.w[:], by.w[:])
	return q, r
}

func (u Uint256) SQuo(by Uint256) (q Uint256) { q, _ = u.SQuoRem(by); return q }
func (u Uint256) SRem(by Uint256) (r Uint256) { _, r = u.SQuoRem(by); return r }
