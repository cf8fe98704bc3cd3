package wideint

import (
	"github.com/wideint/wideint/internal/arith"
)

// Uint512 is a 512-bit unsigned integer, stored as eight little-endian
// uint64 words. It exists to prove out the recursive construction one level
// further than Uint256: a Uint512 is two Uint256 halves, exactly as a
// Uint256 is two Uint128 halves.
type Uint512 struct {
	w [8]uint64
}

// Uint512FromHalves builds a Uint512 from its two 256-bit halves.
func Uint512FromHalves(hi, lo Uint256) Uint512 {
	var v Uint512
	copy(v.w[:4], lo.w[:])
	copy(v.w[4:], hi.w[:])
	return v
}

func Uint512From64(v uint64) Uint512 { return Uint512{w: [8]uint64{v}} }

func (u Uint512) Words() [8]uint64 { return u.w }

// Hi returns the upper 256 bits of u.
func (u Uint512) Hi() Uint256 { var h Uint256; copy(h.w[:], u.w[4:]); return h }

// Lo returns the lower 256 bits of u.
func (u Uint512) Lo() Uint256 { var l Uint256; copy(l.w[:], u.w[:4]); return l }

func (u Uint512) IsZero() bool { return u == Uint512{} }

func (u Uint512) BitLen() int { return 512 - arith.LeadingZeros(u.w[:]) }

func (u Uint512) LeadingZeros() int { return arith.LeadingZeros(u.w[:]) }

func (u Uint512) Cmp(n Uint512) int { return arith.Cmp(u.w[:], n.w[:]) }

func (u Uint512) Equal(n Uint512) bool { return u == n }

func (u Uint512) GreaterThan(n Uint512) bool      { return u.Cmp(n) > 0 }
func (u Uint512) GreaterOrEqualTo(n Uint512) bool { return u.Cmp(n) >= 0 }
func (u Uint512) LessThan(n Uint512) bool         { return u.Cmp(n) < 0 }
func (u Uint512) LessOrEqualTo(n Uint512) bool    { return u.Cmp(n) <= 0 }

func (u Uint512) Add(n Uint512) (v Uint512) {
	arith.Add(v.w[:], u.w[:], n.w[:])
	return v
}

func (u Uint512) Sub(n Uint512) (v Uint512) {
	arith.Sub(v.w[:], u.w[:], n.w[:])
	return v
}

func (u Uint512) Neg() (v Uint512) {
	arith.Neg(v.w[:], u.w[:])
	return v
}

func (u Uint512) Not() (v Uint512) {
	arith.Not(v.w[:], u.w[:])
	return v
}

func (u Uint512) And(n Uint512) (v Uint512) { arith.And(v.w[:], u.w[:], n.w[:]); return v }
func (u Uint512) Or(n Uint512) (v Uint512)  { arith.Or(v.w[:], u.w[:], n.w[:]); return v }
func (u Uint512) Xor(n Uint512) (v Uint512) { arith.Xor(v.w[:], u.w[:], n.w[:]); return v }

func (u Uint512) Lsh(n uint) (v Uint512) { arith.Lsh(v.w[:], u.w[:], n); return v }
func (u Uint512) Rsh(n uint) (v Uint512) { arith.Rsh(v.w[:], u.w[:], n); return v }

// Mul returns the low 512 bits of u*n, truncating like the built-in
// unsigned integer types.
func (u Uint512) Mul(n Uint512) (v Uint512) {
	arith.MulTrunc(v.w[:], u.w[:], n.w[:])
	return v
}

// Umul returns the full, untruncated 1024-bit product of u and n, split
// into its high and low 512-bit halves.
func (u Uint512) Umul(n Uint512) (hi, lo Uint512) {
	var wide [16]uint64
	arith.Mul(wide[:], u.w[:], n.w[:])
	copy(lo.w[:], wide[:8])
	copy(hi.w[:], wide[8:])
	return hi, lo
}

func (u Uint512) QuoRem(by Uint512) (q, r Uint512) {
	arith.Udivrem(q.w[:], r.w[:], u.w[:], by.w[:])
	return q, r
}

func (u Uint512) Quo(by Uint512) (q Uint512) { q, _ = u.QuoRem(by); return q }
func (u Uint512) Rem(by Uint512) (r Uint512) { _, r = u.QuoRem(by); return r }

// SQuoRem divides u by by as two's-complement signed integers, rounding
// toward zero: see Uint256.SQuoRem.
func (u Uint512) SQuoRem(by Uint512) (q, r Uint512) {
	arith.Sdivrem(q.w[:], r.w[:], u.w[:], by.w[:])
	return q, r
}

func (u Uint512) SQuo(by Uint512) (q Uint512) { q, _ = u.SQuoRem(by); return q }
func (u Uint512) SRem(by Uint512) (r Uint512) { _, r = u.SQuoRem(by); return r }

func (u Uint512) AddMod(n, m Uint512) (v Uint512) {
	arith.AddMod(v.w[:], u.w[:], n.w[:], m.w[:])
	return v
}

func (u Uint512) MulMod(n, m Uint512) (v Uint512) {
	arith.MulMod(v.w[:], u.w[:], n.w[:], m.w[:])
	return v
}

func (u Uint512) Exp(n Uint512) (v Uint512) {
	arith.Exp(v.w[:], u.w[:], n.w[:])
	return v
}

func (u Uint512) Bswap() (v Uint512) { arith.Bswap(v.w[:], u.w[:]); return v }

func (u Uint512) PutLittleEndian(b []byte)   { arith.StoreLE(b, u.w[:]) }
func (u Uint512) PutBigEndian(b []byte)      { arith.StoreBE(b, u.w[:]) }
func (u Uint512) PutBigEndianTrunc(b []byte) { arith.StoreBETrunc(b, u.w[:]) }

func Uint512FromLittleEndian(b []byte) (out Uint512) { arith.LoadLE(out.w[:], b); return out }
func Uint512FromBigEndian(b []byte) (out Uint512)    { arith.LoadBE(out.w[:], b); return out }
