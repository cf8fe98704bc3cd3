package wideint

import (
	"github.com/wideint/wideint/internal/arith"
)

// Uint128 is a 128-bit unsigned integer, stored as two little-endian uint64
// words. It is the base case of the construction: unlike Uint256 and
// Uint512, whose halves are themselves fixed-width types, a Uint128's
// halves are plain uint64s.
type Uint128 struct {
	w [2]uint64
}

func Uint128FromRaw(hi, lo uint64) Uint128 { return Uint128{w: [2]uint64{lo, hi}} }

func Uint128From64(v uint64) Uint128 { return Uint128{w: [2]uint64{v, 0}} }

// Raw returns u's two words, high word first.
func (u Uint128) Raw() (hi, lo uint64) { return u.w[1], u.w[0] }

func (u Uint128) Hi() uint64 { return u.w[1] }
func (u Uint128) Lo() uint64 { return u.w[0] }

func (u Uint128) IsZero() bool { return u == Uint128{} }

func (u Uint128) BitLen() int { return 128 - arith.LeadingZeros(u.w[:]) }

func (u Uint128) LeadingZeros() int { return arith.LeadingZeros(u.w[:]) }

func (u Uint128) Cmp(n Uint128) int { return arith.Cmp(u.w[:], n.w[:]) }

func (u Uint128) Equal(n Uint128) bool { return u == n }

func (u Uint128) GreaterThan(n Uint128) bool      { return u.Cmp(n) > 0 }
func (u Uint128) GreaterOrEqualTo(n Uint128) bool { return u.Cmp(n) >= 0 }
func (u Uint128) LessThan(n Uint128) bool         { return u.Cmp(n) < 0 }
func (u Uint128) LessOrEqualTo(n Uint128) bool    { return u.Cmp(n) <= 0 }

func (u Uint128) Inc() (v Uint128) { one := Uint128From64(1); arith.Add(v.w[:], u.w[:], one.w[:]); return v }
func (u Uint128) Dec() (v Uint128) { one := Uint128From64(1); arith.Sub(v.w[:], u.w[:], one.w[:]); return v }

func (u Uint128) Add(n Uint128) (v Uint128) { arith.Add(v.w[:], u.w[:], n.w[:]); return v }
func (u Uint128) Sub(n Uint128) (v Uint128) { arith.Sub(v.w[:], u.w[:], n.w[:]); return v }
func (u Uint128) Neg() (v Uint128)          { arith.Neg(v.w[:], u.w[:]); return v }
func (u Uint128) Not() (v Uint128)          { arith.Not(v.w[:], u.w[:]); return v }

func (u Uint128) And(n Uint128) (v Uint128) { arith.And(v.w[:], u.w[:], n.w[:]); return v }
func (u Uint128) Or(n Uint128) (v Uint128)  { arith.Or(v.w[:], u.w[:], n.w[:]); return v }
func (u Uint128) Xor(n Uint128) (v Uint128) { arith.Xor(v.w[:], u.w[:], n.w[:]); return v }

func (u Uint128) Lsh(n uint) (v Uint128) { arith.Lsh(v.w[:], u.w[:], n); return v }
func (u Uint128) Rsh(n uint) (v Uint128) { arith.Rsh(v.w[:], u.w[:], n); return v }

func (u Uint128) Mul(n Uint128) (v Uint128) {
	arith.MulTrunc(v.w[:], u.w[:], n.w[:])
	return v
}

func (u Uint128) Umul(n Uint128) (hi, lo Uint128) {
	var wide [4]uint64
	arith.Mul(wide[:], u.w[:], n.w[:])
	copy(lo.w[:], wide[:2])
	copy(hi.w[:], wide[2:])
	return hi, lo
}

func (u Uint128) QuoRem(by Uint128) (q, r Uint128) {
	arith.Udivrem(q.w[:], r.w[:], u.w[:], by.w[:])
	return q, r
}

func (u Uint128) Quo(by Uint128) (q Uint128) { q, _ = u.QuoRem(by); return q }
func (u Uint128) Rem(by Uint128) (r Uint128) { _, r = u.QuoRem(by); return r }

// SQuoRem divides u by by as two's-complement signed integers, rounding
// toward zero: see Uint256.SQuoRem.
func (u Uint128) SQuoRem(by Uint128) (q, r Uint128) {
	arith.Sdivrem(q.w[:], r.w[:], u.w[:], by.w[:])
	return q, r
}

func (u Uint128) SQuo(by Uint128) (q Uint128) { q, _ = u.SQuoRem(by); return q }
func (u Uint128) SRem(by Uint128) (r Uint128) { _, r = u.SQuoRem(by); return r }

func (u Uint128) AddMod(n, m Uint128) (v Uint128) {
	arith.AddMod(v.w[:], u.w[:], n.w[:], m.w[:])
	return v
}

func (u Uint128) MulMod(n, m Uint128) (v Uint128) {
	arith.MulMod(v.w[:], u.w[:], n.w[:], m.w[:])
	return v
}

func (u Uint128) Exp(n Uint128) (v Uint128) {
	arith.Exp(v.w[:], u.w[:], n.w[:])
	return v
}

func (u Uint128) Bswap() (v Uint128) { arith.Bswap(v.w[:], u.w[:]); return v }

func (u Uint128) PutLittleEndian(b []byte)   { arith.StoreLE(b, u.w[:]) }
func (u Uint128) PutBigEndian(b []byte)      { arith.StoreBE(b, u.w[:]) }
func (u Uint128) PutBigEndianTrunc(b []byte) { arith.StoreBETrunc(b, u.w[:]) }

func Uint128FromLittleEndian(b []byte) (out Uint128) { arith.LoadLE(out.w[:], b); return out }
func Uint128FromBigEndian(b []byte) (out Uint128)    { arith.LoadBE(out.w[:], b); return out }
