package wideint

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func u128(hi, lo uint64) Uint128 { return Uint128FromRaw(hi, lo) }

func TestUint128Add(t *testing.T) {
	for _, tc := range []struct {
		a, b, want Uint128
	}{
		{Uint128From64(1), Uint128From64(2), Uint128From64(3)},
		{MaxUint128, Uint128From64(1), Uint128{}}, // wraps
		{u128(0, maxUint64), Uint128From64(1), u128(1, 0)},
	} {
		t.Run(fmt.Sprintf("%s+%s", tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustAssert(tc.want.Equal(tc.a.Add(tc.b)))
		})
	}
}

func TestUint128Sub(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustAssert(Uint128{}.Equal(Uint128From64(1).Sub(Uint128From64(1))))
	tt.MustAssert(MaxUint128.Equal(Uint128{}.Sub(Uint128From64(1)))) // underflow wraps
}

func TestUint128Mul(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustAssert(Uint128From64(6).Equal(Uint128From64(2).Mul(Uint128From64(3))))
	// MAX*MAX truncated equals 1 (spec boundary).
	tt.MustAssert(Uint128From64(1).Equal(MaxUint128.Mul(MaxUint128)))
}

func TestUint128Umul(t *testing.T) {
	tt := assert.WrapTB(t)

	hi, lo := MaxUint128.Umul(MaxUint128)

	want := new(big.Int).Mul(MaxUint128.AsBigInt(), MaxUint128.AsBigInt())
	wantLo := new(big.Int).And(want, maxBigUint128)
	wantHi := new(big.Int).Rsh(want, 128)

	tt.MustEqual(wantHi.String(), hi.AsBigInt().String())
	tt.MustEqual(wantLo.String(), lo.AsBigInt().String())
}

func TestUint128QuoRem(t *testing.T) {
	tt := assert.WrapTB(t)

	q, r := Uint128From64(13).QuoRem(Uint128From64(4))
	tt.MustAssert(Uint128From64(3).Equal(q))
	tt.MustAssert(Uint128From64(1).Equal(r))

	// dividend == divisor => quotient 1, remainder 0.
	q, r = MaxUint128.QuoRem(MaxUint128)
	tt.MustAssert(Uint128From64(1).Equal(q))
	tt.MustAssert(Uint128{}.Equal(r))

	// dividend < divisor => quotient 0.
	q, r = Uint128From64(1).QuoRem(Uint128From64(2))
	tt.MustAssert(Uint128{}.Equal(q))
	tt.MustAssert(Uint128From64(1).Equal(r))
}

func TestUint128ShiftBoundaries(t *testing.T) {
	tt := assert.WrapTB(t)

	for _, shift := range []uint{0, 1, 63, 64, 65, 127, 128, 129, 1000} {
		got := MaxUint128.Lsh(shift)
		want := new(big.Int).Lsh(MaxUint128.AsBigInt(), shift)
		want.And(want, maxBigUint128)
		tt.MustEqual(want.String(), got.AsBigInt().String())

		got = MaxUint128.Rsh(shift)
		want = new(big.Int).Rsh(MaxUint128.AsBigInt(), shift)
		tt.MustEqual(want.String(), got.AsBigInt().String())
	}
}

func TestUint128HiLo(t *testing.T) {
	tt := assert.WrapTB(t)

	u := u128(0x1122334455667788, 0x99AABBCCDDEEFF00)
	tt.MustEqual(uint64(0x1122334455667788), u.Hi())
	tt.MustEqual(uint64(0x99AABBCCDDEEFF00), u.Lo())
}

func TestUint128BswapAndBytes(t *testing.T) {
	tt := assert.WrapTB(t)

	u := u128(0x0102030405060708, 0x1112131415161718)
	tt.MustAssert(u.Equal(u.Bswap().Bswap()))

	be := make([]byte, 16)
	u.PutBigEndian(be)
	tt.MustAssert(u.Equal(Uint128FromBigEndian(be)))

	le := make([]byte, 16)
	u.PutLittleEndian(le)
	tt.MustAssert(u.Equal(Uint128FromLittleEndian(le)))
}

func TestUint128IncDec(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustAssert(Uint128{}.Equal(MaxUint128.Inc()))
	tt.MustAssert(MaxUint128.Equal(Uint128{}.Dec()))
}
