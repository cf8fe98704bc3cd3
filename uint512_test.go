package wideint

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestUint512Add(t *testing.T) {
	for _, tc := range []struct {
		a, b, want Uint512
	}{
		{Uint512From64(1), Uint512From64(2), Uint512From64(3)},
		{MaxUint512, Uint512From64(1), Uint512{}}, // wraps
	} {
		t.Run(fmt.Sprintf("%s+%s", tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustAssert(tc.want.Equal(tc.a.Add(tc.b)))
		})
	}
}

func TestUint512HiLo(t *testing.T) {
	tt := assert.WrapTB(t)

	hi := Uint256From64(0xAA)
	lo := Uint256From64(0xBB)
	v := Uint512FromHalves(hi, lo)
	tt.MustAssert(hi.Equal(v.Hi()))
	tt.MustAssert(lo.Equal(v.Lo()))
}

func TestUint512Mul(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustAssert(Uint512From64(1).Equal(MaxUint512.Mul(MaxUint512))) // MAX*MAX truncated == 1
}

func TestUint512Umul(t *testing.T) {
	tt := assert.WrapTB(t)

	hi, lo := MaxUint512.Umul(MaxUint512)
	want := new(big.Int).Mul(MaxUint512.AsBigInt(), MaxUint512.AsBigInt())
	wantLo := new(big.Int).And(want, maxBigUint512)
	wantHi := new(big.Int).Rsh(want, 512)

	tt.MustEqual(wantHi.String(), hi.AsBigInt().String())
	tt.MustEqual(wantLo.String(), lo.AsBigInt().String())
}

func TestUint512QuoRem(t *testing.T) {
	tt := assert.WrapTB(t)

	q, r := MaxUint512.QuoRem(MaxUint512)
	tt.MustAssert(Uint512From64(1).Equal(q))
	tt.MustAssert(Uint512{}.Equal(r))

	q, r = Uint512From64(5).QuoRem(Uint512From64(10))
	tt.MustAssert(Uint512{}.Equal(q))
	tt.MustAssert(Uint512From64(5).Equal(r))
}

func TestUint512ShiftBoundaries(t *testing.T) {
	tt := assert.WrapTB(t)

	for _, shift := range []uint{0, 1, 63, 64, 65, 255, 256, 257, 383, 384, 511, 512, 513, 2000} {
		got := MaxUint512.Lsh(shift)
		want := new(big.Int).Lsh(MaxUint512.AsBigInt(), shift)
		want.And(want, maxBigUint512)
		tt.MustEqual(want.String(), got.AsBigInt().String())

		got = MaxUint512.Rsh(shift)
		want = new(big.Int).Rsh(MaxUint512.AsBigInt(), shift)
		tt.MustEqual(want.String(), got.AsBigInt().String())
	}
}

func TestUint512BswapAndBytes(t *testing.T) {
	tt := assert.WrapTB(t)

	u := MaxUint512.Sub(Uint512From64(12345))
	tt.MustAssert(u.Equal(u.Bswap().Bswap()))

	be := make([]byte, 64)
	u.PutBigEndian(be)
	tt.MustAssert(u.Equal(Uint512FromBigEndian(be)))

	le := make([]byte, 64)
	u.PutLittleEndian(le)
	tt.MustAssert(u.Equal(Uint512FromLittleEndian(le)))
}
