package wideint

import (
	"math/big"
	"testing"
)

var (
	BenchBigIntResult  *big.Int
	BenchBoolResult    bool
	BenchIntResult     int
	BenchUint256Result Uint256
	BenchUint64Result  uint64

	BenchUint641, BenchUint642 uint64 = 12093749018, 18927348917

	benchU1 = Uint256FromWords(0, 0, 1, 12093749018)
	benchU2 = Uint256FromWords(0, 0, 0, 18927348917)
)

func BenchmarkUint256Add(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint256Result = benchU1.Add(benchU2)
	}
}

func BenchmarkUint256Mul(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint256Result = benchU1.Mul(benchU2)
	}
}

func BenchmarkUint256QuoRem(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint256Result, _ = benchU1.QuoRem(benchU2)
	}
}

func BenchmarkUint256Equal(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchBoolResult = benchU1.Equal(benchU2)
	}
}

func BenchmarkUint64Mul(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint64Result = BenchUint641 * BenchUint642
	}
}

func BenchmarkUint64Div(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint64Result = BenchUint641 / BenchUint642
	}
}

func BenchmarkBigIntMul(b *testing.B) {
	var max big.Int
	max.SetUint64(maxUint64)

	for i := 0; i < b.N; i++ {
		var dest big.Int
		dest.Mul(&dest, &max)
	}
}

func BenchmarkBigIntQuoRem(b *testing.B) {
	u := new(big.Int).SetUint64(maxUint64)
	by := new(big.Int).SetUint64(121525124)
	for i := 0; i < b.N; i++ {
		var q, r big.Int
		q.QuoRem(u, by, &r)
	}
}

func BenchmarkBigIntCmpEqual(b *testing.B) {
	var v1, v2 big.Int
	v1.SetUint64(maxUint64)
	v2.SetUint64(maxUint64)

	for i := 0; i < b.N; i++ {
		BenchIntResult = v1.Cmp(&v2)
	}
}
