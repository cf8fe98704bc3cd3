package wideint

import (
	"math/big"
)

const maxUint64 = 1<<64 - 1

var (
	MaxUint128 = Uint128{w: [2]uint64{maxUint64, maxUint64}}
	MaxUint256 = Uint256{w: [4]uint64{maxUint64, maxUint64, maxUint64, maxUint64}}
	MaxUint512 = Uint512{w: [8]uint64{maxUint64, maxUint64, maxUint64, maxUint64, maxUint64, maxUint64, maxUint64, maxUint64}}

	big1 = new(big.Int).SetInt64(1)

	// wrapBigUint128/256/512 are 1<<128, 1<<256 and 1<<512, used to check
	// range when converting through math/big.
	wrapBigUint128 = new(big.Int).Lsh(big1, 128)
	wrapBigUint256 = new(big.Int).Lsh(big1, 256)
	wrapBigUint512 = new(big.Int).Lsh(big1, 512)

	maxBigUint128 = new(big.Int).Sub(wrapBigUint128, big1)
	maxBigUint256 = new(big.Int).Sub(wrapBigUint256, big1)
	maxBigUint512 = new(big.Int).Sub(wrapBigUint512, big1)
)
