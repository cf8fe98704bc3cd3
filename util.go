package wideint

// RandSource is a minimal interface for a source of random uint64 values.
// The fuzz harness does not use it; it draws from a *rand.Rand.
type RandSource interface {
	Uint64() uint64
}

// DifferenceUint256 subtracts the smaller of a and b from the larger.
func DifferenceUint256(a, b Uint256) Uint256 {
	if a.GreaterThan(b) {
		return a.Sub(b)
	}
	return b.Sub(a)
}

func LargerUint256(a, b Uint256) Uint256 {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

func SmallerUint256(a, b Uint256) Uint256 {
	if a.LessThan(b) {
		return a
	}
	return b
}

// DifferenceUint128 subtracts the smaller of a and b from the larger.
func DifferenceUint128(a, b Uint128) Uint128 {
	if a.GreaterThan(b) {
		return a.Sub(b)
	}
	return b.Sub(a)
}
