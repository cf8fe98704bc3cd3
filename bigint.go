package wideint

import (
	"fmt"
	"math/big"
)

// This file is the math/big bridge (decimal and hex parsing, formatting,
// and the encoding.TextMarshaler pair), kept separate from the arithmetic core in
// uint128.go/uint256.go/uint512.go. Division, multiplication and shifts
// never touch math/big; only this file and the range bounds in consts.go
// do. The general (three-or-more-word divisor) division kernel, the signed
// divide and the modular operations do allocate their scratch words with
// make.

// Uint128FromBigInt converts v, reporting whether the conversion was exact
// (v was nonnegative and fit in 128 bits). Out-of-range values are clamped:
// negative to zero, too-large to MaxUint128.
func Uint128FromBigInt(v *big.Int) (out Uint128, exact bool) {
	switch {
	case v.Sign() < 0:
		return Uint128{}, false
	case v.Cmp(maxBigUint128) > 0:
		return MaxUint128, false
	default:
		bts := make([]byte, 16)
		v.FillBytes(bts)
		out = Uint128FromBigEndian(bts)
		return out, true
	}
}

func Uint256FromBigInt(v *big.Int) (out Uint256, exact bool) {
	switch {
	case v.Sign() < 0:
		return Uint256{}, false
	case v.Cmp(maxBigUint256) > 0:
		return MaxUint256, false
	default:
		bts := make([]byte, 32)
		v.FillBytes(bts)
		out = Uint256FromBigEndian(bts)
		return out, true
	}
}

func Uint512FromBigInt(v *big.Int) (out Uint512, exact bool) {
	switch {
	case v.Sign() < 0:
		return Uint512{}, false
	case v.Cmp(maxBigUint512) > 0:
		return MaxUint512, false
	default:
		bts := make([]byte, 64)
		v.FillBytes(bts)
		out = Uint512FromBigEndian(bts)
		return out, true
	}
}

// Uint128FromString, Uint256FromString and Uint512FromString parse a
// decimal or 0x-prefixed hexadecimal string, reporting whether it was a
// valid, in-range unsigned integer.
func Uint128FromString(s string) (out Uint128, ok bool) {
	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return Uint128{}, false
	}
	out, exact := Uint128FromBigInt(v)
	return out, exact
}

func Uint256FromString(s string) (out Uint256, ok bool) {
	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return Uint256{}, false
	}
	out, exact := Uint256FromBigInt(v)
	return out, exact
}

func Uint512FromString(s string) (out Uint512, ok bool) {
	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return Uint512{}, false
	}
	out, exact := Uint512FromBigInt(v)
	return out, exact
}

func (u Uint128) AsBigInt() *big.Int {
	b := make([]byte, 16)
	u.PutBigEndian(b)
	return new(big.Int).SetBytes(b)
}

func (u Uint256) AsBigInt() *big.Int {
	b := make([]byte, 32)
	u.PutBigEndian(b)
	return new(big.Int).SetBytes(b)
}

func (u Uint512) AsBigInt() *big.Int {
	b := make([]byte, 64)
	u.PutBigEndian(b)
	return new(big.Int).SetBytes(b)
}

func (u Uint128) String() string { return u.AsBigInt().String() }
func (u Uint256) String() string { return u.AsBigInt().String() }
func (u Uint512) String() string { return u.AsBigInt().String() }

func (u Uint128) Format(s fmt.State, c rune) { u.AsBigInt().Format(s, c) }
func (u Uint256) Format(s fmt.State, c rune) { u.AsBigInt().Format(s, c) }
func (u Uint512) Format(s fmt.State, c rune) { u.AsBigInt().Format(s, c) }

func (u Uint128) MarshalText() ([]byte, error) { return []byte(u.String()), nil }
func (u Uint256) MarshalText() ([]byte, error) { return []byte(u.String()), nil }
func (u Uint512) MarshalText() ([]byte, error) { return []byte(u.String()), nil }

func (u *Uint128) UnmarshalText(bts []byte) error {
	out, ok := Uint128FromString(string(bts))
	if !ok {
		return fmt.Errorf("wideint: could not parse Uint128 from %q", bts)
	}
	*u = out
	return nil
}

func (u *Uint256) UnmarshalText(bts []byte) error {
	out, ok := Uint256FromString(string(bts))
	if !ok {
		return fmt.Errorf("wideint: could not parse Uint256 from %q", bts)
	}
	*u = out
	return nil
}

func (u *Uint512) UnmarshalText(bts []byte) error {
	out, ok := Uint512FromString(string(bts))
	if !ok {
		return fmt.Errorf("wideint: could not parse Uint512 from %q", bts)
	}
	*u = out
	return nil
}
