// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package base58

import (
	"math/big"
	"sync"
)

// Alphabet is the modified base58 alphabet used by Bitcoin addresses. It
// leaves out the visually ambiguous glyphs 0, O, I and l.
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// MaxEncodeLength is the hard cap on the size of a payload passed to
// Encoding, in bytes.
const MaxEncodeLength = 2048

// zeroChar represents a single leading zero byte in encoded form.
var zeroChar = Alphabet[0]

var (
	bigRadix = big.NewInt(58)
	bigZero  = big.NewInt(0)
)

// charIndex maps a byte to its alphabet value, or -1 when the byte is not
// part of the alphabet.
var charIndex [256]int8

func init() {
	for i := range charIndex {
		charIndex[i] = -1
	}

	for i := 0; i < len(Alphabet); i++ {
		charIndex[Alphabet[i]] = int8(i)
	}
}

// Encoding encodes data as a base58 string. Leading zero bytes are not
// representable by magnitude alone, so each one is preserved as a leading
// '1' character. Payloads over MaxEncodeLength bytes are rejected with a
// LengthError.
func Encoding(data []byte) (string, error) {
	if len(data) > MaxEncodeLength {
		return "", &LengthError{Length: len(data), Max: MaxEncodeLength}
	}

	zeros := 0
	for zeros < len(data) && data[zeros] == 0 {
		zeros++
	}

	x := new(big.Int).SetBytes(data[zeros:])

	// Worst case growth is log(256)/log(58), a bit under 137%.
	out := make([]byte, 0, zeros+len(data)*137/100+1)
	for i := 0; i < zeros; i++ {
		out = append(out, zeroChar)
	}

	// Repeated division by the radix yields the digits least-significant
	// first.
	mod := new(big.Int)
	digits := make([]byte, 0, cap(out)-zeros)

	for x.Cmp(bigZero) > 0 {
		x.DivMod(x, bigRadix, mod)
		digits = append(digits, Alphabet[mod.Int64()])
	}

	for i := len(digits) - 1; i >= 0; i-- {
		out = append(out, digits[i])
	}

	return string(out), nil
}

// Decoding decodes a base58 string back to the byte sequence it was encoded
// from, such that Decoding(Encoding(b)) equals b. A character outside the
// alphabet fails with an InvalidCharacterError carrying the character and
// its position; input longer than MaxDecodeLength() fails with a
// LengthError.
func Decoding(text string) ([]byte, error) {
	if len(text) > MaxDecodeLength() {
		return nil, &LengthError{Length: len(text), Max: MaxDecodeLength()}
	}

	zeros := 0
	for zeros < len(text) && text[zeros] == zeroChar {
		zeros++
	}

	x := big.NewInt(0)
	idx := new(big.Int)

	for i := zeros; i < len(text); i++ {
		v := charIndex[text[i]]
		if v < 0 {
			return nil, &InvalidCharacterError{Char: text[i], Pos: i}
		}

		idx.SetInt64(int64(v))
		x.Mul(x, bigRadix)
		x.Add(x, idx)
	}

	// big.Int serializes to the minimal big-endian form, so the leading
	// zero bytes counted above are the only padding to restore.
	val := x.Bytes()
	out := make([]byte, zeros+len(val))
	copy(out[zeros:], val)

	return out, nil
}

// IsValid reports whether text contains only base58 alphabet characters.
// The empty string is valid. IsValid makes no length judgement; a valid
// string can still exceed the Decoding length bound.
func IsValid(text string) bool {
	for i := 0; i < len(text); i++ {
		if charIndex[text[i]] < 0 {
			return false
		}
	}

	return true
}

var (
	decodeMaxOnce sync.Once
	decodeMax     int
)

// MaxDecodeLength returns the longest base58 string Decoding accepts. The
// bound is the encoded length of a maximal payload of 0xff bytes, the
// largest value MaxEncodeLength bytes can hold, so any Encoding output fits
// within it.
func MaxDecodeLength() int {
	decodeMaxOnce.Do(func() {
		probe := make([]byte, MaxEncodeLength)
		for i := range probe {
			probe[i] = 0xff
		}

		enc, _ := Encoding(probe)
		decodeMax = len(enc)
	})

	return decodeMax
}
