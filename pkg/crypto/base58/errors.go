// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package base58

import "fmt"

// LengthError is returned when an input exceeds the maximum length for the
// operation.
type LengthError struct {
	Length int
	Max    int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("input length %d exceeds maximum of %d", e.Length, e.Max)
}

// InvalidCharacterError is returned by Decoding when the input contains a
// character outside the base58 alphabet.
type InvalidCharacterError struct {
	Char byte
	Pos  int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid base58 character %q at position %d", e.Char, e.Pos)
}
