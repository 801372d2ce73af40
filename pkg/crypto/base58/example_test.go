package base58_test

import (
	"fmt"

	"github.com/dusk-network/base58/pkg/crypto/base58"
)

// This example demonstrates how to encode binary data as a base58 string.
func ExampleEncoding() {
	data := append([]byte{0x00}, []byte("Hello")...)

	encoded, err := base58.Encoding(data)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// The leading zero byte survives as a leading '1'.
	fmt.Println(encoded)
	// Output: 19Ajdvzr
}

// This example demonstrates how to decode a base58 string back to bytes.
func ExampleDecoding() {
	decoded, err := base58.Decoding("JxF12TrwUP45BMd")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(string(decoded))
	// Output: Hello World
}

// This example demonstrates validating base58 strings before decoding.
func ExampleIsValid() {
	fmt.Println(base58.IsValid("JxF12TrwUP45BMd"))
	fmt.Println(base58.IsValid("not-base58: 0OIl"))
	// Output:
	// true
	// false
}
