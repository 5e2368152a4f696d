// Package base58 implements Base58 and Base58Check encoding.
//
// Base58 represents a byte sequence in a 58-character alphabet, with one
// leading '1' character per leading zero byte of the input. Base58Check
// additionally frames the bytes with a version prefix and a 4-byte
// double-SHA256 checksum so that transcription errors are detected on decode.
package base58

import (
	"math/big"

	"base58check/util/byteutil"
)

var bigRadix = big.NewInt(radix)

// Encode encodes b into a base58 string.
//
// Leading zero bytes carry no weight in the numeric value, so they are
// handled separately: each one becomes a single leading '1' character, and
// only the remaining bytes are converted through big-integer division.
// Empty input encodes to the empty string.
func Encode(b []byte) string {
	zeros := byteutil.CountLeadingZeros(b)

	x := new(big.Int).SetBytes(b[zeros:])
	mod := new(big.Int)

	// Base58 expands bytes by ~137%.
	out := make([]byte, 0, zeros+len(b)*137/100+1)
	for x.Sign() > 0 {
		x.QuoRem(x, bigRadix, mod)
		out = append(out, digits[mod.Int64()])
	}
	for i := 0; i < zeros; i++ {
		out = append(out, digits[0])
	}

	// Remainders were collected least-significant first.
	return string(byteutil.ReverseBytes(out))
}

// Decode decodes a base58 string back into bytes.
//
// The count of leading zero bytes is recovered from the count of leading '1'
// characters in s itself. The integer value alone cannot recover it: any run
// of leading zero bytes collapses into the value zero during conversion.
// Returns InvalidCharacterError if s contains a character outside the
// alphabet.
func Decode(s string) ([]byte, error) {
	zeros := 0
	for zeros < len(s) && s[zeros] == digits[0] {
		zeros++
	}

	x := new(big.Int)
	v := new(big.Int)
	for i := zeros; i < len(s); i++ {
		val := valueOf(s[i])
		if val < 0 {
			return nil, InvalidCharacterError{Char: s[i], Pos: i}
		}

		x.Mul(x, bigRadix)
		x.Add(x, v.SetInt64(int64(val)))
	}

	decoded := x.Bytes()
	out := make([]byte, zeros+len(decoded))
	copy(out[zeros:], decoded)

	return out, nil
}
