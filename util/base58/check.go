package base58

import (
	"bytes"
	"encoding/hex"

	"base58check/util/byteutil"
	"base58check/util/hashutil"
)

// ChecksumLen is the number of checksum bytes appended by CheckEncode.
const ChecksumLen = 4

// CheckEncode encodes prefix followed by payload into base58 with a 4-byte
// double-SHA256 checksum appended to it.
func CheckEncode(prefix, payload []byte) string {
	b := byteutil.Concat(prefix, payload)
	b = append(b, hashutil.Checksum(b)...)
	return Encode(b)
}

// CheckEncodeHex behaves like CheckEncode with the payload given as a hex
// string. Callers holding hex text use this entry point explicitly;
// CheckEncode never inspects its payload bytes for a hex shape.
func CheckEncodeHex(prefix []byte, payloadHex string) (string, error) {
	payload, err := hex.DecodeString(payloadHex)
	if err != nil {
		return "", err
	}

	return CheckEncode(prefix, payload), nil
}

// CheckDecode decodes a check-encoded string, verifies its checksum and
// splits the result into version prefix and payload.
//
// prefixLen is the caller's framing contract: how many leading bytes form
// the version prefix. There is no universal value, Bitcoin addresses use 1
// while other formats use 2 or more, so the caller must pass the length its
// encoder used. prefixLen must be at least 1.
func CheckDecode(s string, prefixLen int) (prefix []byte, payload []byte, err error) {
	if prefixLen < 1 {
		return nil, nil, ErrInvalidFormat
	}

	b, err := Decode(s)
	if err != nil {
		return nil, nil, err
	}

	if len(b) < prefixLen+ChecksumLen {
		return nil, nil, ErrInvalidFormat
	}

	versioned := b[:len(b)-ChecksumLen]
	if !bytes.Equal(hashutil.Checksum(versioned), b[len(b)-ChecksumLen:]) {
		return nil, nil, ErrChecksum
	}

	return versioned[:prefixLen], versioned[prefixLen:], nil
}
