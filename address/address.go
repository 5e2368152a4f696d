// Package address builds and inspects Base58Check addresses with a 1-byte
// version prefix, the framing used by Bitcoin-style P2PKH addresses.
package address

import (
	"encoding/hex"

	"base58check/util/base58"
	"base58check/util/hashutil"
)

// versionLen is this package's framing contract: one version byte.
const versionLen = 1

// FromPublicKey returns the address of a serialized public key:
// base58check(version || ripemd160(sha256(pubKey))).
// E.g., version 0x00 gives a Bitcoin mainnet P2PKH address.
func FromPublicKey(pubKey []byte, version byte) string {
	return base58.CheckEncode([]byte{version}, hashutil.Hash160(pubKey))
}

// FromPayload returns the address of an already-hashed payload under the
// given version byte.
func FromPayload(payload []byte, version byte) string {
	return base58.CheckEncode([]byte{version}, payload)
}

// Validate reports whether addr is a well-formed address with a valid
// checksum. The error, if any, is one of the base58 package errors.
func Validate(addr string) error {
	_, _, err := base58.CheckDecode(addr, versionLen)
	return err
}

// Version returns the version byte of addr.
func Version(addr string) (byte, error) {
	prefix, _, err := base58.CheckDecode(addr, versionLen)
	if err != nil {
		return 0, err
	}

	return prefix[0], nil
}

// Payload returns the payload bytes of addr, the hash160 for P2PKH
// addresses.
func Payload(addr string) ([]byte, error) {
	_, payload, err := base58.CheckDecode(addr, versionLen)
	if err != nil {
		return nil, err
	}

	return payload, nil
}

// PayloadHex returns the hex-encoded payload of addr.
func PayloadHex(addr string) (string, error) {
	payload, err := Payload(addr)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(payload), nil
}
