package address

import (
	"encoding/hex"
	"testing"

	"base58check/util/base58"
)

func TestFromPublicKey(t *testing.T) {
	testCases := map[string]string{
		// Uncompressed and compressed forms of the same secp256k1 key.
		"0450863ad64a87ae8a2fe83c1af1a8403cb53f53e486d8511dad8a04887e5b23522cd470243453a299fa9e77237716103abc11a1df38855ed6f2ee187e9c582ba6": "16UwLL9Risc3QfPqBUvKofHmBQ7wMtjvM",
		"0250863ad64a87ae8a2fe83c1af1a8403cb53f53e486d8511dad8a04887e5b2352":                                                                 "1PMycacnJaSqwwJqjawXBErnLsZ7RkXUAs",
	}

	for pubKey, addr := range testCases {
		bytes, err := hex.DecodeString(pubKey)
		if err != nil {
			t.Fatal(err)
		}

		get := FromPublicKey(bytes, 0x00)
		if addr != get {
			t.Fatalf("Failed to get address from public key, get=%s, want=%s", get, addr)
		}
	}
}

func TestFromPayload(t *testing.T) {
	payload, err := hex.DecodeString("010966776006953d5567439e5e39f86a0d273bee")
	if err != nil {
		t.Fatal(err)
	}

	want := "16UwLL9Risc3QfPqBUvKofHmBQ7wMtjvM"
	get := FromPayload(payload, 0x00)
	if get != want {
		t.Fatalf("Get=%s, want=%s", get, want)
	}
}

func TestValidate(t *testing.T) {
	valid := []string{
		"16UwLL9Risc3QfPqBUvKofHmBQ7wMtjvM",
		"1PMycacnJaSqwwJqjawXBErnLsZ7RkXUAs",
	}

	for _, addr := range valid {
		if err := Validate(addr); err != nil {
			t.Fatalf("Validate(%s): Get error=%v, want=nil", addr, err)
		}
	}

	corrupted := "16UwLL9Risc3QfPqBUvKofHmBQ7wMtjvN"
	if err := Validate(corrupted); err != base58.ErrChecksum {
		t.Fatalf("Get error=%v, want=%v", err, base58.ErrChecksum)
	}

	if err := Validate("16UwLL9Risc3QfPqBUvK0fHmBQ7wMtjvM"); err == nil {
		t.Fatalf("Get error=nil, want an error")
	}

	if err := Validate("1111"); err != base58.ErrInvalidFormat {
		t.Fatalf("Get error=%v, want=%v", err, base58.ErrInvalidFormat)
	}
}

func TestVersion(t *testing.T) {
	get, err := Version("16UwLL9Risc3QfPqBUvKofHmBQ7wMtjvM")
	if err != nil {
		t.Fatal(err)
	}

	if get != 0x00 {
		t.Fatalf("Get=%#x, want=0", get)
	}
}

func TestPayloadHex(t *testing.T) {
	want := "010966776006953d5567439e5e39f86a0d273bee"
	get, err := PayloadHex("16UwLL9Risc3QfPqBUvKofHmBQ7wMtjvM")
	if err != nil {
		t.Fatal(err)
	}

	if get != want {
		t.Fatalf("Get=%s, want=%s", get, want)
	}
}
