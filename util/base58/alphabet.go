package base58

// Alphabet is the 58-character alphabet used by this package. Index equals
// symbol value. The digit 0, uppercase I and O, and lowercase l are excluded
// to avoid visual ambiguity.
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

const radix = 58

var (
	digits [radix]byte
	values [128]int8
)

func init() {
	if len(Alphabet) != radix {
		panic("base58: alphabet must contain exactly 58 characters")
	}

	for i := range values {
		values[i] = -1
	}

	for i := 0; i < len(Alphabet); i++ {
		c := Alphabet[i]
		if c >= 0x80 {
			panic("base58: alphabet must be ASCII")
		}
		if values[c] >= 0 {
			panic("base58: duplicate character in alphabet")
		}

		digits[i] = c
		values[c] = int8(i)
	}
}

// valueOf returns the numeric value of c, or -1 if c is not in the alphabet.
func valueOf(c byte) int8 {
	if c >= 0x80 {
		return -1
	}
	return values[c]
}
