package byteutil

// ReverseBytes reverses the given bytes
func ReverseBytes(raw []byte) []byte {
	if len(raw) == 0 {
		return raw
	}

	reversed := make([]byte, len(raw))

	for i := len(raw) - 1; i >= 0; i-- {
		reversed[len(raw)-i-1] = raw[i]
	}

	return reversed
}

// CountLeadingZeros returns the number of consecutive zero-valued bytes at
// the start of raw. An all-zero input counts every byte.
func CountLeadingZeros(raw []byte) int {
	n := 0
	for n < len(raw) && raw[n] == 0x00 {
		n++
	}

	return n
}

// Concat returns a followed by b in freshly allocated storage, so appending
// to the result never writes into either input's backing array.
func Concat(a, b []byte) []byte {
	joined := make([]byte, 0, len(a)+len(b))
	joined = append(joined, a...)
	joined = append(joined, b...)

	return joined
}
