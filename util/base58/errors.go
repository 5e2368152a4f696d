package base58

import (
	"errors"
	"fmt"
)

// ErrChecksum indicates that the checksum embedded in a check-encoded string
// does not match the checksum recomputed from its content.
var ErrChecksum = errors.New("invalid base-58 check string: invalid checksum")

// ErrInvalidFormat indicates that a check-encoded string decodes to fewer
// bytes than a version prefix plus checksum can occupy.
var ErrInvalidFormat = errors.New("invalid base-58 check string: missing version and/or checksum")

// InvalidCharacterError reports an input character outside the base58
// alphabet.
type InvalidCharacterError struct {
	Char byte
	Pos  int
}

func (e InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid base-58 character %q at position %d", e.Char, e.Pos)
}
