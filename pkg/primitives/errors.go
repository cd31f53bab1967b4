package primitives

import "errors"

var (
	ErrLengthMismatch  error = errors.New("length mismatch")
	ErrInvalidHex      error = errors.New("invalid hex")
	ErrInvalidChecksum error = errors.New("invalid checksum")
	ErrInvalidDecimal  error = errors.New("invalid decimal")
	ErrOverflow        error = errors.New("value exceeds 256 bits")
	ErrNegative        error = errors.New("negative value")
	ErrFractionalValue error = errors.New("fractional value")
	ErrNilValue        error = errors.New("nil value")
)
