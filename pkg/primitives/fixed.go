package primitives

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// copyExact copies src into dst, which is the backing array of a fixed-width value.
func copyExact(dst, src []byte) error {
	if len(src) != len(dst) {
		return fmt.Errorf("%w: want %d bytes, got %d", ErrLengthMismatch, len(dst), len(src))
	}
	copy(dst, src)
	return nil
}

// decodeHexExact decodes s into dst. The 0x prefix is optional and case is ignored.
func decodeHexExact(dst []byte, s string) error {
	if !has0xPrefix(s) {
		s = "0x" + s
	}

	b, err := hexutil.Decode(s)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidHex, err)
	}

	if len(b) != len(dst) {
		return fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidHex, len(dst), len(b))
	}
	copy(dst, b)
	return nil
}

func has0xPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
