package primitives

import (
	"bytes"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

const Bytes32Length = common.HashLength

// Bytes32 is a 32-byte value such as a transaction or block hash.
type Bytes32 [Bytes32Length]byte

func Bytes32FromBytes(b []byte) (Bytes32, error) {
	var h Bytes32
	if err := copyExact(h[:], b); err != nil {
		return Bytes32{}, fmt.Errorf("bytes32: %w", err)
	}
	return h, nil
}

func HexToBytes32(s string) (Bytes32, error) {
	var h Bytes32
	if err := decodeHexExact(h[:], s); err != nil {
		return Bytes32{}, fmt.Errorf("bytes32 %q: %w", s, err)
	}
	return h, nil
}

func Bytes32FromCommon(h common.Hash) Bytes32 {
	return Bytes32(h)
}

func (h Bytes32) Common() common.Hash {
	return common.Hash(h)
}

func (h Bytes32) Bytes() []byte {
	return h[:]
}

func (h Bytes32) Hex() string {
	return hexutil.Encode(h[:])
}

func (h Bytes32) String() string {
	return h.Hex()
}

func (h Bytes32) IsZero() bool {
	return h == Bytes32{}
}

func (h Bytes32) Compare(other Bytes32) int {
	return bytes.Compare(h[:], other[:])
}

func (h Bytes32) MarshalText() ([]byte, error) {
	return []byte(h.Hex()), nil
}

func (h *Bytes32) UnmarshalText(input []byte) error {
	parsed, err := HexToBytes32(string(input))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}
