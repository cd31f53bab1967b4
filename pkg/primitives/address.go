package primitives

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

const AddressLength = common.AddressLength

// Address is a 20-byte account identifier. It is stored as the raw bytes and
// rendered as 0x-prefixed lowercase hex.
type Address [AddressLength]byte

// AddressFromBytes decodes the storage form of an address. The input must be exactly 20 bytes long.
func AddressFromBytes(b []byte) (Address, error) {
	var a Address
	if err := copyExact(a[:], b); err != nil {
		return Address{}, fmt.Errorf("address: %w", err)
	}
	return a, nil
}

// HexToAddress parses hex text with or without the 0x prefix, in any case.
func HexToAddress(s string) (Address, error) {
	var a Address
	if err := decodeHexExact(a[:], s); err != nil {
		return Address{}, fmt.Errorf("address %q: %w", s, err)
	}
	return a, nil
}

// ParseChecksummedAddress is HexToAddress that additionally rejects mixed-case
// input whose casing is not the EIP-55 checksum of the address.
func ParseChecksummedAddress(s string) (Address, error) {
	a, err := HexToAddress(s)
	if err != nil {
		return Address{}, err
	}

	digits := s
	if has0xPrefix(digits) {
		digits = digits[2:]
	}
	if digits == strings.ToLower(digits) || digits == strings.ToUpper(digits) {
		return a, nil
	}

	if a.ChecksumHex()[2:] != digits {
		return Address{}, fmt.Errorf("address %q: %w", s, ErrInvalidChecksum)
	}
	return a, nil
}

func AddressFromCommon(a common.Address) Address {
	return Address(a)
}

func (a Address) Common() common.Address {
	return common.Address(a)
}

// Bytes returns the storage form of the address.
func (a Address) Bytes() []byte {
	return a[:]
}

func (a Address) Hex() string {
	return hexutil.Encode(a[:])
}

// ChecksumHex returns the EIP-55 mixed-case form.
func (a Address) ChecksumHex() string {
	return common.Address(a).Hex()
}

func (a Address) String() string {
	return a.Hex()
}

func (a Address) IsZero() bool {
	return a == Address{}
}

func (a Address) Compare(other Address) int {
	return bytes.Compare(a[:], other[:])
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.Hex()), nil
}

func (a *Address) UnmarshalText(input []byte) error {
	parsed, err := HexToAddress(string(input))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
