package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"ethstore/pkg/primitives"

	"github.com/jellydator/validation"
)

// Record is one observation keyed by (Address, U256). Binary fields serialize as
// 0x-prefixed lowercase hex, amounts as base-10 strings and absent optional
// fields as null.
type Record struct {
	Address         primitives.Address  `json:"address"`
	U256            primitives.Uint256  `json:"u256"`
	BlockNumber     int64               `json:"block_number"`
	TxHash          primitives.Bytes32  `json:"tx_hash"`
	OptionalAddress *primitives.Address `json:"optional_address"`
	OptionalU256    *primitives.Uint256 `json:"optional_u256"`
}

var ErrMissingField error = errors.New("missing required field")

// UnmarshalJSON decodes the external form. address, u256, block_number and tx_hash
// must be present and non-null; unknown keys are rejected.
func (r *Record) UnmarshalJSON(data []byte) error {
	var wire struct {
		Address         *primitives.Address `json:"address"`
		U256            *primitives.Uint256 `json:"u256"`
		BlockNumber     *int64              `json:"block_number"`
		TxHash          *primitives.Bytes32 `json:"tx_hash"`
		OptionalAddress *primitives.Address `json:"optional_address"`
		OptionalU256    *primitives.Uint256 `json:"optional_u256"`
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&wire); err != nil {
		return err
	}

	switch {
	case wire.Address == nil:
		return fmt.Errorf("%w: address", ErrMissingField)
	case wire.U256 == nil:
		return fmt.Errorf("%w: u256", ErrMissingField)
	case wire.BlockNumber == nil:
		return fmt.Errorf("%w: block_number", ErrMissingField)
	case wire.TxHash == nil:
		return fmt.Errorf("%w: tx_hash", ErrMissingField)
	}

	*r = Record{
		Address:         *wire.Address,
		U256:            *wire.U256,
		BlockNumber:     *wire.BlockNumber,
		TxHash:          *wire.TxHash,
		OptionalAddress: wire.OptionalAddress,
		OptionalU256:    wire.OptionalU256,
	}
	return nil
}

// Key identifies the stored row a record upserts into.
type Key struct {
	Address primitives.Address
	U256    primitives.Uint256
}

func (r Record) Key() Key {
	return Key{Address: r.Address, U256: r.U256}
}

func (r Record) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.BlockNumber, validation.Min(int64(0))),
	)
}
