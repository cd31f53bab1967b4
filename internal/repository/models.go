package repository

import "github.com/shopspring/decimal"

// Row mirrors the types table column by column, holding values in their raw
// storage form. Nil byte slices and invalid NullDecimals are stored as NULL.
type Row struct {
	Address         []byte              `gorm:"column:address;type:bytea;primaryKey;autoIncrement:false"`
	U256            decimal.Decimal     `gorm:"column:u256;type:numeric;primaryKey;autoIncrement:false"`
	BlockNumber     int64               `gorm:"column:block_number;not null"`
	TxHash          []byte              `gorm:"column:tx_hash;type:bytea;not null"`
	OptionalAddress []byte              `gorm:"column:optional_address;type:bytea"`
	OptionalU256    decimal.NullDecimal `gorm:"column:optional_u256;type:numeric"`
}

func (Row) TableName() string {
	return "types"
}
