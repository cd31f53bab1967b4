package repository

import (
	"context"
	"errors"
	"fmt"

	"ethstore/internal/model"
	"ethstore/pkg/primitives"

	"github.com/shopspring/decimal"
)

var (
	ErrStorage error = errors.New("storage error")
	ErrDecode  error = errors.New("decode stored row")
)

// KeyColumns is the conflict target of Upsert.
var KeyColumns = []string{"address", "u256"}

type RecordRepository struct {
	db Storage
}

func NewRecordRepository(db Storage) *RecordRepository {
	return &RecordRepository{
		db: db,
	}
}

func (r *RecordRepository) Migrate(ctx context.Context) error {
	if err := r.db.MigrateModels(ctx, &Row{}); err != nil {
		return fmt.Errorf("migrate table(s): %w: %w", ErrStorage, err)
	}
	return nil
}

// Upsert stores record, replacing every non-key column of an existing row with
// the same address and u256.
func (r *RecordRepository) Upsert(ctx context.Context, record model.Record) (int64, error) {
	row := rowFromRecord(record)

	affected, err := r.db.Upsert(ctx, &row, KeyColumns...)
	if err != nil {
		return 0, fmt.Errorf("upsert record: %w: %w", ErrStorage, err)
	}

	return affected, nil
}

// ReadAll loads and decodes every stored row. A row that fails to decode fails the whole read.
func (r *RecordRepository) ReadAll(ctx context.Context) ([]model.Record, error) {
	rows := []Row{}
	if err := r.db.GetAll(ctx, &rows); err != nil {
		return nil, fmt.Errorf("read records: %w: %w", ErrStorage, err)
	}

	records := make([]model.Record, 0, len(rows))
	for i, row := range rows {
		record, err := recordFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("%w %d: %w", ErrDecode, i, err)
		}
		records = append(records, record)
	}

	return records, nil
}

func rowFromRecord(record model.Record) Row {
	row := Row{
		Address:     record.Address.Bytes(),
		U256:        record.U256.Decimal(),
		BlockNumber: record.BlockNumber,
		TxHash:      record.TxHash.Bytes(),
	}

	if record.OptionalAddress != nil {
		row.OptionalAddress = record.OptionalAddress.Bytes()
	}
	if record.OptionalU256 != nil {
		row.OptionalU256 = decimal.NewNullDecimal(record.OptionalU256.Decimal())
	}

	return row
}

func recordFromRow(row Row) (model.Record, error) {
	address, err := primitives.AddressFromBytes(row.Address)
	if err != nil {
		return model.Record{}, fmt.Errorf("column address: %w", err)
	}

	amount, err := primitives.Uint256FromDecimal(row.U256)
	if err != nil {
		return model.Record{}, fmt.Errorf("column u256: %w", err)
	}

	txHash, err := primitives.Bytes32FromBytes(row.TxHash)
	if err != nil {
		return model.Record{}, fmt.Errorf("column tx_hash: %w", err)
	}

	record := model.Record{
		Address:     address,
		U256:        amount,
		BlockNumber: row.BlockNumber,
		TxHash:      txHash,
	}

	if row.OptionalAddress != nil {
		optAddress, err := primitives.AddressFromBytes(row.OptionalAddress)
		if err != nil {
			return model.Record{}, fmt.Errorf("column optional_address: %w", err)
		}
		record.OptionalAddress = &optAddress
	}

	if row.OptionalU256.Valid {
		optAmount, err := primitives.Uint256FromDecimal(row.OptionalU256.Decimal)
		if err != nil {
			return model.Record{}, fmt.Errorf("column optional_u256: %w", err)
		}
		record.OptionalU256 = &optAmount
	}

	return record, nil
}
