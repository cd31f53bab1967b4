package core

import (
	"context"
	"errors"
	"fmt"

	"ethstore/internal/metrics"
	"ethstore/internal/model"
	"ethstore/internal/repository"

	"go.uber.org/zap"
)

var ErrInvalidRecord error = errors.New("invalid record")

// Recorder stores and lists records through the repository.
type Recorder struct {
	logs *zap.SugaredLogger
	repo Repository
}

func NewRecorder(logger *zap.SugaredLogger, repo Repository) *Recorder {
	return &Recorder{
		logs: logger,
		repo: repo,
	}
}

// SaveRecord validates and upserts a record, returning the number of rows affected.
func (r *Recorder) SaveRecord(ctx context.Context, record model.Record) (int64, error) {
	if err := record.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	affected, err := r.repo.Upsert(ctx, record)
	if err != nil {
		metrics.Errors.WithLabelValues("upsert", errorKind(err)).Inc()
		return 0, fmt.Errorf("upsert record: %w", err)
	}

	metrics.RecordsUpserted.Inc()
	r.logs.Infow("record upserted",
		"address", record.Address.Hex(),
		"u256", record.U256.String(),
		"block_number", record.BlockNumber,
		"affected", affected)

	return affected, nil
}

// GetAllRecords returns every stored record in storage order.
func (r *Recorder) GetAllRecords(ctx context.Context) ([]model.Record, error) {
	records, err := r.repo.ReadAll(ctx)
	if err != nil {
		metrics.Errors.WithLabelValues("read_all", errorKind(err)).Inc()
		return nil, fmt.Errorf("read all records: %w", err)
	}

	metrics.RecordsRead.Add(float64(len(records)))
	r.logs.Infow("records fetched from db", "count", len(records))

	return records, nil
}

func errorKind(err error) string {
	if errors.Is(err, repository.ErrDecode) {
		return "decode"
	}
	return "storage"
}
