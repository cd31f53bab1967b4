package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// GormDB is the postgres-backed storage used by the repository layer.
type GormDB struct {
	DB *gorm.DB
}

func NewGormDB(dsn string, logLevel logger.LogLevel) (*GormDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return &GormDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &GormDB{
		DB: db,
	}, nil
}

func (f *GormDB) MigrateModels(ctx context.Context, models ...any) error {
	err := f.DB.WithContext(ctx).AutoMigrate(models...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// Upsert inserts record and, when a row with the same conflict columns exists,
// overwrites every other column of that row. It returns the number of rows affected.
func (f *GormDB) Upsert(ctx context.Context, record any, conflictColumns ...string) (int64, error) {
	if len(conflictColumns) == 0 {
		return 0, errors.New("upsert requires at least one conflict column")
	}

	columns := make([]clause.Column, 0, len(conflictColumns))
	for _, name := range conflictColumns {
		columns = append(columns, clause.Column{Name: name})
	}

	tx := f.DB.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: columns, UpdateAll: true}).
		Create(record)
	if tx.Error != nil {
		return 0, fmt.Errorf("upsert into table: %w", tx.Error)
	}

	return tx.RowsAffected, nil
}

func (f *GormDB) GetAll(ctx context.Context, entities any) error {
	if err := f.DB.WithContext(ctx).Find(entities).Error; err != nil {
		return fmt.Errorf("getting all records: %w", err)
	}
	return nil
}

func (f *GormDB) Close() error {
	sqlDB, err := f.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	return sqlDB.Close()
}
