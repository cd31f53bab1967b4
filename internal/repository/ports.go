package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateModels(ctx context.Context, models ...any) error
	Upsert(ctx context.Context, record any, conflictColumns ...string) (int64, error)
	GetAll(ctx context.Context, entities any) error
}
