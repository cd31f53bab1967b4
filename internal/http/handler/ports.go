package handler

import (
	"context"
	"net/http"

	"ethstore/internal/core"
	"ethstore/internal/model"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RecordService . RecordService
type RecordService interface {
	SaveRecord(ctx context.Context, record model.Record) (int64, error)
	GetAllRecords(ctx context.Context) ([]model.Record, error)
}

//counterfeiter:generate -o fake -fake-name Authenticator . Authenticator
type Authenticator interface {
	Authenticate(msg core.AuthMessage) (string, error)
	Authorize(token string) error
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
