package handler

import (
	"context"
	"eoexstore/internal/core"
	"net/http"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name UserService . UserService
type UserService interface {
	Register(ctx context.Context, msg core.AuthMessage) (uint64, error)
	Login(ctx context.Context, msg core.AuthMessage) (string, error)
	Authorize(ctx context.Context, token string, required core.Role) (core.Identity, error)
	SetRole(ctx context.Context, userID uint64, role core.Role) (core.UserRecord, error)
}

//counterfeiter:generate -o fake -fake-name CatalogService . CatalogService
type CatalogService interface {
	CreateApp(ctx context.Context, fields core.AppFields) (uint64, error)
	ListApps(ctx context.Context, filter core.AppFilter, page core.Page) ([]core.AppRecord, error)
	GetApp(ctx context.Context, id uint64) (core.AppRecord, error)
	RecordDownload(ctx context.Context, id uint64) (core.AppRecord, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}

// Counter is satisfied by prometheus.Counter.
type Counter interface {
	Inc()
}
