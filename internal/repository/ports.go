package repository

import (
	"context"
	"eoexstore/internal/db"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	Insert(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	Find(ctx context.Context, q db.Query, entities any) error
	Increment(ctx context.Context, entity any, id any, column string, delta int64) error
	SetColumn(ctx context.Context, entity any, id any, column string, value any) error
}
