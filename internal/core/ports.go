package core

import (
	"context"
	"eoexstore/internal/repository"
	tokenIssuer "eoexstore/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name UserRepository . UserRepository
type UserRepository interface {
	CreateUser(ctx context.Context, user *repository.User) error
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	UpdateUserRole(ctx context.Context, id uint64, role string) (repository.User, error)
}

//counterfeiter:generate -o fake -fake-name AppRepository . AppRepository
type AppRepository interface {
	CreateApp(ctx context.Context, app *repository.App) error
	GetApp(ctx context.Context, id uint64) (repository.App, error)
	ListApps(ctx context.Context, q repository.AppQuery) ([]repository.App, error)
	IncrementDownloads(ctx context.Context, id uint64) (repository.App, error)
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}
