package repository

import (
	"context"
	"eoexstore/internal/db"
	"errors"
	"fmt"
)

var (
	ErrUserNotFound  error = errors.New("user not found")
	ErrAppNotFound   error = errors.New("app not found")
	ErrUsernameTaken error = errors.New("username already taken")
	ErrTimeout       error = errors.New("storage timeout")
	ErrStorage       error = errors.New("storage failure")
)

type UserRepository struct {
	db Storage
}

func NewUserRepository(db Storage) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *User) error {
	err := r.db.Insert(ctx, user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("create user: %w", storageError(err))
	}

	return nil
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", storageError(err))
	}

	return user, nil
}

func (r *UserRepository) UpdateUserRole(ctx context.Context, id uint64, role string) (User, error) {
	var user User

	err := r.db.SetColumn(ctx, &user, id, "role", role)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("update user role: %w", storageError(err))
	}

	return user, nil
}

type AppRepository struct {
	db Storage
}

func NewAppRepository(db Storage) *AppRepository {
	return &AppRepository{
		db: db,
	}
}

func (r *AppRepository) CreateApp(ctx context.Context, app *App) error {
	err := r.db.Insert(ctx, app)
	if err != nil {
		return fmt.Errorf("create app: %w", storageError(err))
	}

	return nil
}

func (r *AppRepository) GetApp(ctx context.Context, id uint64) (App, error) {
	var app App

	err := r.db.GetOneBy(ctx, "id", id, &app)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return App{}, ErrAppNotFound
		}
		return App{}, fmt.Errorf("get app: %w", storageError(err))
	}

	return app, nil
}

func (r *AppRepository) ListApps(ctx context.Context, q AppQuery) ([]App, error) {
	apps := []App{}

	err := r.db.Find(ctx, toDBQuery(q), &apps)
	if err != nil {
		return apps, fmt.Errorf("list apps: %w", storageError(err))
	}

	return apps, nil
}

// IncrementDownloads bumps the counter in storage and returns the updated row.
func (r *AppRepository) IncrementDownloads(ctx context.Context, id uint64) (App, error) {
	var app App

	err := r.db.Increment(ctx, &app, id, "downloads", 1)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return App{}, ErrAppNotFound
		}
		return App{}, fmt.Errorf("increment downloads: %w", storageError(err))
	}

	return app, nil
}

func toDBQuery(q AppQuery) db.Query {
	query := db.Query{
		Limit:  q.Limit,
		Offset: q.Offset,
	}

	if q.Search != "" {
		query.Where = append(query.Where, db.Condition{Column: "name", Op: db.OpSubstr, Value: q.Search})
	}
	if q.Vendor != "" {
		query.Where = append(query.Where, db.Condition{Column: "vendor", Op: db.OpEq, Value: q.Vendor})
	}
	if q.TargetPlatform != "" {
		query.Where = append(query.Where, db.Condition{Column: "target_platform", Op: db.OpEq, Value: q.TargetPlatform})
	}
	if q.AfterID > 0 {
		query.Where = append(query.Where, db.Condition{Column: "id", Op: db.OpGt, Value: q.AfterID})
	}

	column, ok := sortColumns[q.Sort]
	if !ok {
		column = sortColumns[SortByID]
	}
	query.OrderBy = append(query.OrderBy, db.Order{Column: column, Desc: q.Desc})
	if column != sortColumns[SortByID] {
		query.OrderBy = append(query.OrderBy, db.Order{Column: "id"})
	}

	return query
}

// storageError hides driver details behind ErrTimeout or ErrStorage while keeping the
// original text for logs.
func storageError(err error) error {
	if errors.Is(err, db.ErrTimeout) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %w", ErrStorage, err)
}
