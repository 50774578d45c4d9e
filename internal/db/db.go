package db

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"eoexstore/internal/db/migrations"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
	ErrTimeout   = errors.New("database operation timed out")
)

// postgres error codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	uniqueViolation = "23505"
	queryCanceled   = "57014"
)

const (
	maxOpenConns    = 50
	maxIdleConns    = 10
	connMaxLifetime = 30 * time.Minute
)

// PostgresDB runs single-statement gorm operations, each bounded by the configured timeout.
type PostgresDB struct {
	DB      *gorm.DB
	timeout time.Duration
}

func NewPostgresDB(dsn string, timeout time.Duration) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Warn),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("get sql db conn: %w", err)
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)

	return New(db, timeout), nil
}

// New wraps an already opened gorm handle.
func New(db *gorm.DB, timeout time.Duration) *PostgresDB {
	return &PostgresDB{
		DB:      db,
		timeout: timeout,
	}
}

// Migrate applies the embedded goose migrations.
func (p *PostgresDB) Migrate(ctx context.Context, logs *zap.SugaredLogger) error {
	sqlDB, err := p.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(gooseLogger{logs})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set migration dialect: %w", err)
	}

	if err := goose.UpContext(ctx, sqlDB, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}

func (p *PostgresDB) Close() error {
	sqlDB, err := p.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	return sqlDB.Close()
}

// Insert creates record and fills its generated columns.
func (p *PostgresDB) Insert(ctx context.Context, record any) error {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	if err := p.DB.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("insert to table: %w", classify(ctx, err))
	}

	return nil
}

func (p *PostgresDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	err := p.DB.WithContext(ctx).
		Where(clause.Eq{Column: clause.Column{Name: column}, Value: value}).
		First(entity).Error
	if err != nil {
		err = classify(ctx, err)
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

// Find loads every row matching q into entities, which must be a pointer to a slice.
func (p *PostgresDB) Find(ctx context.Context, q Query, entities any) error {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	tx := p.DB.WithContext(ctx)
	for _, cond := range q.Where {
		expr, err := cond.expression()
		if err != nil {
			return err
		}
		tx = tx.Where(expr)
	}
	for _, o := range q.OrderBy {
		tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: o.Column}, Desc: o.Desc})
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}
	if q.Offset > 0 {
		tx = tx.Offset(q.Offset)
	}

	if err := tx.Find(entities).Error; err != nil {
		return fmt.Errorf("find records: %w", classify(ctx, err))
	}
	return nil
}

// Increment adds delta to column of the row with primary key id in one UPDATE ... RETURNING
// statement and scans the updated row into entity.
func (p *PostgresDB) Increment(ctx context.Context, entity any, id any, column string, delta int64) error {
	return p.updateReturning(ctx, entity, id, column,
		gorm.Expr("? + ?", clause.Column{Name: column}, delta))
}

// SetColumn overwrites column of the row with primary key id and scans the updated row into entity.
func (p *PostgresDB) SetColumn(ctx context.Context, entity any, id any, column string, value any) error {
	return p.updateReturning(ctx, entity, id, column, value)
}

func (p *PostgresDB) updateReturning(ctx context.Context, entity any, id any, column string, value any) error {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	tx := p.DB.WithContext(ctx).
		Model(entity).
		Clauses(clause.Returning{}).
		Where(clause.Eq{Column: clause.PrimaryColumn, Value: id}).
		UpdateColumn(column, value)
	if tx.Error != nil {
		return fmt.Errorf("update %q: %w", column, classify(ctx, tx.Error))
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (p *PostgresDB) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, p.timeout)
}

func classify(ctx context.Context, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %w", ErrDuplicate, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return fmt.Errorf("%w: %s", ErrDuplicate, pgErr.ConstraintName)
		case queryCanceled:
			return fmt.Errorf("%w: %w", ErrTimeout, err)
		}
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}

	return err
}

type gooseLogger struct {
	*zap.SugaredLogger
}

func (l gooseLogger) Printf(format string, v ...any) {
	l.Infof(strings.TrimSpace(format), v...)
}
