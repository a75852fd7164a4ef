package postgres

import (
    "context"
    "embed"
    "errors"
    "fmt"
    "time"

    "github.com/jackc/pgx/v5"
    "github.com/jackc/pgx/v5/pgconn"
    "github.com/jackc/pgx/v5/pgxpool"
    "github.com/jackc/pgx/v5/stdlib"
    "github.com/pressly/goose/v3"

    "moderator/internal/domain"
    "moderator/internal/ports"
)

//go:embed migrations/*.sql
var migrations embed.FS

// querier is satisfied by both the pool and a transaction.
type querier interface {
    Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
    Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
    QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// store implements the repository ports over a querier.
type store struct {
    q querier
}

type DB struct {
    store
    Pool *pgxpool.Pool
}

var (
    _ ports.ContentRepository = (*DB)(nil)
    _ ports.SpamRepository    = (*DB)(nil)
    _ ports.AuthorRepository  = (*DB)(nil)
    _ ports.PendingStore      = (*DB)(nil)
    _ ports.Transactor        = (*DB)(nil)
)

func Connect(ctx context.Context, url string, maxConns int32) (*DB, error) {
    cfg, err := pgxpool.ParseConfig(url)
    if err != nil {
        return nil, err
    }
    if maxConns > 0 {
        cfg.MaxConns = maxConns
    }
    cfg.HealthCheckPeriod = 30 * time.Second
    pool, err := pgxpool.NewWithConfig(ctx, cfg)
    if err != nil {
        return nil, err
    }
    if err := pool.Ping(ctx); err != nil {
        pool.Close()
        return nil, err
    }
    return &DB{store: store{q: pool}, Pool: pool}, nil
}

func (db *DB) Close() { db.Pool.Close() }

// Migrate applies the embedded goose migrations.
func (db *DB) Migrate(ctx context.Context) error {
    sqlDB := stdlib.OpenDBFromPool(db.Pool)
    defer sqlDB.Close()
    goose.SetBaseFS(migrations)
    if err := goose.SetDialect("postgres"); err != nil {
        return err
    }
    if err := goose.UpContext(ctx, sqlDB, "migrations"); err != nil {
        return fmt.Errorf("migrate: %w", err)
    }
    return nil
}

// Stores returns the pool-bound repositories.
func (db *DB) Stores() ports.Stores {
    return ports.Stores{Content: db, Spam: db, Authors: db}
}

// InTx runs fn inside one transaction; fn's error or a panic rolls it back.
func (db *DB) InTx(ctx context.Context, fn func(ctx context.Context, s ports.Stores) error) (err error) {
    tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
    if err != nil { return err }
    defer func() {
        if p := recover(); p != nil {
            _ = tx.Rollback(ctx)
            panic(p)
        }
        if err != nil { _ = tx.Rollback(ctx) } else { err = tx.Commit(ctx) }
    }()
    st := &store{q: tx}
    return fn(ctx, ports.Stores{Content: st, Spam: st, Authors: st})
}

var ErrNotFound = domain.ErrNotFound

func notFound(err error) error {
    if errors.Is(err, pgx.ErrNoRows) {
        return ErrNotFound
    }
    return err
}
