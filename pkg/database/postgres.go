package database

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the subset of pgx executed inside a managed connection
// scope. Both *pgxpool.Conn (reads) and pgx.Tx (writes) satisfy it, so
// repositories never see the pool itself.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DB owns the connection pool and scopes every operation: one checkout
// per call, bounded by the statement timeout, always released.
type DB struct {
	pool        *pgxpool.Pool
	stmtTimeout time.Duration
}

func NewPostgresConnection(connString string, stmtTimeout time.Duration) (*DB, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, err
	}

	// Fix for PgBouncer transaction mode
	// Prevents "prepared statement already exists" errors
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	config.MaxConns = 25
	config.MinConns = 5
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(context.Background()); err != nil {
		return nil, err
	}

	if stmtTimeout <= 0 {
		stmtTimeout = 10 * time.Second
	}

	log.Println("Database connection established successfully")
	return &DB{pool: pool, stmtTimeout: stmtTimeout}, nil
}

func (db *DB) Close() {
	db.pool.Close()
}

func (db *DB) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

// Read acquires a connection, runs fn and releases the connection on
// every exit path. No transaction is opened: reads have no commit or
// rollback side effects.
func (db *DB) Read(ctx context.Context, fn func(ctx context.Context, q Querier) error) error {
	ctx, cancel := context.WithTimeout(ctx, db.stmtTimeout)
	defer cancel()

	conn, err := db.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	return fn(ctx, conn)
}

// Write runs fn inside a transaction: commit when fn returns nil,
// rollback otherwise. The deferred rollback is a no-op after commit,
// so the connection is returned to the pool on every path.
func (db *DB) Write(ctx context.Context, fn func(ctx context.Context, q Querier) error) error {
	ctx, cancel := context.WithTimeout(ctx, db.stmtTimeout)
	defer cancel()

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := fn(ctx, tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
