package sql

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/sitecloner/pkg/domain/interfaces"
	"github.com/m-mizutani/sitecloner/pkg/domain/types"
	"github.com/m-mizutani/sitecloner/pkg/repository"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"

	DefaultTable = "sitecloner_kv"
)

var tableNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// KVStore keeps key-value pairs in one table of PostgreSQL or SQLite.
type KVStore struct {
	db    *sqlx.DB
	table string
}

var _ interfaces.KVStore = (*KVStore)(nil)

type Option func(*KVStore)

func WithTable(name string) Option {
	return func(x *KVStore) {
		x.table = name
	}
}

// Open connects to the database and creates the table when missing.
func Open(ctx context.Context, driver, dsn string, options ...Option) (*KVStore, error) {
	switch driver {
	case DriverPostgres, DriverSQLite:
	default:
		return nil, goerr.Wrap(types.ErrInvalidOption, "unsupported SQL driver", goerr.V("driver", driver))
	}

	db, err := sqlx.ConnectContext(ctx, driver, dsn)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to connect database", goerr.V("driver", driver))
	}
	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	}

	store, err := New(db, options...)
	if err != nil {
		return nil, err
	}
	if err := store.Migrate(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

// New wraps an established connection. Migrate is not called.
func New(db *sqlx.DB, options ...Option) (*KVStore, error) {
	store := &KVStore{
		db:    db,
		table: DefaultTable,
	}
	for _, opt := range options {
		opt(store)
	}

	if !tableNamePattern.MatchString(store.table) {
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid table name", goerr.V("table", store.table))
	}
	return store, nil
}

func (x *KVStore) Close() error {
	return x.db.Close()
}

func (x *KVStore) Migrate(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS ` + x.table + ` (
	id TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL
)`
	if _, err := x.db.ExecContext(ctx, query); err != nil {
		return goerr.Wrap(err, "failed to create table", goerr.V("table", x.table))
	}
	return nil
}

func (x *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := repository.ValidateKey(key); err != nil {
		return nil, err
	}

	var value string
	query := x.db.Rebind(`SELECT value FROM ` + x.table + ` WHERE id = ?`)
	if err := x.db.GetContext(ctx, &value, query, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to select value",
			goerr.V("table", x.table),
			goerr.V("key", key),
		)
	}

	return []byte(value), nil
}

func (x *KVStore) Put(ctx context.Context, key string, value []byte) error {
	if err := repository.ValidateKey(key); err != nil {
		return err
	}

	query := x.db.Rebind(`INSERT INTO ` + x.table + ` (id, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT (id) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`)
	if _, err := x.db.ExecContext(ctx, query, key, string(value), time.Now().UTC()); err != nil {
		return goerr.Wrap(err, "failed to upsert value",
			goerr.V("table", x.table),
			goerr.V("key", key),
		)
	}

	return nil
}
