package databases

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	_ "modernc.org/sqlite"             // pure go sqlite driver
)

type sqlDialect struct {
	driver string
	ddl    string
	get    string
	put    string
}

var sqliteDialect = sqlDialect{
	driver: "sqlite",
	ddl: `CREATE TABLE IF NOT EXISTS state (
		bucket TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`,
	get: `SELECT payload FROM state WHERE bucket = ?`,
	put: `INSERT INTO state(bucket,payload) VALUES(?,?) ON CONFLICT(bucket) DO UPDATE SET payload=excluded.payload`,
}

var postgresDialect = sqlDialect{
	driver: "pgx",
	ddl: `CREATE TABLE IF NOT EXISTS state (
		bucket TEXT PRIMARY KEY,
		payload BYTEA NOT NULL
	)`,
	get: `SELECT payload FROM state WHERE bucket = $1`,
	put: `INSERT INTO state(bucket,payload) VALUES($1,$2) ON CONFLICT(bucket) DO UPDATE SET payload=excluded.payload`,
}

// SQLStore persists blobs in a single "state" table, one row per key
type SQLStore struct {
	db      *sql.DB
	dialect sqlDialect
}

// NewSQLiteStore opens (or creates) the sqlite file at path
func NewSQLiteStore(ctx context.Context, path string) (*SQLStore, error) {
	if path == "" {
		path = "records.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open(sqliteDialect.driver, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	return newSQLStore(ctx, db, sqliteDialect)
}

// NewPostgresStore connects to the database at dsn
func NewPostgresStore(ctx context.Context, dsn string) (*SQLStore, error) {
	db, err := sql.Open(postgresDialect.driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return newSQLStore(ctx, db, postgresDialect)
}

func newSQLStore(ctx context.Context, db *sql.DB, d sqlDialect) (*SQLStore, error) {
	if _, err := db.ExecContext(ctx, d.ddl); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create state table: %w", err)
	}
	return &SQLStore{db: db, dialect: d}, nil
}

// Get implements KeyValueStore
func (s *SQLStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, s.dialect.get, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("select state: %w", err)
	}
	return payload, true, nil
}

// Put implements KeyValueStore
func (s *SQLStore) Put(ctx context.Context, key string, value []byte) error {
	if _, err := s.db.ExecContext(ctx, s.dialect.put, key, value); err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

// DB exposes the underlying sql.DB for tests
func (s *SQLStore) DB() *sql.DB { return s.db }

// Close closes the database handle
func (s *SQLStore) Close() error { return s.db.Close() }
