// Package credstore persists the remembered login/password pair in a local
// SQLite database so a session can be restored silently after a restart.
package credstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/skywhysales/skyclient/internal/client/credstore/migrations"
	"github.com/skywhysales/skyclient/internal/client/models"
)

// credentialKey is the single metadata key the credential lives under.
const credentialKey = "credential"

// Store is the durable credential cache.
//
// Load returns (nil, nil) when no credential is remembered. Save is a plain
// upsert; the write-once-per-login policy is enforced by the session store,
// which checks presence before saving.
type Store interface {
	Load(ctx context.Context) (*models.Credential, error)
	Save(ctx context.Context, cred models.Credential) error
	Delete(ctx context.Context) error
}

// SQLiteStore keeps the credential in a key/value table.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

// Open opens (creating if needed) the credential database at dsn and brings
// its schema up to date.
func Open(ctx context.Context, dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open credential db: %w", err)
	}
	if err := runMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate credential db: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

func (s *SQLiteStore) Load(ctx context.Context) (*models.Credential, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM metadata WHERE key = ?`, credentialKey,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load credential: %w", err)
	}

	var cred models.Credential
	if err := json.Unmarshal(value, &cred); err != nil {
		return nil, fmt.Errorf("decode credential: %w", err)
	}
	return &cred, nil
}

func (s *SQLiteStore) Save(ctx context.Context, cred models.Credential) error {
	value, err := json.Marshal(cred)
	if err != nil {
		return fmt.Errorf("encode credential: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, credentialKey, value)
	if err != nil {
		return fmt.Errorf("save credential: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM metadata WHERE key = ?`, credentialKey)
	if err != nil {
		return fmt.Errorf("delete credential: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
