package client

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// Session is the locally persisted login state of the client.
type Session struct {
	Email   string
	Token   string
	SavedAt time.Time
}

// SessionStore persists the bearer token between client invocations.
type SessionStore interface {
	// Save replaces any stored session with the given one.
	Save(ctx context.Context, session Session) error

	// Load returns the stored session or ErrNoSession when none exists.
	Load(ctx context.Context) (Session, error)

	// Clear removes the stored session. Clearing an empty store is not an
	// error.
	Clear(ctx context.Context) error

	// Close releases the underlying database handle.
	Close() error
}

const createSessionTable = `
	CREATE TABLE IF NOT EXISTS session (
		id       INTEGER PRIMARY KEY CHECK (id = 1),
		email    TEXT      NOT NULL,
		token    TEXT      NOT NULL,
		saved_at TIMESTAMP NOT NULL
	);`

const (
	saveSession = `
	INSERT INTO session (id, email, token, saved_at) VALUES (1, $1, $2, $3)
	ON CONFLICT (id) DO UPDATE SET email = $1, token = $2, saved_at = $3;`

	loadSession = `SELECT email, token, saved_at FROM session WHERE id = 1;`

	clearSession = `DELETE FROM session WHERE id = 1;`
)

type sqliteSessionStore struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewSessionStore opens (creating if needed) the SQLite session database at
// dbPath and ensures the session table exists.
func NewSessionStore(ctx context.Context, dbPath string, log *logger.Logger) (SessionStore, error) {
	if err := createLocalDBFileIfNotExists(dbPath); err != nil {
		log.Err(err).Str("path", dbPath).Msg("error creating session database file")
		return nil, fmt.Errorf("error creating session database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		log.Err(err).Str("path", dbPath).Msg("error opening session database")
		return nil, fmt.Errorf("error opening session database: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("path", dbPath).Msg("error pinging session database")
		return nil, err
	}

	if _, err = conn.ExecContext(ctx, createSessionTable); err != nil {
		log.Err(err).Msg("error creating session table")
		return nil, fmt.Errorf("error creating session table: %w", err)
	}

	return &sqliteSessionStore{db: conn, logger: log}, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(dbFile), 0o700); err != nil {
			return fmt.Errorf("error creating session directory: %w", err)
		}
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}

func (s *sqliteSessionStore) Save(ctx context.Context, session Session) error {
	if _, err := s.db.ExecContext(ctx, saveSession, session.Email, session.Token, session.SavedAt); err != nil {
		return fmt.Errorf("error saving session: %w", err)
	}
	return nil
}

func (s *sqliteSessionStore) Load(ctx context.Context) (Session, error) {
	var session Session

	row := s.db.QueryRowContext(ctx, loadSession)
	if err := row.Scan(&session.Email, &session.Token, &session.SavedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Session{}, ErrNoSession
		}
		return Session{}, fmt.Errorf("error loading session: %w", err)
	}

	return session, nil
}

func (s *sqliteSessionStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, clearSession); err != nil {
		return fmt.Errorf("error clearing session: %w", err)
	}
	return nil
}

func (s *sqliteSessionStore) Close() error {
	return s.db.Close()
}
