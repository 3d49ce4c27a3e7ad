package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// Session is the locally persisted login state of the terminal client: the
// bearer token issued by the server plus the email it belongs to. It is the
// Go analogue of the browser localStorage the web client uses.
type Session struct {
	Email string
	Token string
}

// SessionStore persists the client session between runs.
type SessionStore interface {
	// Load returns the persisted session, or ErrLocalSessionNotFound if
	// the user has never logged in (or has logged out).
	Load(ctx context.Context) (Session, error)

	// Save stores the session, replacing any previous one.
	Save(ctx context.Context, s Session) error

	// Clear removes the persisted session. Logout is purely client-side
	// erasure; the server keeps no revocation list.
	Clear(ctx context.Context) error

	// Close releases the underlying database handle.
	Close() error
}

const createSessionTable = `CREATE TABLE IF NOT EXISTS session (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    email TEXT NOT NULL,
    token TEXT NOT NULL
);`

// sessionStore is the SQLite-backed [SessionStore]. The table holds at most
// one row.
type sessionStore struct {
	db *sql.DB
}

// NewSessionStore opens (creating if needed) the SQLite session database at
// path and ensures the schema exists.
func NewSessionStore(path string) (SessionStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create session store dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	if _, err = db.Exec(createSessionTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("init session store schema: %w", err)
	}

	return &sessionStore{db: db}, nil
}

func (s *sessionStore) Load(ctx context.Context) (Session, error) {
	var sess Session
	row := s.db.QueryRowContext(ctx, `SELECT email, token FROM session WHERE id = 1;`)
	if err := row.Scan(&sess.Email, &sess.Token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Session{}, ErrLocalSessionNotFound
		}
		return Session{}, fmt.Errorf("load session: %w", err)
	}

	return sess, nil
}

func (s *sessionStore) Save(ctx context.Context, sess Session) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO session (id, email, token) VALUES (1, ?, ?)
         ON CONFLICT (id) DO UPDATE SET email = excluded.email, token = excluded.token;`,
		sess.Email, sess.Token)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}

func (s *sessionStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM session WHERE id = 1;`); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	return nil
}

func (s *sessionStore) Close() error {
	return s.db.Close()
}
