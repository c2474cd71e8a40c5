package server

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

type adminDoc struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
}

type adminSessionDoc struct {
	ID      string `json:"id"`
	AdminID string `json:"adminId"`
	Email   string `json:"email"`
	Created string `json:"created"`
}

type adminSession struct {
	AdminID string
	Email   string
}

// AdminStore holds the operator account and its login sessions, in the
// same JSONB-document shape as the game store.
type AdminStore struct {
	db *sql.DB
}

func NewAdminStore(ctx context.Context, db *sql.DB) (*AdminStore, error) {
	for _, ddl := range []string{
		`CREATE TABLE IF NOT EXISTS admins (
			id    TEXT PRIMARY KEY,
			email TEXT UNIQUE NOT NULL,
			data  JSONB NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS admin_sessions (
			id   TEXT PRIMARY KEY,
			data JSONB NOT NULL
		)`,
	} {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return nil, fmt.Errorf("creating table: %w", err)
		}
	}
	return &AdminStore{db: db}, nil
}

// EnsureAdmin bootstraps the configured operator account. Idempotent:
// an existing row for the email is left untouched, so a password
// change in the environment only applies to fresh databases.
func (s *AdminStore) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	var n int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM admins WHERE email = ?`, email,
	).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	doc := adminDoc{ID: newID(), Email: email, PasswordHash: string(hash)}
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO admins (id, email, data) VALUES (?, ?, jsonb(?))`,
		doc.ID, doc.Email, string(data),
	)
	return err
}

// Login verifies the password and opens a session, returning its ID.
func (s *AdminStore) Login(ctx context.Context, email, password string) (string, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT json(data) FROM admins WHERE email = ?`, email,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}

	var a adminDoc
	if err := json.Unmarshal([]byte(data), &a); err != nil {
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return "", ErrNotFound
	}

	sess := adminSessionDoc{ID: newID(), AdminID: a.ID, Email: a.Email, Created: nowUTC()}
	sessData, err := json.Marshal(sess)
	if err != nil {
		return "", err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO admin_sessions (id, data) VALUES (?, jsonb(?))`,
		sess.ID, string(sessData),
	)
	if err != nil {
		return "", err
	}
	return sess.ID, nil
}

// Logout drops a session. Unknown IDs are fine.
func (s *AdminStore) Logout(ctx context.Context, sessionID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM admin_sessions WHERE id = ?`, sessionID)
	return err
}

// FromSession resolves a session cookie value to the logged-in admin.
func (s *AdminStore) FromSession(ctx context.Context, sessionID string) (adminSession, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT json(data) FROM admin_sessions WHERE id = ?`, sessionID,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return adminSession{}, ErrNotFound
	}
	if err != nil {
		return adminSession{}, err
	}

	var doc adminSessionDoc
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return adminSession{}, err
	}
	return adminSession{AdminID: doc.AdminID, Email: doc.Email}, nil
}
