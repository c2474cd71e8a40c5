package server

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/obvius1/Location-Search-Game/internal/game"
)

// gameDoc is the persisted form of one game: the replayable snapshot
// plus bookkeeping that never affects play.
type gameDoc struct {
	ID        string        `json:"id"`
	CreatedAt string        `json:"createdAt"`
	Snapshot  game.Snapshot `json:"snapshot"`
}

// DocStore implements Store with a JSONB data column per row. SQLite's
// json functions keep the document queryable without a relational
// schema for state that is already one coherent blob.
type DocStore struct {
	db *sql.DB
}

func NewDocStore(ctx context.Context, db *sql.DB) (*DocStore, error) {
	ddl := `CREATE TABLE IF NOT EXISTS games (
		id   TEXT PRIMARY KEY,
		data JSONB NOT NULL
	)`
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return nil, fmt.Errorf("creating games table: %w", err)
	}
	return &DocStore{db: db}, nil
}

func (s *DocStore) CreateGame(ctx context.Context, id string, snap game.Snapshot) error {
	doc := gameDoc{ID: id, CreatedAt: nowUTC(), Snapshot: snap}
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO games (id, data) VALUES (?, jsonb(?))`,
		id, string(data),
	)
	return err
}

func (s *DocStore) GetGame(ctx context.Context, id string) (game.Snapshot, error) {
	doc, err := s.getDoc(ctx, id)
	if err != nil {
		return game.Snapshot{}, err
	}
	return doc.Snapshot, nil
}

func (s *DocStore) PutGame(ctx context.Context, id string, snap game.Snapshot) error {
	doc, err := s.getDoc(ctx, id)
	if err != nil {
		return err
	}
	doc.Snapshot = snap
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`UPDATE games SET data = jsonb(?) WHERE id = ?`,
		string(data), id,
	)
	return err
}

func (s *DocStore) DeleteGame(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM games WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *DocStore) ListGames(ctx context.Context) ([]GameSummary, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT json(data) FROM games ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []GameSummary{}
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var doc gameDoc
		if err := json.Unmarshal([]byte(data), &doc); err != nil {
			return nil, err
		}
		summaries = append(summaries, GameSummary{
			ID:        doc.ID,
			Seed:      doc.Snapshot.Seed,
			CreatedAt: doc.CreatedAt,
			Revision:  doc.Snapshot.Revision,
			Answered:  len(doc.Snapshot.Records),
		})
	}
	return summaries, rows.Err()
}

func (s *DocStore) getDoc(ctx context.Context, id string) (gameDoc, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT json(data) FROM games WHERE id = ?`, id,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return gameDoc{}, ErrNotFound
	}
	if err != nil {
		return gameDoc{}, err
	}
	var doc gameDoc
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return gameDoc{}, err
	}
	return doc, nil
}

func newID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}

func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
