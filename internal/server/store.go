package server

import (
	"context"
	"errors"

	"github.com/obvius1/Location-Search-Game/internal/game"
)

var ErrNotFound = errors.New("not found")

// GameSummary is the admin-facing listing row.
type GameSummary struct {
	ID        string `json:"id"`
	Seed      string `json:"seed"`
	CreatedAt string `json:"createdAt"`
	Revision  int    `json:"revision"`
	Answered  int    `json:"answered"`
}

// Store persists game snapshots keyed by game ID.
type Store interface {
	CreateGame(ctx context.Context, id string, snap game.Snapshot) error
	GetGame(ctx context.Context, id string) (game.Snapshot, error)
	PutGame(ctx context.Context, id string, snap game.Snapshot) error
	DeleteGame(ctx context.Context, id string) error
	ListGames(ctx context.Context) ([]GameSummary, error)
}
