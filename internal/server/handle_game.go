package server

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/obvius1/Location-Search-Game/internal/exclusion"
	"github.com/obvius1/Location-Search-Game/internal/game"
	"github.com/obvius1/Location-Search-Game/internal/geo"
)

// CreateGameRequest is the request body for POST /api/games.
type CreateGameRequest struct {
	Seed string `json:"seed"`
}

// GameResponse is the full seeker-visible game state. The hider's
// confirmed point is deliberately absent.
type GameResponse struct {
	ID          string             `json:"id"`
	Seed        string             `json:"seed"`
	Revision    int                `json:"revision"`
	HasLocation bool               `json:"hasLocation"`
	Flop        []game.Card        `json:"flop"`
	Retired     []string           `json:"retired"`
	Answers     []exclusion.Record `json:"answers"`
}

func gameResponse(id string, s *game.Session) GameResponse {
	_, hasLoc := s.Location()
	return GameResponse{
		ID:          id,
		Seed:        s.Seed(),
		Revision:    s.Revision(),
		HasLocation: hasLoc,
		Flop:        s.Flop(),
		Retired:     s.Retired(),
		Answers:     s.Records(),
	}
}

// loadSession fetches the snapshot for the request's {gameID} and
// replays it into a live session.
func loadSession(r *http.Request, store Store, deck *game.Deck) (string, *game.Session, error) {
	id := chi.URLParam(r, "gameID")
	snap, err := store.GetGame(r.Context(), id)
	if err != nil {
		return id, nil, err
	}
	s, err := game.Restore(deck, snap)
	if err != nil {
		return id, nil, err
	}
	return id, s, nil
}

func handleCreateGame(store Store, deck *game.Deck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateGameRequest
		if err := readJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		seed := req.Seed
		if seed == "" {
			seed = game.NewSeed()
		}

		id := newID()
		s := game.NewSession(deck, seed, game.DefaultFlopSize)
		if err := store.CreateGame(r.Context(), id, s.Snapshot()); err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusCreated, gameResponse(id, s))
	}
}

func handleGetGame(store Store, deck *game.Deck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, s, err := loadSession(r, store, deck)
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "game not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, gameResponse(id, s))
	}
}

// handleResetGame restarts a game in place: same seed, fresh shuffle,
// no location, no answers. Confirmation dialogs are the client's job.
func handleResetGame(store Store, deck *game.Deck, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "gameID")
		snap, err := store.GetGame(r.Context(), id)
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "game not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		s := game.NewSession(deck, snap.Seed, snap.FlopSize)
		if err := store.PutGame(r.Context(), id, s.Snapshot()); err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		broker.Publish(id, Event{Type: "game_reset"})
		writeJSON(w, http.StatusOK, gameResponse(id, s))
	}
}

func validPoint(lat, lng float64) (geo.Point, bool) {
	p := geo.Point{Lat: lat, Lng: lng}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return p, false
	}
	return p, true
}
