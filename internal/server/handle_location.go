package server

import (
	"errors"
	"net/http"

	"github.com/obvius1/Location-Search-Game/internal/dataset"
	"github.com/obvius1/Location-Search-Game/internal/game"
	"github.com/obvius1/Location-Search-Game/internal/predicate"
)

// LocationRequest is the request body for POST /api/games/{gameID}/location.
type LocationRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// LocationResponse confirms the point and previews how the active
// cards would answer at it.
type LocationResponse struct {
	DistanceM float64                     `json:"distanceM"`
	Revision  int                         `json:"revision"`
	Answers   map[string]predicate.Answer `json:"answers"`
}

// ZoneErrorResponse is returned with 422 when the point falls outside
// the play zone. Nothing is written in that case.
type ZoneErrorResponse struct {
	Error     string  `json:"error"`
	DistanceM float64 `json:"distanceM"`
	MaxM      float64 `json:"maxM"`
}

func handleConfirmLocation(store Store, deck *game.Deck, ds *dataset.Set) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LocationRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		p, ok := validPoint(req.Lat, req.Lng)
		if !ok {
			writeError(w, http.StatusBadRequest, "coordinates out of range")
			return
		}

		id, s, err := loadSession(r, store, deck)
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "game not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		inZone, dist := predicate.CheckZone(p, ds)
		if !inZone {
			writeJSON(w, http.StatusUnprocessableEntity, ZoneErrorResponse{
				Error:     "point is outside the play zone",
				DistanceM: dist,
				MaxM:      ds.RadiusM,
			})
			return
		}

		s.ConfirmLocation(p)
		if err := store.PutGame(r.Context(), id, s.Snapshot()); err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		answers := make(map[string]predicate.Answer)
		for _, c := range s.Flop() {
			if !c.RequiresAnswer {
				continue
			}
			answers[c.ID] = predicate.Evaluate(p, ds, c.AnswerType, c.Params)
		}

		writeJSON(w, http.StatusOK, LocationResponse{
			DistanceM: dist,
			Revision:  s.Revision(),
			Answers:   answers,
		})
	}
}
