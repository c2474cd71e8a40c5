package server

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/obvius1/Location-Search-Game/internal/dataset"
	"github.com/obvius1/Location-Search-Game/internal/game"
	"github.com/obvius1/Location-Search-Game/internal/predicate"
)

// AnswerCardRequest is the optional body for answering a card. Only
// seeker-point cards need one: the point the seeker chose.
type AnswerCardRequest struct {
	TargetLat *float64 `json:"targetLat,omitempty"`
	TargetLng *float64 `json:"targetLng,omitempty"`
}

// AnswerCardResponse carries the evaluated answer and the refreshed
// flop.
type AnswerCardResponse struct {
	Answer   predicate.Answer `json:"answer"`
	Revision int              `json:"revision"`
	Flop     []game.Card      `json:"flop"`
}

// handleAnswerCard evaluates a card's question at the hider's
// confirmed point and records the result. POST answers an active card;
// PUT re-answers one, replacing its record, including cards already
// retired. Both share this handler because recording is an upsert.
func handleAnswerCard(store Store, deck *game.Deck, ds *dataset.Set, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AnswerCardRequest
		if err := readJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "invalid request body")
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

		loc, hasLoc := s.Location()
		if !hasLoc {
			writeError(w, http.StatusConflict, "no confirmed location")
			return
		}

		cardID := chi.URLParam(r, "cardID")
		card, ok := deck.Card(cardID)
		if !ok {
			writeError(w, http.StatusNotFound, "card not found")
			return
		}
		if !card.RequiresAnswer {
			writeError(w, http.StatusBadRequest, "card does not take an answer")
			return
		}

		params := card.Params
		if card.AnswerType == predicate.KindRadiusPoint && params.Target == "" {
			if req.TargetLat == nil || req.TargetLng == nil {
				writeError(w, http.StatusBadRequest, "targetLat and targetLng are required for this card")
				return
			}
			if _, ok := validPoint(*req.TargetLat, *req.TargetLng); !ok {
				writeError(w, http.StatusBadRequest, "target coordinates out of range")
				return
			}
			params.Target = strconv.FormatFloat(*req.TargetLat, 'f', -1, 64) +
				"," + strconv.FormatFloat(*req.TargetLng, 'f', -1, 64)
		}

		ans := predicate.Evaluate(loc, ds, card.AnswerType, params)
		params.Segment = ans.Segment

		wasActive := flopHas(s, cardID)
		if err := s.Answer(cardID, ans, params); err != nil {
			switch {
			case errors.Is(err, game.ErrUnknownCard):
				writeError(w, http.StatusNotFound, "card not found")
			case errors.Is(err, game.ErrKindMismatch):
				writeError(w, http.StatusBadRequest, "answer does not match card")
			default:
				writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		if err := store.PutGame(r.Context(), id, s.Snapshot()); err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		if wasActive {
			broker.Publish(id, Event{Type: "card_drawn", CardID: cardID, Revision: s.Revision()})
		}
		broker.Publish(id, Event{Type: "regions_updated", CardID: cardID, Revision: s.Revision()})

		writeJSON(w, http.StatusOK, AnswerCardResponse{
			Answer:   ans,
			Revision: s.Revision(),
			Flop:     s.Flop(),
		})
	}
}

func handleDiscardCard(store Store, deck *game.Deck, broker *Broker) http.HandlerFunc {
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

		cardID := chi.URLParam(r, "cardID")
		if err := s.Discard(cardID); err != nil {
			switch {
			case errors.Is(err, game.ErrUnknownCard):
				writeError(w, http.StatusNotFound, "card not found")
			case errors.Is(err, game.ErrNotActive):
				writeError(w, http.StatusConflict, "card is not in the flop")
			default:
				writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		if err := store.PutGame(r.Context(), id, s.Snapshot()); err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		broker.Publish(id, Event{Type: "card_drawn", CardID: cardID, Revision: s.Revision()})
		writeJSON(w, http.StatusOK, gameResponse(id, s))
	}
}

func flopHas(s *game.Session, cardID string) bool {
	for _, c := range s.Flop() {
		if c.ID == cardID {
			return true
		}
	}
	return false
}
