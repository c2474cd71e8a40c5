package game

import (
	"errors"
	"fmt"

	"github.com/obvius1/Location-Search-Game/internal/exclusion"
	"github.com/obvius1/Location-Search-Game/internal/geo"
	"github.com/obvius1/Location-Search-Game/internal/predicate"
)

// DefaultFlopSize is how many cards are face-up at once.
const DefaultFlopSize = 4

// SnapshotVersion is the serialized snapshot format version.
const SnapshotVersion = 1

var (
	ErrUnknownCard  = errors.New("game: unknown card")
	ErrNotActive    = errors.New("game: card not in flop")
	ErrKindMismatch = errors.New("game: answer kind does not match card")
)

// Session is one running game: a confirmed hider location, the flop of
// active cards, and the accumulated answer records. All methods are
// synchronous; callers serialize access.
type Session struct {
	deck     *Deck
	seed     string
	flopSize int

	pools   [][]Card
	flop    []Card
	retired []string

	records  []exclusion.Record
	location *geo.Point

	revision int
}

// NewSession starts a fresh game. The flop fills by drawing from the
// lowest phase first; a phase pool must run dry before the next phase
// enters play.
func NewSession(deck *Deck, seed string, flopSize int) *Session {
	if flopSize <= 0 {
		flopSize = DefaultFlopSize
	}
	s := &Session{
		deck:     deck,
		seed:     seed,
		flopSize: flopSize,
		pools:    deck.pools(seed),
	}
	for len(s.flop) < s.flopSize {
		c, ok := s.draw()
		if !ok {
			break
		}
		s.flop = append(s.flop, c)
	}
	return s
}

// Seed returns the shuffle seed the session was started with.
func (s *Session) Seed() string { return s.seed }

// Revision increments on every mutation; clients use it to detect
// stale views.
func (s *Session) Revision() int { return s.revision }

// Flop returns the active cards in slot order.
func (s *Session) Flop() []Card {
	out := make([]Card, len(s.flop))
	copy(out, s.flop)
	return out
}

// Retired returns retired card IDs in retirement order.
func (s *Session) Retired() []string {
	out := make([]string, len(s.retired))
	copy(out, s.retired)
	return out
}

// Records returns the answer records in recording order.
func (s *Session) Records() []exclusion.Record {
	out := make([]exclusion.Record, len(s.records))
	copy(out, s.records)
	return out
}

// Record returns the answer record for one card, if any.
func (s *Session) Record(cardID string) (exclusion.Record, bool) {
	for _, r := range s.records {
		if r.CardID == cardID {
			return r, true
		}
	}
	return exclusion.Record{}, false
}

// ConfirmLocation fixes the hider's point for this session.
func (s *Session) ConfirmLocation(p geo.Point) {
	loc := p
	s.location = &loc
	s.revision++
}

// Location returns the confirmed hider point, if one is set.
func (s *Session) Location() (geo.Point, bool) {
	if s.location == nil {
		return geo.Point{}, false
	}
	return *s.location, true
}

// Answer records the evaluated answer for a card. An active card is
// auto-discarded and its flop slot refilled; answering a card that is
// already retired replaces the prior record in place, which is how
// edits work. At most one record per card ever exists.
func (s *Session) Answer(cardID string, ans predicate.Answer, params predicate.Params) error {
	card, ok := s.deck.Card(cardID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCard, cardID)
	}
	if ans.Kind != card.AnswerType {
		return fmt.Errorf("%w: card %s wants %s, got %s", ErrKindMismatch, cardID, card.AnswerType, ans.Kind)
	}

	rec := exclusion.Record{
		CardID:  cardID,
		Kind:    ans.Kind,
		Outcome: ans.Outcome,
		Params:  params,
	}

	replaced := false
	for i := range s.records {
		if s.records[i].CardID == cardID {
			s.records[i] = rec
			replaced = true
			break
		}
	}
	if !replaced {
		s.records = append(s.records, rec)
	}

	if s.flopIndex(cardID) >= 0 {
		s.retire(cardID)
	}
	s.revision++
	return nil
}

// Discard retires an active card without recording an answer. Its flop
// slot refills from the deck when a card remains; otherwise the flop
// shrinks, which is a normal end-of-content state.
func (s *Session) Discard(cardID string) error {
	if _, ok := s.deck.Card(cardID); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCard, cardID)
	}
	if s.flopIndex(cardID) < 0 {
		return fmt.Errorf("%w: %s", ErrNotActive, cardID)
	}
	s.retire(cardID)
	s.revision++
	return nil
}

func (s *Session) flopIndex(cardID string) int {
	for i, c := range s.flop {
		if c.ID == cardID {
			return i
		}
	}
	return -1
}

// retire removes a card from the flop and refills its slot in place.
// Retired IDs are recorded in order; replaying that order against the
// same seed reproduces the session exactly.
func (s *Session) retire(cardID string) {
	i := s.flopIndex(cardID)
	if i < 0 {
		return
	}
	s.retired = append(s.retired, cardID)
	if c, ok := s.draw(); ok {
		s.flop[i] = c
		return
	}
	s.flop = append(s.flop[:i], s.flop[i+1:]...)
}

// draw pops the next card from the lowest non-empty phase pool.
func (s *Session) draw() (Card, bool) {
	for i := range s.pools {
		if len(s.pools[i]) == 0 {
			continue
		}
		c := s.pools[i][0]
		s.pools[i] = s.pools[i][1:]
		return c, true
	}
	return Card{}, false
}

// Snapshot is the persisted form of a session. It stores the minimal
// replay state: the flop and undrawn pools are reconstructed from the
// seed and the retirement order, never serialized directly.
type Snapshot struct {
	Version  int                `json:"version"`
	Revision int                `json:"revision"`
	Seed     string             `json:"seed"`
	FlopSize int                `json:"flopSize"`
	Location *geo.Point         `json:"location,omitempty"`
	Retired  []string           `json:"retired"`
	Records  []exclusion.Record `json:"records"`
}

// Snapshot serializes the session. Restoring the result yields an
// equivalent session.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Version:  SnapshotVersion,
		Revision: s.revision,
		Seed:     s.seed,
		FlopSize: s.flopSize,
		Retired:  s.Retired(),
		Records:  s.Records(),
	}
	if s.location != nil {
		loc := *s.location
		snap.Location = &loc
	}
	return snap
}

// Restore rebuilds a session from a snapshot by replaying the
// retirement order against a fresh shuffle of the same seed. The deck
// must be the one the snapshot was taken against; a retired ID that
// never enters the flop during replay means deck and snapshot have
// diverged.
func Restore(deck *Deck, snap Snapshot) (*Session, error) {
	if snap.Version != SnapshotVersion {
		return nil, fmt.Errorf("game: unsupported snapshot version %d", snap.Version)
	}

	s := NewSession(deck, snap.Seed, snap.FlopSize)
	for _, id := range snap.Retired {
		if s.flopIndex(id) < 0 {
			return nil, fmt.Errorf("game: snapshot retired card %s not reachable with this deck", id)
		}
		s.retire(id)
	}
	for _, rec := range snap.Records {
		if _, ok := deck.Card(rec.CardID); !ok {
			return nil, fmt.Errorf("%w: record for %s", ErrUnknownCard, rec.CardID)
		}
	}
	s.records = make([]exclusion.Record, len(snap.Records))
	copy(s.records, snap.Records)
	if snap.Location != nil {
		loc := *snap.Location
		s.location = &loc
	}
	s.revision = snap.Revision
	return s, nil
}
