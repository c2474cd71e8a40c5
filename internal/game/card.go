package game

import (
	"fmt"
	"sort"

	"github.com/obvius1/Location-Search-Game/internal/predicate"
)

// Card is one question card. ID is the only key ever used to relate a
// card to its answer; position in the flop or deck is transient and
// never stored.
type Card struct {
	ID             string           `json:"id"`
	Task           string           `json:"task"`
	Question       string           `json:"question"`
	Phase          int              `json:"phase"`
	AnswerType     predicate.Kind   `json:"answerType"`
	Params         predicate.Params `json:"params"`
	RequiresAnswer bool             `json:"requiresAnswer"`
}

// Deck is a validated card set. Build one with NewDeck; the zero value
// is unusable.
type Deck struct {
	cards  []Card
	byID   map[string]Card
	phases []int
}

// NewDeck validates the card definitions: IDs must be unique and
// non-empty, phases positive, and answer-requiring cards must carry a
// known evaluator kind.
func NewDeck(cards []Card) (*Deck, error) {
	d := &Deck{
		cards: make([]Card, len(cards)),
		byID:  make(map[string]Card, len(cards)),
	}
	copy(d.cards, cards)

	seen := map[int]bool{}
	for _, c := range d.cards {
		if c.ID == "" {
			return nil, fmt.Errorf("card %q: empty id", c.Question)
		}
		if _, dup := d.byID[c.ID]; dup {
			return nil, fmt.Errorf("card %q: duplicate id", c.ID)
		}
		if c.Phase < 1 {
			return nil, fmt.Errorf("card %q: phase %d out of range", c.ID, c.Phase)
		}
		if c.RequiresAnswer && !c.AnswerType.Valid() {
			return nil, fmt.Errorf("card %q: unknown answer type %q", c.ID, c.AnswerType)
		}
		d.byID[c.ID] = c
		if !seen[c.Phase] {
			seen[c.Phase] = true
			d.phases = append(d.phases, c.Phase)
		}
	}
	sort.Ints(d.phases)
	return d, nil
}

// Card looks a definition up by its stable identity.
func (d *Deck) Card(id string) (Card, bool) {
	c, ok := d.byID[id]
	return c, ok
}

// Len reports the number of cards in the deck.
func (d *Deck) Len() int { return len(d.cards) }

// pools returns the seed-shuffled draw pools, one per phase in
// ascending phase order. A single PRNG stream shuffles the whole deck,
// then cards partition into their phases keeping the shuffled order,
// so the draw sequence is a pure function of the seed.
func (d *Deck) pools(seed string) [][]Card {
	shuffled := make([]Card, len(d.cards))
	copy(shuffled, d.cards)
	shuffle(shuffled, newRand(seed))

	byPhase := make(map[int][]Card, len(d.phases))
	for _, c := range shuffled {
		byPhase[c.Phase] = append(byPhase[c.Phase], c)
	}

	pools := make([][]Card, 0, len(d.phases))
	for _, phase := range d.phases {
		pools = append(pools, byPhase[phase])
	}
	return pools
}
