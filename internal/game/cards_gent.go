package game

import "github.com/obvius1/Location-Search-Game/internal/predicate"

// GentCards returns the stock deck for the Ghent dataset. Phase 1
// carves the map in big strokes, phase 2 narrows by district, phase 3
// is fine-grained. IDs are stable forever; answer records key on them.
func GentCards() []Card {
	return []Card{
		// Phase 1: coarse cuts.
		{
			ID:             "gent-r40",
			Task:           "Walk to any spot with a clear view of a main road.",
			Question:       "Are you inside the R40 ring road?",
			Phase:          1,
			AnswerType:     predicate.KindRing,
			Params:         predicate.Params{Name: "r40"},
			RequiresAnswer: true,
		},
		{
			ID:             "gent-water-line",
			Task:           "Find the nearest waterway.",
			Question:       "Are you left or right of the Leie-Schelde line?",
			Phase:          1,
			AnswerType:     predicate.KindLineSide,
			Params:         predicate.Params{Name: "leie-schelde"},
			RequiresAnswer: true,
		},
		{
			ID:             "gent-belfort-meridian",
			Task:           "Look for the Belfort tower on the skyline.",
			Question:       "Are you east or west of the Belfort?",
			Phase:          1,
			AnswerType:     predicate.KindMeridian,
			Params:         predicate.Params{Name: "belfort"},
			RequiresAnswer: true,
		},
		{
			ID:             "gent-hospital-near",
			Task:           "Check a city map for the red crosses.",
			Question:       "Which hospital is closest to you?",
			Phase:          1,
			AnswerType:     predicate.KindNearestOfMany,
			Params:         predicate.Params{Collection: "hospitals"},
			RequiresAnswer: true,
		},
		{
			ID:             "gent-selfie",
			Task:           "Send the seeker a photo of the sky straight up.",
			Question:       "",
			Phase:          1,
			RequiresAnswer: false,
		},

		// Phase 2: district scale.
		{
			ID:             "gent-neighborhood",
			Task:           "Ask a passerby what this part of town is called.",
			Question:       "Which neighborhood are you in, or adjacent to?",
			Phase:          2,
			AnswerType:     predicate.KindNeighborhood,
			RequiresAnswer: true,
		},
		{
			ID:             "gent-dampoort-weba",
			Task:           "Estimate without a map first.",
			Question:       "Are you closer to Station Dampoort or to the Weba?",
			Phase:          2,
			AnswerType:     predicate.KindNearestOfTwo,
			Params:         predicate.Params{PairA: "dampoort", PairB: "weba"},
			RequiresAnswer: true,
		},
		{
			ID:             "gent-watersportbaan",
			Task:           "Rowers count as a hint.",
			Question:       "Are you inside the Watersportbaan corridor?",
			Phase:          2,
			AnswerType:     predicate.KindBuffer,
			Params:         predicate.Params{Name: "watersportbaan-corridor"},
			RequiresAnswer: true,
		},
		{
			ID:             "gent-library-1km",
			Task:           "Libraries are marked on most transit maps.",
			Question:       "Are you within one kilometer of a public library?",
			Phase:          2,
			AnswerType:     predicate.KindRadiusCollection,
			Params:         predicate.Params{Collection: "libraries", RadiusM: 1000},
			RequiresAnswer: true,
		},

		// Phase 3: fine-grained.
		{
			ID:             "gent-station-far",
			Task:           "Think about your last train ride.",
			Question:       "Which train station is furthest from you?",
			Phase:          3,
			AnswerType:     predicate.KindFurthestOfMany,
			Params:         predicate.Params{Collection: "stations"},
			RequiresAnswer: true,
		},
		{
			ID:             "gent-seeker-point",
			Task:           "The seeker picks any point on the map.",
			Question:       "Are you within 500 meters of the chosen point?",
			Phase:          3,
			AnswerType:     predicate.KindRadiusPoint,
			Params:         predicate.Params{RadiusM: 500},
			RequiresAnswer: true,
		},
		{
			ID:             "gent-ikea-2km",
			Task:           "Yellow and blue on the horizon?",
			Question:       "Are you within two kilometers of the IKEA?",
			Phase:          3,
			AnswerType:     predicate.KindRadiusPoint,
			Params:         predicate.Params{Target: "51.02356223132743,3.6878854133255237", RadiusM: 2000},
			RequiresAnswer: true,
		},
	}
}

// GentDeck is GentCards pre-validated. It panics only if the stock
// definitions themselves are broken, which is a programming error.
func GentDeck() *Deck {
	d, err := NewDeck(GentCards())
	if err != nil {
		panic(err)
	}
	return d
}
