package game

import "crypto/rand"

// seedCharset is the alphabet game seeds are built from. Kept short
// and unambiguous so seeds can be read aloud between players.
const seedCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// SeedLength is the length of generated game seeds.
const SeedLength = 6

// NewSeed returns a random shareable seed, e.g. "K4QZ1P".
func NewSeed() string {
	b := make([]byte, SeedLength)
	rand.Read(b)
	for i := range b {
		b[i] = seedCharset[int(b[i])%len(seedCharset)]
	}
	return string(b)
}

// hashSeed folds a seed string into a 32-bit PRNG state. The fold is
// hash*31 + char with 32-bit wraparound, then the sign is dropped, so
// any printable seed maps to a usable state.
func hashSeed(s string) uint32 {
	var h int32
	for _, r := range s {
		h = h*31 + int32(r)
	}
	if h < 0 {
		h = -h
	}
	return uint32(h)
}

// mulberry32 is a tiny deterministic PRNG. Deck order must reproduce
// exactly from a seed across builds and platforms, which rules out
// math/rand's unversioned source; mulberry32's state transition is
// fixed 32-bit arithmetic with no such freedom.
type mulberry32 struct {
	state uint32
}

func newRand(seed string) *mulberry32 {
	return &mulberry32{state: hashSeed(seed)}
}

// next returns a float in [0, 1).
func (m *mulberry32) next() float64 {
	m.state += 0x6D2B79F5
	t := m.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296
}

// intn returns an int in [0, n).
func (m *mulberry32) intn(n int) int {
	return int(m.next() * float64(n))
}

// shuffle is a Fisher-Yates pass driven by the seeded PRNG.
func shuffle(cards []Card, rng *mulberry32) {
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}
