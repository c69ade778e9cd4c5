// Package practice implements the quiz, sequence challenge, speed training
// and flashcard engines over a PAO lookup table.
package practice

import (
	"math/rand/v2"
	"time"
)

// Rand is the randomness the engines draw from. *rand.Rand satisfies it;
// tests inject a seeded one.
type Rand interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewRand returns a Rand seeded from the clock.
func NewRand() *rand.Rand {
	seed := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}

// NewSeededRand returns a deterministic Rand.
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed+1))
}
