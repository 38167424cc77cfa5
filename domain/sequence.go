package domain

import (
	"math/rand/v2"
)

// Rand is the randomness source used for pitch selection.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// DefaultRand returns the process-wide random source.
func DefaultRand() Rand { return globalRand{} }

// NewSeededRand returns a deterministic source for the given seed.
func NewSeededRand(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// GenerateSequence draws n abbreviations, each picked independently with
// probability proportional to the pitch weight.
//
// Each draw samples u in [0, total) and walks the pitches left to right,
// taking the first whose cumulative weight reaches u. When the total weight
// is zero every pick falls back to the first pitch. An empty list yields n
// empty codes.
func GenerateSequence(pitches []Pitch, n int, rng Rand) []string {
	if n <= 0 {
		return nil
	}
	if rng == nil {
		rng = DefaultRand()
	}

	seq := make([]string, n)
	if len(pitches) == 0 {
		return seq
	}

	weights := make([]float64, len(pitches))
	var total float64
	for i, p := range pitches {
		weights[i] = p.Weight()
		total += weights[i]
	}

	for i := range seq {
		seq[i] = pick(pitches, weights, rng.Float64()*total)
	}

	return seq
}

func pick(pitches []Pitch, weights []float64, u float64) string {
	var cumulative float64
	for i, w := range weights {
		cumulative += w
		if u <= cumulative {
			return pitches[i].Abbreviation
		}
	}
	return pitches[0].Abbreviation
}
