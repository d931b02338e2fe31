package domain

import "math/rand/v2"

// RandomSource supplies the random draws used where no ground truth exists:
// the drainage-basin maintenance chance and the fallback catalog's
// placeholder statuses. Injectable for the same reason as the clock:
// production keeps true randomness, tests pin outcomes.
type RandomSource interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// IntN returns a value in [0, n).
	IntN(n int) int
}

type realRandom struct{}

func (realRandom) Float64() float64 { return rand.Float64() }
func (realRandom) IntN(n int) int   { return rand.IntN(n) }

var random RandomSource = realRandom{}

// SetRandomSource swaps the random source. Pass nil to reset to real
// randomness.
func SetRandomSource(r RandomSource) {
	if r == nil {
		random = realRandom{}
		return
	}
	random = r
}
