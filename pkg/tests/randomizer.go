package tests

import (
	"math/rand"
	"time"
)

type Randomizer struct {
	Float64 func() float64
	Bool    func() bool
	Intn    func(n int) int
}

func NewRandomizer() Randomizer {
	random := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // for tests

	return Randomizer{
		Float64: random.Float64,
		Bool:    func() bool { return random.Intn(2) == 0 }, //nolint:mnd // skip
		Intn:    random.Intn,
	}
}

// Between returns a float in [lo, hi).
func (r Randomizer) Between(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Pick returns a random element of values.
func (r Randomizer) Pick(values ...string) string {
	return values[r.Intn(len(values))]
}
