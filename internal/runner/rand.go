package runner

import (
	"math/rand"
	"time"
)

// RandSource supplies uniform values in [0, 1). *rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

// newClockRand returns a source seeded from the wall clock.
func newClockRand() RandSource {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
