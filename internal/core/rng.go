package core

import (
	"math/rand/v2"
	"time"
)

// NewRNG creates a deterministic PCG-backed source for the provided seed. A
// zero seed picks one from the wall clock.
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// FillBinary fills the buffer with 0/1 values using the RNG.
func FillBinary(r *rand.Rand, buf []Cell) {
	for i := range buf {
		buf[i] = Cell(r.IntN(2))
	}
}
