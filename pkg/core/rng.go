package core

import (
	"math/rand/v2"
	"time"
)

// NewRand returns a PCG-backed generator. A zero seed picks one from the
// wall clock so interactive sessions differ between runs.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// Chance reports true with probability p.
func Chance(r *rand.Rand, p float64) bool {
	switch {
	case p <= 0:
		return false
	case p >= 1:
		return true
	}
	return r.Float64() < p
}

// FillBernoulli fills buf with 0/1 values, each 1 with probability p.
func FillBernoulli(r *rand.Rand, buf []uint8, p float64) {
	for i := range buf {
		buf[i] = 0
		if Chance(r, p) {
			buf[i] = 1
		}
	}
}
