package utils

import (
	"math/rand"
)

// Rand is the subset of *rand.Rand the game rules draw from.
type Rand interface {
	Intn(n int) int
}

type globalRand struct{}

func (globalRand) Intn(n int) int {
	return rand.Intn(n) //nolint:gosec // Game logic randomness, not security critical
}

// DefaultRand draws from the package-level source, which is safe for concurrent use.
var DefaultRand Rand = globalRand{}

// RandomInt returns a random integer between min and max (inclusive)
func RandomInt(r Rand, min, max int) int {
	if min >= max {
		return min
	}
	if r == nil {
		r = DefaultRand
	}
	return r.Intn(max-min+1) + min
}

// RollD20 returns a uniform roll in [1, 20].
func RollD20(r Rand) int {
	return RandomInt(r, 1, 20)
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SeqRand replays a fixed sequence of Intn results, wrapping each value into
// range. Used to force outcomes in tests and simulations.
type SeqRand struct {
	Values []int
	pos    int
}

func (s *SeqRand) Intn(n int) int {
	if len(s.Values) == 0 || n <= 0 {
		return 0
	}
	v := s.Values[s.pos%len(s.Values)]
	s.pos++
	if v < 0 {
		v = -v
	}
	return v % n
}
