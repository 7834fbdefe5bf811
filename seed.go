package elloapi

import (
	"github.com/google/uuid"
	"strconv"
)

// Seed fixes the ordering of a randomized feed
//
// a seed is plain data on the variant that carries it: re-deriving parameters (or retrying) with the same
// variant value reuses the same seed, constructing a new variant value with NewSeed gives a fresh ordering
//
// the zero Seed is unseeded: it is sent as 0, so every value built as a literal without a seed reads the same ordering
type Seed uint32

// NewSeed draws a fresh random seed
func NewSeed() Seed {
	return Seed(uuid.New().ID())
}

func (s Seed) String() string {
	return strconv.FormatUint(uint64(s), 10)
}

func (s Seed) param() int {
	return int(s)
}
