package engine

import "math/rand"

// Rand is the randomness the turn engine consumes: six-way direction
// draws, capture destinations, item scattering, and the signed draw that
// picks fight or capture.
type Rand interface {
	Intn(n int) int
	Int32() int32
}

// RNG wraps math/rand.Rand with deterministic position tracking.
// Position increments with every call so a seeded game can be replayed
// and traced.
type RNG struct {
	seed int64
	src  *rand.Rand
	pos  int64
}

// NewRNG creates a new deterministic RNG from a seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		seed: seed,
		src:  rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a random integer in [0, n).
func (r *RNG) Intn(n int) int {
	r.pos++
	return r.src.Intn(n)
}

// Int32 returns a random signed 32-bit integer covering negative values too.
func (r *RNG) Int32() int32 {
	r.pos++
	return int32(r.src.Uint32())
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Position returns the number of RNG calls made since creation.
func (r *RNG) Position() int64 {
	return r.pos
}
