// Package random provides the injectable random source used by every
// randomized part of the simulation, plus seeded constructors.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"time"
)

// Source is the subset of *rand.Rand the simulation draws from.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// NewSeeded creates a deterministic generator. A zero seed uses the
// current time.
func NewSeeded(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Default returns a freshly seeded generator.
func Default() Source {
	seed, err := NewSeed()
	if err != nil {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Or returns src, or a default generator when src is nil.
func Or(src Source) Source {
	if src == nil {
		return Default()
	}
	return src
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// IntRange returns a uniform integer in [lo, hi].
func IntRange(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.Intn(hi-lo+1)
}
