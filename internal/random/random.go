// Package random provides the explicit random streams consumed by the
// star-system generator.
//
// Every generation function takes a Source instead of reaching for a
// process-wide generator. A galaxy builder gives each cell its own stream
// seeded from CellSeed, which keeps generation reproducible and lets cells
// be generated in parallel.
package random

import (
	crand "crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Source yields uniformly distributed values in [0,1).
// *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// New returns an independent deterministic stream for the given seed.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// CellSeed derives the seed of one galaxy cell. Different salts give
// unrelated streams for the same cell.
func CellSeed(galaxySeed int64, x, y, z int, salt string) int64 {
	var buf [32]byte
	binary.BigEndian.PutUint64(buf[0:8], uint64(galaxySeed))
	binary.BigEndian.PutUint64(buf[8:16], uint64(int64(x)))
	binary.BigEndian.PutUint64(buf[16:24], uint64(int64(y)))
	binary.BigEndian.PutUint64(buf[24:32], uint64(int64(z)))

	data := append(buf[:], []byte(salt)...)
	hash := sha256.Sum256(data)
	return int64(binary.BigEndian.Uint64(hash[0:8]))
}

// Intn returns floor(next * n), an index in [0,n). n must be positive.
func Intn(src Source, n int) int {
	i := int(src.Float64() * float64(n))
	if i >= n {
		// guards against a Source that returns exactly 1.0
		i = n - 1
	}
	return i
}

// Chance reports whether the next draw falls below p.
func Chance(src Source, p float64) bool {
	return src.Float64() < p
}

// Between returns a value uniformly distributed in [lo,hi).
func Between(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}

// Pick returns a uniformly chosen element of items. items must not be empty.
func Pick[T any](src Source, items []T) T {
	return items[Intn(src, len(items))]
}

// Sequence replays a fixed list of values, wrapping around when exhausted.
// It makes individual probability rolls observable in tests.
type Sequence struct {
	values []float64
	pos    int
}

// NewSequence returns a Sequence over values. With no values it always
// yields 0.
func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: values}
}

// Float64 returns the next value of the sequence.
func (s *Sequence) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v
}

// Draws reports how many values have been consumed.
func (s *Sequence) Draws() int {
	return s.pos
}
