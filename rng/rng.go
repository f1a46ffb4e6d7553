package rng

import (
	"crypto/rand"
	"encoding/binary"
	"time"
)

// Source is a deterministic pseudo-random source based on splitmix64.
//
// A Source is not safe for concurrent use; give each concurrently running
// pipeline its own instance.
type Source struct {
	state         uint64
	seed          int64
	deterministic bool
}

// New creates a deterministic Source from the given seed.
// Two sources created with the same seed produce identical sequences.
func New(seed int64) *Source {
	return &Source{
		state:         uint64(seed),
		seed:          seed,
		deterministic: true,
	}
}

// NewNonDeterministic creates a Source seeded from the operating system's
// entropy pool. Runs using it are explicitly non-reproducible; callers that
// need reproducibility must use New with an explicit seed.
func NewNonDeterministic() *Source {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Entropy read failures are effectively impossible on supported
		// platforms; fall back to the wall clock rather than failing.
		binary.LittleEndian.PutUint64(buf[:], uint64(time.Now().UnixNano()))
	}
	seed := int64(binary.LittleEndian.Uint64(buf[:]))

	s := New(seed)
	s.deterministic = false

	return s
}

// Deterministic reports whether the source was created with an explicit seed.
func (s *Source) Deterministic() bool {
	return s.deterministic
}

// Seed returns the seed the source was created with. For non-deterministic
// sources this is the entropy-derived seed of this particular instance.
func (s *Source) Seed() int64 {
	return s.seed
}

// next advances the splitmix64 state and returns the next 64-bit value.
func (s *Source) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb

	return z ^ (z >> 31)
}

// Float64 returns the next value in [0, 1).
func (s *Source) Float64() float64 {
	// 53 high bits give a uniformly distributed double in [0,1).
	return float64(s.next()>>11) / (1 << 53)
}

// Intn returns the next value in [0, n). It panics if n <= 0.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn called with n <= 0")
	}

	return int(s.next() % uint64(n))
}

// Perm returns a pseudo-random permutation of [0, n) using Fisher-Yates.
func (s *Source) Perm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := s.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}

	return p
}
