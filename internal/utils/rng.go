package utils

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"
)

// Source is the randomness every engine component draws from.
// Inject a seeded source for replay and tests, a crypto-seeded one in production.
type Source interface {
	Float64() float64
	IntN(n int) int
}

// NewSeededSource returns a reproducible PCG-backed source.
func NewSeededSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

// NewCryptoSource returns a ChaCha8 source seeded from crypto/rand.
// Falls back to a runtime-seeded PCG if the system entropy pool fails.
func NewCryptoSource() *rand.Rand {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint:gosec // fallback only
	}
	return rand.New(rand.NewChaCha8(seed))
}

// NewSource picks a seeded source for non-zero seeds and a crypto one otherwise.
func NewSource(seed int64) Source {
	if seed != 0 {
		return NewLockedSource(NewSeededSource(uint64(seed)))
	}
	return NewLockedSource(NewCryptoSource())
}

// LockedSource serialises access to a Source shared across goroutines.
type LockedSource struct {
	mu  sync.Mutex
	src Source
}

// NewLockedSource wraps src.
func NewLockedSource(src Source) *LockedSource {
	return &LockedSource{src: src}
}

func (l *LockedSource) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Float64()
}

func (l *LockedSource) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.IntN(n)
}

// DeriveSeed mixes a base seed with a worker index so parallel simulations stay reproducible.
func DeriveSeed(base int64, index int) uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(base))
	binary.LittleEndian.PutUint64(buf[8:], uint64(index))
	h := uint64(1469598103934665603)
	for _, b := range buf {
		h ^= uint64(b)
		h *= 1099511628211
	}
	return h
}
