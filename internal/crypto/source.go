package crypto

import (
	crand "crypto/rand"
	"fmt"
	"math/big"
	mrand "math/rand/v2"
	"sync"
)

// Source yields uniform integers in [0, n). Implementations used by the
// API server must be safe for concurrent use.
type Source interface {
	IntN(n int) int
}

// MathSource draws from the math/rand/v2 global generator.
type MathSource struct{}

func (MathSource) IntN(n int) int {
	return mrand.IntN(n)
}

// CryptoSource draws from crypto/rand.
type CryptoSource struct{}

// IntN panics if the system random reader fails, which crypto/rand treats
// as unrecoverable.
func (CryptoSource) IntN(n int) int {
	v, err := crand.Int(crand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(fmt.Sprintf("crypto/rand: %v", err))
	}
	return int(v.Int64())
}

// SeededSource is a deterministic source for reproducible output.
type SeededSource struct {
	mu  sync.Mutex
	rng *mrand.Rand
}

// NewSeededSource returns a PCG-backed source seeded with seed.
func NewSeededSource(seed uint64) *SeededSource {
	return &SeededSource{rng: mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *SeededSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// SourceByName resolves "crypto" or "math".
func SourceByName(name string) (Source, error) {
	switch name {
	case "crypto", "":
		return CryptoSource{}, nil
	case "math":
		return MathSource{}, nil
	default:
		return nil, fmt.Errorf("unknown random source %q", name)
	}
}
