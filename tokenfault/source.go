package tokenfault

import (
	"sync"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// Source supplies the randomness and fake identity data generators consume.
// Implementations must be safe for concurrent use.
type Source interface {
	// IntN returns a uniform integer in [0, n). n is always positive.
	IntN(n int) int
	UUID() string
	Name() string
	Email() string
}

type fakerSource struct {
	mu    sync.Mutex
	faker *gofakeit.Faker
}

// NewSource returns a gofakeit-backed Source. A zero seed picks one from the
// clock, so only non-zero seeds give reproducible output.
func NewSource(seed uint64) Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &fakerSource{faker: gofakeit.New(seed)}
}

func (s *fakerSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.faker.Number(0, n-1)
}

func (s *fakerSource) UUID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.faker.UUID()
}

func (s *fakerSource) Name() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.faker.Name()
}

func (s *fakerSource) Email() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.faker.Email()
}

func pick[T any](src Source, items []T) T {
	return items[src.IntN(len(items))]
}
