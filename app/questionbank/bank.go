// Package questionbank samples assessment questions by job field.
package questionbank

import (
	"math/rand"
	"sync"
	"time"

	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/models"
)

// Store is the persistence the bank reads from. An unknown field must yield
// an empty pool, not an error.
type Store interface {
	QuestionsByField(field string) ([]models.Question, error)
}

// Bank draws random, non-repeating question subsets from a store.
type Bank struct {
	store Store

	mu  sync.Mutex
	rng *rand.Rand
}

// New builds a bank over store. rng may be nil, in which case a time-seeded
// source is used; tests pass a fixed seed for reproducible sampling.
func New(store Store, rng *rand.Rand) *Bank {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Bank{store: store, rng: rng}
}

// Sample returns up to count questions tagged with field, chosen by a uniform
// random permutation. A pool smaller than count comes back whole. The stored
// pool is never mutated.
func (b *Bank) Sample(field string, count int) ([]models.Question, error) {
	if field == "" || count <= 0 {
		return nil, nil
	}

	pool, err := b.store.QuestionsByField(field)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, nil
	}

	// Shuffle a copy so the store's slice stays untouched.
	drawn := make([]models.Question, len(pool))
	copy(drawn, pool)

	b.mu.Lock()
	b.rng.Shuffle(len(drawn), func(i, j int) {
		drawn[i], drawn[j] = drawn[j], drawn[i]
	})
	b.mu.Unlock()

	if count < len(drawn) {
		drawn = drawn[:count]
	}
	return drawn, nil
}
