package questionbank

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/models"
)

type memStore struct {
	pools map[string][]models.Question
}

func (m *memStore) QuestionsByField(field string) ([]models.Question, error) {
	return m.pools[field], nil
}

func makePool(field string, n int) []models.Question {
	pool := make([]models.Question, n)
	for i := range pool {
		pool[i] = models.Question{
			ID:            fmt.Sprintf("%s-%d", field, i),
			Field:         field,
			Prompt:        fmt.Sprintf("Question %d", i),
			Options:       []string{"A", "B", "C", "D"},
			CorrectAnswer: "A",
		}
	}
	return pool
}

func newTestBank(pools map[string][]models.Question, seed int64) *Bank {
	return New(&memStore{pools: pools}, rand.New(rand.NewSource(seed)))
}

func TestSampleReturnsExactCount(t *testing.T) {
	bank := newTestBank(map[string][]models.Question{
		"Software Engineer": makePool("Software Engineer", 25),
	}, 1)

	got, err := bank.Sample("Software Engineer", 10)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	if len(got) != 10 {
		t.Fatalf("expected 10 questions, got %d", len(got))
	}

	seen := make(map[string]bool)
	for _, q := range got {
		if q.Field != "Software Engineer" {
			t.Errorf("question %s has field %q", q.ID, q.Field)
		}
		if seen[q.ID] {
			t.Errorf("duplicate question %s in sample", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestSampleSmallPoolReturnsWholePool(t *testing.T) {
	bank := newTestBank(map[string][]models.Question{
		"Designer": makePool("Designer", 3),
	}, 1)

	got, err := bank.Sample("Designer", 10)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected whole pool of 3, got %d", len(got))
	}
}

func TestSampleUnknownFieldIsEmptyNotError(t *testing.T) {
	bank := newTestBank(map[string][]models.Question{}, 1)

	got, err := bank.Sample("Astronaut", 10)
	if err != nil {
		t.Fatalf("expected no error for unknown field, got %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty sample, got %d", len(got))
	}
}

func TestSampleEmptyFieldAndBadCount(t *testing.T) {
	bank := newTestBank(map[string][]models.Question{
		"Software Engineer": makePool("Software Engineer", 5),
	}, 1)

	for _, tc := range []struct {
		name  string
		field string
		count int
	}{
		{"empty field", "", 5},
		{"zero count", "Software Engineer", 0},
		{"negative count", "Software Engineer", -1},
	} {
		got, err := bank.Sample(tc.field, tc.count)
		if err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
		}
		if len(got) != 0 {
			t.Errorf("%s: expected empty sample, got %d", tc.name, len(got))
		}
	}
}

func TestSampleDoesNotMutatePool(t *testing.T) {
	pool := makePool("Software Engineer", 10)
	original := make([]models.Question, len(pool))
	copy(original, pool)

	bank := newTestBank(map[string][]models.Question{"Software Engineer": pool}, 7)
	if _, err := bank.Sample("Software Engineer", 5); err != nil {
		t.Fatalf("Sample failed: %v", err)
	}

	for i := range pool {
		if pool[i].ID != original[i].ID {
			t.Fatalf("stored pool mutated at index %d: %s != %s", i, pool[i].ID, original[i].ID)
		}
	}
}

func TestSampleDeterministicWithSeed(t *testing.T) {
	pools := map[string][]models.Question{
		"Software Engineer": makePool("Software Engineer", 20),
	}

	a, err := newTestBank(pools, 42).Sample("Software Engineer", 10)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	b, err := newTestBank(pools, 42).Sample("Software Engineer", 10)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}

	for i := range a {
		if a[i].ID != b[i].ID {
			t.Fatalf("same seed produced different samples at index %d: %s != %s", i, a[i].ID, b[i].ID)
		}
	}
}
