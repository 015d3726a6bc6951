package repository

import (
	"context"
	"sync"

	"github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/exercise/domain"
)

// MemoryRepository keeps exercises in process memory, in insertion order.
type MemoryRepository struct {
	mu        sync.RWMutex
	exercises []domain.Exercise
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Create(_ context.Context, exercise domain.Exercise) (domain.Exercise, error) {
	exercise.Date = domain.CalendarDate(exercise.Date)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.exercises = append(r.exercises, exercise)
	return exercise, nil
}

func (r *MemoryRepository) ListByUsername(_ context.Context, username string) ([]domain.Exercise, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Exercise, 0)
	for _, e := range r.exercises {
		if e.Username == username {
			out = append(out, e)
		}
	}
	return out, nil
}
