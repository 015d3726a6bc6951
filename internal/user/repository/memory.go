package repository

import (
	"context"
	"sync"

	"github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/user/domain"
)

// MemoryRepository keeps users in process memory, in insertion order.
type MemoryRepository struct {
	mu    sync.RWMutex
	users []domain.User
	index map[domain.ID]int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{index: make(map[domain.ID]int)}
}

func (r *MemoryRepository) Create(_ context.Context, user domain.User) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.index[user.ID] = len(r.users)
	r.users = append(r.users, user)
	return user, nil
}

func (r *MemoryRepository) FindByID(_ context.Context, id domain.ID) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[id]
	if !ok {
		return domain.User{}, ErrUserNotFound
	}
	return r.users[i], nil
}

func (r *MemoryRepository) List(_ context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.User, len(r.users))
	copy(out, r.users)
	return out, nil
}
