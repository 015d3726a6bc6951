package service

import (
	"context"
	"fmt"
	"sync"

	exercisedomain "github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/exercise/domain"
	userdomain "github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/user/domain"
	userrepo "github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/user/repository"
)

// memoryUsers keeps users in insertion order; the func fields override it.
type memoryUsers struct {
	mu         sync.Mutex
	users      []userdomain.User
	createFunc func(ctx context.Context, user userdomain.User) (userdomain.User, error)
	findFunc   func(ctx context.Context, id userdomain.ID) (userdomain.User, error)
	listFunc   func(ctx context.Context) ([]userdomain.User, error)
}

func (m *memoryUsers) Create(ctx context.Context, user userdomain.User) (userdomain.User, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users = append(m.users, user)
	return user, nil
}

func (m *memoryUsers) FindByID(ctx context.Context, id userdomain.ID) (userdomain.User, error) {
	if m.findFunc != nil {
		return m.findFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return userdomain.User{}, userrepo.ErrUserNotFound
}

func (m *memoryUsers) List(ctx context.Context) ([]userdomain.User, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]userdomain.User, len(m.users))
	copy(out, m.users)
	return out, nil
}

type memoryExercises struct {
	mu         sync.Mutex
	exercises  []exercisedomain.Exercise
	createFunc func(ctx context.Context, e exercisedomain.Exercise) (exercisedomain.Exercise, error)
	listFunc   func(ctx context.Context, username string) ([]exercisedomain.Exercise, error)
}

func (m *memoryExercises) Create(ctx context.Context, e exercisedomain.Exercise) (exercisedomain.Exercise, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, e)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.exercises = append(m.exercises, e)
	return e, nil
}

func (m *memoryExercises) ListByUsername(ctx context.Context, username string) ([]exercisedomain.Exercise, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, username)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]exercisedomain.Exercise, 0)
	for _, e := range m.exercises {
		if e.Username == username {
			out = append(out, e)
		}
	}
	return out, nil
}

type sequentialIDs struct {
	mu   sync.Mutex
	next int
}

func (g *sequentialIDs) NewID() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return fmt.Sprintf("id-%d", g.next), nil
}
