package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/user/domain"
)

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	_, err := repo.Create(ctx, domain.User{ID: "b", Username: "bob"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, domain.User{ID: "a", Username: "alice"})
	require.NoError(t, err)

	got, err := repo.FindByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	_, err = repo.FindByID(ctx, "zzz")
	assert.ErrorIs(t, err, ErrUserNotFound)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, domain.ID("b"), users[0].ID)
	assert.Equal(t, domain.ID("a"), users[1].ID)

	users[0].Username = "mutated"
	again, _ := repo.List(ctx)
	assert.Equal(t, "bob", again[0].Username)
}
