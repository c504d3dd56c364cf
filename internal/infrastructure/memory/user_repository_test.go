package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ProfJake/lab10/internal/domain/entity"
	"github.com/ProfJake/lab10/internal/domain/repository"
)

func TestUserCreateIfAbsent(t *testing.T) {
	r := NewUserRepository()
	ctx := context.Background()

	u := &entity.User{ID: "alice", Name: "Alice", Email: "alice@example.com", Age: 34, Password: "FP"}
	require.NoError(t, r.CreateIfAbsent(ctx, u))

	// Same email collides even under a different handle.
	err := r.CreateIfAbsent(ctx, &entity.User{ID: "alice2", Email: "alice@example.com"})
	require.ErrorIs(t, err, repository.ErrAlreadyExists)

	// Same handle collides even under a different email.
	err = r.CreateIfAbsent(ctx, &entity.User{ID: "alice", Email: "other@example.com"})
	require.ErrorIs(t, err, repository.ErrAlreadyExists)

	got, err := r.GetByID(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)

	got, err = r.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.ID)
}

func TestUserLookupsNotFound(t *testing.T) {
	r := NewUserRepository()
	_, err := r.GetByID(context.Background(), "ghost")
	require.ErrorIs(t, err, repository.ErrNotFound)
	_, err = r.GetByEmail(context.Background(), "ghost@example.com")
	require.ErrorIs(t, err, repository.ErrNotFound)
}
