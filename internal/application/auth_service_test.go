package application

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repo "github.com/ProfJake/lab10/internal/domain/repository"
	"github.com/ProfJake/lab10/internal/infrastructure/memory"
	"github.com/ProfJake/lab10/internal/session"
)

func newAuthService() (*AuthService, *memory.UserRepository) {
	users := memory.NewUserRepository()
	return NewAuthService(users, session.NewMemoryStore(), nil), users
}

func signupAlice(t *testing.T, svc *AuthService) {
	t.Helper()
	err := svc.Signup(context.Background(), map[string]string{
		"user":     "alice",
		"name":     "Alice Example",
		"email":    "alice@example.com",
		"age":      "34",
		"password": "hunter2",
	})
	require.NoError(t, err)
}

func TestSignupThenLogin(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()
	signupAlice(t, svc)

	res, err := svc.Login(ctx, "alice", "hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "alice", res.DisplayName)

	id, err := svc.Identity(ctx, res.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", id.UserID)
}

func TestSignupNeverAuthenticates(t *testing.T) {
	svc, users := newAuthService()
	signupAlice(t, svc)

	u, err := users.GetByID(context.Background(), "alice")
	require.NoError(t, err)
	assert.False(t, u.EmailVerified)
	// Password is stored as a fingerprint, never plaintext.
	assert.NotEqual(t, "hunter2", u.Password)
	assert.Len(t, u.Password, 64)
}

func TestLoginFailuresShareOneShape(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()
	signupAlice(t, svc)

	_, unknownErr := svc.Login(ctx, "nobody", "hunter2")
	_, wrongErr := svc.Login(ctx, "alice", "wrong password")

	require.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	require.ErrorIs(t, wrongErr, ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestLoginComparesFingerprintsCaseInsensitively(t *testing.T) {
	svc, users := newAuthService()
	ctx := context.Background()
	signupAlice(t, svc)

	// Lowercase the stored fingerprint; login must still succeed.
	u, err := users.GetByID(ctx, "alice")
	require.NoError(t, err)
	lowered := *u
	lowered.ID = "bob"
	lowered.Email = "bob@example.com"
	lowered.Password = strings.ToLower(u.Password)
	require.NoError(t, users.CreateIfAbsent(ctx, &lowered))

	_, err = svc.Login(ctx, "bob", "hunter2")
	require.NoError(t, err)
}

func TestSignupDuplicateEmailLeavesStoreUnchanged(t *testing.T) {
	svc, users := newAuthService()
	ctx := context.Background()
	signupAlice(t, svc)

	err := svc.Signup(ctx, map[string]string{
		"user":     "impostor",
		"name":     "Someone Else",
		"email":    "alice@example.com",
		"age":      "40",
		"password": "other",
	})
	require.ErrorIs(t, err, repo.ErrAlreadyExists)

	u, err := users.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.ID)
	assert.Equal(t, "Alice Example", u.Name)

	_, err = users.GetByID(ctx, "impostor")
	require.ErrorIs(t, err, repo.ErrNotFound)
}

func TestSignupRejectsInvalidInputWithoutInsert(t *testing.T) {
	svc, users := newAuthService()
	err := svc.Signup(context.Background(), map[string]string{
		"user":     "alice",
		"name":     " ",
		"email":    "alice@example.com",
		"age":      "34",
		"password": "hunter2",
	})
	require.Error(t, err)
	assert.True(t, IsInputError(err))

	_, err = users.GetByID(context.Background(), "alice")
	require.ErrorIs(t, err, repo.ErrNotFound)
}

func TestLogoutDropsSession(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()
	signupAlice(t, svc)

	res, err := svc.Login(ctx, "alice", "hunter2")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, res.Token))
	_, err = svc.Identity(ctx, res.Token)
	require.ErrorIs(t, err, session.ErrNoSession)
}
