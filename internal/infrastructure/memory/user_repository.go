// Package memory provides in-memory repository implementations with the
// same semantics as the Postgres ones, used in tests and single-process
// deployments.
package memory

import (
	"context"
	"sync"

	"github.com/ProfJake/lab10/internal/domain/entity"
	"github.com/ProfJake/lab10/internal/domain/repository"
)

type UserRepository struct {
	mu    sync.RWMutex
	byID  map[string]entity.User
	email map[string]string // email -> user id
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:  make(map[string]entity.User),
		email: make(map[string]string),
	}
}

func (r *UserRepository) CreateIfAbsent(ctx context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.email[u.Email]; ok {
		return repository.ErrAlreadyExists
	}
	if _, ok := r.byID[u.ID]; ok {
		return repository.ErrAlreadyExists
	}
	r.byID[u.ID] = *u
	r.email[u.Email] = u.ID
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.email[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	u := r.byID[id]
	return &u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
