package repository

import (
	"context"
	"errors"

	"github.com/ProfJake/lab10/internal/domain/entity"
)

var (
	// ErrNotFound is returned when a user or activity cannot be located.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned on a unique-constraint collision;
	// the existing record is never overwritten.
	ErrAlreadyExists = errors.New("already exists")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// CreateIfAbsent inserts the user; it returns ErrAlreadyExists when a
	// user with the same email (or same handle) is already stored.
	CreateIfAbsent(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
