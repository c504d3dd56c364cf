package repository

import (
	"context"

	"github.com/ProfJake/lab10/internal/domain/entity"
)

// ActivityRepository defines the interface for activity persistence.
// Each call is independent; no transaction spans two calls, and a search
// issued concurrently with an insert may or may not see the new record.
type ActivityRepository interface {
	Insert(ctx context.Context, a *entity.Activity) (string, error)
	GetByID(ctx context.Context, id string) (*entity.Activity, error)
	ListByUser(ctx context.Context, userID string) ([]entity.Activity, error)
	// FindByField runs an equality match on exactly one searchable field,
	// projecting the measurement columns and sorting by distance descending.
	FindByField(ctx context.Context, criteria SearchCriteria) ([]entity.Activity, error)
}
