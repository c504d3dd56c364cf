package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/ProfJake/lab10/internal/domain/entity"
	"github.com/ProfJake/lab10/internal/domain/repository"
)

// ActivityRepository keeps activities in insertion order so tie-breaking
// on equal distances matches the Postgres seq ordering.
type ActivityRepository struct {
	mu         sync.RWMutex
	activities []entity.Activity
}

func NewActivityRepository() *ActivityRepository {
	return &ActivityRepository{}
}

func (r *ActivityRepository) Insert(ctx context.Context, a *entity.Activity) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	r.activities = append(r.activities, *a)
	return a.ID, nil
}

func (r *ActivityRepository) GetByID(ctx context.Context, id string) (*entity.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.activities {
		if r.activities[i].ID == id {
			a := r.activities[i]
			return &a, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *ActivityRepository) ListByUser(ctx context.Context, userID string) ([]entity.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []entity.Activity
	for _, a := range r.activities {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *ActivityRepository) FindByField(ctx context.Context, criteria repository.SearchCriteria) ([]entity.Activity, error) {
	r.mu.RLock()
	var out []entity.Activity
	for _, a := range r.activities {
		ok, err := matches(a, criteria)
		if err != nil {
			r.mu.RUnlock()
			return nil, err
		}
		if ok {
			out = append(out, a)
		}
	}
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Distance > out[j].Distance
	})
	return out, nil
}

func matches(a entity.Activity, c repository.SearchCriteria) (bool, error) {
	switch c.Field {
	case repository.FieldUser:
		return a.UserID == c.Text, nil
	case repository.FieldActivityType:
		return a.Type == c.Text, nil
	case repository.FieldWeight:
		return a.Weight == c.Number, nil
	case repository.FieldDistance:
		return a.Distance == c.Number, nil
	case repository.FieldTime:
		return a.Time == c.Number, nil
	default:
		return false, fmt.Errorf("unsearchable field %q", c.Field)
	}
}

var _ repository.ActivityRepository = (*ActivityRepository)(nil)
